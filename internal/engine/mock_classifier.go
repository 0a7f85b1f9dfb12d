package engine

import (
	"context"
	"sync"

	"github.com/Veraticus/power-desk/internal/model"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns a fixed label (or error) and records every query it sees.
type MockClassifier struct {
	Err     error
	queries []string
	Label   model.Label
	mu      sync.Mutex
}

// NewMockClassifier creates a mock that always answers label.
func NewMockClassifier(label model.Label) *MockClassifier {
	return &MockClassifier{Label: label}
}

// Classify records the query and returns the configured result.
func (m *MockClassifier) Classify(_ context.Context, query string) (model.Label, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = append(m.queries, query)
	if m.Err != nil {
		return model.LabelUnknown, m.Err
	}
	return m.Label, nil
}

// Queries returns the queries received so far.
func (m *MockClassifier) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

// FixedTickets always hands out the same waiting number.
type FixedTickets int

// Next returns the fixed number.
func (f FixedTickets) Next() int {
	return int(f)
}
