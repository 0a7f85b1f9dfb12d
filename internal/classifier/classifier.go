// Package classifier turns free-text customer queries into one of the five
// trained query categories. The bundled implementation runs a serialized
// tokenizer and dense network exported from the training notebook; other
// backends (see internal/llm) satisfy the same interface.
package classifier

import (
	"context"

	"github.com/Veraticus/power-desk/internal/model"
)

// Classifier assigns a category label to a query.
type Classifier interface {
	Classify(ctx context.Context, query string) (model.Label, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(ctx context.Context, query string) (model.Label, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, query string) (model.Label, error) {
	return f(ctx, query)
}

// ArgMax returns the index of the largest value, preferring the first on
// ties. It returns -1 for an empty slice.
func ArgMax(values []float64) int {
	best := -1
	for i, v := range values {
		if best == -1 || v > values[best] {
			best = i
		}
	}
	return best
}
