package engine

import (
	"context"

	"github.com/Veraticus/power-desk/internal/model"
)

// Classifier defines the contract for query categorization.
type Classifier interface {
	Classify(ctx context.Context, query string) (model.Label, error)
}

// TicketSource hands out waiting numbers.
type TicketSource interface {
	Next() int
}
