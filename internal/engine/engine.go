// Package engine implements the query pipeline that turns a customer message
// into a canned reply with a waiting number.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/power-desk/internal/catalog"
	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/ticket"
)

// Fixed prompts returned instead of a reply when input is missing.
const (
	PromptForQuery   = "Please enter a query."
	PromptForAccount = "Please enter your meter or account number to proceed."
)

// Pipeline classifies queries and renders the matching reply. It holds only
// read-only collaborators and is safe to share between requests.
type Pipeline struct {
	classifier Classifier
	tickets    TicketSource
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTickets sets the waiting number source.
func WithTickets(src TicketSource) Option {
	return func(p *Pipeline) {
		p.tickets = src
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a pipeline around classifier. Without WithTickets it draws
// waiting numbers from a time-seeded generator.
func New(classifier Classifier, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tickets == nil {
		p.tickets = ticket.NewGenerator(nil)
	}
	return p
}

// Handle answers a single query. Blank queries get PromptForQuery without
// reaching the classifier. Classifier failures are returned unchanged in
// meaning; there is no retry.
func (p *Pipeline) Handle(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return PromptForQuery, nil
	}
	if p.classifier == nil {
		return "", common.ErrModelNotLoaded
	}

	label, err := p.classifier.Classify(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to classify query: %w", err)
	}

	waiting := p.tickets.Next()
	p.logger.Debug("query answered",
		"label", label.String(),
		"waiting_number", waiting)

	return catalog.Render(label, waiting), nil
}

// Respond is Handle gated on a meter or account number having been given.
func (p *Pipeline) Respond(ctx context.Context, account, query string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return PromptForAccount, nil
	}
	return p.Handle(ctx, query)
}
