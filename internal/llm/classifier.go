package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/model"
)

const systemPrompt = "You classify customer support messages for an electricity utility. " +
	"You MUST respond with ONLY a valid JSON object of the form {\"label\": <number>}. " +
	"Do not include any explanatory text or markdown."

// Classifier implements classifier.Classifier using an LLM API.
type Classifier struct {
	client Client
	logger *slog.Logger
}

// NewClassifier creates a new LLM-based classifier.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewClassifierWithClient(client, logger), nil
}

// NewClassifierWithClient wraps an existing client.
func NewClassifierWithClient(client Client, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{client: client, logger: logger}
}

// Classify asks the model for a label. Transport and parse failures are
// returned as classification failures; there is no retry.
func (c *Classifier) Classify(ctx context.Context, query string) (model.Label, error) {
	content, err := c.client.Complete(ctx, systemPrompt, buildPrompt(query))
	if err != nil {
		return model.LabelUnknown, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	label, err := parseLabel(content)
	if err != nil {
		return model.LabelUnknown, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	c.logger.Debug("query classified by llm", "label", label.String())
	return label, nil
}

func buildPrompt(query string) string {
	var b strings.Builder
	b.WriteString("Assign the customer message to exactly one category.\n\nCategories:\n")
	for _, l := range model.Labels() {
		fmt.Fprintf(&b, "%d: %s\n", l.Index(), l.Description())
	}
	b.WriteString("\nCustomer message:\n")
	b.WriteString(query)
	b.WriteString("\n\nRespond with {\"label\": <number>}.")
	return b.String()
}
