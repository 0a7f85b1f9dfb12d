package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits. A failure
// answering a query stops the program and is returned.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Responder == nil {
		return fmt.Errorf("responder is required")
	}

	program := tea.NewProgram(
		newModel(ctx, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}
