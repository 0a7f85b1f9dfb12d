package tui

import (
	"context"

	"github.com/Veraticus/power-desk/internal/sentiment"
	"github.com/Veraticus/power-desk/internal/tui/themes"
)

// Responder answers a query on behalf of an account holder.
type Responder interface {
	Respond(ctx context.Context, account, query string) (string, error)
}

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Responder Responder
	Sentiment *sentiment.Table
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  100,
		Height: 30,
	}
}

// WithResponder sets the query pipeline.
func WithResponder(r Responder) Option {
	return func(c *Config) {
		c.Responder = r
	}
}

// WithSentimentTable sets the tweet table shown on the sentiment tab.
func WithSentimentTable(t *sentiment.Table) Option {
	return func(c *Config) {
		c.Sentiment = t
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial dimensions.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
