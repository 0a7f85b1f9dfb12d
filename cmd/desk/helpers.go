package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/power-desk/internal/classifier"
	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/config"
	"github.com/Veraticus/power-desk/internal/engine"
	"github.com/Veraticus/power-desk/internal/llm"
	"github.com/Veraticus/power-desk/internal/sentiment"
)

// newClassifier builds the configured classifier backend.
func newClassifier(c config.Config, logger *slog.Logger) (engine.Classifier, error) {
	switch c.Classifier.Backend {
	case config.BackendLLM:
		cls, err := llm.NewClassifier(llm.Config{
			Provider: c.LLM.Provider,
			APIKey:   c.LLM.APIKey,
			Model:    c.LLM.Model,
			BaseURL:  c.LLM.BaseURL,
			Timeout:  c.LLM.Timeout,
		}, logger)
		if err != nil {
			return nil, common.NewUserError("Could not set up the LLM classifier", err)
		}
		return cls, nil

	case config.BackendArtifact:
		artifact, err := classifier.Load(classifier.Paths{
			Model:     c.Model.Path,
			Tokenizer: c.Model.Tokenizer,
			MaxLen:    c.Model.MaxLen,
		}, logger)
		if err != nil {
			return nil, common.NewUserError("Could not load the classifier artifacts", err)
		}
		return artifact, nil
	}

	return nil, fmt.Errorf("%w: unknown classifier.backend %q", common.ErrInvalidConfig, c.Classifier.Backend)
}

// newPipeline wires the configured classifier into a query pipeline.
func newPipeline(c config.Config) (*engine.Pipeline, error) {
	logger := slog.Default()
	cls, err := newClassifier(c, logger)
	if err != nil {
		return nil, err
	}
	return engine.New(cls, engine.WithLogger(logger)), nil
}

// loadTweets loads the labelled tweet table named in the configuration.
func loadTweets(c config.Config) (*sentiment.Table, error) {
	table, err := sentiment.Load(c.Sentiment.Path)
	if err != nil {
		return nil, common.NewUserError("Could not load the sentiment table", err)
	}
	slog.Debug("sentiment table loaded", "path", c.Sentiment.Path, "rows", table.Len())
	return table, nil
}
