package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive support dashboard",
		Long: `Open the terminal dashboard with the query form, the About Us and
Contact Us pages, the county selector and the sentiment browser.

A missing sentiment table is not fatal; the sentiment tab is left empty.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipeline, err := newPipeline(cfg)
			if err != nil {
				return err
			}

			opts := []tui.Option{tui.WithResponder(pipeline)}
			tweets, err := loadTweets(cfg)
			switch {
			case err == nil:
				opts = append(opts, tui.WithSentimentTable(tweets))
			case errors.Is(err, os.ErrNotExist):
				slog.Warn("sentiment table not found", "path", cfg.Sentiment.Path)
			default:
				return err
			}

			if err := tui.Run(cmd.Context(), opts...); err != nil {
				if errors.Is(err, common.ErrClassificationFailed) {
					return common.NewUserError("The dashboard stopped because a query could not be classified", err)
				}
				return err
			}
			return nil
		},
	}
}
