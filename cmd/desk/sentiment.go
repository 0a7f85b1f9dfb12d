package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/power-desk/internal/cli"
	"github.com/Veraticus/power-desk/internal/model"
	"github.com/Veraticus/power-desk/internal/sentiment"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func sentimentCmd() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:       "sentiment <positive|negative|neutral>",
		Short:     "List tweets with the given sentiment label",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"positive", "negative", "neutral"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := model.ParseSentiment(args[0])
			if err != nil {
				return err
			}

			tweets, err := loadTweets(cfg)
			if err != nil {
				return err
			}

			rows, count := sentiment.Filter(tweets, s)
			out := cmd.OutOrStdout()
			if !countOnly {
				renderTweets(out, tweets.Header, rows)
			}
			fmt.Fprintln(out, cli.TitleStyle.Render(sentiment.Summary(s, count)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the summary line")

	return cmd
}

func renderTweets(w io.Writer, header []string, rows []model.TweetRecord) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(cli.SubtleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return cli.HeaderStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers(header...)

	for _, rec := range rows {
		t.Row(rec.Values...)
	}

	fmt.Fprintln(w, t.Render())
}
