package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/power-desk/internal/cli"
	"github.com/Veraticus/power-desk/internal/config"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer a file of queries",
		Long: `Answer one query per line and write a CSV of query,response pairs.

Blank lines are skipped. The run stops at the first classification failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(config.ExpandPath(input))
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			queries, err := cli.ReadQueries(in)
			if err != nil {
				return err
			}

			pipeline, err := newPipeline(cfg)
			if err != nil {
				return err
			}

			results, err := cli.RunBatch(cmd.Context(), pipeline, queries, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(config.ExpandPath(output))
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := cli.WriteResults(out, results); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Answered %d queries", len(results))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "file with one query per line (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "CSV file to write (- for stdout)")

	return cmd
}
