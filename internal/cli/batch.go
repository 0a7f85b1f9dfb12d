package cli

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Answerer produces a reply for one query.
type Answerer interface {
	Handle(ctx context.Context, query string) (string, error)
}

// BatchResult pairs a query with the reply it received.
type BatchResult struct {
	Query    string
	Response string
}

// ReadQueries returns the non-blank lines of r, trimmed.
func ReadQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			queries = append(queries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}

// RunBatch answers each query in order, drawing a progress bar on progress
// (nil disables it). The first failure stops the run and is returned along
// with the results gathered so far.
func RunBatch(ctx context.Context, answerer Answerer, queries []string, progress io.Writer) ([]BatchResult, error) {
	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = newProgressBar(len(queries), progress)
	}

	results := make([]BatchResult, 0, len(queries))
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		reply, err := answerer.Handle(ctx, q)
		if err != nil {
			return results, fmt.Errorf("query %d: %w", i+1, err)
		}
		results = append(results, BatchResult{Query: q, Response: reply})

		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	return results, nil
}

// WriteResults writes results as a query,response CSV with a header row.
func WriteResults(w io.Writer, results []BatchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"query", "response"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Query, r.Response}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Answering queries...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
