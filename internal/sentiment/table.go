// Package sentiment loads the pre-labelled tweet table and answers filter
// queries over it.
package sentiment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/model"
)

// LabelColumn is the column holding each tweet's sentiment.
const LabelColumn = "Vader_sentiment_label"

// Table is the in-memory tweet table. It is never mutated after loading.
type Table struct {
	Header   []string
	Rows     []model.TweetRecord
	labelCol int
}

// Load reads a CSV file with a header row.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sentiment table: %w", err)
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

// Parse reads CSV data with a header row. Every column is kept verbatim.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s (empty file)", common.ErrMissingColumn, LabelColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	labelCol := -1
	for i, name := range header {
		if strings.TrimSpace(name) == LabelColumn {
			labelCol = i
			break
		}
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, LabelColumn)
	}

	table := &Table{Header: header, labelCol: labelCol}
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, model.TweetRecord{
			Values:    values,
			Sentiment: model.Sentiment(values[labelCol]),
		})
	}

	return table, nil
}

// NewTable builds a table from already split rows. Each row must have a
// value for every header column.
func NewTable(header []string, rows [][]string) (*Table, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return Parse(strings.NewReader(b.String()))
}

// Len is the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Filter returns the rows whose label equals s, in table order, and their
// count.
func Filter(t *Table, s model.Sentiment) ([]model.TweetRecord, int) {
	if t == nil {
		return nil, 0
	}
	matches := make([]model.TweetRecord, 0)
	for _, row := range t.Rows {
		if row.Sentiment == s {
			matches = append(matches, row)
		}
	}
	return matches, len(matches)
}

// Counts tallies rows per known sentiment.
func Counts(t *Table) map[model.Sentiment]int {
	counts := make(map[model.Sentiment]int, 3)
	for _, s := range model.Sentiments() {
		counts[s] = 0
	}
	if t == nil {
		return counts
	}
	for _, row := range t.Rows {
		if _, ok := counts[row.Sentiment]; ok {
			counts[row.Sentiment]++
		}
	}
	return counts
}

// Summary is the line shown under a filtered view.
func Summary(s model.Sentiment, count int) string {
	return fmt.Sprintf("Number of %s tweets: %d", s, count)
}
