package testutil

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/Veraticus/power-desk/internal/model"
)

// Tweet is one labelled row of the tweet table.
type Tweet struct {
	Text      string
	Sentiment model.Sentiment
}

// DefaultTweets returns five tweets: two positive and three negative.
func DefaultTweets() []Tweet {
	return []Tweet{
		{Text: "Power back on, thanks KPLC!", Sentiment: model.SentimentPositive},
		{Text: "No electricity since morning", Sentiment: model.SentimentNegative},
		{Text: "Tokens delayed again, terrible", Sentiment: model.SentimentNegative},
		{Text: "Great response from the Nyeri team", Sentiment: model.SentimentPositive},
		{Text: "Transformer still buzzing", Sentiment: model.SentimentNegative},
	}
}

// TweetsCSV renders tweets as a table with id, Tweet and
// Vader_sentiment_label columns.
func TweetsCSV(t *testing.T, tweets []Tweet) string {
	t.Helper()

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"id", "Tweet", "Vader_sentiment_label"}); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	for i, tw := range tweets {
		if err := w.Write([]string{strconv.Itoa(i + 1), tw.Text, string(tw.Sentiment)}); err != nil {
			t.Fatalf("failed to write tweet %d: %v", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("failed to flush tweets: %v", err)
	}
	return b.String()
}
