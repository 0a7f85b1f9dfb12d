package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/common"
)

// Sentiment is the VADER label attached to a tweet.
type Sentiment string

// Sentiment values as they appear in the Vader_sentiment_label column.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments returns every sentiment in selector order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// ParseSentiment parses a sentiment name, ignoring case and surrounding space.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive, nil
	case SentimentNegative:
		return SentimentNegative, nil
	case SentimentNeutral:
		return SentimentNeutral, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownSentiment, s)
	}
}

func (s Sentiment) String() string {
	return string(s)
}

// TweetRecord is a single row of the sentiment table. Values holds every
// column verbatim in header order.
type TweetRecord struct {
	Values    []string
	Sentiment Sentiment
}
