package model

import (
	"testing"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFromIndex(t *testing.T) {
	tests := []struct {
		index int
		want  Label
	}{
		{index: 0, want: LabelBillingStatement},
		{index: 1, want: LabelComplaint},
		{index: 2, want: LabelPowerRestoration},
		{index: 3, want: LabelTokenTransaction},
		{index: 4, want: LabelFaultyTransformer},
		{index: 5, want: LabelUnknown},
		{index: -1, want: LabelUnknown},
		{index: 42, want: LabelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LabelFromIndex(tt.index))
		})
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	require.Len(t, labels, LabelCount)
	for i, l := range labels {
		assert.True(t, l.Known())
		assert.Equal(t, i, l.Index())
		assert.NotEqual(t, "unrecognised request", l.Description())
	}
	assert.False(t, LabelUnknown.Known())
	assert.Equal(t, -1, LabelUnknown.Index())
	assert.Equal(t, "label(9)", Label(9).String())
}

func TestParseSentiment(t *testing.T) {
	got, err := ParseSentiment(" Positive ")
	require.NoError(t, err)
	assert.Equal(t, SentimentPositive, got)

	got, err = ParseSentiment("neutral")
	require.NoError(t, err)
	assert.Equal(t, SentimentNeutral, got)

	_, err = ParseSentiment("angry")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownSentiment)
}
