package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	err      error
	response string
	prompts  []string
}

func (m *mockClient) Complete(_ context.Context, _ string, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     model.Label
		wantErr  bool
	}{
		{name: "plain json", response: `{"label": 4}`, want: model.LabelFaultyTransformer},
		{name: "fenced json", response: "```json\n{\"label\": 3}\n```", want: model.LabelTokenTransaction},
		{name: "chatty reply", response: `Sure! {"label": 0} hope that helps`, want: model.LabelBillingStatement},
		{name: "out of range", response: `{"label": 9}`, want: model.LabelUnknown},
		{name: "missing label", response: `{"category": "billing"}`, wantErr: true},
		{name: "not json", response: `billing`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{response: tt.response}
			c := NewClassifierWithClient(client, common.Discard())

			got, err := c.Classify(context.Background(), "my token never arrived")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrClassificationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, client.prompts, 1)
			assert.Contains(t, client.prompts[0], "my token never arrived")
		})
	}
}

func TestClassifier_ClientError(t *testing.T) {
	boom := errors.New("connection refused")
	c := NewClassifierWithClient(&mockClient{err: boom}, common.Discard())

	_, err := c.Classify(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrClassificationFailed)
	assert.ErrorIs(t, err, boom)
}

func TestBuildPrompt_ListsEveryCategory(t *testing.T) {
	prompt := buildPrompt("query text")
	for _, l := range model.Labels() {
		assert.Contains(t, prompt, l.Description())
	}
	assert.Contains(t, prompt, "4: ")
	assert.Contains(t, prompt, "query text")
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(Config{Provider: "cohere", APIKey: "k"})
	require.Error(t, err)

	_, err = NewClassifier(Config{Provider: "openai"}, nil)
	require.Error(t, err)

	c, err := NewClassifier(Config{Provider: "Anthropic", APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
