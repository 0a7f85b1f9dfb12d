package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/power-desk/internal/catalog"
	"github.com/Veraticus/power-desk/internal/common"
	"github.com/Veraticus/power-desk/internal/engine"
	"github.com/Veraticus/power-desk/internal/model"
	"github.com/Veraticus/power-desk/internal/sentiment"
	"github.com/Veraticus/power-desk/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, classifier engine.Classifier) Model {
	t.Helper()

	table, err := sentiment.Parse(strings.NewReader(testutil.TweetsCSV(t, testutil.DefaultTweets())))
	require.NoError(t, err)

	pipeline := engine.New(classifier,
		engine.WithTickets(engine.FixedTickets(321)),
		engine.WithLogger(common.Discard()),
	)

	cfg := defaultConfig()
	WithResponder(pipeline)(&cfg)
	WithSentimentTable(table)(&cfg)
	return newModel(context.Background(), cfg)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_TabNavigation(t *testing.T) {
	m := testModel(t, engine.NewMockClassifier(model.LabelComplaint))
	assert.Equal(t, TabMain, m.tab)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabAbout, m.tab)
	assert.Contains(t, m.View(), "About Us")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabSentiment, m.tab)
}

func TestModel_SubmitQuery(t *testing.T) {
	mock := engine.NewMockClassifier(model.LabelFaultyTransformer)
	m := testModel(t, mock)

	m = typeText(t, m, "12345678")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(t, m, "transformer blew up")
	assert.Equal(t, "12345678", m.account.Value())
	assert.Equal(t, "transformer blew up", m.query.Value())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)

	m, _ = send(t, m, cmd())
	assert.False(t, m.waiting)
	assert.Contains(t, m.reply, catalog.TransformerIntent)
	assert.Contains(t, m.reply, "waiting number is 321")
	assert.Equal(t, []string{"transformer blew up"}, mock.Queries())
}

func TestModel_SubmitWithoutAccount(t *testing.T) {
	mock := engine.NewMockClassifier(model.LabelComplaint)
	m := testModel(t, mock)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, engine.PromptForAccount, m.reply)
	assert.Empty(t, mock.Queries())
}

func TestModel_ClassificationFailureQuits(t *testing.T) {
	mock := engine.NewMockClassifier(model.LabelComplaint)
	mock.Err = common.ErrClassificationFailed
	m := testModel(t, mock)

	m = typeText(t, m, "42")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = typeText(t, m, "no power")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, cmd = send(t, m, cmd())

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, errors.Is(m.Err(), common.ErrClassificationFailed))
}

func TestModel_SentimentFilter(t *testing.T) {
	m := testModel(t, engine.NewMockClassifier(model.LabelComplaint))
	assert.Equal(t, model.SentimentPositive, m.Sentiment())
	assert.Equal(t, "Number of positive tweets: 2", m.summary)
	assert.Len(t, m.rows.Rows(), 2)

	m.tab = TabSentiment
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, model.SentimentNegative, m.Sentiment())
	assert.Equal(t, "Number of negative tweets: 3", m.summary)
	assert.Equal(t, "No electricity since morning", m.rows.Rows()[0][1])

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Number of neutral tweets: 0", m.summary)
	assert.Empty(t, m.rows.Rows())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, model.SentimentPositive, m.Sentiment())
	assert.Contains(t, m.View(), "Number of positive tweets: 2")
}

func TestModel_CountySelector(t *testing.T) {
	m := testModel(t, engine.NewMockClassifier(model.LabelComplaint))
	assert.Contains(t, m.View(), "Contact Nairobi office: +254 123 456789")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Contains(t, m.View(), "Contact Mombasa office")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Contains(t, m.View(), "Contact Embu office")
}

func TestModel_Quit(t *testing.T) {
	m := testModel(t, engine.NewMockClassifier(model.LabelComplaint))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.NoError(t, m.Err())
}

func TestRun_RequiresResponder(t *testing.T) {
	err := Run(context.Background())
	assert.Error(t, err)
}
