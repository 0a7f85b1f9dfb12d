package tui

import (
	"context"

	"github.com/Veraticus/power-desk/internal/contacts"
	"github.com/Veraticus/power-desk/internal/model"
	"github.com/Veraticus/power-desk/internal/sentiment"
	"github.com/Veraticus/power-desk/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab is one page of the dashboard.
type Tab int

const (
	TabMain Tab = iota
	TabAbout
	TabContact
	TabSentiment
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabMain:
		return "Main Dashboard"
	case TabAbout:
		return "About Us"
	case TabContact:
		return "Contact Us"
	case TabSentiment:
		return "Sentiment Analysis"
	default:
		return "Unknown"
	}
}

const (
	focusAccount = iota
	focusQuery
)

// Model holds the dashboard state.
type Model struct {
	ctx       context.Context
	responder Responder
	err       error
	tweets    *sentiment.Table
	counts    map[model.Sentiment]int
	theme     themes.Theme
	keymap    KeyMap
	help      help.Model
	account   textinput.Model
	query     textinput.Model
	rows      table.Model
	reply     string
	summary   string
	counties  []contacts.County
	tab       Tab
	focus     int
	county    int
	mood      int
	width     int
	height    int
	waiting   bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	account := textinput.New()
	account.Placeholder = "Meter/Account Number"
	account.CharLimit = 32
	account.Focus()

	query := textinput.New()
	query.Placeholder = "How can we help you today?"
	query.CharLimit = 280

	m := Model{
		ctx:       ctx,
		responder: cfg.Responder,
		tweets:    cfg.Sentiment,
		counts:    sentiment.Counts(cfg.Sentiment),
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		account:   account,
		query:     query,
		counties:  contacts.Counties(),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.rows = m.newTable()
	m.applySentiment()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err is the failure that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rows.SetWidth(msg.Width - 4)
		m.rows.SetHeight(max(msg.Height-12, 3))
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.reply = msg.reply
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keymap.NextCounty):
		m.county = (m.county + 1) % len(m.counties)
		return m, nil
	case key.Matches(msg, m.keymap.PrevCounty):
		m.county = (m.county + len(m.counties) - 1) % len(m.counties)
		return m, nil
	}

	switch m.tab {
	case TabMain:
		return m.handleMainKey(msg)
	case TabSentiment:
		return m.handleSentimentKey(msg)
	}
	return m, nil
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.NextField), key.Matches(msg, m.keymap.PrevField):
		m.toggleFocus()
		return m, textinput.Blink
	case key.Matches(msg, m.keymap.Submit):
		if m.waiting || m.responder == nil {
			return m, nil
		}
		m.waiting = true
		return m, respond(m.ctx, m.responder, m.account.Value(), m.query.Value())
	}
	return m.updateInputs(msg)
}

func (m Model) handleSentimentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moods := model.Sentiments()
	switch {
	case key.Matches(msg, m.keymap.NextOption):
		m.mood = (m.mood + 1) % len(moods)
		m.applySentiment()
		return m, nil
	case key.Matches(msg, m.keymap.PrevOption):
		m.mood = (m.mood + len(moods) - 1) % len(moods)
		m.applySentiment()
		return m, nil
	}

	var cmd tea.Cmd
	m.rows, cmd = m.rows.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusAccount {
		m.focus = focusQuery
		m.account.Blur()
		m.query.Focus()
		return
	}
	m.focus = focusAccount
	m.query.Blur()
	m.account.Focus()
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.tab != TabMain {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == focusAccount {
		m.account, cmd = m.account.Update(msg)
	} else {
		m.query, cmd = m.query.Update(msg)
	}
	return m, cmd
}

// Sentiment is the sentiment currently selected on the sentiment tab.
func (m Model) Sentiment() model.Sentiment {
	return model.Sentiments()[m.mood]
}

func (m Model) newTable() table.Model {
	var columns []table.Column
	if m.tweets != nil {
		width := 20
		if n := len(m.tweets.Header); n > 0 {
			width = max((m.width-4)/n, 8)
		}
		for _, name := range m.tweets.Header {
			columns = append(columns, table.Column{Title: name, Width: width})
		}
	}
	return table.New(
		table.WithColumns(columns),
		table.WithHeight(max(m.height-12, 3)),
		table.WithWidth(m.width-4),
		table.WithFocused(true),
	)
}

func (m *Model) applySentiment() {
	matches, count := sentiment.Filter(m.tweets, m.Sentiment())
	rows := make([]table.Row, 0, len(matches))
	for _, rec := range matches {
		rows = append(rows, table.Row(rec.Values))
	}
	m.rows.SetRows(rows)
	m.rows.GotoTop()
	m.summary = sentiment.Summary(m.Sentiment(), count)
}
