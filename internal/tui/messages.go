package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// replyMsg carries the pipeline's answer back to the UI goroutine.
type replyMsg struct {
	err   error
	reply string
}

// respond runs the pipeline off the UI goroutine.
func respond(ctx context.Context, r Responder, account, query string) tea.Cmd {
	return func() tea.Msg {
		reply, err := r.Respond(ctx, account, query)
		return replyMsg{reply: reply, err: err}
	}
}
