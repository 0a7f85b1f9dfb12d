package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/contacts"
	"github.com/Veraticus/power-desk/internal/model"
	"github.com/charmbracelet/lipgloss"
)

const aboutText = `Kenya Power and Lighting Company (KPLC) is committed to providing reliable and high-quality electricity services to all Kenyans.
We understand the importance of electricity in your daily life, and we are here to support you with any issues you may encounter.
Our mission is to deliver safe, affordable, and sustainable electricity to every home and business across Kenya.`

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.tab {
	case TabMain:
		body = m.renderMain()
	case TabAbout:
		body = m.renderAbout()
	case TabContact:
		body = m.renderContact()
	case TabSentiment:
		body = m.renderSentiment()
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		"  ",
		body,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("KPLC Customer Support Desk"),
		m.renderTabs(),
		"",
		content,
		"",
		m.help.View(m.keymap),
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := TabMain; t < tabCount; t++ {
		style := m.theme.InactiveTab
		if t == m.tab {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSidebar shows the county selector and the selected office's number.
func (m Model) renderSidebar() string {
	c := m.counties[m.county]
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render("Select Your County:"),
		m.theme.Normal.Render("‹ "+c.Name+" ›"),
		"",
		m.theme.Muted.Render(c.Contact),
	)
	return m.theme.Sidebar.Render(content)
}

func (m Model) renderMain() string {
	lines := []string{
		m.theme.Bold.Render("Please enter your meter or account number:"),
		m.account.View(),
		"",
	}

	if strings.TrimSpace(m.account.Value()) == "" {
		lines = append(lines, m.theme.StatusWarning.Render("Please enter your meter or account number to proceed."))
	} else {
		lines = append(lines,
			m.theme.Bold.Render("How can we help you today?"),
			m.query.View(),
		)
	}

	switch {
	case m.waiting:
		lines = append(lines, "", m.theme.StatusInfo.Render("Classifying..."))
	case m.reply != "":
		lines = append(lines, "", m.theme.Reply.Render(m.reply))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderAbout() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("About Us"),
		"",
		m.theme.Normal.Render(aboutText),
	)
}

func (m Model) renderContact() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Contact Us"),
		"",
		m.theme.Normal.Render("If you need to get in touch with us, please reach out via the following channels:"),
		"  • Email: "+contacts.Email,
		"  • Phone: "+contacts.Phone,
		"  • Website: "+contacts.Website,
		"  • Social Media: "+contacts.Twitter+", "+contacts.Facebook,
	)
}

func (m Model) renderSentiment() string {
	if m.tweets == nil {
		return m.theme.StatusWarning.Render("No sentiment table loaded.")
	}

	options := make([]string, 0, 3)
	for _, s := range model.Sentiments() {
		label := fmt.Sprintf("%s (%d)", s, m.counts[s])
		if s == m.Sentiment() {
			options = append(options, m.theme.ActiveTab.Render(label))
		} else {
			options = append(options, m.theme.InactiveTab.Render(label))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Sentiment Analysis"),
		m.theme.Subtitle.Render("Select Sentiment Category"),
		lipgloss.JoinHorizontal(lipgloss.Top, options...),
		"",
		m.rows.View(),
		m.theme.Bold.Render(m.summary),
	)
}

func (m Model) renderFooter() string {
	return m.theme.Footer.Width(max(m.width, 20)).Render(contacts.Copyright + " | Powered by Bubble Tea")
}
