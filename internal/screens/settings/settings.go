// Package settings edits user preferences (severity, default view) and hosts
// the year reset.
package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/ui/components"
	"github.com/abelldev/huntlog/internal/ui/layout"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

const (
	focusSeverity = iota
	focusView
	focusReset
	focusCount
)

// Model is the settings screen.
type Model struct {
	journal *journal.Journal

	severity components.Selector
	view     components.Selector
	focus    int

	confirmReset bool
	notice       string
	errText      string
}

// New creates the settings screen seeded from current preferences.
func New(j *journal.Journal) Model {
	m := Model{journal: j}

	sevLabels := make([]string, 0, 3)
	for _, s := range engine.AllSeverities() {
		sevLabels = append(sevLabels, s.DisplayName())
	}
	m.severity = components.NewSelector("Severity", sevLabels)
	for i, s := range engine.AllSeverities() {
		if s == j.State().Severity {
			m.severity.Selected = i
		}
	}

	viewLabels := make([]string, 0, 2)
	for _, v := range engine.AllViews() {
		viewLabels = append(viewLabels, v.DisplayName())
	}
	m.view = components.NewSelector("Default view", viewLabels)
	for i, v := range engine.AllViews() {
		if v == j.State().DefaultView {
			m.view.Selected = i
		}
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Title() string {
	return "Settings"
}

// KeyHints implements screen.KeyHintProvider.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Apply / Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	if key != "enter" {
		m.confirmReset = false
	}
	m.notice, m.errText = "", ""

	switch key {
	case "up", "k":
		if m.focus > 0 {
			m.focus--
		}
		return m, nil
	case "down", "j":
		if m.focus < focusCount-1 {
			m.focus++
		}
		return m, nil
	case "enter":
		if m.focus == focusReset {
			return m.handleReset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSeverity:
		m.severity, cmd = m.severity.Update(msg)
		mode := engine.AllSeverities()[m.severity.Selected]
		if err := m.journal.SetSeverity(context.Background(), mode); err != nil {
			m.errText = err.Error()
		} else {
			m.notice = mode.Description()
		}
	case focusView:
		m.view, cmd = m.view.Update(msg)
		view := engine.AllViews()[m.view.Selected]
		if err := m.journal.SetDefaultView(context.Background(), view); err != nil {
			m.errText = err.Error()
		}
	}
	return m, cmd
}

func (m Model) handleReset() (screen.Screen, tea.Cmd) {
	if !m.confirmReset {
		m.confirmReset = true
		return m, nil
	}
	m.confirmReset = false
	if err := m.journal.ResetYear(context.Background()); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.notice = "Year reset. XP, missions, and blocks are gone; preferences kept."
	return m, nil
}

func (m Model) View(width, height int) string {
	var b strings.Builder
	b.WriteString(m.severity.View(m.focus == focusSeverity))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("               " + engine.AllSeverities()[m.severity.Selected].Description()))
	b.WriteString("\n\n")
	b.WriteString(m.view.View(m.focus == focusView))
	b.WriteString("\n\n")

	resetLabel := "  Reset year  "
	if m.confirmReset {
		resetLabel = "  Press Enter again to wipe the year  "
	}
	switch {
	case m.focus == focusReset && m.confirmReset:
		b.WriteString(theme.Failed.Reverse(true).Render(resetLabel))
	case m.focus == focusReset:
		b.WriteString(theme.Failed.Render(resetLabel))
	default:
		b.WriteString(theme.Unselected.Render(resetLabel))
	}

	if m.notice != "" {
		b.WriteString("\n\n" + theme.Completed.Render(m.notice))
	}
	if m.errText != "" {
		b.WriteString("\n\n" + theme.ErrorText.Render(m.errText))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(72).Render(b.String()))
}
