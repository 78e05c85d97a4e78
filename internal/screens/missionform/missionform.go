// Package missionform is the creation form for a new mission on a given day.
package missionform

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/router"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/ui/components"
	"github.com/abelldev/huntlog/internal/ui/layout"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Focus order: the text fields, then the tier selector, then submit.
const (
	focusTitle = iota
	focusDescription
	focusCriteria
	focusReward
	focusPunishment
	focusTime
	focusTier
	focusSubmit
	focusCount
)

// Model is the mission creation form.
type Model struct {
	journal *journal.Journal
	date    engine.Date

	fields  [6]components.Field
	tier    components.Selector
	focus   int
	errText string
}

// New creates the form for a date.
func New(j *journal.Journal, date engine.Date) Model {
	m := Model{journal: j, date: date}
	m.fields[focusTitle] = components.NewField("Title", "what must be done", true)
	m.fields[focusDescription] = components.NewField("Description", "details", false)
	m.fields[focusCriteria] = components.NewField("Criteria", "how completion is judged", false)
	m.fields[focusReward] = components.NewField("Reward", "what you earn", false)
	m.fields[focusPunishment] = components.NewField("Punishment", "what failure costs", false)
	m.fields[focusTime] = components.NewField("Time", "HH:MM (optional)", false)

	labels := make([]string, 0, 4)
	for _, t := range engine.AllTiers() {
		labels = append(labels, t.DisplayName())
	}
	m.tier = components.NewSelector("Tier", labels)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.fields[focusTitle].Focus()
}

func (m Model) Title() string {
	return "New mission · " + m.date.String()
}

// KeyHints implements screen.KeyHintProvider.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			if m.focus == focusSubmit || m.focus == focusTitle {
				return m.submit()
			}
			return m.moveFocus(1)
		}
	}

	var cmd tea.Cmd
	switch {
	case m.focus < len(m.fields):
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	case m.focus == focusTier:
		m.tier, cmd = m.tier.Update(msg)
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (screen.Screen, tea.Cmd) {
	if m.focus < len(m.fields) {
		m.fields[m.focus].Blur()
	}
	m.focus = (m.focus + delta + focusCount) % focusCount
	if m.focus < len(m.fields) {
		return m, m.fields[m.focus].Focus()
	}
	return m, nil
}

func (m Model) submit() (screen.Screen, tea.Cmd) {
	tiers := engine.AllTiers()
	_, err := m.journal.AddMission(context.Background(), engine.AddMissionInput{
		Date:               m.date,
		Title:              strings.TrimSpace(m.fields[focusTitle].Value()),
		Description:        m.fields[focusDescription].Value(),
		Tier:               tiers[m.tier.Selected],
		CompletionCriteria: m.fields[focusCriteria].Value(),
		RewardText:         m.fields[focusReward].Value(),
		PunishmentText:     m.fields[focusPunishment].Value(),
		Time:               m.fields[focusTime].Value(),
	})
	if err != nil {
		m.errText = err.Error()
		return m, nil
	}
	return m, func() tea.Msg { return router.PopScreenMsg{} }
}

func (m Model) View(width, height int) string {
	var b strings.Builder
	for i := range m.fields {
		b.WriteString(m.fields[i].View(m.focus == i))
		b.WriteString("\n")
	}
	b.WriteString(m.tier.View(m.focus == focusTier))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("              " + engine.AllTiers()[m.tier.Selected].Description()))
	b.WriteString("\n\n")

	submit := "  Create mission  "
	if m.focus == focusSubmit {
		b.WriteString(theme.Selected.Reverse(true).Render(submit))
	} else {
		b.WriteString(theme.Unselected.Render(submit))
	}

	if m.errText != "" {
		b.WriteString("\n\n" + theme.ErrorText.Render(m.errText))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(64).Render(b.String()))
}
