// Package day shows one calendar day's missions and handles their lifecycle:
// resolve, delete, and entry into the mission form.
package day

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/router"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/screens/missionform"
	"github.com/abelldev/huntlog/internal/ui/layout"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Model is the day screen.
type Model struct {
	journal  *journal.Journal
	date     engine.Date
	selected int
	notice   string
	errText  string
}

// New creates a day screen for the given date.
func New(j *journal.Journal, date engine.Date) Model {
	return Model{journal: j, date: date}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Title() string {
	return m.date.Time().Format("Mon, Jan 2")
}

// KeyHints implements screen.KeyHintProvider.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "c", Description: "Complete"},
		{Key: "f", Description: "Fail"},
		{Key: "d", Description: "Delete"},
		{Key: "n", Description: "New mission"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.RefreshMsg); ok {
		m.clampSelection()
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rec := m.journal.Day(m.date)
	m.notice, m.errText = "", ""

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(rec.Missions)-1 {
			m.selected++
		}
	case "c":
		m.resolveSelected(rec, engine.StatusCompleted)
	case "f":
		m.resolveSelected(rec, engine.StatusFailed)
	case "d":
		m.deleteSelected(rec)
	case "n":
		if rec.Blocked {
			m.errText = "This day is blocked; no new missions can be added."
			return m, nil
		}
		j, date := m.journal, m.date
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: missionform.New(j, date)}
		}
	}
	return m, nil
}

func (m *Model) resolveSelected(rec *engine.DayRecord, outcome engine.Status) {
	mission := m.selectedMission(rec)
	if mission == nil {
		return
	}
	if mission.Status != engine.StatusPending {
		m.notice = "Mission already resolved."
		return
	}

	res, err := m.journal.ResolveMission(context.Background(), m.date, mission.ID, outcome)
	if err != nil {
		m.errText = err.Error()
		return
	}

	switch {
	case outcome == engine.StatusCompleted && res.PenaltyApplied:
		m.notice = fmt.Sprintf("+%d XP (reduced by the failure streak)", res.XPDelta)
	case outcome == engine.StatusCompleted:
		m.notice = fmt.Sprintf("+%d XP", res.XPDelta)
	case res.DaysBlocked > 0:
		m.notice = fmt.Sprintf("Failure %d in a row — %d days blocked until year's end.", res.Streak, res.DaysBlocked)
	default:
		m.notice = fmt.Sprintf("Failure recorded (streak: %d).", res.Streak)
	}
}

func (m *Model) deleteSelected(rec *engine.DayRecord) {
	mission := m.selectedMission(rec)
	if mission == nil {
		return
	}
	if mission.Status != engine.StatusPending {
		m.errText = "Resolved missions are history and cannot be deleted."
		return
	}

	if err := m.journal.DeleteMission(context.Background(), m.date, mission.ID); err != nil {
		m.errText = err.Error()
		return
	}
	m.notice = "Mission removed."
	m.clampSelection()
}

func (m *Model) selectedMission(rec *engine.DayRecord) *engine.Mission {
	if m.selected < 0 || m.selected >= len(rec.Missions) {
		return nil
	}
	return rec.Missions[m.selected]
}

func (m *Model) clampSelection() {
	n := len(m.journal.Day(m.date).Missions)
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) View(width, height int) string {
	rec := m.journal.Day(m.date)

	var b strings.Builder
	if rec.Blocked {
		b.WriteString(theme.Failed.Render("⛔ This day is blocked."))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d XP earned on this day", rec.XPEarned)))
	b.WriteString("\n\n")

	if len(rec.Missions) == 0 {
		b.WriteString(theme.Hint.Render("No missions yet. Press n to add one."))
	}

	for i, mission := range rec.Missions {
		b.WriteString(m.renderMission(mission, i == m.selected))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + theme.Completed.Render(m.notice))
	}
	if m.errText != "" {
		b.WriteString("\n" + theme.ErrorText.Render(m.errText))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(64).Render(b.String()))
}

func (m Model) renderMission(mission *engine.Mission, selected bool) string {
	var marker string
	switch mission.Status {
	case engine.StatusCompleted:
		marker = theme.Completed.Render("✔")
	case engine.StatusFailed:
		marker = theme.Failed.Render("✖")
	default:
		marker = theme.Pending.Render("●")
	}

	line := fmt.Sprintf("%s %s %s", marker, mission.Tier.Icon(), mission.Title)
	meta := fmt.Sprintf("%s · %d XP", mission.Tier.DisplayName(), mission.Tier.BaseXP())
	if mission.Time != "" {
		meta = mission.Time + " · " + meta
	}

	prefix := "  "
	style := theme.Unselected
	if selected {
		prefix = "▸ "
		style = theme.Selected
	}

	return style.Render(prefix+line) + "\n    " + theme.Hint.Render(meta)
}
