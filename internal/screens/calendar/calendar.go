// Package calendar renders one month of the journal year with day-level
// navigation. Blocked days are visibly struck out.
package calendar

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/router"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/screens/day"
	"github.com/abelldev/huntlog/internal/ui/layout"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Model is the calendar screen.
type Model struct {
	journal *journal.Journal
	focused engine.Date
}

// New creates the calendar screen focused on today.
func New(j *journal.Journal) Model {
	return Model{journal: j, focused: j.Today()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Title() string {
	return "Calendar"
}

// KeyHints implements screen.KeyHintProvider.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "[ ]", Description: "Month"},
		{Key: "t", Description: "Today"},
		{Key: "Enter", Description: "Open day"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h":
		m.focused = shift(m.focused, 0, -1)
	case "right", "l":
		m.focused = shift(m.focused, 0, 1)
	case "up", "k":
		m.focused = shift(m.focused, 0, -7)
	case "down", "j":
		m.focused = shift(m.focused, 0, 7)
	case "[":
		m.focused = shift(m.focused, -1, 0)
	case "]":
		m.focused = shift(m.focused, 1, 0)
	case "t":
		m.focused = m.journal.Today()
	case "enter":
		j, focused := m.journal, m.focused
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: day.New(j, focused)}
		}
	}
	return m, nil
}

func shift(d engine.Date, months, days int) engine.Date {
	return engine.DateOf(d.Time().AddDate(0, months, days))
}

func (m Model) View(width, height int) string {
	grid := m.renderMonth()
	panel := m.renderDayPanel()

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Render(grid),
		"   ",
		theme.Card.Width(34).Render(panel),
	)
	legend := theme.Hint.Render("● pending   ✔ completed   ✖ failed   ░ blocked")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content + "\n\n" + legend)
}

// renderMonth draws the focused month as a Mon-Sun week grid.
func (m Model) renderMonth() string {
	ft := m.focused.Time()
	first := time.Date(ft.Year(), ft.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(theme.Title.Width(7 * 4).Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	// Monday-first column for the 1st of the month.
	col := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", col))

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := engine.DateOf(time.Date(ft.Year(), ft.Month(), dayNum, 0, 0, 0, 0, time.UTC))
		b.WriteString(m.renderCell(date, dayNum))
		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderCell(date engine.Date, dayNum int) string {
	state := m.journal.State()
	rec := state.Day(date)

	style := theme.Unselected
	switch {
	case rec.Blocked:
		style = theme.BlockedDay
	case hasStatus(rec, engine.StatusPending):
		style = theme.Pending
	case hasStatus(rec, engine.StatusFailed):
		style = theme.Failed
	case hasStatus(rec, engine.StatusCompleted):
		style = theme.Completed
	}
	if date == m.journal.Today() {
		style = style.Underline(true)
	}
	if date == m.focused {
		style = style.Reverse(true)
	}

	return " " + style.Render(fmt.Sprintf("%2d", dayNum)) + " "
}

func hasStatus(rec *engine.DayRecord, status engine.Status) bool {
	for _, mission := range rec.Missions {
		if mission.Status == status {
			return true
		}
	}
	return false
}

// renderDayPanel summarizes the focused day.
func (m Model) renderDayPanel() string {
	rec := m.journal.Day(m.focused)

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.focused.Time().Format("Mon, Jan 2 2006")))
	b.WriteString("\n\n")

	if rec.Blocked {
		b.WriteString(theme.Failed.Render("BLOCKED — no new missions"))
		b.WriteString("\n\n")
	}

	if len(rec.Missions) == 0 {
		b.WriteString(theme.Hint.Render("No missions."))
		return b.String()
	}

	var pending, completed, failed int
	for _, mission := range rec.Missions {
		switch mission.Status {
		case engine.StatusCompleted:
			completed++
		case engine.StatusFailed:
			failed++
		default:
			pending++
		}
	}

	b.WriteString(theme.Pending.Render(fmt.Sprintf("● %d pending", pending)))
	b.WriteString("\n")
	b.WriteString(theme.Completed.Render(fmt.Sprintf("✔ %d completed", completed)))
	b.WriteString("\n")
	b.WriteString(theme.Failed.Render(fmt.Sprintf("✖ %d failed", failed)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d XP earned", rec.XPEarned)))
	return b.String()
}
