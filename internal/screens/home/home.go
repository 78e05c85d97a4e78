// Package home is the landing screen: the hunter's status card plus
// navigation into the calendar, analysis, and settings.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/router"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/screens/analysis"
	"github.com/abelldev/huntlog/internal/screens/calendar"
	"github.com/abelldev/huntlog/internal/screens/day"
	"github.com/abelldev/huntlog/internal/screens/settings"
	"github.com/abelldev/huntlog/internal/ui/components"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Model is the home screen.
type Model struct {
	journal *journal.Journal
	menu    components.Menu
}

// New creates the home screen.
func New(j *journal.Journal) Model {
	m := Model{journal: j}
	m.menu = components.NewMenu([]components.MenuItem{
		{Label: "Year calendar", Action: func() tea.Cmd {
			return push(calendar.New(j))
		}},
		{Label: "Today's missions", Action: func() tea.Cmd {
			return push(day.New(j, j.Today()))
		}},
		{Label: "Analysis", Action: func() tea.Cmd {
			return push(analysis.New(j))
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return push(settings.New(j))
		}},
	})
	return m
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Title() string {
	return "Home"
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) View(width, height int) string {
	state := m.journal.State()
	progress := state.Level()

	status := theme.Title.Render(state.Rank()) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Level %d · %d XP total", progress.Level, state.TotalXP)) + "\n\n" +
		components.XPBar{
			CurrentXP:  progress.CurrentXP,
			RequiredXP: progress.RequiredXP,
			Width:      44,
		}.View()

	if state.ConsecutiveFailures > 0 {
		warn := theme.Pending
		if state.ConsecutiveFailures >= 3 {
			warn = theme.Failed
		}
		status += "\n\n" + warn.Render(fmt.Sprintf("Failure streak: %d", state.ConsecutiveFailures))
	}

	card := theme.Card.Width(52).Render(status)

	content := card + "\n\n" + m.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
