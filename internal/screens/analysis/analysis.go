// Package analysis renders the season's figures: tier breakdowns, monthly
// XP, and the hunter's standing.
package analysis

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/stats"
	"github.com/abelldev/huntlog/internal/ui/components"
	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Model is the analysis screen.
type Model struct {
	journal *journal.Journal
}

// New creates the analysis screen.
func New(j *journal.Journal) Model {
	return Model{journal: j}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Title() string {
	return "Analysis"
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return m, nil
}

func (m Model) View(width, height int) string {
	sum := stats.Compute(m.journal.State())

	standing := theme.Title.Render(sum.Rank) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Level %d · %d XP total", sum.Level.Level, sum.TotalXP)) + "\n\n" +
		components.XPBar{CurrentXP: sum.Level.CurrentXP, RequiredXP: sum.Level.RequiredXP, Width: 44}.View()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Missions: %d total · %d completed · %d failed · %d pending\n",
		sum.Total(), sum.Completed, sum.Failed, sum.Pending))
	b.WriteString(fmt.Sprintf("Completion rate: %.0f%%\n", sum.CompletionRate()*100))
	if sum.BlockedDays > 0 {
		b.WriteString(theme.Failed.Render(fmt.Sprintf("Blocked days: %d\n", sum.BlockedDays)))
	}
	if sum.BestDay != "" {
		b.WriteString(fmt.Sprintf("Best day: %s (%d XP)\n", sum.BestDay, sum.BestDayXP))
	}
	b.WriteString("\n")

	for _, tier := range sum.Tiers {
		b.WriteString(fmt.Sprintf("%s %-11s  %s  %s  %s\n",
			tier.Tier.Icon(),
			tier.Tier.DisplayName(),
			theme.Completed.Render(fmt.Sprintf("✔ %2d", tier.Completed)),
			theme.Failed.Render(fmt.Sprintf("✖ %2d", tier.Failed)),
			theme.Pending.Render(fmt.Sprintf("● %2d", tier.Pending)),
		))
	}

	if len(sum.XPByMonth) > 0 {
		b.WriteString("\n")
		b.WriteString(renderMonths(sum.XPByMonth))
	}

	content := theme.Card.Width(56).Render(standing) + "\n\n" +
		theme.Card.Width(56).Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderMonths draws a small horizontal bar per month, scaled to the best one.
func renderMonths(months []stats.MonthXP) string {
	max := 0
	for _, m := range months {
		if m.XP > max {
			max = m.XP
		}
	}
	if max == 0 {
		return ""
	}

	var b strings.Builder
	for _, m := range months {
		barLen := m.XP * 24 / max
		if barLen < 1 {
			barLen = 1
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			theme.Hint.Render(monthLabel(m.Month)),
			theme.ProgressFilled.Render(strings.Repeat(" ", barLen)),
			theme.Body.Render(fmt.Sprintf("%d", m.XP)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func monthLabel(month string) string {
	d, err := engine.ParseDate(month + "-01")
	if err != nil {
		return month
	}
	return d.Time().Format("Jan")
}
