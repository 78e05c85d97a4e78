package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/ui/theme"
)

// XPBar displays level progress as a horizontal bar with an XP fraction.
type XPBar struct {
	Label      string
	CurrentXP  int
	RequiredXP int
	Width      int
}

// View renders the bar.
func (b XPBar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	fraction := fmt.Sprintf("  %d / %d XP", b.CurrentXP, b.RequiredXP)

	barWidth := b.Width - lipgloss.Width(result) - len(fraction)
	if barWidth < 4 {
		barWidth = 4
	}

	percent := 0.0
	if b.RequiredXP > 0 {
		percent = float64(b.CurrentXP) / float64(b.RequiredXP)
	}
	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fraction)

	return result
}
