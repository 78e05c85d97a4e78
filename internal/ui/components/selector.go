package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Selector is a horizontal single-choice picker (tiers, severity modes).
type Selector struct {
	Label    string
	Options  []string
	Selected int
}

// NewSelector creates a selector with the given options.
func NewSelector(label string, options []string) Selector {
	return Selector{Label: label, Options: options}
}

// Update handles left/right navigation.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	}
	return s, nil
}

// Value returns the selected option text.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the options in a row, the chosen one highlighted.
func (s Selector) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			parts = append(parts, theme.Selected.Render("["+opt+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(" "+opt+" "))
		}
	}

	return labelStyle.Width(14).Render(s.Label) + " " + strings.Join(parts, " ")
}
