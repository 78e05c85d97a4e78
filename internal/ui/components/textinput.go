package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/ui/theme"
)

// Field wraps bubbles/textinput with a label for form use.
type Field struct {
	Label    string
	Model    textinput.Model
	Required bool
}

// NewField creates a labelled text input.
func NewField(label, placeholder string, required bool) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	return Field{
		Label:    label,
		Model:    ti,
		Required: required,
	}
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Update forwards messages to the underlying input.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}

// View renders the label and input on one line.
func (f Field) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	label := f.Label
	if f.Required {
		label += " *"
	}
	return labelStyle.Width(14).Render(label) + " " + f.Model.View()
}
