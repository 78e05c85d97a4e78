package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abelldev/huntlog/internal/engine"
	"github.com/abelldev/huntlog/internal/journal"
	"github.com/abelldev/huntlog/internal/router"
	"github.com/abelldev/huntlog/internal/screen"
	"github.com/abelldev/huntlog/internal/screens/calendar"
	"github.com/abelldev/huntlog/internal/screens/day"
	"github.com/abelldev/huntlog/internal/screens/home"
	"github.com/abelldev/huntlog/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	journal *journal.Journal
	router  *router.Router
	width   int
	height  int
}

// newModel builds the screen stack: home, plus the user's preferred landing
// view on top.
func newModel(j *journal.Journal) Model {
	screens := []screen.Screen{home.New(j)}
	switch j.State().DefaultView {
	case engine.ViewDay:
		screens = append(screens, day.New(j, j.Today()))
	default:
		screens = append(screens, calendar.New(j))
	}
	return Model{
		journal: j,
		router:  router.New(screens...),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.journal.State()
	header := layout.RenderHeader(title, layout.HunterStatus{
		Level:  state.Level().Level,
		Rank:   state.Rank(),
		Streak: state.ConsecutiveFailures,
	}, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over the given journal.
func Run(j *journal.Journal) error {
	p := tea.NewProgram(newModel(j))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
