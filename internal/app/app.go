package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/kb"
	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/progress"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/screens/home"
	"github.com/codeprep-ai/codeprep/internal/store"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

// Options carries the services the TUI runs on.
type Options struct {
	KV       store.KV
	Gateway  agent.Gateway
	AgentIDs agent.IDs
	Planner  *planner.Service
	Progress *progress.Service
	KB       *kb.Client
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	opts     Options
	width    int
	height   int
	kv       store.KV
	sessions int
	avgScore int

	// failure is set when a screen panics; the fallback view offers a
	// manual reset instead of crashing the program.
	failure string
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		KV:       opts.KV,
		Gateway:  opts.Gateway,
		AgentIDs: opts.AgentIDs,
		Planner:  opts.Planner,
		Progress: opts.Progress,
		KB:       opts.KB,
	})

	m := AppModel{
		router: router.New(homeScreen),
		opts:   opts,
		kv:     opts.KV,
	}

	if sessions, err := interview.LoadSessions(context.Background(), opts.KV); err == nil {
		m.sessions = len(sessions)
		m.avgScore = progress.AverageScore(sessions)
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.failure != "" {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "r", "R":
				fresh := newAppModel(m.opts)
				fresh.width = m.width
				fresh.height = m.height
				return fresh, nil
			}
		}
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.width = size.Width
			m.height = size.Height
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatsMsg:
		m.sessions = msg.Sessions
		m.avgScore = msg.AvgScore
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

	cmd := m.routerUpdate(msg)
	return m, cmd
}

// routerUpdate forwards msg to the active screen, converting a panic
// into the fallback state rather than crashing the terminal.
func (m *AppModel) routerUpdate(msg tea.Msg) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.failure = fmt.Sprintf("%v", r)
		}
	}()
	return m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.failure != "" {
		v.SetContent(fallbackView(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sessions, m.avgScore, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
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
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.routerView(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// routerView renders the active screen; a panicking View falls back to
// the reset page for this frame.
func (m AppModel) routerView(width, height int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackView(width, height)
		}
	}()
	return m.router.View(width, height)
}

func fallbackView(width, height int) string {
	msg := theme.Bad.Render("Something went wrong.") + "\n\n" +
		theme.Hint.Render("Press R to reset  ·  Ctrl+C to quit")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
