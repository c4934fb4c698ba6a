package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/agent"
	"github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/kb"
	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/progress"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/screens/about"
	"github.com/codeprep-ai/codeprep/internal/screens/dashboard"
	"github.com/codeprep-ai/codeprep/internal/screens/history"
	interviewscreen "github.com/codeprep-ai/codeprep/internal/screens/interview"
	kbscreen "github.com/codeprep-ai/codeprep/internal/screens/kb"
	progressscreen "github.com/codeprep-ai/codeprep/internal/screens/progress"
	"github.com/codeprep-ai/codeprep/internal/store"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

// Deps carries the services home hands to child screens.
type Deps struct {
	KV       store.KV
	Gateway  agent.Gateway
	AgentIDs agent.IDs
	Planner  *planner.Service
	Progress *progress.Service
	KB       *kb.Client
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps         Deps
	menu         components.Menu
	sessionCount int
	avgScore     int
	hasPlan      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	ctx := context.Background()
	if sessions, err := interview.LoadSessions(ctx, deps.KV); err == nil {
		h.sessionCount = len(sessions)
		h.avgScore = progress.AverageScore(sessions)
	}
	if plan, err := deps.Planner.LoadPlan(ctx); err == nil && plan != nil {
		h.hasPlan = true
	}

	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(deps.Planner)}
			}
		}},
		{Label: "MOCK INTERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: interviewscreen.New(deps.KV, deps.Gateway, deps.AgentIDs.MockInterview),
				}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(deps.Progress)}
			}
		}},
		{Label: "SESSION HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.KV)}
			}
		}},
		{Label: "KNOWLEDGE BASE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: kbscreen.New(deps.KB)}
			}
		}, Disabled: deps.KB == nil},
		{Label: "ABOUT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New()}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("CodePrep")
	subtitle := theme.Subtitle.Width(width).Render("AI-powered interview preparation")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats(width))

	menu := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(width int) string {
	planState := "none yet"
	if h.hasPlan {
		planState = "active"
	}

	stats := fmt.Sprintf(
		"%s %d   %s %d   %s %s",
		theme.Hint.Render("Sessions:"), h.sessionCount,
		theme.Hint.Render("Avg score:"), h.avgScore,
		theme.Hint.Render("Study plan:"), planState,
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(stats))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
