package about

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

// AboutScreen is a static information page.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return "About"
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	content := theme.Title.Render("CodePrep") + "\n\n" +
		theme.Body.Render("Terminal-native interview preparation.") + "\n\n" +
		theme.Hint.Render("Study plans, mock interviews, and progress analysis,\n"+
			"powered by remote AI agents with local persistence.\n\n"+
			"All session data stays in your local database.")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
