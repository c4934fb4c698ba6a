package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/store"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []interview.SessionRecord
	Err      error
}

// HistoryScreen lists past interview sessions, most recent first.
type HistoryScreen struct {
	kv       store.KV
	sessions []interview.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
	scroll   int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(kv store.KV) *HistoryScreen {
	return &HistoryScreen{
		kv:       kv,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := interview.LoadSessions(context.Background(), s.kv)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Session History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render(s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.sessions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No sessions yet. Run a mock interview to get started."))
	}

	var lines []string
	lines = append(lines, theme.Title.Width(width).Render("Session History"), "")

	cursorLine := 0
	for i, sess := range s.sessions {
		marker := "  "
		style := theme.Unselected
		if i == s.selected {
			marker = "▸ "
			style = theme.Selected
			cursorLine = len(lines)
		}

		scoreStyle := theme.Good
		if sess.Score < 60 {
			scoreStyle = theme.Bad
		}

		lines = append(lines, fmt.Sprintf("  %s%s  %s  %s  %s",
			marker,
			style.Render(fmt.Sprintf("%-24s", sess.Topic)),
			theme.Hint.Render(fmt.Sprintf("%-8s", sess.Difficulty)),
			scoreStyle.Render(fmt.Sprintf("%3.0f", sess.Score)),
			theme.Hint.Render(formatDate(sess.Date)),
		))

		if s.expanded[i] {
			lines = append(lines, s.renderDetails(sess, width)...)
		}
	}

	return clipToHeight(lines, cursorLine, height, &s.scroll)
}

func (s *HistoryScreen) renderDetails(sess interview.SessionRecord, width int) []string {
	var lines []string
	lines = append(lines, "      "+theme.Hint.Render(fmt.Sprintf("%d min · %d messages",
		sess.DurationMinutes, len(sess.Transcript))))

	if sum := sess.Summary; sum != nil {
		for _, st := range sum.Strengths {
			lines = append(lines, "      "+theme.Good.Render("+ ")+theme.Body.Render(st))
		}
		for _, wk := range sum.Weaknesses {
			lines = append(lines, "      "+theme.Bad.Render("- ")+theme.Body.Render(wk))
		}
	}
	lines = append(lines, "")
	return lines
}

func formatDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

func clipToHeight(lines []string, cursorLine, height int, scroll *int) string {
	if len(lines) <= height {
		*scroll = 0
		return strings.Join(lines, "\n")
	}
	if cursorLine < *scroll {
		*scroll = cursorLine
	}
	if cursorLine >= *scroll+height {
		*scroll = cursorLine - height + 1
	}
	if *scroll > len(lines)-height {
		*scroll = len(lines) - height
	}
	return strings.Join(lines[*scroll:*scroll+height], "\n")
}
