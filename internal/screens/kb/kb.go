package kb

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/kb"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

type docsLoadedMsg struct {
	Docs []kb.Document
	Err  error
}

type uploadedMsg struct {
	Doc *kb.Document
	Err error
}

type deletedMsg struct {
	FileName string
	Err      error
}

// KBScreen manages knowledge base documents.
type KBScreen struct {
	client    *kb.Client
	docs      []kb.Document
	selected  int
	loaded    bool
	busy      bool
	uploading bool
	pathInput components.TextInput
	errMsg    string
	notice    string
}

var _ screen.Screen = (*KBScreen)(nil)
var _ screen.KeyHintProvider = (*KBScreen)(nil)

// New creates a new KBScreen.
func New(client *kb.Client) *KBScreen {
	return &KBScreen{
		client:    client,
		pathInput: components.NewTextInput("/path/to/notes.md", false, 0),
	}
}

func (s *KBScreen) Init() tea.Cmd {
	return s.load()
}

func (s *KBScreen) load() tea.Cmd {
	return func() tea.Msg {
		docs, err := s.client.List(context.Background())
		return docsLoadedMsg{Docs: docs, Err: err}
	}
}

func (s *KBScreen) Title() string {
	return "Knowledge Base"
}

func (s *KBScreen) KeyHints() []layout.KeyHint {
	if s.uploading {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Upload"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "U", Description: "Upload"},
		{Key: "D", Description: "Delete"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *KBScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case docsLoadedMsg:
		s.loaded = true
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.docs = msg.Docs
			if s.selected >= len(s.docs) {
				s.selected = 0
			}
		}
		return s, nil

	case uploadedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.notice = fmt.Sprintf("Uploaded %s (%s)", msg.Doc.FileName, msg.Doc.Status)
		return s, s.load()

	case deletedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		// The service is authoritative; drop the row locally instead of
		// re-fetching the whole list.
		kept := s.docs[:0]
		for _, d := range s.docs {
			if d.FileName != msg.FileName {
				kept = append(kept, d)
			}
		}
		s.docs = kept
		if s.selected >= len(s.docs) && s.selected > 0 {
			s.selected = len(s.docs) - 1
		}
		s.notice = "Document deleted"
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.uploading {
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *KBScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.uploading {
		switch key {
		case "enter":
			path := strings.TrimSpace(s.pathInput.Value())
			if path == "" {
				return s, nil
			}
			s.uploading = false
			s.busy = true
			s.notice = ""
			return s, func() tea.Msg {
				doc, err := s.client.Upload(context.Background(), path)
				return uploadedMsg{Doc: doc, Err: err}
			}
		case "esc":
			s.uploading = false
			return s, nil
		}
		var cmd tea.Cmd
		s.pathInput, cmd = s.pathInput.Update(msg)
		return s, cmd
	}

	if s.busy {
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.docs)-1 {
			s.selected++
		}
	case "u", "U":
		s.uploading = true
		s.notice = ""
		s.pathInput = components.NewTextInput("/path/to/notes.md", false, 0)
		return s, s.pathInput.Init()
	case "d", "D":
		if s.selected < len(s.docs) {
			name := s.docs[s.selected].FileName
			s.busy = true
			s.notice = ""
			return s, func() tea.Msg {
				err := s.client.Delete(context.Background(), []string{name})
				return deletedMsg{FileName: name, Err: err}
			}
		}
	case "r", "R":
		s.busy = true
		s.notice = ""
		return s, s.load()
	}
	return s, nil
}

func (s *KBScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading documents..."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Knowledge Base"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"Documents ground the interview and study-plan agents"))
	b.WriteString("\n\n")

	if len(s.docs) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No documents yet. Press U to upload one.")))
	}

	for i, doc := range s.docs {
		marker := "  "
		style := theme.Unselected
		if i == s.selected {
			marker = "▸ "
			style = theme.Selected
		}

		status := theme.Hint.Render(doc.Status)
		if doc.Status == "active" {
			status = theme.Good.Render(doc.Status)
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s  %s\n",
			marker,
			style.Render(fmt.Sprintf("%-36s", doc.FileName)),
			theme.Hint.Render(fmt.Sprintf("%-6s", doc.FileType)),
			status,
		))
	}

	if s.uploading {
		b.WriteString("\n  " + theme.Selected.Render("File to upload:") + "\n  " + s.pathInput.View() + "\n")
	}
	if s.busy {
		b.WriteString("\n  " + theme.Hint.Render("Working..."))
	}
	if s.notice != "" {
		b.WriteString("\n  " + theme.Good.Render(s.notice))
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + theme.Bad.Render(s.errMsg))
	}

	return b.String()
}
