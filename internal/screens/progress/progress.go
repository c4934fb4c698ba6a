package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/progress"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

type analysisMsg struct {
	Analysis *progress.Analysis
	Cached   bool
	Err      error
}

// ProgressScreen shows the AI progress analysis.
type ProgressScreen struct {
	svc       *progress.Service
	analysis  *progress.Analysis
	cached    bool
	analyzing bool
	errMsg    string
	scroll    int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(svc *progress.Service) *ProgressScreen {
	return &ProgressScreen{svc: svc}
}

// Init loads the cached analysis; a fresh one is only requested
// explicitly since it costs an agent call.
func (p *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		analysis, err := p.svc.LoadAnalysis(context.Background())
		return analysisMsg{Analysis: analysis, Cached: true, Err: err}
	}
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Re-analyze"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisMsg:
		p.analyzing = false
		if msg.Err != nil {
			if errors.Is(msg.Err, progress.ErrNoSessions) {
				p.errMsg = "Complete a mock interview first, then come back for analysis."
			} else {
				p.errMsg = msg.Err.Error()
			}
			return p, nil
		}
		p.errMsg = ""
		p.analysis = msg.Analysis
		p.cached = msg.Cached
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			if p.analyzing {
				return p, nil
			}
			p.analyzing = true
			p.errMsg = ""
			return p, func() tea.Msg {
				analysis, err := p.svc.Analyze(context.Background())
				return analysisMsg{Analysis: analysis, Err: err}
			}
		case "up", "k":
			if p.scroll > 0 {
				p.scroll--
			}
		case "down", "j":
			p.scroll++
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.analyzing {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Analyzing your sessions..."))
	}
	if p.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(p.errMsg))
	}
	if p.analysis == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No analysis yet. Press R to analyze your sessions."))
	}

	lines := p.renderAnalysis(width)
	if p.scroll > len(lines)-height {
		p.scroll = len(lines) - height
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
	end := p.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[p.scroll:end], "\n")
}

func (p *ProgressScreen) renderAnalysis(width int) []string {
	a := p.analysis
	var lines []string

	lines = append(lines, theme.Title.Width(width).Render("Progress Analysis"))
	if p.cached {
		lines = append(lines, theme.Subtitle.Width(width).Render("cached · press R to refresh"))
	}
	lines = append(lines, "")

	if a.AnalysisSummary != "" {
		for _, l := range wrap(a.AnalysisSummary, width-6) {
			lines = append(lines, "  "+theme.Body.Render(l))
		}
		lines = append(lines, "")
	}

	if len(a.TopicAssessment) > 0 {
		lines = append(lines, "  "+theme.Selected.Render("Topics"))
		for _, t := range a.TopicAssessment {
			bar := components.NewProgressBar("", t.StrengthScore/100, false, 24)
			trend := ""
			switch t.Trend {
			case "improving":
				trend = theme.Good.Render(" ↑")
			case "declining":
				trend = theme.Bad.Render(" ↓")
			}
			lines = append(lines, fmt.Sprintf("    %-24s %s %3.0f%s",
				t.Topic, bar.View(), t.StrengthScore, trend))
		}
		lines = append(lines, "")
	}

	if len(a.WeakAreas) > 0 {
		lines = append(lines, "  "+theme.Bad.Render("Weak areas"))
		for _, w := range a.WeakAreas {
			label := w.Topic
			if w.Severity != "" {
				label += theme.Hint.Render(" (" + w.Severity + ")")
			}
			lines = append(lines, "    • "+theme.Body.Render(label))
			for _, gap := range w.SpecificGaps {
				lines = append(lines, "        - "+theme.Hint.Render(gap))
			}
		}
		lines = append(lines, "")
	}

	if len(a.PracticeProblems) > 0 {
		lines = append(lines, "  "+theme.Selected.Render("Practice next"))
		for _, pp := range a.PracticeProblems {
			lines = append(lines, fmt.Sprintf("    • %s %s",
				theme.Body.Render(pp.Title),
				theme.Hint.Render("["+pp.Difficulty+" · "+pp.Topic+"]")))
		}
		lines = append(lines, "")
	}

	if len(a.ResourceRecommendations) > 0 {
		lines = append(lines, "  "+theme.Selected.Render("Resources"))
		for _, r := range a.ResourceRecommendations {
			lines = append(lines, "    • "+theme.Body.Render(r.Title))
			if r.URL != "" {
				lines = append(lines, "      "+theme.Hint.Render(r.URL))
			}
		}
	}

	return lines
}

// wrap breaks text at word boundaries to fit the given width.
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
		} else if len(cur)+1+len(w) <= width {
			cur += " " + w
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
