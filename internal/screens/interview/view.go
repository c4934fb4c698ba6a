package interview

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	ivw "github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/markdown"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	if s.quitConfirm {
		return s.renderQuitConfirm(width, height)
	}

	switch s.ctrl.State() {
	case ivw.StateIdle:
		return s.renderSetup(width, height)
	case ivw.StateActive:
		return s.renderChat(width, height)
	case ivw.StateSummarized:
		return s.renderSummary(width, height)
	}
	return ""
}

func (s *InterviewScreen) renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Render("End this interview?") + "\n\n" +
			theme.Hint.Render("Progress will not be saved.  (y/n)"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *InterviewScreen) renderSetup(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Mock Interview"))
	b.WriteString("\n\n")

	if s.waiting {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Connecting to your interviewer...")))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	topicCol := s.renderPickList("Topic", topics, s.topicIdx, s.focus == focusTopic)
	diffCol := s.renderPickList("Difficulty", difficulties, s.diffIdx, s.focus == focusDifficulty)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, topicCol, "      ", diffCol)))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Bad.Render(s.errMsg)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *InterviewScreen) renderPickList(label string, items []string, selected int, focused bool) string {
	var b strings.Builder

	labelStyle := theme.Hint
	if focused {
		labelStyle = theme.Selected
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")

	for i, item := range items {
		if i == selected {
			marker := "▸ "
			if !focused {
				marker = "• "
			}
			b.WriteString(theme.Selected.Render(marker + item))
		} else {
			b.WriteString(theme.Unselected.Render("  " + item))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *InterviewScreen) renderChat(width, height int) string {
	header := s.renderStatusLine(width)
	if strip := s.renderQuestionStrip(); strip != "" {
		header += "\n" + strip
	}
	if eval := s.renderEvaluation(); eval != "" {
		header += "\n" + eval
	}

	inputHeight := 2
	if s.codeMode {
		inputHeight = 11
	}
	transcriptHeight := height - inputHeight - lipgloss.Height(header)
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")

	if s.waiting {
		b.WriteString(theme.Hint.Render("  Interviewer is thinking..."))
	} else if s.codeMode {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Code (%s)", codeLanguages[s.langIdx])))
		b.WriteString("\n")
		b.WriteString(s.codeArea.View())
	} else {
		b.WriteString("  " + s.input.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n  " + theme.Bad.Render(s.errMsg))
	}

	return b.String()
}

func (s *InterviewScreen) renderStatusLine(width int) string {
	mins := s.ctrl.ElapsedSeconds() / 60
	secs := s.ctrl.ElapsedSeconds() % 60

	left := theme.Selected.Render(fmt.Sprintf("  %s · %s", s.ctrl.Topic(), s.ctrl.Difficulty()))
	right := theme.Hint.Render(fmt.Sprintf("%d:%02d", mins, secs))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4))
}

// renderQuestionStrip shows the question on the table: number, the
// difficulty the interviewer actually chose, topic, and hints when
// toggled open.
func (s *InterviewScreen) renderQuestionStrip() string {
	q := s.ctrl.Question()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("  ")
	if q.Number > 0 {
		b.WriteString(theme.Selected.Render(fmt.Sprintf("Q%d", q.Number)))
		b.WriteString("  ")
	}
	if q.Difficulty != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(q.Difficulty))
		b.WriteString("  ")
	}
	if q.Topic != "" {
		b.WriteString(theme.Body.Render(q.Topic))
		b.WriteString("  ")
	}
	if n := len(q.Hints); n > 0 {
		label := fmt.Sprintf("Hints (%d) [Tab]", n)
		if s.showHints {
			label = "Hide hints [Tab]"
		}
		b.WriteString(theme.Hint.Render(label))
	}

	if s.showHints {
		for i, h := range q.Hints {
			b.WriteString("\n    ")
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Hint %d: %s", i+1, h)))
		}
	}
	return b.String()
}

// renderEvaluation shows the scores and feedback for the latest
// evaluated answer.
func (s *InterviewScreen) renderEvaluation() string {
	ev := s.ctrl.Evaluation()
	if ev == nil {
		return ""
	}

	line := "  " + theme.Hint.Render(fmt.Sprintf(
		"Correctness %s/10 · Code quality %s/10 · Communication %s/10",
		formatScore(ev.CorrectnessScore),
		formatScore(ev.CodeQualityScore),
		formatScore(ev.CommunicationScore)))
	if ev.Feedback != "" {
		line += "\n  " + theme.Hint.Render(ev.Feedback)
	}
	return line
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *InterviewScreen) renderTranscript(width, height int) string {
	var lines []string
	for _, msg := range s.ctrl.Transcript() {
		speaker := theme.Selected.Render("Interviewer")
		body := markdown.Render(msg.Content)
		if msg.Role == ivw.RoleCandidate {
			speaker = theme.Good.Render("You")
			body = theme.Body.Render(msg.Content)
		}
		if msg.Timestamp != "" {
			speaker += theme.Hint.Render("  " + msg.Timestamp)
		}
		lines = append(lines, "  "+speaker)
		for _, l := range strings.Split(body, "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}

	// Pin to the bottom unless the user scrolled up.
	offset := len(lines) - height - s.scroll
	if offset < 0 {
		offset = 0
		s.scroll = len(lines) - height
		if s.scroll < 0 {
			s.scroll = 0
		}
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[offset:end], "\n")
}

func (s *InterviewScreen) renderSummary(width, height int) string {
	sum := s.ctrl.Summary()
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Interview Complete"))
	b.WriteString("\n\n")

	score := theme.Good
	if sum.OverallScore < 60 {
		score = theme.Bad
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		score.Render(fmt.Sprintf("Overall score: %.0f / 100", sum.OverallScore))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%d questions · %d minutes",
			sum.QuestionsAsked, (s.ctrl.ElapsedSeconds()+30)/60))))
	b.WriteString("\n\n")

	b.WriteString(renderList(width, "Strengths", sum.Strengths, theme.Good))
	b.WriteString(renderList(width, "Weaknesses", sum.Weaknesses, theme.Bad))
	b.WriteString(renderList(width, "Recommendations", sum.Recommendations, theme.Selected))

	if sum.DetailedFeedback != "" {
		b.WriteString("\n  " + theme.Hint.Render(sum.DetailedFeedback))
	}
	if s.saveErr != "" {
		b.WriteString("\n\n  " + theme.Bad.Render("Could not save session: "+s.saveErr))
	}

	return b.String()
}

func renderList(width int, label string, items []string, style lipgloss.Style) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + style.Render(label) + "\n")
	for _, item := range items {
		b.WriteString("    • " + theme.Body.Render(item) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
