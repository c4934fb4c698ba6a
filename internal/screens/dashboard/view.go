package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	switch d.mode {
	case modeLoading:
		return centerDim(width, height, "Loading...")
	case modeGenerating:
		return centerDim(width, height, "Generating your study plan...")
	case modeForm:
		return d.renderForm(width, height)
	case modePlan:
		return d.renderPlan(width, height)
	}
	return ""
}

func centerDim(width, height int, text string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
}

func (d *DashboardScreen) renderForm(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Your Profile"))
	b.WriteString("\n\n")

	b.WriteString(d.renderField(fieldExperience, "Experience level", d.renderLevelPicker()))
	b.WriteString(d.renderField(fieldRole, "Target role", d.roleInput.View()))
	b.WriteString(d.renderField(fieldHours, "Hours per week (5-40)", d.hoursInput.View()))
	b.WriteString(d.renderField(fieldTopics, "Known topics", d.renderTopicPicker()))
	b.WriteString(d.renderField(fieldTimeline, "Timeline", d.renderTimelinePicker()))

	b.WriteString("\n")
	button := components.NewButton("Generate Plan", d.focus == fieldGenerate, nil)
	b.WriteString("  " + button.View())

	if d.errMsg != "" {
		b.WriteString("\n\n  " + theme.Bad.Render(d.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (d *DashboardScreen) renderField(field int, label, input string) string {
	marker := "  "
	style := theme.Unselected
	if d.focus == field {
		marker = "▸ "
		style = theme.Selected
	}
	return fmt.Sprintf("%s%s\n    %s\n", marker, style.Render(label), input)
}

func (d *DashboardScreen) renderLevelPicker() string {
	parts := make([]string, 0, len(experienceLevels))
	for i, lvl := range experienceLevels {
		if i == d.expIdx {
			parts = append(parts, theme.Selected.Render("["+lvl.label+"]"))
		} else {
			parts = append(parts, theme.Hint.Render(lvl.label))
		}
	}
	return strings.Join(parts, "  ")
}

func (d *DashboardScreen) renderTimelinePicker() string {
	parts := make([]string, 0, len(timelineOptions))
	for i, weeks := range timelineOptions {
		label := fmt.Sprintf("%d weeks", weeks)
		if i == d.weeksIdx {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Hint.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

// renderTopicPicker lays the topic checkboxes out in rows of three.
func (d *DashboardScreen) renderTopicPicker() string {
	var rows []string
	var row []string
	for i, opt := range knownTopicOptions {
		box := "[ ]"
		style := theme.Unselected
		if d.topicChecks[i] {
			box = "[x]"
			style = theme.Good
		}
		if d.focus == fieldTopics && i == d.topicCursor {
			style = theme.Selected
		}
		row = append(row, style.Render(fmt.Sprintf("%-24s", box+" "+opt)))
		if len(row) == 3 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n    ")
}

func (d *DashboardScreen) renderPlan(width, height int) string {
	plan := d.plan
	var lines []string

	title := plan.PlanTitle
	if title == "" {
		title = "Study Plan"
	}
	lines = append(lines, theme.Title.Width(width).Render(title))

	total := plan.TopicCount()
	done := d.completed.CompletedCount(plan)
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	bar := components.NewProgressBar(fmt.Sprintf("Progress %d/%d", done, total), pct, true, width-8)
	lines = append(lines, "  "+bar.View(), "")

	cursorLine := 0
	ref := 0
	for wi, w := range plan.Weeks {
		header := fmt.Sprintf("Week %d", w.WeekNumber)
		if w.Theme != "" {
			header += ": " + w.Theme
		}
		lines = append(lines, "  "+theme.Selected.Render(header))

		for ti, topic := range w.Topics {
			key := planner.CompletedKey(w.WeekNumber, ti)
			box := "[ ]"
			style := theme.Unselected
			if d.completed[key] {
				box = "[x]"
				style = theme.Good
			}

			marker := "  "
			if d.cursor < len(d.refs) && d.refs[d.cursor].weekIdx == wi && d.refs[d.cursor].topicIdx == ti {
				marker = "▸ "
				cursorLine = len(lines)
			}

			label := topic.Name
			if topic.EstimatedHours > 0 {
				label += theme.Hint.Render(fmt.Sprintf("  (%.0fh)", topic.EstimatedHours))
			}
			if topic.Priority == "high" {
				label += " " + theme.Bad.Render("!")
			}
			lines = append(lines, fmt.Sprintf("  %s%s %s", marker, style.Render(box), label))
			ref++
		}

		for _, m := range w.Milestones {
			lines = append(lines, "      "+theme.Hint.Render("◆ "+m))
		}
		lines = append(lines, "")
	}

	if plan.Summary != "" {
		lines = append(lines, "  "+theme.Hint.Render(plan.Summary))
	}
	if d.errMsg != "" {
		lines = append(lines, "  "+theme.Bad.Render(d.errMsg))
	}

	return scrollWindow(lines, cursorLine, height, &d.scroll)
}

// scrollWindow clips lines to the viewport, keeping the cursor visible.
func scrollWindow(lines []string, cursorLine, height int, scroll *int) string {
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
	if *scroll < 0 {
		*scroll = 0
	}

	return strings.Join(lines[*scroll:*scroll+height], "\n")
}
