// Package markdown renders the small markdown subset the agents emit:
// ##/### headings, **bold**, -/* bullets, and fenced code blocks.
// Anything else passes through as plain text.
package markdown

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/codeprep-ai/codeprep/internal/ui/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	subheadStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	bulletStyle  = lipgloss.NewStyle().Foreground(theme.Accent)
)

// Render styles text line by line. Fence delimiter lines are dropped;
// lines inside a fence render in the code style untouched.
func Render(text string) string {
	var b strings.Builder
	inFence := false

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}

		var out string
		switch {
		case inFence:
			out = theme.Code.Render(line)
		case strings.HasPrefix(line, "### "):
			out = subheadStyle.Render(strings.TrimPrefix(line, "### "))
		case strings.HasPrefix(line, "## "):
			out = headingStyle.Render(strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			out = bulletStyle.Render("• ") + renderInline(line[2:])
		default:
			out = renderInline(line)
		}

		b.WriteString(out)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderInline bolds **spans**. Unbalanced markers are left as-is.
func renderInline(line string) string {
	var b strings.Builder
	for {
		start := strings.Index(line, "**")
		if start < 0 {
			break
		}
		end := strings.Index(line[start+2:], "**")
		if end < 0 {
			break
		}
		b.WriteString(line[:start])
		b.WriteString(boldStyle.Render(line[start+2 : start+2+end]))
		line = line[start+4+end:]
	}
	b.WriteString(line)
	return b.String()
}
