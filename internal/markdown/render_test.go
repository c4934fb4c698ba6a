package markdown

import (
	"strings"
	"testing"
)

// Styles carry ANSI escapes, so tests assert on content and structure
// rather than exact bytes.

func TestRenderHeadings(t *testing.T) {
	out := Render("## Week 1\n### Arrays")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Week 1") || strings.Contains(lines[0], "##") {
		t.Errorf("heading line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Arrays") || strings.Contains(lines[1], "###") {
		t.Errorf("subheading line = %q", lines[1])
	}
}

func TestRenderBullets(t *testing.T) {
	out := Render("- first\n* second")
	if !strings.Contains(out, "• ") {
		t.Error("bullets not converted")
	}
	if strings.Contains(out, "- first") || strings.Contains(out, "* second") {
		t.Errorf("raw bullet markers survived: %q", out)
	}
}

func TestRenderBold(t *testing.T) {
	out := Render("a **big** deal")
	if strings.Contains(out, "**") {
		t.Errorf("bold markers survived: %q", out)
	}
	if !strings.Contains(out, "big") {
		t.Errorf("bold content missing: %q", out)
	}
}

func TestRenderUnbalancedBoldLeftAlone(t *testing.T) {
	out := Render("a **dangling marker")
	if !strings.Contains(out, "**dangling") {
		t.Errorf("unbalanced markers should pass through: %q", out)
	}
}

func TestRenderFences(t *testing.T) {
	out := Render("before\n```python\nx = 1\n```\nafter")
	if strings.Contains(out, "```") {
		t.Errorf("fence delimiters survived: %q", out)
	}
	if !strings.Contains(out, "x = 1") {
		t.Errorf("code content missing: %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3 (delimiters dropped)", len(lines))
	}
}

func TestRenderPlainPassThrough(t *testing.T) {
	out := Render("just a sentence")
	if !strings.Contains(out, "just a sentence") {
		t.Errorf("plain text mangled: %q", out)
	}
}
