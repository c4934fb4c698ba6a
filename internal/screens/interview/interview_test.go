package interview

import (
	"slices"
	"strings"
	"testing"

	ivw "github.com/codeprep-ai/codeprep/internal/interview"
)

func TestSetupOptionSets(t *testing.T) {
	wantTopics := []string{
		"Arrays & Strings",
		"Linked Lists",
		"Trees & Graphs",
		"Dynamic Programming",
		"Sorting & Searching",
		"Hash Tables",
		"Stacks & Queues",
		"System Design",
	}
	if !slices.Equal(topics, wantTopics) {
		t.Errorf("topics = %v, want %v", topics, wantTopics)
	}

	if difficulties[0] != "auto" {
		t.Errorf("default difficulty = %q, want auto", difficulties[0])
	}
	if !slices.Equal(difficulties, []string{"auto", "easy", "medium", "hard"}) {
		t.Errorf("difficulties = %v", difficulties)
	}

	wantLangs := []string{"python", "javascript", "typescript", "java", "cpp", "go"}
	if !slices.Equal(codeLanguages, wantLangs) {
		t.Errorf("codeLanguages = %v, want %v", codeLanguages, wantLangs)
	}
}

func TestChatShowsQuestionAndEvaluation(t *testing.T) {
	s := New(nil, nil, "")
	s.ctrl.Begin("Arrays & Strings", "auto")
	s.ctrl.ApplyStart("sess", ivw.Turn{
		Message: "Welcome. Here is your first problem.",
		CurrentQuestion: &ivw.Question{
			Number:     1,
			Difficulty: "medium",
			Topic:      "Arrays & Strings",
			Hints:      []string{"Think about a hash map."},
		},
	})
	s.ctrl.RecordUser("my answer")
	s.ctrl.ApplyTurn(ivw.Turn{
		Message: "Let's move on.",
		Evaluation: &ivw.Evaluation{
			CorrectnessScore:   8,
			CodeQualityScore:   7,
			CommunicationScore: 9,
			Feedback:           "Clean solution.",
		},
	})

	out := s.View(100, 30)
	for _, want := range []string{
		"Q1",
		"medium",
		"Hints (1)",
		"Correctness 8/10",
		"Code quality 7/10",
		"Communication 9/10",
		"Clean solution.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("chat view missing %q", want)
		}
	}
	if strings.Contains(out, "Hint 1:") {
		t.Error("hints shown before toggling them open")
	}

	s.showHints = true
	out = s.View(100, 30)
	if !strings.Contains(out, "Hint 1: Think about a hash map.") {
		t.Error("expanded view missing hint text")
	}
}
