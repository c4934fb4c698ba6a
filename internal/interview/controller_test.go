package interview

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/codeprep-ai/codeprep/internal/store"
)

func TestBeginPrompt(t *testing.T) {
	c := NewController()
	prompt := c.Begin("Dynamic Programming", "hard")
	want := "Start a mock coding interview. Topic: Dynamic Programming, Difficulty: hard"
	if prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
	if c.State() != StateIdle {
		t.Errorf("state after Begin = %v, want Idle", c.State())
	}
}

func TestApplyStartActivates(t *testing.T) {
	c := NewController()
	c.Begin("Graphs", "medium")
	c.ApplyStart("sess-1", Turn{
		Message:         "Welcome. Question 1:",
		CurrentQuestion: &Question{Number: 1, Difficulty: "medium", Topic: "Graphs"},
	})

	if c.State() != StateActive {
		t.Fatalf("state = %v, want Active", c.State())
	}
	if c.SessionID() != "sess-1" {
		t.Errorf("SessionID = %q", c.SessionID())
	}
	if c.Question() == nil || c.Question().Number != 1 {
		t.Errorf("question = %+v", c.Question())
	}
	if len(c.Transcript()) != 1 || c.Transcript()[0].Role != RoleInterviewer {
		t.Errorf("transcript = %+v", c.Transcript())
	}
}

func TestComposeUser(t *testing.T) {
	got := ComposeUser("Here is my solution", "def solve():\n    pass", "python")
	want := "Here is my solution\n\n```python\ndef solve():\n    pass\n```"
	if got != want {
		t.Errorf("ComposeUser = %q, want %q", got, want)
	}

	if got := ComposeUser("Just a question", "", "python"); got != "Just a question" {
		t.Errorf("ComposeUser without code = %q", got)
	}
}

func TestTickOnlyWhileActive(t *testing.T) {
	c := NewController()
	c.Tick()
	if c.ElapsedSeconds() != 0 {
		t.Error("idle controller accrued time")
	}

	c.Begin("Arrays", "easy")
	c.ApplyStart("s", Turn{Message: "Q1"})
	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.ElapsedSeconds() != 5 {
		t.Errorf("elapsed = %d, want 5", c.ElapsedSeconds())
	}

	c.ApplyTurn(Turn{Message: "Done", IsComplete: true, SessionSummary: &Summary{OverallScore: 80}})
	c.Tick()
	if c.ElapsedSeconds() != 5 {
		t.Error("summarized controller accrued time")
	}
}

func TestTimerRunsWhileOpeningCallPending(t *testing.T) {
	c := NewController()
	c.Begin("Arrays", "easy")
	c.Tick()
	c.Tick()
	if c.ElapsedSeconds() != 2 {
		t.Errorf("elapsed during opening call = %d, want 2", c.ElapsedSeconds())
	}

	c.ApplyStart("s", Turn{Message: "Q1"})
	if c.ElapsedSeconds() != 2 {
		t.Errorf("opening reply reset the timer to %d", c.ElapsedSeconds())
	}
	c.Tick()
	if c.ElapsedSeconds() != 3 {
		t.Errorf("elapsed = %d, want 3", c.ElapsedSeconds())
	}
}

func TestTurnFallsBackToEvaluationFeedback(t *testing.T) {
	c := NewController()
	c.Begin("Arrays", "easy")
	c.ApplyStart("s", Turn{Message: "Q1"})

	c.ApplyTurn(Turn{Evaluation: &Evaluation{Feedback: "Good use of hashing."}})
	tr := c.Transcript()
	if len(tr) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(tr))
	}
	if tr[1].Role != RoleInterviewer || tr[1].Content != "Good use of hashing." {
		t.Errorf("last message = %+v, want feedback as interviewer", tr[1])
	}

	// A turn with neither message nor feedback stays silent.
	c.ApplyTurn(Turn{CurrentQuestion: &Question{Number: 2}})
	if len(c.Transcript()) != 2 {
		t.Errorf("silent turn grew the transcript to %d", len(c.Transcript()))
	}
	if c.Question() == nil || c.Question().Number != 2 {
		t.Errorf("question = %+v, want number 2", c.Question())
	}
}

func TestOpeningFallbacks(t *testing.T) {
	c := NewController()
	c.Begin("Linked Lists", "easy")
	c.ApplyStart("s", Turn{CurrentQuestion: &Question{Number: 1, ProblemStatement: "Reverse a linked list."}})
	if tr := c.Transcript(); len(tr) != 1 || tr[0].Content != "Reverse a linked list." {
		t.Errorf("transcript = %+v, want problem statement", tr)
	}

	c.Reset()
	c.Begin("Linked Lists", "easy")
	c.ApplyStart("s2", Turn{})
	if tr := c.Transcript(); len(tr) != 1 || tr[0].Content != "Interview started." {
		t.Errorf("transcript = %+v, want placeholder opening", tr)
	}
}

func TestApplyTurnIgnoredOutsideActive(t *testing.T) {
	c := NewController()
	c.ApplyTurn(Turn{Message: "stray reply"})
	if len(c.Transcript()) != 0 {
		t.Error("idle controller recorded a turn")
	}
	c.RecordUser("stray input")
	if len(c.Transcript()) != 0 {
		t.Error("idle controller recorded user input")
	}
}

func TestRecordSynthesis(t *testing.T) {
	c := NewController()
	c.Begin("Trees", "auto")
	c.ApplyStart("s", Turn{Message: "Q1", CurrentQuestion: &Question{Difficulty: "medium"}})

	for i := 0; i < 149; i++ {
		c.Tick()
	}

	c.RecordUser("my answer")
	c.ApplyTurn(Turn{
		Message:    "That wraps it up.",
		IsComplete: true,
		SessionSummary: &Summary{
			OverallScore:          72,
			QuestionsAsked:        4,
			DifficultyProgression: []string{"medium", "medium", "hard"},
		},
	})

	if c.State() != StateSummarized {
		t.Fatalf("state = %v, want Summarized", c.State())
	}

	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	rec := c.Record(now)
	if rec == nil {
		t.Fatal("Record returned nil")
	}
	if rec.ID != "1787929445000" {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.Date != "2026-08-28" {
		t.Errorf("Date = %q", rec.Date)
	}
	if rec.Topic != "Trees" {
		t.Errorf("Topic = %q", rec.Topic)
	}
	if rec.Score != 72 {
		t.Errorf("Score = %v", rec.Score)
	}
	if rec.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want last of progression", rec.Difficulty)
	}
	if rec.DurationMinutes != 2 {
		t.Errorf("DurationMinutes = %d, want 2 for 149s", rec.DurationMinutes)
	}
	if len(rec.Transcript) != 3 {
		t.Errorf("transcript has %d messages", len(rec.Transcript))
	}
}

func TestRecordDifficultyFallsBackToSelected(t *testing.T) {
	c := NewController()
	c.Begin("Heaps", "easy")
	c.ApplyStart("s", Turn{Message: "Q1"})
	c.ApplyTurn(Turn{IsComplete: true, SessionSummary: &Summary{}})

	rec := c.Record(time.Now())
	if rec.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want selected", rec.Difficulty)
	}
	if rec.Score != 0 {
		t.Errorf("Score = %v, want 0 when summary has none", rec.Score)
	}
}

func TestRoundToMinutes(t *testing.T) {
	cases := []struct {
		secs, want int
	}{
		{0, 0},
		{29, 0},
		{30, 1},
		{125, 2},
		{149, 2},
		{150, 3},
	}
	for _, tc := range cases {
		if got := roundToMinutes(tc.secs); got != tc.want {
			t.Errorf("roundToMinutes(%d) = %d, want %d", tc.secs, got, tc.want)
		}
	}
}

func TestEndDiscardsWithoutRecord(t *testing.T) {
	c := NewController()
	c.Begin("Arrays", "easy")
	c.ApplyStart("s", Turn{Message: "Q1"})
	c.RecordUser("partial answer")
	c.End()

	if c.State() != StateIdle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if len(c.Transcript()) != 0 {
		t.Error("transcript survived End")
	}
	if c.Record(time.Now()) != nil {
		t.Error("Record returned a partial session")
	}
}

func TestSessionsPrepend(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	first := SessionRecord{ID: "1", Topic: "Arrays", Score: 60}
	second := SessionRecord{ID: "2", Topic: "Graphs", Score: 85}

	if err := AppendSession(ctx, kv, first); err != nil {
		t.Fatal(err)
	}
	if err := AppendSession(ctx, kv, second); err != nil {
		t.Fatal(err)
	}

	sessions, err := LoadSessions(ctx, kv)
	if err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions", len(sessions))
	}
	if sessions[0].ID != "2" || sessions[1].ID != "1" {
		t.Errorf("order = [%s %s], want most recent first", sessions[0].ID, sessions[1].ID)
	}
}

func TestLoadSessionsCorruptBlob(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()

	if err := kv.Set(ctx, store.KeySessions, json.RawMessage(`[{broken`)); err != nil {
		t.Fatal(err)
	}

	sessions, err := LoadSessions(ctx, kv)
	if err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}
	if sessions != nil {
		t.Errorf("sessions = %+v, want nil", sessions)
	}

	// A fresh record can still be appended over the corrupt value.
	if err := AppendSession(ctx, kv, SessionRecord{ID: "1"}); err != nil {
		t.Fatalf("AppendSession: %v", err)
	}
	sessions, err = LoadSessions(ctx, kv)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("after append: %+v, %v", sessions, err)
	}
}
