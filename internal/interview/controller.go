package interview

import (
	"fmt"
	"strconv"
	"time"
)

// State is the interview lifecycle phase.
type State int

const (
	// StateIdle means no interview is running. Setup input is live.
	StateIdle State = iota
	// StateActive means the interview is underway and the timer runs.
	StateActive
	// StateSummarized means the agent closed the session and a record
	// is available.
	StateSummarized
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateSummarized:
		return "summarized"
	}
	return "unknown"
}

// Controller is the pure interview state machine. It owns the
// transcript, the current question and evaluation, the elapsed timer,
// and the final summary. All I/O (agent calls, persistence, rendering)
// lives with the caller.
type Controller struct {
	state      State
	topic      string
	difficulty string
	sessionID  string

	// pending is true while the opening agent call is in flight. The
	// timer starts accruing the moment the candidate hits start, not
	// when the agent answers.
	pending bool

	elapsedSecs int
	transcript  []TranscriptMessage
	question    *Question
	evaluation  *Evaluation
	summary     *Summary

	// now stamps transcript messages; tests may override it.
	now func() time.Time
}

// NewController returns a controller in StateIdle.
func NewController() *Controller {
	return &Controller{now: time.Now}
}

func (c *Controller) stamp() string {
	if c.now == nil {
		return time.Now().Format("15:04")
	}
	return c.now().Format("15:04")
}

func (c *Controller) State() State              { return c.state }
func (c *Controller) Pending() bool             { return c.pending }
func (c *Controller) Topic() string             { return c.topic }
func (c *Controller) Difficulty() string        { return c.difficulty }
func (c *Controller) SessionID() string         { return c.sessionID }
func (c *Controller) ElapsedSeconds() int       { return c.elapsedSecs }
func (c *Controller) Question() *Question       { return c.question }
func (c *Controller) Evaluation() *Evaluation   { return c.evaluation }
func (c *Controller) Summary() *Summary         { return c.summary }

// Transcript returns the exchanged messages in order.
func (c *Controller) Transcript() []TranscriptMessage {
	return c.transcript
}

// Begin records the selected topic and difficulty, starts the timer,
// and returns the opening prompt to send to the agent. The controller
// stays Idle until ApplyStart confirms the agent answered.
func (c *Controller) Begin(topic, difficulty string) string {
	c.topic = topic
	c.difficulty = difficulty
	c.pending = true
	c.elapsedSecs = 0
	return fmt.Sprintf("Start a mock coding interview. Topic: %s, Difficulty: %s", topic, difficulty)
}

// ApplyStart transitions to Active with the agent's opening turn.
// Time accrued while the opening call was in flight is kept.
func (c *Controller) ApplyStart(sessionID string, turn Turn) {
	if c.state != StateIdle {
		return
	}
	c.state = StateActive
	c.pending = false
	c.sessionID = sessionID
	c.transcript = nil
	c.evaluation = nil
	c.summary = nil
	c.applyAgentTurn(turn, true)
}

// ComposeUser builds the candidate's message, appending code as a
// fenced block tagged with its language when present.
func ComposeUser(message, code, language string) string {
	if code == "" {
		return message
	}
	return fmt.Sprintf("%s\n\n```%s\n%s\n```", message, language, code)
}

// RecordUser appends the candidate's message to the transcript.
// Ignored outside Active; a reply that lands after the session ended
// must not mutate a finished transcript.
func (c *Controller) RecordUser(content string) {
	if c.state != StateActive {
		return
	}
	c.transcript = append(c.transcript, TranscriptMessage{Role: RoleCandidate, Content: content, Timestamp: c.stamp()})
}

// ApplyTurn folds an agent turn into the session. Ignored outside
// Active. A complete turn with a summary moves to Summarized.
func (c *Controller) ApplyTurn(turn Turn) {
	if c.state != StateActive {
		return
	}
	c.applyAgentTurn(turn, false)
}

// applyAgentTurn folds one agent turn into the session. A turn with no
// message still speaks: the opening turn falls back to the problem
// statement, later turns fall back to the evaluation feedback.
func (c *Controller) applyAgentTurn(turn Turn, opening bool) {
	if turn.CurrentQuestion != nil {
		c.question = turn.CurrentQuestion
	}
	if turn.Evaluation != nil {
		c.evaluation = turn.Evaluation
	}

	content := turn.Message
	if opening {
		if content == "" && turn.CurrentQuestion != nil {
			content = turn.CurrentQuestion.ProblemStatement
		}
		if content == "" {
			content = "Interview started."
		}
	} else if content == "" && turn.Evaluation != nil {
		content = turn.Evaluation.Feedback
	}
	if content != "" {
		c.transcript = append(c.transcript, TranscriptMessage{Role: RoleInterviewer, Content: content, Timestamp: c.stamp()})
	}

	if turn.IsComplete && turn.SessionSummary != nil {
		c.summary = turn.SessionSummary
		c.state = StateSummarized
	}
}

// Tick advances the timer by one second. Time accrues while the
// session is active or the opening call is still pending.
func (c *Controller) Tick() {
	if c.state == StateActive || c.pending {
		c.elapsedSecs++
	}
}

// Record synthesizes the persistable session record. Valid only in
// StateSummarized; callers persist it and then Reset.
func (c *Controller) Record(now time.Time) *SessionRecord {
	if c.state != StateSummarized || c.summary == nil {
		return nil
	}

	difficulty := c.difficulty
	if n := len(c.summary.DifficultyProgression); n > 0 {
		difficulty = c.summary.DifficultyProgression[n-1]
	}

	transcript := make([]TranscriptMessage, len(c.transcript))
	copy(transcript, c.transcript)

	return &SessionRecord{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Date:            now.UTC().Format(time.DateOnly),
		Topic:           c.topic,
		Score:           c.summary.OverallScore,
		Difficulty:      difficulty,
		DurationMinutes: roundToMinutes(c.elapsedSecs),
		Transcript:      transcript,
		Summary:         c.summary,
	}
}

// End abandons the session without producing a record, whatever the
// current state.
func (c *Controller) End() {
	c.Reset()
}

// Reset returns the controller to Idle and clears all session state.
func (c *Controller) Reset() {
	*c = Controller{now: c.now}
}

// roundToMinutes rounds seconds to the nearest whole minute.
// 125s and 149s round to 2, 150s rounds to 3.
func roundToMinutes(secs int) int {
	return (secs + 30) / 60
}
