package interview

import (
	"time"

	"github.com/codeprep-ai/codeprep/internal/agent"
)

// startedMsg carries the agent's reply to the opening prompt.
type startedMsg struct {
	Result agent.Result
}

// turnMsg carries the agent's reply to a candidate answer.
type turnMsg struct {
	Result agent.Result
}

// timerTickMsg is sent every second while the interview is active.
type timerTickMsg time.Time

// savedMsg confirms the finished session was persisted.
type savedMsg struct {
	Sessions int
	AvgScore int
	Err      error
}
