package interview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/codeprep-ai/codeprep/internal/agent"
	ivw "github.com/codeprep-ai/codeprep/internal/interview"
	"github.com/codeprep-ai/codeprep/internal/progress"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/store"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
)

var topics = []string{
	"Arrays & Strings",
	"Linked Lists",
	"Trees & Graphs",
	"Dynamic Programming",
	"Sorting & Searching",
	"Hash Tables",
	"Stacks & Queues",
	"System Design",
}

// "auto" first: the default lets the interviewer adapt difficulty to
// the candidate's answers.
var difficulties = []string{"auto", "easy", "medium", "hard"}

var codeLanguages = []string{"python", "javascript", "typescript", "java", "cpp", "go"}

// setup focus targets
const (
	focusTopic = iota
	focusDifficulty
)

// InterviewScreen drives one mock interview end to end: setup, the
// live conversation, and the closing summary.
type InterviewScreen struct {
	kv      store.KV
	gateway agent.Gateway
	agentID string
	ctrl    *ivw.Controller

	// setup state
	topicIdx int
	diffIdx  int
	focus    int

	// conversation state
	input       components.TextInput
	codeArea    components.TextArea
	codeMode    bool
	langIdx     int
	showHints   bool
	waiting     bool
	quitConfirm bool
	errMsg      string
	scroll      int

	saved   bool
	saveErr string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates a new InterviewScreen in setup.
func New(kv store.KV, gateway agent.Gateway, agentID string) *InterviewScreen {
	return &InterviewScreen{
		kv:       kv,
		gateway:  gateway,
		agentID:  agentID,
		ctrl:     ivw.NewController(),
		input:    components.NewTextInput("Type your answer...", false, 0),
		codeArea: components.NewTextArea("Paste or write code here...", 70, 8),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return nil
}

func (s *InterviewScreen) Title() string {
	return "Mock Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End interview"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.ctrl.State() {
	case ivw.StateIdle:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch list"},
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case ivw.StateActive:
		if s.codeMode {
			return []layout.KeyHint{
				{Key: "Ctrl+S", Description: "Send"},
				{Key: "Ctrl+E", Description: "Hide code"},
				{Key: "Ctrl+L", Description: "Language"},
				{Key: "Esc", Description: "End"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+E", Description: "Code editor"},
			{Key: "Tab", Description: "Hints"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "End"},
		}
	case ivw.StateSummarized:
		return []layout.KeyHint{
			{Key: "N", Description: "New interview"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return nil
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case turnMsg:
		return s.handleTurn(msg)
	case timerTickMsg:
		return s.handleTick()
	case savedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *InterviewScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if !msg.Result.Success {
		s.ctrl.Reset()
		s.errMsg = msg.Result.Error
		return s, nil
	}

	turn, err := parseTurn(msg.Result)
	if err != nil {
		s.ctrl.Reset()
		s.errMsg = "An error occurred"
		return s, nil
	}

	s.errMsg = ""
	s.ctrl.ApplyStart(msg.Result.SessionID, turn)
	return s, s.input.Init()
}

func (s *InterviewScreen) handleTurn(msg turnMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if !msg.Result.Success {
		s.errMsg = msg.Result.Error
		return s, nil
	}

	turn, err := parseTurn(msg.Result)
	if err != nil {
		s.errMsg = "An error occurred"
		return s, nil
	}

	s.errMsg = ""
	s.ctrl.ApplyTurn(turn)

	if s.ctrl.State() == ivw.StateSummarized && !s.saved {
		s.saved = true
		return s, s.saveRecord()
	}
	return s, nil
}

func (s *InterviewScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ctrl.State() != ivw.StateActive && !s.ctrl.Pending() {
		return s, nil
	}
	s.ctrl.Tick()
	return s, tickCmd()
}

func (s *InterviewScreen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.saveErr = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return screen.StatsMsg{Sessions: msg.Sessions, AvgScore: msg.AvgScore}
	}
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.ctrl.End()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.ctrl.State() {
	case ivw.StateIdle:
		return s.handleSetupKey(key)
	case ivw.StateActive:
		return s.handleActiveKey(msg, key)
	case ivw.StateSummarized:
		switch key {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N":
			s.ctrl.Reset()
			s.saved = false
			s.saveErr = ""
			s.errMsg = ""
			s.scroll = 0
			s.showHints = false
			return s, nil
		}
	}
	return s, nil
}

func (s *InterviewScreen) handleSetupKey(key string) (screen.Screen, tea.Cmd) {
	if s.waiting {
		return s, nil
	}

	switch key {
	case "tab":
		s.focus = 1 - s.focus
	case "up", "k":
		if s.focus == focusTopic && s.topicIdx > 0 {
			s.topicIdx--
		} else if s.focus == focusDifficulty && s.diffIdx > 0 {
			s.diffIdx--
		}
	case "down", "j":
		if s.focus == focusTopic && s.topicIdx < len(topics)-1 {
			s.topicIdx++
		} else if s.focus == focusDifficulty && s.diffIdx < len(difficulties)-1 {
			s.diffIdx++
		}
	case "enter":
		return s.start()
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *InterviewScreen) handleActiveKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "ctrl+e":
		s.codeMode = !s.codeMode
		if s.codeMode {
			return s, s.codeArea.Focus()
		}
		s.codeArea.Blur()
		return s, s.input.Init()
	case "ctrl+l":
		if s.codeMode {
			s.langIdx = (s.langIdx + 1) % len(codeLanguages)
			return s, nil
		}
	case "tab":
		if !s.codeMode {
			s.showHints = !s.showHints
			return s, nil
		}
	case "ctrl+s":
		if s.codeMode {
			return s.send()
		}
	case "enter":
		if !s.codeMode {
			return s.send()
		}
	case "up":
		if !s.codeMode {
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		}
	case "down":
		if !s.codeMode {
			s.scroll++
			return s, nil
		}
	}

	return s.forwardToInput(msg)
}

func (s *InterviewScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.ctrl.State() != ivw.StateActive || s.waiting {
		return s, nil
	}

	var cmd tea.Cmd
	if s.codeMode {
		s.codeArea, cmd = s.codeArea.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *InterviewScreen) start() (screen.Screen, tea.Cmd) {
	prompt := s.ctrl.Begin(topics[s.topicIdx], difficulties[s.diffIdx])
	s.waiting = true
	s.errMsg = ""

	// The timer runs while the opening call is in flight.
	gateway, agentID := s.gateway, s.agentID
	return s, tea.Batch(tickCmd(), func() tea.Msg {
		res := gateway.Call(context.Background(), prompt, agentID, agent.CallOpts{})
		return startedMsg{Result: res}
	})
}

func (s *InterviewScreen) send() (screen.Screen, tea.Cmd) {
	message := s.input.Value()
	code := s.codeArea.Value()
	if message == "" && code == "" {
		return s, nil
	}

	composed := ivw.ComposeUser(message, code, codeLanguages[s.langIdx])
	s.ctrl.RecordUser(composed)

	s.input = components.NewTextInput("Type your answer...", false, 0)
	s.codeArea.Reset()
	s.codeMode = false
	s.waiting = true
	s.scroll = 0

	gateway, agentID, sessionID := s.gateway, s.agentID, s.ctrl.SessionID()
	return s, tea.Batch(s.input.Init(), func() tea.Msg {
		res := gateway.Call(context.Background(), composed, agentID, agent.CallOpts{SessionID: sessionID})
		return turnMsg{Result: res}
	})
}

// saveRecord persists the finished session and recomputes header stats.
func (s *InterviewScreen) saveRecord() tea.Cmd {
	rec := s.ctrl.Record(time.Now())
	kv := s.kv
	return func() tea.Msg {
		if rec == nil {
			return savedMsg{}
		}
		ctx := context.Background()
		if err := ivw.AppendSession(ctx, kv, *rec); err != nil {
			return savedMsg{Err: err}
		}
		sessions, err := ivw.LoadSessions(ctx, kv)
		if err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{Sessions: len(sessions), AvgScore: progress.AverageScore(sessions)}
	}
}

func parseTurn(res agent.Result) (ivw.Turn, error) {
	var turn ivw.Turn
	if res.Response == nil {
		return turn, errors.New("empty agent response")
	}
	err := json.Unmarshal(res.Response.Result, &turn)
	return turn, err
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
