package interview

// Turn is one structured reply from the mock-interview agent. Every
// field except Message and IsComplete is optional.
type Turn struct {
	Message         string    `json:"message"`
	CurrentQuestion *Question `json:"current_question,omitempty"`
	Evaluation      *Evaluation `json:"evaluation,omitempty"`
	IsComplete      bool      `json:"is_complete"`
	SessionSummary  *Summary  `json:"session_summary,omitempty"`
}

// Question describes the problem currently on the table.
type Question struct {
	Number           int      `json:"number,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	ProblemStatement string   `json:"problem_statement,omitempty"`
	Topic            string   `json:"topic,omitempty"`
	Hints            []string `json:"hints,omitempty"`
}

// Evaluation scores the candidate's latest answer.
type Evaluation struct {
	CorrectnessScore   float64 `json:"correctness_score,omitempty"`
	ComplexityAnalysis string  `json:"complexity_analysis,omitempty"`
	CodeQualityScore   float64 `json:"code_quality_score,omitempty"`
	CommunicationScore float64 `json:"communication_score,omitempty"`
	Feedback           string  `json:"feedback,omitempty"`
	FollowUpQuestion   string  `json:"follow_up_question,omitempty"`
}

// Summary is the agent's end-of-session wrap-up.
type Summary struct {
	OverallScore          float64  `json:"overall_score,omitempty"`
	QuestionsAsked        int      `json:"questions_asked,omitempty"`
	DifficultyProgression []string `json:"difficulty_progression,omitempty"`
	Strengths             []string `json:"strengths,omitempty"`
	Weaknesses            []string `json:"weaknesses,omitempty"`
	Recommendations       []string `json:"recommendations,omitempty"`
	DetailedFeedback      string   `json:"detailed_feedback,omitempty"`
}

// TranscriptMessage is one exchanged message, candidate or interviewer.
// Timestamp is a display string, not a sortable instant.
type TranscriptMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

const (
	RoleCandidate   = "user"
	RoleInterviewer = "agent"
)

// SessionRecord is the persisted outcome of one completed interview.
type SessionRecord struct {
	ID              string              `json:"id"`
	Date            string              `json:"date"`
	Topic           string              `json:"topic"`
	Score           float64             `json:"score"`
	Difficulty      string              `json:"difficulty"`
	DurationMinutes int                 `json:"duration"`
	Transcript      []TranscriptMessage `json:"transcript"`
	Summary         *Summary            `json:"summary,omitempty"`
}
