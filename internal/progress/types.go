package progress

import "encoding/json"

// Analysis is the progress agent's structured assessment. All fields
// except the summary are optional.
type Analysis struct {
	TopicAssessment         []TopicAssessment        `json:"topic_assessment,omitempty"`
	WeakAreas               []WeakArea               `json:"weak_areas,omitempty"`
	PracticeProblems        []PracticeProblem        `json:"practice_problems,omitempty"`
	ResourceRecommendations []ResourceRecommendation `json:"resource_recommendations,omitempty"`
	AdjustedRoadmap         json.RawMessage          `json:"adjusted_roadmap,omitempty"`
	AnalysisSummary         string                   `json:"analysis_summary"`
}

// TopicAssessment rates one topic's current strength and trend.
type TopicAssessment struct {
	Topic         string  `json:"topic"`
	StrengthScore float64 `json:"strength_score,omitempty"`
	Trend         string  `json:"trend,omitempty"`
	SessionsCount int     `json:"sessions_count,omitempty"`
}

// WeakArea names a topic needing attention and its specific gaps.
type WeakArea struct {
	Topic        string   `json:"topic"`
	Severity     string   `json:"severity,omitempty"`
	SpecificGaps []string `json:"specific_gaps,omitempty"`
}

// PracticeProblem is a targeted exercise recommendation.
type PracticeProblem struct {
	Title            string   `json:"title"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Topic            string   `json:"topic,omitempty"`
	ProblemStatement string   `json:"problem_statement,omitempty"`
	ExpectedApproach string   `json:"expected_approach,omitempty"`
	KeyConcepts      []string `json:"key_concepts,omitempty"`
}

// ResourceRecommendation points at external study material.
type ResourceRecommendation struct {
	Title       string `json:"title"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	TargetTopic string `json:"target_topic,omitempty"`
}
