package planner

// Profile is the candidate profile the study-plan agent works from.
// ExperienceLevel is one of beginner, intermediate, advanced, or
// expert. HoursPerWeek stays within 5 to 40 and TimelineWeeks is 4,
// 8, 12, or 16; the dashboard form enforces both.
type Profile struct {
	ExperienceLevel string   `json:"experience_level"`
	TargetRole      string   `json:"target_role"`
	HoursPerWeek    int      `json:"hours_per_week"`
	KnownTopics     []string `json:"known_topics"`
	TimelineWeeks   int      `json:"timeline"`
}

// StudyPlan is the agent-produced roadmap. Every field is optional;
// the agent decides how much structure to return and rendering must
// tolerate any subset.
type StudyPlan struct {
	PlanTitle     string   `json:"plan_title,omitempty"`
	TargetRole    string   `json:"target_role,omitempty"`
	TotalWeeks    int      `json:"total_weeks,omitempty"`
	HoursPerWeek  int      `json:"hours_per_week,omitempty"`
	Weeks         []Week   `json:"weeks,omitempty"`
	KeyFocusAreas []string `json:"key_focus_areas,omitempty"`
	Summary       string   `json:"summary,omitempty"`
}

// Week is one week of the roadmap.
type Week struct {
	WeekNumber int      `json:"week_number,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	Topics     []Topic  `json:"topics,omitempty"`
	Milestones []string `json:"milestones,omitempty"`
}

// Topic is one study topic within a week.
type Topic struct {
	Name           string   `json:"name,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	EstimatedHours float64  `json:"estimated_hours,omitempty"`
	Description    string   `json:"description,omitempty"`
	Resources      []string `json:"resources,omitempty"`
}

// TopicCount returns the total number of topics across all weeks.
func (p *StudyPlan) TopicCount() int {
	n := 0
	for _, w := range p.Weeks {
		n += len(w.Topics)
	}
	return n
}
