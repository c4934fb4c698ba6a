package agent

import "github.com/codeprep-ai/codeprep/internal/llm"

// profile describes how the local gateway emulates one hosted agent:
// the system prompt, the response schema, and whether calls thread a
// conversation.
type profile struct {
	Label          string
	System         string
	Schema         *llm.Schema
	MaxTokens      int
	Conversational bool
}

const studyPlanSystem = `You are a study-plan coach for software engineering interviews.
Given a candidate profile (experience level, target role, hours per week,
known topics, timeline in weeks), produce a week-by-week study roadmap.
Weight topics the candidate does not know yet, keep weekly hours within
the stated budget, and end with a short summary. Respond with JSON only.`

const mockInterviewSystem = `You are a senior engineer conducting a mock coding interview.
Ask one question at a time, adapted to the requested topic and difficulty.
When difficulty is "auto", start at medium and adapt to the candidate's
answers. After each candidate response, evaluate it (correctness,
complexity analysis, code quality, communication, each scored 0-10 with
short feedback) and either ask a follow-up or move to the next question.
After four to six questions, set is_complete to true and produce a
session summary with an overall score from 0 to 100, the difficulty
progression, strengths, weaknesses, and recommendations. Respond with
JSON only.`

const progressSystem = `You are a progress analyst for interview preparation.
Given a candidate's completed mock-interview sessions and their current
study plan, assess per-topic strength and trend, identify weak areas with
specific gaps, propose targeted practice problems and resources, and
adjust the remaining roadmap. Respond with JSON only.`

func studyPlanProfile() profile {
	return profile{
		Label:     "study-plan",
		System:    studyPlanSystem,
		MaxTokens: 4096,
		Schema: &llm.Schema{
			Name:        "study-plan",
			Description: "A week-by-week interview study roadmap",
			Definition: map[string]any{
				"type":     "object",
				"required": []any{"plan_title", "weeks"},
				"properties": map[string]any{
					"plan_title":     map[string]any{"type": "string"},
					"target_role":    map[string]any{"type": "string"},
					"total_weeks":    map[string]any{"type": "integer"},
					"hours_per_week": map[string]any{"type": "integer"},
					"weeks": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"week_number": map[string]any{"type": "integer"},
								"theme":       map[string]any{"type": "string"},
								"topics": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"name":            map[string]any{"type": "string"},
											"priority":        map[string]any{"type": "string", "enum": []any{"high", "medium", "low"}},
											"estimated_hours": map[string]any{"type": "number"},
											"description":     map[string]any{"type": "string"},
											"resources":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
										},
									},
								},
								"milestones": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							},
						},
					},
					"key_focus_areas": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"summary":         map[string]any{"type": "string"},
				},
			},
		},
	}
}

func mockInterviewProfile() profile {
	return profile{
		Label:          "mock-interview",
		System:         mockInterviewSystem,
		MaxTokens:      2048,
		Conversational: true,
		Schema: &llm.Schema{
			Name:        "interview-turn",
			Description: "One turn of a mock coding interview",
			Definition: map[string]any{
				"type":     "object",
				"required": []any{"message", "is_complete"},
				"properties": map[string]any{
					"message": map[string]any{"type": "string"},
					"current_question": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"number":            map[string]any{"type": "integer"},
							"difficulty":        map[string]any{"type": "string"},
							"problem_statement": map[string]any{"type": "string"},
							"topic":             map[string]any{"type": "string"},
							"hints":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
					},
					"evaluation": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"correctness_score":   map[string]any{"type": "number"},
							"complexity_analysis": map[string]any{"type": "string"},
							"code_quality_score":  map[string]any{"type": "number"},
							"communication_score": map[string]any{"type": "number"},
							"feedback":            map[string]any{"type": "string"},
							"follow_up_question":  map[string]any{"type": "string"},
						},
					},
					"is_complete": map[string]any{"type": "boolean"},
					"session_summary": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"overall_score":          map[string]any{"type": "number"},
							"questions_asked":        map[string]any{"type": "integer"},
							"difficulty_progression": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"strengths":              map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"weaknesses":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"recommendations":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"detailed_feedback":      map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	}
}

func progressProfile() profile {
	return profile{
		Label:     "progress",
		System:    progressSystem,
		MaxTokens: 4096,
		Schema: &llm.Schema{
			Name:        "progress-analysis",
			Description: "Performance analysis over past interview sessions",
			Definition: map[string]any{
				"type":     "object",
				"required": []any{"analysis_summary"},
				"properties": map[string]any{
					"topic_assessment": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"topic":          map[string]any{"type": "string"},
								"strength_score": map[string]any{"type": "number"},
								"trend":          map[string]any{"type": "string"},
								"sessions_count": map[string]any{"type": "integer"},
							},
						},
					},
					"weak_areas": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"topic":         map[string]any{"type": "string"},
								"severity":      map[string]any{"type": "string"},
								"specific_gaps": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							},
						},
					},
					"practice_problems": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":             map[string]any{"type": "string"},
								"difficulty":        map[string]any{"type": "string"},
								"topic":             map[string]any{"type": "string"},
								"problem_statement": map[string]any{"type": "string"},
								"expected_approach": map[string]any{"type": "string"},
								"key_concepts":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							},
						},
					},
					"resource_recommendations": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"title":        map[string]any{"type": "string"},
								"type":         map[string]any{"type": "string"},
								"url":          map[string]any{"type": "string"},
								"description":  map[string]any{"type": "string"},
								"target_topic": map[string]any{"type": "string"},
							},
						},
					},
					"adjusted_roadmap": map[string]any{"type": "object"},
					"analysis_summary": map[string]any{"type": "string"},
				},
			},
		},
	}
}
