package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeprep-ai/codeprep/internal/store"
)

// CompletedKey names a topic checkbox by week number and topic index.
func CompletedKey(weekNumber, topicIndex int) string {
	return fmt.Sprintf("w%d-t%d", weekNumber, topicIndex)
}

// CompletedSet is the persisted map of checked-off topics. Keys from
// superseded plans are kept; counting always filters against the
// current plan's keys.
type CompletedSet map[string]bool

// LoadCompleted returns the persisted completion set, never nil.
func (s *Service) LoadCompleted(ctx context.Context) (CompletedSet, error) {
	raw, ok, err := s.kv.Get(ctx, store.KeyCompleted)
	if err != nil {
		return nil, err
	}
	set := CompletedSet{}
	if !ok {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		// Corrupt blob reads as empty.
		return CompletedSet{}, nil
	}
	return set, nil
}

// ToggleCompleted flips one topic's completion state and persists the
// set. An absent key toggles to true.
func (s *Service) ToggleCompleted(ctx context.Context, key string) (CompletedSet, error) {
	set, err := s.LoadCompleted(ctx)
	if err != nil {
		return nil, err
	}

	set[key] = !set[key]

	raw, err := json.Marshal(set)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, store.KeyCompleted, raw); err != nil {
		return nil, err
	}
	return set, nil
}

// CompletedCount counts how many of the plan's topics are checked off.
// Stale keys from older plans do not contribute.
func (set CompletedSet) CompletedCount(plan *StudyPlan) int {
	if plan == nil {
		return 0
	}
	n := 0
	for _, w := range plan.Weeks {
		for i := range w.Topics {
			if set[CompletedKey(w.WeekNumber, i)] {
				n++
			}
		}
	}
	return n
}
