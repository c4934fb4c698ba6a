package dashboard

import (
	"slices"
	"testing"

	"github.com/codeprep-ai/codeprep/internal/planner"
)

func profileFixture() planner.Profile {
	return planner.Profile{
		ExperienceLevel: "advanced",
		TargetRole:      "Staff Engineer",
		HoursPerWeek:    15,
		KnownTopics:     []string{"Linked Lists", "Recursion"},
		TimelineWeeks:   16,
	}
}

func TestExperienceLevelValues(t *testing.T) {
	want := []string{"beginner", "intermediate", "advanced", "expert"}
	if len(experienceLevels) != len(want) {
		t.Fatalf("have %d experience levels, want %d", len(experienceLevels), len(want))
	}
	for i, lvl := range experienceLevels {
		if lvl.value != want[i] {
			t.Errorf("experienceLevels[%d] = %q, want %q", i, lvl.value, want[i])
		}
	}
}

func TestTimelineOptions(t *testing.T) {
	if !slices.Equal(timelineOptions, []int{4, 8, 12, 16}) {
		t.Errorf("timelineOptions = %v, want 4/8/12/16 weeks", timelineOptions)
	}
}

func TestClampHours(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 5},
		{5, 5},
		{10, 10},
		{40, 40},
		{99, 40},
	}
	for _, tc := range cases {
		if got := clampHours(tc.in); got != tc.want {
			t.Errorf("clampHours(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestProfileFromForm(t *testing.T) {
	d := New(nil)
	d.expIdx = 3
	d.roleInput.Model.SetValue("Backend Engineer")
	d.hoursInput.Model.SetValue("50")
	d.topicChecks[0] = true // Arrays & Strings
	d.topicChecks[5] = true // Hash Tables
	d.weeksIdx = 2

	p := d.profileFromForm()
	if p.ExperienceLevel != "expert" {
		t.Errorf("ExperienceLevel = %q", p.ExperienceLevel)
	}
	if p.HoursPerWeek != 40 {
		t.Errorf("HoursPerWeek = %d, want clamped to 40", p.HoursPerWeek)
	}
	if p.TimelineWeeks != 12 {
		t.Errorf("TimelineWeeks = %d, want 12", p.TimelineWeeks)
	}
	wantTopics := []string{"Arrays & Strings", "Hash Tables"}
	if !slices.Equal(p.KnownTopics, wantTopics) {
		t.Errorf("KnownTopics = %v, want %v", p.KnownTopics, wantTopics)
	}
}

func TestFillFormRoundTrips(t *testing.T) {
	d := New(nil)
	d.fillForm(profileFixture())

	p := d.profileFromForm()
	if p.ExperienceLevel != "advanced" || p.HoursPerWeek != 15 || p.TimelineWeeks != 16 {
		t.Errorf("round-tripped profile = %+v", p)
	}
	if !slices.Equal(p.KnownTopics, []string{"Linked Lists", "Recursion"}) {
		t.Errorf("KnownTopics = %v", p.KnownTopics)
	}
}
