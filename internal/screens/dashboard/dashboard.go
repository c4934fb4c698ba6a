package dashboard

import (
	"context"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/codeprep-ai/codeprep/internal/planner"
	"github.com/codeprep-ai/codeprep/internal/router"
	"github.com/codeprep-ai/codeprep/internal/screen"
	"github.com/codeprep-ai/codeprep/internal/ui/components"
	"github.com/codeprep-ai/codeprep/internal/ui/layout"
)

type mode int

const (
	modeLoading mode = iota
	modeForm
	modeGenerating
	modePlan
)

// experienceLevels are the values the study-plan agent accepts, with
// the labels shown in the picker.
var experienceLevels = []struct {
	value string
	label string
}{
	{"beginner", "Beginner (0-1 years)"},
	{"intermediate", "Intermediate (1-3 years)"},
	{"advanced", "Advanced (3-5 years)"},
	{"expert", "Expert (5+ years)"},
}

var timelineOptions = []int{4, 8, 12, 16}

var knownTopicOptions = []string{
	"Arrays & Strings",
	"Linked Lists",
	"Trees & Graphs",
	"Dynamic Programming",
	"Sorting & Searching",
	"Hash Tables",
	"Stacks & Queues",
	"Recursion",
	"Greedy Algorithms",
	"Backtracking",
	"Bit Manipulation",
	"System Design",
}

const (
	minHoursPerWeek = 5
	maxHoursPerWeek = 40
)

// field indexes for the profile form
const (
	fieldExperience = iota
	fieldRole
	fieldHours
	fieldTopics
	fieldTimeline
	fieldGenerate
	fieldCount
)

type loadedMsg struct {
	Profile   *planner.Profile
	Plan      *planner.StudyPlan
	Completed planner.CompletedSet
	Err       error
}

type planGeneratedMsg struct {
	Plan *planner.StudyPlan
	Err  error
}

type toggledMsg struct {
	Completed planner.CompletedSet
	Err       error
}

// topicRef locates one topic checkbox inside the plan.
type topicRef struct {
	weekIdx  int
	topicIdx int
}

// DashboardScreen hosts the profile form and the generated study plan.
type DashboardScreen struct {
	svc *planner.Service

	mode      mode
	plan      *planner.StudyPlan
	completed planner.CompletedSet
	errMsg    string

	// form state
	focus       int
	expIdx      int
	roleInput   components.TextInput
	hoursInput  components.TextInput
	topicChecks []bool
	topicCursor int
	weeksIdx    int

	// plan navigation
	refs   []topicRef
	cursor int
	scroll int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(svc *planner.Service) *DashboardScreen {
	return &DashboardScreen{
		svc:         svc,
		mode:        modeLoading,
		completed:   planner.CompletedSet{},
		expIdx:      1, // intermediate
		weeksIdx:    1, // 8 weeks
		roleInput:   components.NewTextInput("e.g. Backend Engineer", false, 40),
		hoursInput:  components.NewTextInput("10", true, 2),
		topicChecks: make([]bool, len(knownTopicOptions)),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := d.svc.LoadProfile(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		plan, err := d.svc.LoadPlan(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		completed, err := d.svc.LoadCompleted(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Profile: profile, Plan: plan, Completed: completed}
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	switch d.mode {
	case modeForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "←→", Description: "Change"},
			{Key: "Space", Description: "Toggle topic"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modePlan:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Toggle done"},
			{Key: "E", Description: "Edit profile"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return d.handleLoaded(msg)
	case planGeneratedMsg:
		return d.handleGenerated(msg)
	case toggledMsg:
		if msg.Err == nil {
			d.completed = msg.Completed
		}
		return d, nil
	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.mode == modeForm {
		return d.updateFocusedInput(msg)
	}
	return d, nil
}

func (d *DashboardScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.completed = msg.Completed
	if msg.Profile != nil {
		d.fillForm(*msg.Profile)
	}
	if msg.Plan != nil {
		d.setPlan(msg.Plan)
		return d, nil
	}
	d.mode = modeForm
	return d, d.roleInput.Init()
}

func (d *DashboardScreen) handleGenerated(msg planGeneratedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.mode = modeForm
		d.errMsg = "Failed to generate plan"
		return d, nil
	}
	d.errMsg = ""
	d.setPlan(msg.Plan)
	return d, nil
}

func (d *DashboardScreen) setPlan(plan *planner.StudyPlan) {
	d.plan = plan
	d.mode = modePlan
	d.refs = d.refs[:0]
	for wi, w := range plan.Weeks {
		for ti := range w.Topics {
			d.refs = append(d.refs, topicRef{weekIdx: wi, topicIdx: ti})
		}
	}
	if d.cursor >= len(d.refs) {
		d.cursor = 0
	}
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch d.mode {
	case modeForm:
		return d.handleFormKey(msg, key)
	case modePlan:
		return d.handlePlanKey(key)
	}
	return d, nil
}

func (d *DashboardScreen) handleFormKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "tab", "down":
		d.focus = (d.focus + 1) % fieldCount
		return d, nil
	case "shift+tab", "up":
		d.focus = (d.focus + fieldCount - 1) % fieldCount
		return d, nil
	case "left":
		switch d.focus {
		case fieldExperience:
			if d.expIdx > 0 {
				d.expIdx--
			}
			return d, nil
		case fieldTimeline:
			if d.weeksIdx > 0 {
				d.weeksIdx--
			}
			return d, nil
		case fieldTopics:
			if d.topicCursor > 0 {
				d.topicCursor--
			}
			return d, nil
		}
	case "right":
		switch d.focus {
		case fieldExperience:
			if d.expIdx < len(experienceLevels)-1 {
				d.expIdx++
			}
			return d, nil
		case fieldTimeline:
			if d.weeksIdx < len(timelineOptions)-1 {
				d.weeksIdx++
			}
			return d, nil
		case fieldTopics:
			if d.topicCursor < len(knownTopicOptions)-1 {
				d.topicCursor++
			}
			return d, nil
		}
	case " ":
		if d.focus == fieldTopics {
			d.topicChecks[d.topicCursor] = !d.topicChecks[d.topicCursor]
			return d, nil
		}
	case "enter":
		if d.focus == fieldGenerate {
			return d.generate()
		}
		d.focus = (d.focus + 1) % fieldCount
		return d, nil
	}

	return d.updateFocusedInput(msg)
}

func (d *DashboardScreen) handlePlanKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.refs)-1 {
			d.cursor++
		}
	case " ":
		return d.toggleCurrent()
	case "e", "E":
		d.mode = modeForm
		d.focus = fieldExperience
		return d, nil
	case "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *DashboardScreen) updateFocusedInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch d.focus {
	case fieldRole:
		d.roleInput, cmd = d.roleInput.Update(msg)
	case fieldHours:
		d.hoursInput, cmd = d.hoursInput.Update(msg)
	}
	return d, cmd
}

func (d *DashboardScreen) fillForm(p planner.Profile) {
	for i, lvl := range experienceLevels {
		if lvl.value == p.ExperienceLevel {
			d.expIdx = i
		}
	}
	d.roleInput.Model.SetValue(p.TargetRole)
	if p.HoursPerWeek > 0 {
		d.hoursInput.Model.SetValue(strconv.Itoa(p.HoursPerWeek))
	}
	for i, opt := range knownTopicOptions {
		d.topicChecks[i] = slices.Contains(p.KnownTopics, opt)
	}
	for i, weeks := range timelineOptions {
		if weeks == p.TimelineWeeks {
			d.weeksIdx = i
		}
	}
}

func (d *DashboardScreen) profileFromForm() planner.Profile {
	hours, _ := d.hoursInput.NumericValue()
	if hours > 0 {
		hours = clampHours(hours)
	}

	var topics []string
	for i, opt := range knownTopicOptions {
		if d.topicChecks[i] {
			topics = append(topics, opt)
		}
	}

	return planner.Profile{
		ExperienceLevel: experienceLevels[d.expIdx].value,
		TargetRole:      strings.TrimSpace(d.roleInput.Value()),
		HoursPerWeek:    hours,
		KnownTopics:     topics,
		TimelineWeeks:   timelineOptions[d.weeksIdx],
	}
}

// clampHours bounds weekly study hours to the range the planner
// accepts.
func clampHours(h int) int {
	if h < minHoursPerWeek {
		return minHoursPerWeek
	}
	if h > maxHoursPerWeek {
		return maxHoursPerWeek
	}
	return h
}

func (d *DashboardScreen) generate() (screen.Screen, tea.Cmd) {
	profile := d.profileFromForm()
	if profile.TargetRole == "" || profile.HoursPerWeek == 0 {
		d.errMsg = "Fill in role and hours per week first"
		return d, nil
	}

	d.mode = modeGenerating
	d.errMsg = ""

	return d, func() tea.Msg {
		plan, err := d.svc.Generate(context.Background(), profile)
		return planGeneratedMsg{Plan: plan, Err: err}
	}
}

func (d *DashboardScreen) toggleCurrent() (screen.Screen, tea.Cmd) {
	if d.cursor >= len(d.refs) || d.plan == nil {
		return d, nil
	}
	ref := d.refs[d.cursor]
	key := planner.CompletedKey(d.plan.Weeks[ref.weekIdx].WeekNumber, ref.topicIdx)

	return d, func() tea.Msg {
		set, err := d.svc.ToggleCompleted(context.Background(), key)
		return toggledMsg{Completed: set, Err: err}
	}
}

