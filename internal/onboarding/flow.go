package onboarding

import (
	"slices"
	"strings"
)

const (
	DashboardPath = "/dashboard"
	EditHubPath   = "/edit-preferences"

	// NotSelected is shown for a profile field no step has written yet.
	NotSelected = "Not selected"
)

type Kind string

const (
	KindSingle    Kind = "single"
	KindMulti     Kind = "multi"
	KindBoolean   Kind = "boolean"
	KindDates     Kind = "dates"
	KindBMI       Kind = "bmi"
	KindComposite Kind = "composite"
)

type Step struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Path      string  `json:"path"`
	Field     string  `json:"field"`
	Kind      Kind    `json:"kind"`
	Options   Catalog `json:"options,omitempty"`
	Min       int     `json:"min,omitempty"`
	Max       int     `json:"max,omitempty"`
	Exclusive string  `json:"exclusive,omitempty"`

	// LegacyEndpoint is the per-page endpoint older clients posted this
	// step to.
	LegacyEndpoint string `json:"legacy_endpoint,omitempty"`

	HubLabel string `json:"-"`
	HubIcon  string `json:"-"`
	HubOrder int    `json:"-"`
}

type HubEntry struct {
	StepID string `json:"step_id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Path   string `json:"path"`
}

// Flow is an ordered list of onboarding steps.
type Flow struct {
	steps []Step
}

func NewFlow(steps ...Step) *Flow {
	return &Flow{steps: slices.Clone(steps)}
}

func (f *Flow) Steps() []Step { return slices.Clone(f.steps) }

func (f *Flow) First() Step { return f.steps[0] }

func (f *Flow) Step(id string) (Step, bool) {
	for _, s := range f.steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

func (f *Flow) StepByPath(path string) (Step, bool) {
	path = "/" + strings.Trim(path, "/")
	for _, s := range f.steps {
		if s.Path == path {
			return s, true
		}
	}
	return Step{}, false
}

func (f *Flow) StepByField(field string) (Step, bool) {
	for _, s := range f.steps {
		if s.Field == field {
			return s, true
		}
	}
	return Step{}, false
}

func (f *Flow) IsLast(id string) bool {
	return len(f.steps) > 0 && f.steps[len(f.steps)-1].ID == id
}

// Next returns the client path to go to after stepID was saved. Editing always
// returns to the edit hub; otherwise the flow advances and ends on the
// dashboard.
func (f *Flow) Next(stepID string, editing bool) string {
	if editing {
		return EditHubPath
	}
	for i, s := range f.steps {
		if s.ID != stepID {
			continue
		}
		if i+1 < len(f.steps) {
			return f.steps[i+1].Path
		}
		return DashboardPath
	}
	return f.steps[0].Path
}

// Resume returns where a user whose last saved step is lastStep should go.
func (f *Flow) Resume(lastStep string, complete bool) string {
	if complete {
		return DashboardPath
	}
	if lastStep == "" {
		return f.First().Path
	}
	return f.Next(lastStep, false)
}

func (f *Flow) EditHub() []HubEntry {
	var hub []Step
	for _, s := range f.steps {
		if s.HubOrder > 0 {
			hub = append(hub, s)
		}
	}
	slices.SortFunc(hub, func(a, b Step) int { return a.HubOrder - b.HubOrder })

	entries := make([]HubEntry, 0, len(hub))
	for _, s := range hub {
		entries = append(entries, HubEntry{StepID: s.ID, Name: s.HubLabel, Icon: s.HubIcon, Path: s.Path})
	}
	return entries
}

// DefaultFlow returns the onboarding sequence served to clients.
func DefaultFlow() *Flow {
	return NewFlow(
		newStep("rest-days", "/calender", "rest_days", KindDates, "Pick your rest days").
			limits(1, MaxRestDays).
			hub(12, "Cheat days", "📅"),
		newStep("bmi", "/bmi-calculator", "bmi", KindBMI, "BMI Calculator").
			hub(1, "BMI Calculator", "⚖️"),
		newStep("goal", "/goal-selection", "goal_selection", KindMulti, "What's your fitness goal?").
			options(Goals).limits(1, 0).
			hub(2, "Goal Selection", "🎯"),
		newStep("diet-selection", "/diet-selection", "diet_selection", KindSingle, "Choose your diet").
			options(DietSelections).
			hub(3, "Diet Selection", "🥗"),
		newStep("diet-preference", "/diet-preference", "diet_preference", KindSingle, "Diet preference").
			options(DietPreferences).
			hub(4, "Diet Preference", "🥑"),
		newStep("cooking-time", "/cooking-time", "cooking_time_preference", KindSingle, "How much time do you have to cook?").
			options(CookingTimes).
			hub(5, "Cooking Time", "⏲️"),
		newStep("meal-plan-day", "/meal-plan-selection", "meal_plan", KindSingle, "When should your meal plan start?").
			options(Weekdays),
		newStep("meal-plan", "/meal-plan", "meal_plan_selection", KindMulti, "Which meals should we plan?").
			options(MealTypes).limits(1, len(MealTypes)).
			hub(6, "Meal Plan", "📋"),
		newStep("activity-level", "/activity-level", "activity_level", KindSingle, "How active are you?").
			options(ActivityLevels).
			hub(7, "Activity Level", "🏃"),
		newStep("exercise-difficulty", "/exercise-difficulty", "exercise_difficulty", KindSingle, "Choose your difficulty").
			options(Difficulties).
			legacy("/exercise-difficulty/").
			hub(8, "Exercise Difficulty", "💪"),
		newStep("equipment", "/workout-equipment", "equipment", KindMulti, "What equipment do you have?").
			options(Equipment).limits(1, 0).exclusive(NoEquipment).
			legacy("/workout/api/save-equipment/").
			hub(9, "Workout Equipment", "🏋️"),
		newStep("exercise-routine", "/exercise-routine", "exercise_routine", KindSingle, "Pick your routine").
			options(ExerciseRoutines).
			hub(10, "Exercise Routine", "🎽"),
		newStep("pain-injury", "/pain-injury-form", "pain_and_injury", KindComposite, "Pain & injury").
			legacy("/workout/api/update-exercise-routine/").
			hub(11, "Pain & Injury", "🤕"),
		newStep("stretching", "/stretching-preference", "stretching_preference", KindBoolean, "Do you want stretching sessions?").
			legacy("/workout/api/update-stretching-preference/"),
	)
}

func newStep(id, path, field string, kind Kind, title string) Step {
	s := Step{ID: id, Path: path, Field: field, Kind: kind, Title: title}
	if kind == KindSingle {
		s.Min, s.Max = 1, 1
	}
	return s
}

func (s Step) options(c Catalog) Step {
	s.Options = c
	return s
}

func (s Step) limits(lo, hi int) Step {
	s.Min, s.Max = lo, hi
	return s
}

func (s Step) exclusive(id string) Step {
	s.Exclusive = id
	return s
}

func (s Step) legacy(endpoint string) Step {
	s.LegacyEndpoint = endpoint
	return s
}

func (s Step) hub(order int, label, icon string) Step {
	s.HubOrder, s.HubLabel, s.HubIcon = order, label, icon
	return s
}
