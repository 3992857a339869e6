package onboarding

import (
	"strconv"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
)

// Display renders each step's field for humans, falling back to NotSelected.
func (f *Flow) Display(p models.UserProfile) map[string]string {
	out := make(map[string]string, len(f.steps))
	for _, s := range f.steps {
		out[s.Field] = s.display(p)
	}
	return out
}

func (s Step) display(p models.UserProfile) string {
	switch s.Kind {
	case KindSingle:
		if v := singleValue(p, s.Field); v != nil && *v != "" {
			return s.optionName(*v)
		}
	case KindMulti:
		if v := multiValue(p, s.Field); v != nil && len(*v) > 0 {
			names := make([]string, 0, len(*v))
			for _, id := range *v {
				names = append(names, s.optionName(id))
			}
			return strings.Join(names, ", ")
		}
	case KindBoolean:
		if p.StretchingPreference {
			return "Yes"
		}
		return "No"
	case KindDates:
		if p.RestDays != nil && *p.RestDays != "" {
			return *p.RestDays
		}
	case KindBMI:
		if p.BMI != nil {
			return strconv.FormatFloat(*p.BMI, 'f', 2, 64)
		}
	case KindComposite:
		if p.PainAndInjury != nil && *p.PainAndInjury != "" {
			return *p.PainAndInjury
		}
	}
	return NotSelected
}

func (s Step) optionName(id string) string {
	for _, opt := range s.Options {
		if opt.ID == id {
			return opt.Name
		}
	}
	return id
}

func singleValue(p models.UserProfile, field string) *string {
	switch field {
	case "diet_selection":
		return p.DietSelection
	case "diet_preference":
		return p.DietPreference
	case "cooking_time_preference":
		return p.CookingTimePreference
	case "meal_plan":
		return p.MealPlan
	case "activity_level":
		return p.ActivityLevel
	case "exercise_difficulty":
		return p.ExerciseDifficulty
	case "exercise_routine":
		return p.ExerciseRoutine
	}
	return nil
}

func multiValue(p models.UserProfile, field string) *[]string {
	switch field {
	case "goal_selection":
		return p.GoalSelection
	case "meal_plan_selection":
		return p.MealPlanSelection
	case "equipment":
		return p.Equipment
	}
	return nil
}
