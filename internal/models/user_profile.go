package models

import "time"

type UserProfile struct {
	ID                    int64     `json:"id"`
	UserID                int64     `json:"user_id"`
	GoalSelection         *[]string `json:"goal_selection"`
	DietSelection         *string   `json:"diet_selection"`
	DietPreference        *string   `json:"diet_preference"`
	CookingTimePreference *string   `json:"cooking_time_preference"`
	MealPlan              *string   `json:"meal_plan"`
	MealPlanSelection     *[]string `json:"meal_plan_selection"`
	ActivityLevel         *string   `json:"activity_level"`
	ExerciseDifficulty    *string   `json:"exercise_difficulty"`
	Equipment             *[]string `json:"equipment"`
	ExerciseRoutine       *string   `json:"exercise_routine"`
	PainAndInjury         *string   `json:"pain_and_injury"`
	RestrictedExercises   *[]string `json:"restricted_exercises"`
	StretchingPreference  bool      `json:"stretching_preference"`
	RestDays              *string   `json:"rest_days"`
	BMI                   *float64  `json:"bmi"`
	HeightCM              *float64  `json:"height_cm"`
	WeightKG              *float64  `json:"weight_kg"`
	OnboardingStep        *string   `json:"onboarding_step"`
	OnboardingComplete    bool      `json:"onboarding_complete"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ProfilePatch is a partial profile write. Nil fields are left untouched.
type ProfilePatch struct {
	GoalSelection         *[]string
	DietSelection         *string
	DietPreference        *string
	CookingTimePreference *string
	MealPlan              *string
	MealPlanSelection     *[]string
	ActivityLevel         *string
	ExerciseDifficulty    *string
	Equipment             *[]string
	ExerciseRoutine       *string
	PainAndInjury         *string
	RestrictedExercises   *[]string
	StretchingPreference  *bool
	RestDays              *string
	BMI                   *float64
	HeightCM              *float64
	WeightKG              *float64
	OnboardingStep        *string
	OnboardingComplete    *bool
}

func (p ProfilePatch) IsEmpty() bool {
	return p == ProfilePatch{}
}
