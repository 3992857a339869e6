package models

import "time"

type MealRecipe struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	MealType         string  `json:"meal_type"`
	DietSelection    string  `json:"diet_selection"`
	DietPreference   *string `json:"diet_preference"`
	GoalSelection    *string `json:"goal_selection"`
	CookingTime      string  `json:"cooking_time"`
	Calories         int     `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	RecipeLink       *string `json:"recipe_link"`
	Instructions     string  `json:"instructions"`
	InstructionsHTML string  `json:"instructions_html,omitempty"`
}

type UserMealPlan struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Date      time.Time    `json:"date"`
	Breakfast []MealRecipe `json:"breakfast"`
	Lunch     []MealRecipe `json:"lunch"`
	Dinner    []MealRecipe `json:"dinner"`
	Snacks    []MealRecipe `json:"snacks"`
}

type CampusMeal struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    int     `json:"price"`
	URL      *string `json:"url"`
}

type Exercise struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	BodyPart     string  `json:"body_part"`
	Description  string  `json:"description"`
	ExerciseType string  `json:"exercise_type"`
	Difficulty   string  `json:"difficulty"`
	ImpactLevel  string  `json:"impact_level"`
	Instructions string  `json:"instructions"`
	Duration     int     `json:"duration"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	VideoLink    *string `json:"video_link"`
}

type MasterWorkout struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	VideoURL     string `json:"video_url"`
}

type UserWorkout struct {
	FilterInfo WorkoutFilter `json:"filter_info"`
	Exercises  []Exercise    `json:"exercises"`
}

type WorkoutFilter struct {
	Difficulty          string   `json:"difficulty"`
	ActivityLevel       string   `json:"activity_level"`
	Equipment           []string `json:"equipment"`
	RestrictedExercises []string `json:"restricted_exercises"`
}
