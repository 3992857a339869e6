package repository

import (
	"context"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `
	id, user_id, goal_selection, diet_selection, diet_preference, cooking_time_preference,
	meal_plan, meal_plan_selection, activity_level, exercise_difficulty, equipment,
	exercise_routine, pain_and_injury, restricted_exercises, stretching_preference,
	rest_days, bmi, height_cm, weight_kg, onboarding_step, onboarding_complete,
	created_at, updated_at`

type UserProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO user_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

// UpdatePartial writes the non-nil fields of patch in one statement.
func (r *UserProfileRepository) UpdatePartial(ctx context.Context, userID int64, patch models.ProfilePatch) (*models.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET goal_selection = COALESCE($1, goal_selection),
			diet_selection = COALESCE($2, diet_selection),
			diet_preference = COALESCE($3, diet_preference),
			cooking_time_preference = COALESCE($4, cooking_time_preference),
			meal_plan = COALESCE($5, meal_plan),
			meal_plan_selection = COALESCE($6, meal_plan_selection),
			activity_level = COALESCE($7, activity_level),
			exercise_difficulty = COALESCE($8, exercise_difficulty),
			equipment = COALESCE($9, equipment),
			exercise_routine = COALESCE($10, exercise_routine),
			pain_and_injury = COALESCE($11, pain_and_injury),
			restricted_exercises = COALESCE($12, restricted_exercises),
			stretching_preference = COALESCE($13, stretching_preference),
			rest_days = COALESCE($14, rest_days),
			bmi = COALESCE($15, bmi),
			height_cm = COALESCE($16, height_cm),
			weight_kg = COALESCE($17, weight_kg),
			onboarding_step = COALESCE($18, onboarding_step),
			onboarding_complete = COALESCE($19, onboarding_complete),
			updated_at = NOW()
		WHERE user_id = $20
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query,
		patch.GoalSelection,
		patch.DietSelection,
		patch.DietPreference,
		patch.CookingTimePreference,
		patch.MealPlan,
		patch.MealPlanSelection,
		patch.ActivityLevel,
		patch.ExerciseDifficulty,
		patch.Equipment,
		patch.ExerciseRoutine,
		patch.PainAndInjury,
		patch.RestrictedExercises,
		patch.StretchingPreference,
		patch.RestDays,
		patch.BMI,
		patch.HeightCM,
		patch.WeightKG,
		patch.OnboardingStep,
		patch.OnboardingComplete,
		userID,
	))
}

func scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.GoalSelection,
		&profile.DietSelection,
		&profile.DietPreference,
		&profile.CookingTimePreference,
		&profile.MealPlan,
		&profile.MealPlanSelection,
		&profile.ActivityLevel,
		&profile.ExerciseDifficulty,
		&profile.Equipment,
		&profile.ExerciseRoutine,
		&profile.PainAndInjury,
		&profile.RestrictedExercises,
		&profile.StretchingPreference,
		&profile.RestDays,
		&profile.BMI,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.OnboardingStep,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
