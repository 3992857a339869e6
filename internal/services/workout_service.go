package services

import (
	"context"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/repository"
)

const defaultDifficulty = "beginner"

type ExerciseStore interface {
	List(ctx context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error)
	ListMasterWorkouts(ctx context.Context, names []string) ([]models.MasterWorkout, error)
}

type WorkoutService struct {
	exercises ExerciseStore
	profiles  profileReader
}

func NewWorkoutService(exercises ExerciseStore, profiles profileReader) *WorkoutService {
	return &WorkoutService{exercises: exercises, profiles: profiles}
}

// ListExercises returns the library, or, when pain areas are given, the
// exercises those areas restrict.
func (s *WorkoutService) ListExercises(ctx context.Context, painAreas []string) ([]models.Exercise, error) {
	if len(painAreas) == 0 {
		return s.exercises.List(ctx, repository.ExerciseFilter{})
	}
	names := onboarding.RestrictedExercises(painAreas)
	if len(names) == 0 {
		return []models.Exercise{}, nil
	}
	return s.exercises.List(ctx, repository.ExerciseFilter{Names: names})
}

func (s *WorkoutService) MasterWorkouts(ctx context.Context, painAreas []string) ([]models.MasterWorkout, error) {
	if len(painAreas) == 0 {
		return s.exercises.ListMasterWorkouts(ctx, nil)
	}
	names := onboarding.RestrictedExercises(painAreas)
	if len(names) == 0 {
		return []models.MasterWorkout{}, nil
	}
	return s.exercises.ListMasterWorkouts(ctx, names)
}

// ForUser picks exercises at the caller's difficulty and leaves out anything
// their pain areas restrict.
func (s *WorkoutService) ForUser(ctx context.Context, userID int64) (*models.UserWorkout, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := WorkoutFilterFor(profile)
	exercises, err := s.exercises.List(ctx, repository.ExerciseFilter{
		Difficulty:   filter.Difficulty,
		ExcludeNames: filter.RestrictedExercises,
	})
	if err != nil {
		return nil, err
	}

	return &models.UserWorkout{FilterInfo: filter, Exercises: exercises}, nil
}

func WorkoutFilterFor(profile *models.UserProfile) models.WorkoutFilter {
	filter := models.WorkoutFilter{
		Difficulty:          defaultDifficulty,
		Equipment:           []string{},
		RestrictedExercises: RestrictedFor(profile),
	}
	if profile.ExerciseDifficulty != nil && strings.TrimSpace(*profile.ExerciseDifficulty) != "" {
		filter.Difficulty = *profile.ExerciseDifficulty
	}
	if profile.ActivityLevel != nil {
		filter.ActivityLevel = *profile.ActivityLevel
	}
	if profile.Equipment != nil {
		filter.Equipment = *profile.Equipment
	}
	return filter
}

// RestrictedFor prefers the stored list and falls back to deriving it from
// pain_and_injury.
func RestrictedFor(profile *models.UserProfile) []string {
	if profile.RestrictedExercises != nil {
		return *profile.RestrictedExercises
	}
	if profile.PainAndInjury != nil {
		return onboarding.RestrictedForProfile(*profile.PainAndInjury)
	}
	return []string{}
}
