package services

import (
	"context"
	"slices"
	"testing"

	"github.com/cufit/cufit-backend/internal/models"
)

func TestForUserExcludesRestrictedExercises(t *testing.T) {
	exercises := &stubExerciseStore{exercises: []models.Exercise{
		{Name: "Squats", Difficulty: "intermediate"},
		{Name: "Plank", Difficulty: "intermediate"},
	}}
	profiles := &stubProfileStore{profile: &models.UserProfile{
		ExerciseDifficulty:  strPtr("intermediate"),
		ActivityLevel:       strPtr("very_active"),
		RestrictedExercises: listPtr("Squats"),
	}}
	service := NewWorkoutService(exercises, profiles)

	workout, err := service.ForUser(context.Background(), 4)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}

	if len(workout.Exercises) != 1 || workout.Exercises[0].Name != "Plank" {
		t.Fatalf("unexpected exercises: %+v", workout.Exercises)
	}
	if workout.FilterInfo.Difficulty != "intermediate" || workout.FilterInfo.ActivityLevel != "very_active" {
		t.Fatalf("unexpected filter info: %+v", workout.FilterInfo)
	}
	if exercises.filters[0].Difficulty != "intermediate" {
		t.Fatalf("expected difficulty filter, got %+v", exercises.filters[0])
	}
}

func TestWorkoutFilterDefaultsToBeginner(t *testing.T) {
	filter := WorkoutFilterFor(&models.UserProfile{})
	if filter.Difficulty != "beginner" {
		t.Fatalf("expected beginner, got %q", filter.Difficulty)
	}
	if filter.Equipment == nil || filter.RestrictedExercises == nil {
		t.Fatal("expected empty lists, not nil")
	}
}

func TestRestrictedForDerivesFromPainText(t *testing.T) {
	got := RestrictedFor(&models.UserProfile{PainAndInjury: strPtr("Knees, Pain Level: 4")})
	if len(got) == 0 || !slices.Contains(got, "Squats") {
		t.Fatalf("expected knee restrictions to include Squats, got %v", got)
	}
}

func TestListExercisesByPainArea(t *testing.T) {
	exercises := &stubExerciseStore{exercises: []models.Exercise{{Name: "Squats"}, {Name: "Push-ups"}}}
	service := NewWorkoutService(exercises, &stubProfileStore{})

	got, err := service.ListExercises(context.Background(), []string{"Knees"})
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Squats" {
		t.Fatalf("expected only restricted knee exercises, got %+v", got)
	}

	got, err = service.ListExercises(context.Background(), []string{"Elsewhere"})
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no exercises for unknown area, got %+v", got)
	}
}
