package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
)

type stubWorkoutPlanner struct {
	workout *models.UserWorkout
	err     error
}

func (s *stubWorkoutPlanner) ForUser(context.Context, int64) (*models.UserWorkout, error) {
	return s.workout, s.err
}

type stubMealPlanner struct {
	plan *models.UserMealPlan
	err  error
	date time.Time
}

func (s *stubMealPlanner) PlanFor(_ context.Context, _ int64, date time.Time) (*models.UserMealPlan, error) {
	s.date = date
	return s.plan, s.err
}

func TestDashboardLoadAggregatesSections(t *testing.T) {
	profiles := NewProfileService(onboarding.DefaultFlow(), &stubProfileStore{profile: &models.UserProfile{}})
	meals := &stubMealPlanner{plan: &models.UserMealPlan{ID: 5}}
	workouts := &stubWorkoutPlanner{workout: &models.UserWorkout{}}
	service := NewDashboardService(profiles, meals, workouts)
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	dash, err := service.Load(context.Background(), 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if dash.ProfileView == nil || dash.Next != "/calender" {
		t.Fatalf("expected a fresh profile to resume at /calender, got %+v", dash.ProfileView)
	}
	if dash.MealPlan == nil || dash.MealPlan.ID != 5 {
		t.Fatalf("unexpected meal plan: %+v", dash.MealPlan)
	}
	if !meals.date.Equal(fixed) {
		t.Fatalf("expected plan for %v, got %v", fixed, meals.date)
	}
}

func TestDashboardLoadFailsWhole(t *testing.T) {
	tests := []struct {
		name     string
		profiles *stubProfileStore
		meals    *stubMealPlanner
		workouts *stubWorkoutPlanner
	}{
		{
			name:     "profile fails",
			profiles: &stubProfileStore{getErr: errStore},
			meals:    &stubMealPlanner{plan: &models.UserMealPlan{}},
			workouts: &stubWorkoutPlanner{workout: &models.UserWorkout{}},
		},
		{
			name:     "meal plan fails",
			profiles: &stubProfileStore{profile: &models.UserProfile{}},
			meals:    &stubMealPlanner{err: errStore},
			workouts: &stubWorkoutPlanner{workout: &models.UserWorkout{}},
		},
		{
			name:     "workout fails",
			profiles: &stubProfileStore{profile: &models.UserProfile{}},
			meals:    &stubMealPlanner{plan: &models.UserMealPlan{}},
			workouts: &stubWorkoutPlanner{err: errStore},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDashboardService(NewProfileService(onboarding.DefaultFlow(), tt.profiles), tt.meals, tt.workouts)

			dash, err := service.Load(context.Background(), 1)
			if !errors.Is(err, errStore) {
				t.Fatalf("expected store error, got %v", err)
			}
			if dash != nil {
				t.Fatal("expected no partial dashboard")
			}
		})
	}
}
