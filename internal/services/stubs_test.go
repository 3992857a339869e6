package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

func strPtr(v string) *string { return &v }

func listPtr(v ...string) *[]string { return &v }

type stubProfileStore struct {
	profile   *models.UserProfile
	getErr    error
	updateErr error
	patches   []models.ProfilePatch
}

func (s *stubProfileStore) GetByUserID(_ context.Context, userID int64) (*models.UserProfile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.profile == nil {
		return nil, pgx.ErrNoRows
	}
	copied := *s.profile
	copied.UserID = userID
	return &copied, nil
}

func (s *stubProfileStore) UpdatePartial(_ context.Context, userID int64, patch models.ProfilePatch) (*models.UserProfile, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.patches = append(s.patches, patch)
	if s.profile == nil {
		s.profile = &models.UserProfile{UserID: userID}
	}
	p := s.profile
	if patch.GoalSelection != nil {
		p.GoalSelection = patch.GoalSelection
	}
	if patch.DietSelection != nil {
		p.DietSelection = patch.DietSelection
	}
	if patch.ExerciseDifficulty != nil {
		p.ExerciseDifficulty = patch.ExerciseDifficulty
	}
	if patch.StretchingPreference != nil {
		p.StretchingPreference = *patch.StretchingPreference
	}
	if patch.PainAndInjury != nil {
		p.PainAndInjury = patch.PainAndInjury
	}
	if patch.RestrictedExercises != nil {
		p.RestrictedExercises = patch.RestrictedExercises
	}
	if patch.OnboardingStep != nil {
		p.OnboardingStep = patch.OnboardingStep
	}
	if patch.OnboardingComplete != nil {
		p.OnboardingComplete = *patch.OnboardingComplete
	}
	copied := *p
	return &copied, nil
}

type stubMealStore struct {
	recipes  []models.MealRecipe
	filters  []repository.RecipeFilter
	plan     *models.UserMealPlan
	items    map[string][]int64
	campus   []models.CampusMeal
	listErr  error
	planErr  error
	addCalls int
}

func (s *stubMealStore) ListRecipes(_ context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error) {
	s.filters = append(s.filters, filter)
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.MealRecipe, 0)
	for _, r := range s.recipes {
		if filter.MealType != "" && r.MealType != filter.MealType {
			continue
		}
		if filter.DietSelection != "" && r.DietSelection != filter.DietSelection {
			continue
		}
		out = append(out, r)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *stubMealStore) GetOrCreatePlan(_ context.Context, userID int64, date time.Time) (*models.UserMealPlan, bool, error) {
	if s.planErr != nil {
		return nil, false, s.planErr
	}
	if s.plan == nil {
		s.plan = &models.UserMealPlan{ID: 1, UserID: userID, Date: date}
		return s.plan, true, nil
	}
	return s.plan, false, nil
}

func (s *stubMealStore) AddPlanItem(_ context.Context, _ int64, mealType string, recipeID int64) error {
	s.addCalls++
	if s.items == nil {
		s.items = make(map[string][]int64)
	}
	if !slices.Contains(s.items[mealType], recipeID) {
		s.items[mealType] = append(s.items[mealType], recipeID)
	}
	return nil
}

func (s *stubMealStore) LoadPlanItems(_ context.Context, plan *models.UserMealPlan) error {
	plan.Breakfast, plan.Lunch, plan.Dinner, plan.Snacks = nil, nil, nil, nil
	for mealType, ids := range s.items {
		for _, id := range ids {
			for _, r := range s.recipes {
				if r.ID != id {
					continue
				}
				switch mealType {
				case "breakfast":
					plan.Breakfast = append(plan.Breakfast, r)
				case "lunch":
					plan.Lunch = append(plan.Lunch, r)
				case "dinner":
					plan.Dinner = append(plan.Dinner, r)
				case "snacks":
					plan.Snacks = append(plan.Snacks, r)
				}
			}
		}
	}
	return nil
}

func (s *stubMealStore) ListCampusMeals(_ context.Context) ([]models.CampusMeal, error) {
	return s.campus, nil
}

type stubExerciseStore struct {
	exercises []models.Exercise
	workouts  []models.MasterWorkout
	filters   []repository.ExerciseFilter
	names     [][]string
	err       error
}

func (s *stubExerciseStore) List(_ context.Context, filter repository.ExerciseFilter) ([]models.Exercise, error) {
	s.filters = append(s.filters, filter)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Exercise, 0)
	for _, e := range s.exercises {
		if len(filter.Names) > 0 && !slices.Contains(filter.Names, e.Name) {
			continue
		}
		if slices.Contains(filter.ExcludeNames, e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *stubExerciseStore) ListMasterWorkouts(_ context.Context, names []string) ([]models.MasterWorkout, error) {
	s.names = append(s.names, names)
	return s.workouts, nil
}

type stubUserStore struct {
	user        *models.User
	customerIDs []string
	planIDs     []int64
}

func (s *stubUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if s.user == nil {
		return nil, pgx.ErrNoRows
	}
	copied := *s.user
	copied.ID = id
	return &copied, nil
}

func (s *stubUserStore) SetStripeCustomer(_ context.Context, _ int64, customerID string) error {
	s.customerIDs = append(s.customerIDs, customerID)
	s.user.StripeCustomerID = &customerID
	return nil
}

func (s *stubUserStore) SetSelectedPlan(_ context.Context, _ int64, planID int64) error {
	s.planIDs = append(s.planIDs, planID)
	return nil
}

var errStore = errors.New("store unavailable")
