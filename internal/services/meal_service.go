package services

import (
	"context"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// RecipesPerMealType caps how many recipes a fresh plan gets for each meal.
const RecipesPerMealType = 3

type MealStore interface {
	ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error)
	GetOrCreatePlan(ctx context.Context, userID int64, date time.Time) (*models.UserMealPlan, bool, error)
	AddPlanItem(ctx context.Context, planID int64, mealType string, recipeID int64) error
	LoadPlanItems(ctx context.Context, plan *models.UserMealPlan) error
	ListCampusMeals(ctx context.Context) ([]models.CampusMeal, error)
}

type MealService struct {
	db       TxBeginner
	meals    MealStore
	profiles profileReader
}

// NewMealService builds plans inside a transaction when db is non-nil.
func NewMealService(db TxBeginner, meals MealStore, profiles profileReader) *MealService {
	return &MealService{db: db, meals: meals, profiles: profiles}
}

// PlanFor returns the caller's plan for the day, filling it from the recipe
// catalog the first time it is requested.
func (s *MealService) PlanFor(ctx context.Context, userID int64, date time.Time) (*models.UserMealPlan, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var plan *models.UserMealPlan
	err = s.inTx(ctx, func(store MealStore) error {
		var err error
		plan, _, err = store.GetOrCreatePlan(ctx, userID, day)
		if err != nil {
			return err
		}
		if err := store.LoadPlanItems(ctx, plan); err != nil {
			return err
		}
		if planSize(plan) > 0 {
			return nil
		}
		if err := fillPlan(ctx, store, plan, profile); err != nil {
			return err
		}
		return store.LoadPlanItems(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	for _, list := range [][]models.MealRecipe{plan.Breakfast, plan.Lunch, plan.Dinner, plan.Snacks} {
		renderInstructions(list)
	}
	return plan, nil
}

func (s *MealService) ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error) {
	recipes, err := s.meals.ListRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}
	renderInstructions(recipes)
	return recipes, nil
}

func (s *MealService) CampusMeals(ctx context.Context) ([]models.CampusMeal, error) {
	return s.meals.ListCampusMeals(ctx)
}

func (s *MealService) inTx(ctx context.Context, fn func(MealStore) error) error {
	if s.db == nil {
		return fn(s.meals)
	}
	return runInTx(ctx, s.db, func(tx pgx.Tx) error {
		return fn(repository.NewMealRepository(tx))
	})
}

func fillPlan(ctx context.Context, store MealStore, plan *models.UserMealPlan, profile *models.UserProfile) error {
	base := RecipeFilterFor(profile)
	for _, mealType := range plannedMealTypes(profile) {
		filter := base
		filter.MealType = mealType
		filter.Limit = RecipesPerMealType
		recipes, err := store.ListRecipes(ctx, filter)
		if err != nil {
			return err
		}
		for _, recipe := range recipes {
			if err := store.AddPlanItem(ctx, plan.ID, mealType, recipe.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecipeFilterFor matches recipes against the profile's diet, goals and
// cooking time. Unset preferences do not filter.
func RecipeFilterFor(profile *models.UserProfile) repository.RecipeFilter {
	var filter repository.RecipeFilter
	if profile.DietSelection != nil {
		filter.DietSelection = *profile.DietSelection
	}
	if profile.DietPreference != nil {
		filter.DietPreference = *profile.DietPreference
	}
	if profile.GoalSelection != nil {
		filter.Goals = *profile.GoalSelection
	}
	if profile.CookingTimePreference != nil {
		filter.CookingTimes = CookingTimesUpTo(*profile.CookingTimePreference)
	}
	return filter
}

// CookingTimesUpTo lists the cooking time ids no longer than pref.
func CookingTimesUpTo(pref string) []string {
	idx := onboarding.CookingTimes.Index(pref)
	if idx < 0 {
		return nil
	}
	return onboarding.CookingTimes.IDs()[:idx+1]
}

func plannedMealTypes(profile *models.UserProfile) []string {
	if profile.MealPlanSelection != nil && len(*profile.MealPlanSelection) > 0 {
		return *profile.MealPlanSelection
	}
	return onboarding.MealTypes.IDs()
}

func planSize(plan *models.UserMealPlan) int {
	return len(plan.Breakfast) + len(plan.Lunch) + len(plan.Dinner) + len(plan.Snacks)
}

func renderInstructions(recipes []models.MealRecipe) {
	for i := range recipes {
		if recipes[i].Instructions != "" {
			recipes[i].InstructionsHTML = renderMarkdown(recipes[i].Instructions)
		}
	}
}
