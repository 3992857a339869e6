package handlers

import (
	"context"
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
)

type stubMealApp struct {
	lastDate   time.Time
	lastFilter repository.RecipeFilter
	recipes    []models.MealRecipe
}

func (s *stubMealApp) PlanFor(_ context.Context, userID int64, date time.Time) (*models.UserMealPlan, error) {
	s.lastDate = date
	return &models.UserMealPlan{UserID: userID, Date: date}, nil
}

func (s *stubMealApp) ListRecipes(_ context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error) {
	s.lastFilter = filter
	return s.recipes, nil
}

func (s *stubMealApp) CampusMeals(_ context.Context) ([]models.CampusMeal, error) {
	return []models.CampusMeal{{ID: 1, Name: "Poke Bowl", Location: "Union", Price: 12}}, nil
}

func TestUserMealPlanDate(t *testing.T) {
	svc := &stubMealApp{}
	h := NewMealHandler(svc)
	h.now = func() time.Time { return time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC) }
	app := newUserApp("2", "sam")
	app.Get("/meals/user-meal-plan/", h.UserMealPlan)

	resp, _ := doJSON(t, app, http.MethodGet, "/meals/user-meal-plan/", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if svc.lastDate.Day() != 9 {
		t.Fatalf("expected default to today, got %v", svc.lastDate)
	}

	doJSON(t, app, http.MethodGet, "/meals/user-meal-plan/?date=2026-04-01", "")
	if want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC); !svc.lastDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, svc.lastDate)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/meals/user-meal-plan/?date=04/01/2026", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", resp.StatusCode)
	}
}

func TestListRecipesBuildsFilter(t *testing.T) {
	svc := &stubMealApp{recipes: []models.MealRecipe{{ID: 1}, {ID: 2}}}
	app := newUserApp("2", "sam")
	app.Get("/meals/api/meal-plans/", NewMealHandler(svc).ListRecipes)

	_, body := doJSON(t, app, http.MethodGet,
		"/meals/api/meal-plans/?meal_type=Breakfast&diet_selection=keto&goal_selection=weight-loss,strength&cooking_time=%3C10", "")
	f := svc.lastFilter
	if f.MealType != "breakfast" || f.DietSelection != "keto" {
		t.Fatalf("unexpected filter %+v", f)
	}
	if !slices.Equal(f.Goals, []string{"weight-loss", "strength"}) || !slices.Equal(f.CookingTimes, []string{"<10"}) {
		t.Fatalf("unexpected list filters %+v", f)
	}
	if meals, _ := body["meals"].([]any); len(meals) != 2 {
		t.Fatalf("expected whole listing without paging, got %v", body)
	}
	if _, ok := body["pagination"]; ok {
		t.Fatal("did not expect pagination without page params")
	}
}

func TestCampusMeals(t *testing.T) {
	app := newUserApp("2", "sam")
	app.Get("/meals/api/campus-meals/", NewMealHandler(&stubMealApp{}).CampusMeals)

	_, body := doJSON(t, app, http.MethodGet, "/meals/api/campus-meals/", "")
	if meals, _ := body["meals"].([]any); len(meals) != 1 {
		t.Fatalf("expected one campus meal, got %v", body)
	}
}
