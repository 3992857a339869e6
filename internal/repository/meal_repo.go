package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

const recipeColumns = `
	id, name, meal_type, diet_selection, diet_preference, goal_selection, cooking_time,
	calories, protein, carbs, fat, recipe_link, instructions`

type RecipeFilter struct {
	MealType       string
	DietSelection  string
	DietPreference string
	Goals          []string
	CookingTimes   []string
	Limit          int
}

type MealRepository struct {
	db DBTX
}

func NewMealRepository(db DBTX) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) ListRecipes(ctx context.Context, filter RecipeFilter) ([]models.MealRecipe, error) {
	var (
		args       []any
		whereParts []string
	)
	addEq := func(column, value string) {
		if value = strings.TrimSpace(value); value != "" {
			args = append(args, value)
			whereParts = append(whereParts, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	addEq("meal_type", filter.MealType)
	addEq("diet_selection", filter.DietSelection)
	addEq("diet_preference", filter.DietPreference)
	if len(filter.Goals) > 0 {
		args = append(args, filter.Goals)
		whereParts = append(whereParts, fmt.Sprintf("goal_selection = ANY($%d)", len(args)))
	}
	if len(filter.CookingTimes) > 0 {
		args = append(args, filter.CookingTimes)
		whereParts = append(whereParts, fmt.Sprintf("cooking_time = ANY($%d)", len(args)))
	}

	query := `SELECT ` + recipeColumns + ` FROM meal_plans`
	if len(whereParts) > 0 {
		query += ` WHERE ` + strings.Join(whereParts, " AND ")
	}
	query += ` ORDER BY id ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectRecipes(rows)
}

// GetOrCreatePlan returns the plan row for the user and day, creating it on
// first access. created reports whether the row is new.
func (r *MealRepository) GetOrCreatePlan(ctx context.Context, userID int64, date time.Time) (plan *models.UserMealPlan, created bool, err error) {
	query := `
		INSERT INTO user_meal_plans (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING id
	`
	plan = &models.UserMealPlan{UserID: userID, Date: date}
	err = r.db.QueryRow(ctx, query, userID, date).Scan(&plan.ID)
	if err == nil {
		return plan, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	query = `SELECT id FROM user_meal_plans WHERE user_id = $1 AND date = $2`
	if err := r.db.QueryRow(ctx, query, userID, date).Scan(&plan.ID); err != nil {
		return nil, false, err
	}
	return plan, false, nil
}

func (r *MealRepository) AddPlanItem(ctx context.Context, planID int64, mealType string, recipeID int64) error {
	query := `
		INSERT INTO user_meal_plan_items (user_meal_plan_id, meal_type, meal_plan_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, planID, mealType, recipeID)
	return err
}

// LoadPlanItems fills the per-meal-type lists of plan.
func (r *MealRepository) LoadPlanItems(ctx context.Context, plan *models.UserMealPlan) error {
	query := `
		SELECT i.meal_type, m.id, m.name, m.meal_type, m.diet_selection, m.diet_preference,
			   m.goal_selection, m.cooking_time, m.calories, m.protein, m.carbs, m.fat,
			   m.recipe_link, m.instructions
		FROM user_meal_plan_items i
		JOIN meal_plans m ON m.id = i.meal_plan_id
		WHERE i.user_meal_plan_id = $1
		ORDER BY i.id ASC
	`
	rows, err := r.db.Query(ctx, query, plan.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	plan.Breakfast, plan.Lunch, plan.Dinner, plan.Snacks = []models.MealRecipe{}, []models.MealRecipe{}, []models.MealRecipe{}, []models.MealRecipe{}
	for rows.Next() {
		var slot string
		var recipe models.MealRecipe
		if err := rows.Scan(
			&slot,
			&recipe.ID,
			&recipe.Name,
			&recipe.MealType,
			&recipe.DietSelection,
			&recipe.DietPreference,
			&recipe.GoalSelection,
			&recipe.CookingTime,
			&recipe.Calories,
			&recipe.Protein,
			&recipe.Carbs,
			&recipe.Fat,
			&recipe.RecipeLink,
			&recipe.Instructions,
		); err != nil {
			return err
		}
		switch slot {
		case "breakfast":
			plan.Breakfast = append(plan.Breakfast, recipe)
		case "lunch":
			plan.Lunch = append(plan.Lunch, recipe)
		case "dinner":
			plan.Dinner = append(plan.Dinner, recipe)
		case "snacks":
			plan.Snacks = append(plan.Snacks, recipe)
		}
	}
	return rows.Err()
}

func (r *MealRepository) ListCampusMeals(ctx context.Context) ([]models.CampusMeal, error) {
	query := `SELECT id, name, location, price, url FROM campus_meals ORDER BY name ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := make([]models.CampusMeal, 0)
	for rows.Next() {
		var meal models.CampusMeal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Location, &meal.Price, &meal.URL); err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}

func collectRecipes(rows pgx.Rows) ([]models.MealRecipe, error) {
	defer rows.Close()

	recipes := make([]models.MealRecipe, 0)
	for rows.Next() {
		var recipe models.MealRecipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Name,
			&recipe.MealType,
			&recipe.DietSelection,
			&recipe.DietPreference,
			&recipe.GoalSelection,
			&recipe.CookingTime,
			&recipe.Calories,
			&recipe.Protein,
			&recipe.Carbs,
			&recipe.Fat,
			&recipe.RecipeLink,
			&recipe.Instructions,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}
