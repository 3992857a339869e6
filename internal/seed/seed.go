// Package seed loads reference catalog rows used in development.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is satisfied by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Options struct {
	Plans bool
}

type Result struct {
	Recipes        int64
	Exercises      int64
	MasterWorkouts int64
	CampusMeals    int64
	Plans          int64
}

// Run inserts every catalog that is still empty. Rows with a natural key are
// skipped on conflict so a second run is a no-op.
func Run(ctx context.Context, db DB, opts Options) (Result, error) {
	var res Result
	var err error

	if res.Recipes, err = seedRecipes(ctx, db); err != nil {
		return res, fmt.Errorf("seed recipes: %w", err)
	}
	if res.Exercises, err = seedExercises(ctx, db); err != nil {
		return res, fmt.Errorf("seed exercises: %w", err)
	}
	if res.MasterWorkouts, err = seedMasterWorkouts(ctx, db); err != nil {
		return res, fmt.Errorf("seed master workouts: %w", err)
	}
	if res.CampusMeals, err = seedCampusMeals(ctx, db); err != nil {
		return res, fmt.Errorf("seed campus meals: %w", err)
	}
	if opts.Plans {
		if res.Plans, err = seedPlans(ctx, db); err != nil {
			return res, fmt.Errorf("seed plans: %w", err)
		}
	}

	log.Printf("Seeded %d recipes, %d exercises, %d master workouts, %d campus meals, %d plans",
		res.Recipes, res.Exercises, res.MasterWorkouts, res.CampusMeals, res.Plans)
	return res, nil
}

func isEmpty(ctx context.Context, db DB, table string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+pgx.Identifier{table}.Sanitize()+`)`).Scan(&exists)
	return !exists, err
}

func seedRecipes(ctx context.Context, db DB) (int64, error) {
	empty, err := isEmpty(ctx, db, "meal_plans")
	if err != nil || !empty {
		return 0, err
	}
	rows := RecipeRows()
	return db.CopyFrom(ctx, pgx.Identifier{"meal_plans"}, []string{
		"name", "meal_type", "diet_selection", "diet_preference", "goal_selection", "cooking_time",
		"calories", "protein", "carbs", "fat", "recipe_link", "instructions",
	}, pgx.CopyFromRows(rows))
}

// RecipeRows builds one recipe per meal type, diet, preference and cooking
// time. Goals, names and macros rotate so every goal is represented.
func RecipeRows() [][]any {
	goals := onboarding.Goals.IDs()
	var rows [][]any
	i := 0
	for _, mealType := range onboarding.MealTypes.IDs() {
		names := mealNames[mealType]
		for _, diet := range onboarding.DietSelections.IDs() {
			for _, pref := range onboarding.DietPreferences.IDs() {
				for _, cooking := range onboarding.CookingTimes.IDs() {
					rows = append(rows, []any{
						names[i%len(names)],
						mealType,
						diet,
						pref,
						goals[i%len(goals)],
						cooking,
						200 + (i*37)%600,
						10 + float64((i*7)%300)/10,
						20 + float64((i*11)%600)/10,
						5 + float64((i*13)%250)/10,
						recipeLinks[i%len(recipeLinks)],
						recipeInstructions[i%len(recipeInstructions)],
					})
					i++
				}
			}
		}
	}
	return rows
}

func seedExercises(ctx context.Context, db DB) (int64, error) {
	var n int64
	for _, e := range exercises {
		tag, err := db.Exec(ctx, `
			INSERT INTO exercises (name, body_part, description, exercise_type, difficulty,
				impact_level, instructions, duration, sets, reps, video_link)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (name) DO NOTHING`,
			e.Name, e.BodyPart, e.Description, e.ExerciseType, e.Difficulty,
			e.ImpactLevel, e.Instructions, e.Duration, e.Sets, e.Reps, e.VideoLink)
		if err != nil {
			return n, err
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

func seedMasterWorkouts(ctx context.Context, db DB) (int64, error) {
	var n int64
	for _, w := range masterWorkouts {
		tag, err := db.Exec(ctx, `
			INSERT INTO master_workouts (name, instructions, video_url)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			w.Name, w.Instructions, w.VideoURL)
		if err != nil {
			return n, err
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

func seedCampusMeals(ctx context.Context, db DB) (int64, error) {
	empty, err := isEmpty(ctx, db, "campus_meals")
	if err != nil || !empty {
		return 0, err
	}
	var n int64
	for _, m := range campusMeals {
		tag, err := db.Exec(ctx,
			`INSERT INTO campus_meals (name, location, price, url) VALUES ($1, $2, $3, $4)`,
			m.Name, m.Location, m.Price, m.URL)
		if err != nil {
			return n, err
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

func seedPlans(ctx context.Context, db DB) (int64, error) {
	var n int64
	for _, p := range demoPlans {
		tag, err := insertPlan(ctx, db, p)
		if err != nil {
			return n, err
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

func insertPlan(ctx context.Context, db DB, p models.Plan) (pgconn.CommandTag, error) {
	return db.Exec(ctx, `
		INSERT INTO plans (name, description, price, currency, billing_interval, product_id, price_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING`,
		p.Name, p.Description, p.Price, p.Currency, p.Interval, p.ProductID, p.PriceID)
}
