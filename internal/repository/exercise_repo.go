package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
)

type ExerciseFilter struct {
	// Names limits the result to exercises with one of these names.
	Names         []string
	ExcludeNames  []string
	Difficulty    string
	ImpactLevel   string
	BodyPart      string
	ExerciseTypes []string
	Limit         int
}

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) List(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	var (
		args       []any
		whereParts []string
	)
	if len(filter.Names) > 0 {
		args = append(args, filter.Names)
		whereParts = append(whereParts, fmt.Sprintf("name = ANY($%d)", len(args)))
	}
	if len(filter.ExcludeNames) > 0 {
		args = append(args, filter.ExcludeNames)
		whereParts = append(whereParts, fmt.Sprintf("NOT (name = ANY($%d))", len(args)))
	}
	if difficulty := strings.TrimSpace(filter.Difficulty); difficulty != "" {
		args = append(args, difficulty)
		whereParts = append(whereParts, fmt.Sprintf("LOWER(difficulty) = LOWER($%d)", len(args)))
	}
	if impact := strings.TrimSpace(filter.ImpactLevel); impact != "" {
		args = append(args, impact)
		whereParts = append(whereParts, fmt.Sprintf("LOWER(impact_level) = LOWER($%d)", len(args)))
	}
	if bodyPart := strings.TrimSpace(filter.BodyPart); bodyPart != "" {
		args = append(args, bodyPart)
		whereParts = append(whereParts, fmt.Sprintf("LOWER(body_part) = LOWER($%d)", len(args)))
	}
	if len(filter.ExerciseTypes) > 0 {
		args = append(args, filter.ExerciseTypes)
		whereParts = append(whereParts, fmt.Sprintf("exercise_type = ANY($%d)", len(args)))
	}

	query := `
		SELECT id, name, body_part, description, exercise_type, difficulty, impact_level,
			   instructions, duration, sets, reps, video_link
		FROM exercises`
	if len(whereParts) > 0 {
		query += ` WHERE ` + strings.Join(whereParts, " AND ")
	}
	query += ` ORDER BY name ASC, id ASC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.BodyPart,
			&exercise.Description,
			&exercise.ExerciseType,
			&exercise.Difficulty,
			&exercise.ImpactLevel,
			&exercise.Instructions,
			&exercise.Duration,
			&exercise.Sets,
			&exercise.Reps,
			&exercise.VideoLink,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// ListMasterWorkouts returns workout videos, limited to names when given.
func (r *ExerciseRepository) ListMasterWorkouts(ctx context.Context, names []string) ([]models.MasterWorkout, error) {
	query := `SELECT id, name, instructions, video_url FROM master_workouts`
	var args []any
	if len(names) > 0 {
		query += ` WHERE name = ANY($1)`
		args = append(args, names)
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.MasterWorkout, 0)
	for rows.Next() {
		var workout models.MasterWorkout
		if err := rows.Scan(&workout.ID, &workout.Name, &workout.Instructions, &workout.VideoURL); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
