package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type workoutApplicationService interface {
	ListExercises(ctx context.Context, painAreas []string) ([]models.Exercise, error)
	MasterWorkouts(ctx context.Context, painAreas []string) ([]models.MasterWorkout, error)
	ForUser(ctx context.Context, userID int64) (*models.UserWorkout, error)
}

type WorkoutHandler struct {
	service workoutApplicationService
	steps   stepSubmitter
}

func NewWorkoutHandler(service workoutApplicationService, steps stepSubmitter) *WorkoutHandler {
	return &WorkoutHandler{service: service, steps: steps}
}

func (h *WorkoutHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.service.ListExercises(c.Context(), painAreaQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}

	page, limit, ok := pageParams(c.Query("page"), c.Query("limit"))
	if !ok {
		return c.JSON(fiber.Map{"exercises": exercises})
	}
	return c.JSON(fiber.Map{
		"exercises":  paginate(exercises, page, limit),
		"pagination": buildPaginationMeta(page, limit, len(exercises)),
	})
}

func (h *WorkoutHandler) MasterWorkouts(c *fiber.Ctx) error {
	workouts, err := h.service.MasterWorkouts(c.Context(), painAreaQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}
	return c.JSON(fiber.Map{"workout_master": workouts})
}

func (h *WorkoutHandler) UserWorkout(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	workout, err := h.service.ForUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout"})
	}
	return c.JSON(workout)
}

// UpdateExerciseRoutine accepts pain_and_injury as stored text or a list of
// items and saves it through the pain-injury step.
func (h *WorkoutHandler) UpdateExerciseRoutine(c *fiber.Ctx) error {
	var req struct {
		PainAndInjury json.RawMessage `json:"pain_and_injury"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	items, err := stringOrList(req.PainAndInjury)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pain_and_injury must be a string or a list", "field": "pain_and_injury"})
	}

	parsed := onboarding.ParsePainAndInjury(strings.Join(items, ","))
	result, ok, err := h.submit(c, "pain-injury", onboarding.Submission{PainInjury: &parsed})
	if !ok {
		return err
	}

	restricted := []string{}
	if result.Profile != nil && result.Profile.RestrictedExercises != nil {
		restricted = *result.Profile.RestrictedExercises
	}
	return c.JSON(fiber.Map{
		"message":              "Exercise routine updated successfully!",
		"restricted_exercises": restricted,
		"next":                 result.Next,
	})
}

// SaveEquipment replaces the equipment list. Both "equipment" and the older
// "workout_equipment" keys are read.
func (h *WorkoutHandler) SaveEquipment(c *fiber.Ctx) error {
	var req struct {
		Equipment        json.RawMessage `json:"equipment"`
		WorkoutEquipment json.RawMessage `json:"workout_equipment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	raw := req.Equipment
	if len(raw) == 0 {
		raw = req.WorkoutEquipment
	}
	items, err := stringOrList(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "equipment must be a string or a list", "field": "equipment"})
	}

	result, ok, err := h.submit(c, "equipment", onboarding.Submission{Selected: items})
	if !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Equipment saved successfully!",
		"profile": result.Profile,
		"next":    result.Next,
	})
}

func (h *WorkoutHandler) UpdateStretching(c *fiber.Ctx) error {
	var req struct {
		StretchingPreference *bool `json:"stretching_preference"`
		Enabled              *bool `json:"enabled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	enabled := req.StretchingPreference
	if enabled == nil {
		enabled = req.Enabled
	}

	result, ok, err := h.submit(c, "stretching", onboarding.Submission{Enabled: enabled})
	if !ok {
		return err
	}
	return c.JSON(fiber.Map{
		"message":               "Stretching preference updated successfully!",
		"stretching_preference": result.Profile != nil && result.Profile.StretchingPreference,
		"next":                  result.Next,
	})
}

// ExerciseDifficulty is the older single-field form of the
// exercise-difficulty step.
func (h *WorkoutHandler) ExerciseDifficulty(c *fiber.Ctx) error {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, ok, err := h.submit(c, "exercise-difficulty", onboarding.Submission{Selected: []string{req.Difficulty}})
	if !ok {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Exercise difficulty updated successfully!",
		"next":    result.Next,
	})
}

// submit runs one step for the caller. When ok is false the response has
// already been written and err is what the handler should return.
func (h *WorkoutHandler) submit(c *fiber.Ctx, stepID string, sub onboarding.Submission) (result *services.StepResult, ok bool, err error) {
	userID, perr := parseUserID(c)
	if perr != nil {
		return nil, false, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	sub.Editing = c.QueryBool("editing")

	res, serr := h.steps.SubmitStep(c.Context(), userID, stepID, sub)
	if serr != nil {
		return nil, false, mapStepError(c, serr)
	}
	return res, true, nil
}

func painAreaQuery(c *fiber.Ctx) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("pain_and_injury") {
		out = append(out, splitQueryList(string(raw))...)
	}
	return out
}

func stringOrList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil, err
	}
	return splitQueryList(joined), nil
}
