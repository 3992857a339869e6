package handlers

import (
	"context"
	"errors"

	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/cufit/cufit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type stepSubmitter interface {
	SubmitStep(ctx context.Context, userID int64, stepID string, sub onboarding.Submission) (*services.StepResult, error)
}

type OnboardingHandler struct {
	flow    *onboarding.Flow
	service stepSubmitter
}

func NewOnboardingHandler(flow *onboarding.Flow, service stepSubmitter) *OnboardingHandler {
	return &OnboardingHandler{flow: flow, service: service}
}

func (h *OnboardingHandler) Flow(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"steps":     h.flow.Steps(),
		"dashboard": onboarding.DashboardPath,
		"edit_hub":  onboarding.EditHubPath,
	})
}

func (h *OnboardingHandler) EditHub(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"path":    onboarding.EditHubPath,
		"entries": h.flow.EditHub(),
	})
}

func (h *OnboardingHandler) SubmitStep(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var sub onboarding.Submission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if c.QueryBool("editing") {
		sub.Editing = true
	}

	result, err := h.service.SubmitStep(c.Context(), userID, c.Params("step"), sub)
	if err != nil {
		return mapStepError(c, err)
	}
	return c.JSON(result)
}

// BMI computes without saving.
func (h *OnboardingHandler) BMI(c *fiber.Ctx) error {
	var in onboarding.BMIInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := onboarding.CalculateBMI(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "field": "bmi"})
	}
	return c.JSON(result)
}

func mapStepError(c *fiber.Ctx, err error) error {
	if handled, respErr := respondValidation(c, err); handled {
		return respErr
	}
	switch {
	case errors.Is(err, onboarding.ErrUnknownStep):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown onboarding step"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save preferences"})
	}
}
