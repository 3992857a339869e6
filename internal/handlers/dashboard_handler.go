package handlers

import (
	"context"
	"errors"

	"github.com/cufit/cufit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type dashboardLoader interface {
	Load(ctx context.Context, userID int64) (*services.Dashboard, error)
}

type DashboardHandler struct {
	service dashboardLoader
}

func NewDashboardHandler(service dashboardLoader) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	dash, err := h.service.Load(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	username, _ := c.Locals("username").(string)
	return c.JSON(fiber.Map{
		"username":            username,
		"profile":             dash.Profile,
		"display":             dash.Display,
		"next":                dash.Next,
		"onboarding_complete": dash.OnboardingComplete,
		"meal_plan":           dash.MealPlan,
		"workout":             dash.Workout,
	})
}
