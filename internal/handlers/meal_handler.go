package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type mealApplicationService interface {
	PlanFor(ctx context.Context, userID int64, date time.Time) (*models.UserMealPlan, error)
	ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]models.MealRecipe, error)
	CampusMeals(ctx context.Context) ([]models.CampusMeal, error)
}

type MealHandler struct {
	service mealApplicationService
	now     func() time.Time
}

func NewMealHandler(service mealApplicationService) *MealHandler {
	return &MealHandler{service: service, now: time.Now}
}

// UserMealPlan serves the caller's plan for ?date=YYYY-MM-DD, default today.
func (h *MealHandler) UserMealPlan(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	date := h.now().UTC()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		date = parsed
	}

	plan, err := h.service.PlanFor(c.Context(), userID, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build meal plan"})
	}

	return c.JSON(plan)
}

func (h *MealHandler) ListRecipes(c *fiber.Ctx) error {
	filter := repository.RecipeFilter{
		MealType:       strings.ToLower(strings.TrimSpace(c.Query("meal_type"))),
		DietSelection:  strings.TrimSpace(c.Query("diet_selection")),
		DietPreference: strings.TrimSpace(c.Query("diet_preference")),
		Goals:          splitQueryList(c.Query("goal_selection")),
		CookingTimes:   splitQueryList(c.Query("cooking_time")),
	}

	recipes, err := h.service.ListRecipes(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch meal plans"})
	}

	page, limit, ok := pageParams(c.Query("page"), c.Query("limit"))
	if !ok {
		return c.JSON(fiber.Map{"meals": recipes})
	}
	return c.JSON(fiber.Map{
		"meals":      paginate(recipes, page, limit),
		"pagination": buildPaginationMeta(page, limit, len(recipes)),
	})
}

func (h *MealHandler) CampusMeals(c *fiber.Ctx) error {
	meals, err := h.service.CampusMeals(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch meals"})
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func splitQueryList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
