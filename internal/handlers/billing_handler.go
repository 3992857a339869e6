package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type billingApplicationService interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	Checkout(ctx context.Context, userID int64, planName string) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (bool, error)
}

type BillingHandler struct {
	service billingApplicationService
}

func NewBillingHandler(service billingApplicationService) *BillingHandler {
	return &BillingHandler{service: service}
}

func (h *BillingHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.service.ListPlans(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch plans"})
	}
	return c.JSON(fiber.Map{"plans": plans})
}

func (h *BillingHandler) CheckoutSession(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req struct {
		PlanName string `json:"plan_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.PlanName = strings.TrimSpace(req.PlanName)
	if req.PlanName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plan_name is required", "field": "plan_name"})
	}

	url, err := h.service.Checkout(c.Context(), userID, req.PlanName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
		case errors.Is(err, services.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Billing is not configured"})
		case errors.Is(err, services.ErrUpstream):
			log.Printf("checkout for user %d: %v", userID, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment provider error"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start checkout"})
		}
	}

	return c.JSON(fiber.Map{"session_url": url})
}

func (h *BillingHandler) Webhook(c *fiber.Ctx) error {
	handled, err := h.service.HandleWebhook(c.Context(), c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid signature"})
		case errors.Is(err, services.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Billing is not configured"})
		default:
			log.Printf("billing webhook: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
		}
	}

	return c.JSON(fiber.Map{"status": "success", "handled": handled})
}
