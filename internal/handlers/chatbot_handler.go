package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cufit/cufit-backend/internal/middleware"
	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/services"
	chatws "github.com/cufit/cufit-backend/internal/websocket"
	"github.com/cufit/cufit-backend/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type chatbotApplicationService interface {
	Enabled() bool
	Reply(ctx context.Context, userID int64, message string, history []models.ChatMessage) (string, error)
}

type ChatbotHandler struct {
	service   chatbotApplicationService
	hub       *chatws.Hub
	jwtSecret string
}

type chatRequest struct {
	Message string               `json:"message"`
	History []models.ChatMessage `json:"history"`
}

func NewChatbotHandler(service chatbotApplicationService, hub *chatws.Hub, jwtSecret string) *ChatbotHandler {
	return &ChatbotHandler{
		service:   service,
		hub:       hub,
		jwtSecret: jwtSecret,
	}
}

func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chatbot is not configured"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	reply, err := h.service.Reply(c.Context(), userID, req.Message, req.History)
	if err != nil {
		return mapChatbotError(c, userID, err)
	}
	return c.JSON(fiber.Map{"reply": reply})
}

// WebSocketAuth also accepts ?token= since browsers cannot set headers on a
// websocket upgrade.
func (h *ChatbotHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	if !h.service.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chatbot is not configured"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	middleware.SetCaller(c, claims)
	return c.Next()
}

func (h *ChatbotHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := chatws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.service)
}

func (h *ChatbotHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		tokenString, _ = middleware.BearerToken(c.Get(fiber.HeaderAuthorization))
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}

func mapChatbotError(c *fiber.Ctx, userID int64, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No message provided", "field": "message"})
	case errors.Is(err, services.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Chatbot is not configured"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User profile not found"})
	case errors.Is(err, services.ErrUpstream):
		log.Printf("chatbot reply for user %d: %v", userID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": services.FallbackReply})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process chat request"})
	}
}
