package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/cufit/cufit-backend/internal/middleware"
	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/cufit/cufit-backend/internal/services"
	"github.com/cufit/cufit-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	TokenStorageKey = "token"
	welcomeTimeout  = 15 * time.Second
)

type authUserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type profileCreator interface {
	CreateEmpty(ctx context.Context, userID int64) error
}

type AuthHandler struct {
	db        services.TxBeginner
	users     authUserStore
	profiles  profileCreator
	mailer    services.Mailer
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthHandler creates the user and profile rows in one transaction when
// db is non-nil, and through users and profiles directly otherwise.
func NewAuthHandler(
	db services.TxBeginner,
	users authUserStore,
	profiles profileCreator,
	mailer services.Mailer,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		db:        db,
		users:     users,
		profiles:  profiles,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := validateSignupRequest(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if existing, err := h.users.GetByUsername(c.Context(), req.Username); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already exists"})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check username"})
	}
	if existing, err := h.users.GetByEmail(c.Context(), req.Email); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check email"})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := h.createAccount(c.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Username or email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create user"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Username, h.jwtSecret, h.tokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	h.sendWelcome(user.Email, user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  userPayload(user),
	})
}

func (h *AuthHandler) createAccount(ctx context.Context, user *models.User) error {
	if h.db == nil {
		if err := h.users.CreateUser(ctx, user); err != nil {
			return err
		}
		return h.profiles.CreateEmpty(ctx, user.ID)
	}

	tx, err := h.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := repository.NewUserRepository(tx).CreateUser(ctx, user); err != nil {
		return err
	}
	if err := repository.NewUserProfileRepository(tx).CreateEmpty(ctx, user.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// sendWelcome mails in the background. Signup never fails on email.
func (h *AuthHandler) sendWelcome(email, username string) {
	if h.mailer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), welcomeTimeout)
		defer cancel()
		if err := h.mailer.SendWelcome(ctx, email, username); err != nil {
			log.Printf("welcome email to %s: %v", email, err)
		}
	}()
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	user, err := h.users.GetByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Invalid username or password"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to lookup user"})
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Invalid username or password"})
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), user.Username, h.jwtSecret, h.tokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  userPayload(user),
	})
}

// Config tells clients where to keep the token and how to send it.
func (h *AuthHandler) Config(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"storage_key": TokenStorageKey,
		"header":      fiber.HeaderAuthorization,
		"scheme":      middleware.AuthScheme,
	})
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}
