package handlers

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/cufit/cufit-backend/internal/onboarding"
	"github.com/gofiber/fiber/v2"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

func validateSignupRequest(req *signupRequest) string {
	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < minUsernameLength {
		return "username must be at least 3 characters"
	}
	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return "Invalid email format"
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if len(req.Password) < minPasswordLength {
		return "Password must be at least 6 characters"
	}
	return ""
}

// respondValidation writes a 400 naming the offending field when err is a
// field validation error. It reports false for any other error.
func respondValidation(c *fiber.Ctx, err error) (bool, error) {
	var verr *onboarding.ValidationError
	if !errors.As(err, &verr) {
		return false, nil
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": verr.Error(),
		"field": verr.Field,
	})
}
