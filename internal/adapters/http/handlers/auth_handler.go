package handlers

import (
	"errors"
	"strings"

	"repairdesk/internal/core/domain"
	"repairdesk/internal/core/services"
	"repairdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles admin registration and login
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest represents the register/login request body
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles admin registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	token, err := h.authService.Register(c.Context(), req.Username, req.Password)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrAdminAlreadyExists):
			return response.BadRequest(c, "Admin already exists")
		case errors.As(err, &verr):
			return response.ValidationFailed(c, verr.Details)
		default:
			return response.InternalServerError(c, "Server error")
		}
	}

	return response.WithToken(c, fiber.StatusCreated, "Admin registered successfully", token)
}

// Login handles admin login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	token, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Server error")
	}

	return response.WithToken(c, fiber.StatusOK, "Login successful", token)
}
