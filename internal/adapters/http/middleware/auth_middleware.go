package middleware

import (
	"errors"
	"strings"

	"repairdesk/internal/adapters/persistence/repositories"
	"repairdesk/internal/config"
	"repairdesk/internal/core/domain"
	"repairdesk/internal/pkg/jwt"
	"repairdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates a route behind a bearer token. The token is verified on
// every request and the admin it names is re-resolved from the credential
// store, so a token for a deleted admin stops working immediately.
func AuthRequired(cfg *config.Config, adminRepo repositories.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Not authorized, no token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(tokenString, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Token failed")
		}

		admin, err := adminRepo.GetByID(c.Context(), claims.AdminID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return response.Unauthorized(c, "Not authorized")
			}
			return err
		}

		c.Locals("admin", admin.ToResponse())
		c.Locals("adminID", admin.ID)

		return c.Next()
	}
}
