package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the session user. Users holding a temporary password
// may only change it or log out.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !allowedDuringPasswordChange(c.Path()) {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}
	return c.Next()
}

func allowedDuringPasswordChange(path string) bool {
	switch path {
	case "/api/settings/password", "/api/auth/logout":
		return true
	default:
		return false
	}
}
