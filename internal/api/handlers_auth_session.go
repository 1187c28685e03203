package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilis/internal/models"
	"github.com/terraincognita07/fertilis/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Email, credentials.Password, handler.now())
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrAuthEmailTaken):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case err != nil:
		handler.logger.Error().Err(err).Msg("register failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return handler.respondWithSession(c, fiber.StatusCreated, &user, credentials.RememberMe)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	if !handler.loginLimiter.allow(requestLimiterKey(c), handler.now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case err != nil:
		handler.logger.Error().Err(err).Msg("login failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to login")
	}

	return handler.respondWithSession(c, fiber.StatusOK, &user, credentials.RememberMe)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) respondWithSession(c *fiber.Ctx, status int, user *models.User, rememberMe bool) error {
	token, err := handler.setAuthCookie(c, user, rememberMe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(status).JSON(sessionResponse{User: newUserResponse(user), Token: token})
}
