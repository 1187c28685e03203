package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilis/internal/models"
	"github.com/terraincognita07/fertilis/internal/services"
)

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.settingsService.LoadSettings(user.ID)
	if err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("load settings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(newCycleSettingsResponse(settings))
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}

	settingsInput := services.CycleSettingsInput{
		CycleLength:        input.CycleLength,
		LastPeriodStartSet: input.LastPeriodStart != nil,
	}
	if input.LastPeriodStart != nil {
		settingsInput.LastPeriodStartRaw = *input.LastPeriodStart
	}

	saved, err := handler.settingsService.SaveCycleSettings(user.ID, settingsInput, handler.now(), handler.location)
	switch {
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
		return apiError(c, fiber.StatusBadRequest, "cycle length out of range")
	case errors.Is(err, services.ErrSettingsCycleStartDateInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid last period start")
	case err != nil:
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("save settings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle settings")
	}
	return c.JSON(newCycleSettingsResponse(saved))
}

func newCycleSettingsResponse(user models.User) cycleSettingsResponse {
	return cycleSettingsResponse{
		CycleLength:     user.CycleLength,
		LastPeriodStart: formatOptionalDay(user.LastPeriodStart),
	}
}
