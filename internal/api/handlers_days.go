package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilis/internal/services"
)

const maxDayRangeDays = 366

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if to.Before(from) || to.Sub(from).Hours()/24 >= maxDayRangeDays {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	logs, err := handler.dayService.FetchLogsForUser(user.ID, from, to, handler.location)
	if err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("fetch days failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}

	response := make([]dayResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, newDayResponse(entry, handler.location))
	}
	return c.JSON(response)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.dayService.FetchLogByDate(user.ID, day, handler.location)
	if err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("fetch day failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}
	return c.JSON(newDayResponse(entry, handler.location))
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, created, err := handler.dayService.UpsertDayEntry(user.ID, day, payload.toInput(), handler.location)
	if err != nil {
		return handler.respondDayWriteError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(newDayResponse(entry, handler.location))
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	deleted, err := handler.dayService.DeleteDay(user.ID, day, handler.location)
	if err != nil {
		return handler.respondDayWriteError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "deleted": deleted})
}

func (handler *Handler) respondDayWriteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidDayInput) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	handler.logger.Error().Err(err).Str("path", c.Path()).Msg("day write failed")
	switch {
	case errors.Is(err, services.ErrDayEntryLoadFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	case errors.Is(err, services.ErrDeleteDayFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}
}
