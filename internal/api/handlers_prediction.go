package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.dayQueryOrToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	prediction, err := handler.predictionService.Predict(user.ID, day, handler.location)
	if err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("prediction failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to compute prediction")
	}

	return c.JSON(predictionResponse{
		Date:     formatDay(prediction.Date),
		CycleDay: prediction.CycleDay,
		Detector: prediction.Detector,
		Result:   prediction.Result,
		Baseline: newBaselineResponse(prediction.Baseline),
	})
}

func (handler *Handler) GetCycleSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.dayQueryOrToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	summary, err := handler.summaryService.Summarize(user.ID, day, handler.location)
	if err != nil {
		handler.logger.Error().Err(err).Uint("user_id", user.ID).Msg("cycle summary failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}

	return c.JSON(cycleSummaryResponse{
		Date:                         formatDay(day),
		TotalEntries:                 summary.TotalEntries,
		EntriesWithFlow:              summary.EntriesWithFlow,
		EntriesWithTemperature:       summary.EntriesWithTemperature,
		EntriesWithPositiveTestStrip: summary.EntriesWithPositiveTestStrip,
		EntriesWithMucus:             summary.EntriesWithMucus,
		EntriesWithNotes:             summary.EntriesWithNotes,
		CurrentCycleDay:              summary.CurrentCycleDay,
		Baseline:                     newBaselineResponse(summary.Baseline),
	})
}
