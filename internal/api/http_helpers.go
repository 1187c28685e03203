package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fertilis/internal/services"
)

const dayLayout = "2006-01-02"

var errDateRequired = errors.New("date is required")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errDateRequired
	}
	parsed, err := time.ParseInLocation(dayLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(parsed, location), nil
}

// dayQueryOrToday reads an optional ?date= value, defaulting to today.
func (handler *Handler) dayQueryOrToday(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return handler.today(), nil
	}
	return parseDayParam(raw, handler.location)
}

func formatDay(value time.Time) string {
	return value.Format(dayLayout)
}

func formatOptionalDay(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := formatDay(*value)
	return &formatted
}
