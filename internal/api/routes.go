package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("/", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Put("/:date", handler.UpsertDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	api.Get("/prediction", handler.AuthRequired, handler.GetPrediction)
	api.Get("/cycle/summary", handler.AuthRequired, handler.GetCycleSummary)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/cycle", handler.GetCycleSettings)
	settings.Post("/cycle", handler.UpdateCycleSettings)
	settings.Post("/password", handler.ChangePassword)
}
