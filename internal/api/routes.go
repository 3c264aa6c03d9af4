package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.ListDays)
	days.Get("/:date", handler.GetDay)
	days.Put("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	intervals := api.Group("/intervals", handler.AuthRequired)
	intervals.Get("", handler.ListIntervals)
	intervals.Delete("/:start", handler.DeleteInterval)

	api.Get("/stats", handler.AuthRequired, handler.GetStats)
	api.Get("/forecast", handler.AuthRequired, handler.GetForecast)
	api.Get("/fertile-windows", handler.AuthRequired, handler.GetFertileWindows)
	api.Get("/advice/:date", handler.AuthRequired, handler.GetAdvice)
	api.Get("/reminders", handler.AuthRequired, handler.GetReminders)

	charts := api.Group("/charts", handler.AuthRequired)
	charts.Get("/cycle-lengths", handler.GetCycleLengthChart)
	charts.Get("/pain", handler.GetPainChart)

	api.Get("/export", handler.AuthRequired, handler.Export)
	api.Post("/import", handler.AuthRequired, handler.Import)
	api.Post("/clear", handler.AuthRequired, handler.ClearAll)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
