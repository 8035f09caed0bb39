package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	if handler.metrics != nil {
		app.Get("/metrics", handler.metrics.Handler())
	}

	records := app.Group("/records")
	records.Post("", handler.CreateRecord)
	records.Get("", handler.ListRecords)
	records.Get("/export.csv", handler.ExportCSV)

	app.Get("/summary", handler.GetSummary)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
