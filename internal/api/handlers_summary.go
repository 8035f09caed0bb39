package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	summary, err := handler.records.Summary(c.Query("date"))
	if err != nil {
		return handler.respondError(c, operationSummary, err)
	}
	return c.JSON(summary)
}
