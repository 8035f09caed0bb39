package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtally/internal/services"
)

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	input, err := parseRecordInput(c)
	if err != nil {
		return handler.respondError(c, operationInsert, err)
	}

	record, err := handler.records.Create(input)
	if err != nil {
		return handler.respondError(c, operationInsert, err)
	}

	handler.metrics.RecordCreated(record.Meal)
	return c.JSON(record)
}

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	records, err := handler.records.List(services.ListQuery{
		Date:   c.Query("date"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
		Order:  c.Query("order"),
	})
	if err != nil {
		return handler.respondError(c, operationList, err)
	}
	return c.JSON(records)
}
