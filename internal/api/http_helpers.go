package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtally/internal/services"
)

var errInvalidRequestBody = errors.New("invalid request body")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiErrorWithDetail(c *fiber.Ctx, status int, message string, detail string) error {
	if detail == "" {
		return apiError(c, status, message)
	}
	return c.Status(status).JSON(fiber.Map{"error": message, "detail": detail})
}

// respondError is the single place where error kinds become HTTP statuses.
// Anything that is not a client error is treated as a store failure.
func (handler *Handler) respondError(c *fiber.Ctx, operation string, err error) error {
	if services.IsClientError(err) || errors.Is(err, errInvalidRequestBody) {
		log.Printf("%s rejected: %v", operation, err)
	} else {
		log.Printf("%s failed: %v", operation, err)
	}

	var validationErr *services.ValidationError
	var dateErr *services.InvalidDateError

	switch {
	case errors.Is(err, errInvalidRequestBody):
		return apiError(c, fiber.StatusBadRequest, errInvalidRequestBody.Error())
	case errors.As(err, &validationErr):
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.As(err, &dateErr):
		return apiErrorWithDetail(c, fiber.StatusBadRequest, "invalid date", dateErr.Error())
	default:
		handler.metrics.StoreFailed(operation)
		return apiErrorWithDetail(c, fiber.StatusInternalServerError, operation+" failed", storeDetail(err))
	}
}

// storeDetail hides the operation prefix and keeps only the driver message.
func storeDetail(err error) string {
	var storeErr *services.StoreError
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		return storeErr.Err.Error()
	}
	return err.Error()
}
