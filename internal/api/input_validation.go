package api

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtally/internal/services"
)

// parseRecordInput decodes a JSON or form body. Any other body, including an
// empty one, decodes to an empty input so the service reports the missing
// fields.
func parseRecordInput(c *fiber.Ctx) (services.RecordInput, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.Contains(contentType, fiber.MIMEApplicationJSON):
		return parseJSONRecordInput(c)
	case strings.Contains(contentType, fiber.MIMEApplicationForm),
		strings.Contains(contentType, fiber.MIMEMultipartForm):
		return parseFormRecordInput(c), nil
	default:
		return services.RecordInput{}, nil
	}
}

func parseJSONRecordInput(c *fiber.Ctx) (services.RecordInput, error) {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return services.RecordInput{}, nil
	}

	payload := mealRecordPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.RecordInput{}, fmt.Errorf("%w: %v", errInvalidRequestBody, err)
	}
	return payload.recordInput(), nil
}

func parseFormRecordInput(c *fiber.Ctx) services.RecordInput {
	return services.RecordInput{
		Date: c.FormValue("date"),
		Meal: c.FormValue("meal"),
		Counts: services.MealCounts{
			WholeGrains:  services.CoerceInt(c.FormValue("whole_grains")),
			Vegetables:   services.CoerceInt(c.FormValue("vegetables")),
			ProteinLow:   services.CoerceInt(c.FormValue("protein_low")),
			ProteinMed:   services.CoerceInt(c.FormValue("protein_med")),
			ProteinHigh:  services.CoerceInt(c.FormValue("protein_high")),
			ProteinXHigh: services.CoerceInt(c.FormValue("protein_xhigh")),
			JunkFood:     services.CoerceInt(c.FormValue("junk_food")),
		},
		Note:     optionalFormValue(c, "note"),
		ImageURL: optionalFormValue(c, "image_url"),
	}
}

func optionalFormValue(c *fiber.Ctx, key string) *string {
	value := c.FormValue(key)
	if value == "" {
		return nil
	}
	return &value
}
