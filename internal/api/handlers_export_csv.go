package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtally/internal/models"
)

var exportCSVHeaders = []string{
	"id",
	"created_at",
	"date",
	"meal",
	"whole_grains",
	"vegetables",
	"protein_low",
	"protein_med",
	"protein_high",
	"protein_xhigh",
	"junk_food",
	"note",
	"image_url",
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	records, err := handler.records.Export(c.Query("from"), c.Query("to"))
	if err != nil {
		return handler.respondError(c, operationExport, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(exportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, record := range records {
		if err := writer.Write(csvRecordRow(record)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(time.Now().UTC(), "csv"))
	return c.Send(output.Bytes())
}

func csvRecordRow(record models.MealRecord) []string {
	return []string{
		strconv.FormatUint(uint64(record.ID), 10),
		record.CreatedAt.UTC().Format(time.RFC3339),
		record.Date.String(),
		record.Meal,
		strconv.Itoa(record.WholeGrains),
		strconv.Itoa(record.Vegetables),
		strconv.Itoa(record.ProteinLow),
		strconv.Itoa(record.ProteinMed),
		strconv.Itoa(record.ProteinHigh),
		strconv.Itoa(record.ProteinXHigh),
		strconv.Itoa(record.JunkFood),
		csvOptional(record.Note),
		csvOptional(record.ImageURL),
	}
}

func csvOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("mealtally-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
