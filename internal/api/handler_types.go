package api

import (
	"github.com/terraincognita07/mealtally/internal/metrics"
	"github.com/terraincognita07/mealtally/internal/services"
)

type Handler struct {
	records *services.RecordService
	metrics *metrics.Metrics
}

// Operation names used in error bodies ("<op> failed") and store metrics.
const (
	operationInsert  = "insert"
	operationList    = "list"
	operationSummary = "summary"
	operationExport  = "export"
)
