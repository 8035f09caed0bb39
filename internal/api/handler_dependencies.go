package api

import (
	"github.com/terraincognita07/mealtally/internal/db"
	"github.com/terraincognita07/mealtally/internal/metrics"
	"github.com/terraincognita07/mealtally/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, collectors *metrics.Metrics) *Handler {
	handler := &Handler{metrics: collectors}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repositories := db.NewRepositories(database)
	handler.records = services.NewRecordService(repositories.MealRecords)
	return handler
}
