package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/mealtally/internal/db"
	"github.com/terraincognita07/mealtally/internal/services"
	gormlogger "gorm.io/gorm/logger"
)

// RunSummaryCommand prints the daily totals for one date as indented JSON.
func RunSummaryCommand(databaseURL string, rawDate string, out io.Writer) error {
	rawDate = strings.TrimSpace(rawDate)
	if rawDate == "" {
		return errors.New("date is required")
	}

	database, err := db.Open(databaseURL, gormlogger.Silent)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.Close(database)
	}()

	repositories := db.NewRepositories(database)
	summary, err := services.NewRecordService(repositories.MealRecords).Summary(rawDate)
	if err != nil {
		return fmt.Errorf("summary for %s: %w", rawDate, err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
