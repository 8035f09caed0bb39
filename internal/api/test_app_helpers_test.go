package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/terraincognita07/mealtally/internal/db"
	"github.com/terraincognita07/mealtally/internal/metrics"
	"github.com/terraincognita07/mealtally/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mealtally-api-test.db")
	database, err := db.OpenSQLite(databasePath, gormlogger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	handler := NewHandler(database, metrics.New())
	policy := NewOriginPolicy([]string{"https://elainediet.zeabur.app"}, "zeabur.app")

	app := fiber.New()
	app.Use(cors.New(CORSConfig(policy)))
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func jsonRequest(method string, path string, body string) *http.Request {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func postRecord(t *testing.T, app *fiber.App, body string) models.MealRecord {
	t.Helper()

	response := performRequest(t, app, jsonRequest(http.MethodPost, "/records", body))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on create, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}

	record := models.MealRecord{}
	decodeJSONBody(t, response.Body, &record)
	return record
}

func listRecords(t *testing.T, app *fiber.App, path string) []models.MealRecord {
	t.Helper()

	response := performRequest(t, app, httptest.NewRequest(http.MethodGet, path, nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on list, got %d", response.StatusCode)
	}

	records := []models.MealRecord{}
	decodeJSONBody(t, response.Body, &records)
	return records
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

func countStoredRecords(t *testing.T, database *gorm.DB) int64 {
	t.Helper()

	var total int64
	if err := database.Model(&models.MealRecord{}).Count(&total).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	return total
}
