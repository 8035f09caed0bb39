package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRootReportsRunning(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "mealtally API running" {
		t.Fatalf("unexpected root body %q", string(body))
	}
}

func TestHealthReturnsJSON(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("expected status ok, got %#v", payload)
	}
}

func TestUnknownRouteReturnsJSONNotFound(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
	if got := readAPIError(t, response.Body); got != "not found" {
		t.Fatalf("expected not found error, got %q", got)
	}
}

func TestMetricsEndpointCountsCreatedRecords(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	postRecord(t, app, `{"date":"2025-10-25","meal":"Lunch"}`)

	response := performRequest(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), `mealtally_records_created_total{meal="Lunch"} 1`) {
		t.Fatalf("expected created counter in exposition, got:\n%s", string(body))
	}
}
