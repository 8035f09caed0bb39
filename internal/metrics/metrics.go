// Package metrics exposes Prometheus collectors for the HTTP surface and the
// meal record store.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/mealtally/internal/models"
)

const namespace = "mealtally"

type Metrics struct {
	registry       *prometheus.Registry
	httpInFlight   prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	recordsCreated *prometheus.CounterVec
	storeErrors    *prometheus.CounterVec
}

// New builds a private registry so tests and multiple apps never collide on
// the global one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		recordsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "created_total",
			Help:      "Total number of meal records created, by meal label.",
		}, []string{"meal"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Total number of failed store operations.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.recordsCreated,
		m.storeErrors,
	)
	return m
}

// Middleware records request count, latency and in-flight gauge per route
// pattern, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(c *fiber.Ctx) error {
	start := time.Now()
	m.httpInFlight.Inc()
	defer m.httpInFlight.Dec()

	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	route := c.Route().Path
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
	return err
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) RecordCreated(meal string) {
	if m == nil {
		return
	}
	m.recordsCreated.WithLabelValues(mealLabel(meal)).Inc()
}

func (m *Metrics) StoreFailed(operation string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(operation).Inc()
}

// Meal is free text; anything outside the known labels is bucketed.
func mealLabel(meal string) string {
	switch meal {
	case models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack:
		return meal
	default:
		return "other"
	}
}
