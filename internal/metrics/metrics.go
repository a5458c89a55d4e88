// Package metrics exposes Prometheus collectors for HTTP traffic and for the
// dashboard's actions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoicedash",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "invoicedash",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	invoiceActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoicedash",
			Subsystem: "invoices",
			Name:      "actions_total",
			Help:      "Invoice mutations by action and outcome.",
		},
		[]string{"action", "outcome"},
	)

	authAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoicedash",
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Sign-in attempts by outcome.",
		},
		[]string{"outcome"},
	)

	viewCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invoicedash",
			Subsystem: "view_cache",
			Name:      "lookups_total",
			Help:      "View cache lookups by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, invoiceActions, authAttempts, viewCacheLookups)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency keyed by route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			httpRequests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveInvoiceAction counts one create/update/delete outcome.
func ObserveInvoiceAction(action, outcome string) {
	invoiceActions.WithLabelValues(action, outcome).Inc()
}

// ObserveAuthAttempt counts one sign-in outcome.
func ObserveAuthAttempt(outcome string) {
	authAttempts.WithLabelValues(outcome).Inc()
}

// ObserveViewCache counts a view cache hit or miss.
func ObserveViewCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	viewCacheLookups.WithLabelValues(result).Inc()
}
