package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// metricsRegistry holds the platform's Prometheus collectors.
	metricsRegistry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentflow",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rentflow",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentflow",
			Subsystem: "webhooks",
			Name:      "events_total",
			Help:      "Provider webhook deliveries by source and result.",
		},
		[]string{"source", "result"},
	)
)

func init() {
	metricsRegistry.MustRegister(
		httpRequests,
		httpDuration,
		webhookEvents,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// MetricsMiddleware records request counts and latencies per route template.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
}
