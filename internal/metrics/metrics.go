// Package metrics provides Prometheus instrumentation for the simulator API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GenerationsTotal counts generated series, partitioned by selection.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inflens_generations_total",
		Help: "Total number of series generated",
	}, []string{"asset", "inflation", "range"})

	// GenerationErrors counts failed generations.
	GenerationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inflens_generation_errors_total",
		Help: "Generations that returned an error",
	})

	// GenerationLatency tracks time spent in a single generation.
	GenerationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inflens_generation_seconds",
		Help:    "Series generation latency in seconds",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	})

	// DistributionTrials counts Monte-Carlo trials run by the distribution endpoint.
	DistributionTrials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inflens_distribution_trials_total",
		Help: "Monte-Carlo trials executed",
	})

	// StoredCharts counts charts written to the result store.
	StoredCharts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inflens_stored_charts_total",
		Help: "Charts saved for later download",
	})

	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inflens_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inflens_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGeneration records one generation attempt.
func ObserveGeneration(asset, inflation, rng string, started time.Time, err error) {
	GenerationLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		GenerationErrors.Inc()
		return
	}
	GenerationsTotal.WithLabelValues(asset, inflation, rng).Inc()
}

// Middleware records request metrics for gin routes.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Use the route pattern to avoid one series per chart ID.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
