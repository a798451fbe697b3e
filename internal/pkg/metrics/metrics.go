package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration tracks HTTP request latency
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// HoldsCreated counts successfully created inventory holds
	HoldsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "holds_created_total",
			Help: "Total number of inventory holds created",
		},
	)

	// HoldsReleased counts released holds by reason (cancel or expired)
	HoldsReleased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holds_released_total",
			Help: "Total number of inventory holds released",
		},
		[]string{"reason"},
	)

	// HoldSoldOut counts hold requests rejected for missing capacity
	HoldSoldOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hold_sold_out_total",
			Help: "Total number of hold requests rejected as sold out",
		},
	)

	// SweepDuration tracks how long each expired-hold sweep takes
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hold_sweep_seconds",
			Help:    "Duration of expired-hold sweeps in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

const (
	ReleaseReasonCancel  = "cancel"
	ReleaseReasonExpired = "expired"
)

// Middleware records request count and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
