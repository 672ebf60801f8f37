package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	geocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_geocode_lookups_total",
			Help: "Geocode lookups by outcome (success, not_found, error)",
		},
		[]string{"outcome"},
	)

	rsvpOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_rsvp_operations_total",
			Help: "RSVP toggles by operation (attend, cancel)",
		},
		[]string{"operation"},
	)
)

func RecordGeocode(outcome string) {
	geocodeLookups.WithLabelValues(outcome).Inc()
}

func RecordRSVP(operation string) {
	rsvpOperations.WithLabelValues(operation).Inc()
}

func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
