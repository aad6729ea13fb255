package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arms237/backend-vehicleShop/internal/metrics"
)

// MetricsMiddleware records request counts, latencies and error counts
// labeled by the matched route pattern rather than the raw URL.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := metrics.StatusLabel(c.Writer.Status())

		metrics.APIRequestCounter.WithLabelValues(c.Request.Method, path).Inc()
		metrics.RequestDurationHistogram.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= 400 {
			metrics.APIErrorCounter.WithLabelValues(c.Request.Method, path, status).Inc()
		}
	}
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
