package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "hustlexp_http_request_duration_seconds",
	Help:    "HTTP request latency by route",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})

func init() {
	prometheus.MustRegister(httpRequestDuration)
}

// Metrics observes per-route request latency. The path label is the route
// template, not the raw URL, which keeps label cardinality bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			httpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
