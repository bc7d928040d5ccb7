package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dearly/internal/metrics"

	"github.com/labstack/echo/v4"
)

const (
	metricsPath   = "/metrics"
	unmatchedPath = "unmatched"
)

// PrometheusMetrics counts requests and observes latency per route template,
// e.g. "/albums/:id", so album ids never become label values.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == metricsPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		path := routeLabel(c, err)
		method := c.Request().Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusOf(c, err))).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

func routeLabel(c echo.Context, err error) string {
	if errors.Is(err, echo.ErrNotFound) || c.Path() == "" {
		return unmatchedPath
	}
	return c.Path()
}

// statusOf returns the status the error handler will write when next failed
// before committing a response.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
