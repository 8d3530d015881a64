package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/observability"
)

// MetricsMiddleware records per-route request counters
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			// c.Path() is the route template, not the raw URL, so
			// cardinality stays bounded.
			observability.HTTPRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Inc()

			return err
		}
	}
}
