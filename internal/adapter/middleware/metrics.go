package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPRecorder is satisfied by metrics.Metrics.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, code int, d time.Duration)
}

func Metrics(m HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
