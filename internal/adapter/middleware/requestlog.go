package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const loggerKey = "logger"

// RequestLog tags every request with a request id (X-Request-Id or a fresh uuid)
// and logs one line when it completes.
func RequestLog(base *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			l := base.With(zap.String("request_id", rid))
			c.Set(loggerKey, l)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			}
			if a, ok := ActorFrom(c); ok {
				fields = append(fields, zap.String("actor_id", a.UserID), zap.String("role", string(a.Role)))
			}
			if c.Response().Status >= 500 {
				l.Error("request completed", fields...)
			} else {
				l.Info("request completed", fields...)
			}
			return nil
		}
	}
}

// LoggerFrom returns the request-scoped logger, or fallback outside RequestLog.
func LoggerFrom(c echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(loggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}
