package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-planner/internal/infrastructure/logger"
)

const loggerKey = "logger"

// RequestLogger returns middleware that logs one line per request on completion.
// It also stores a request-scoped logger carrying request_id on the context,
// retrievable with Logger.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := GetRequestID(c)
			reqLog := (&logger.Logger{Logger: log}).WithRequestID(reqID).Logger
			c.Set(loggerKey, reqLog)

			if err := next(c); err != nil {
				// Let Echo's error handler write the response before we log the status.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}

// Logger returns the request-scoped logger stored by RequestLogger,
// or fallback when the middleware did not run.
func Logger(c echo.Context, fallback zerolog.Logger) zerolog.Logger {
	if l, ok := c.Get(loggerKey).(zerolog.Logger); ok {
		return l
	}
	return fallback
}
