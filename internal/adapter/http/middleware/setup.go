package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers the middleware chain on the Echo instance. Order matters:
//  1. RequestID, so every later log line can carry the request ID
//  2. RequestLogger, which logs the final status of each request
//  3. Recover, innermost, so a panic becomes a 500 the logger still sees
//
// Call Setup before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers the middleware chain with a custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
