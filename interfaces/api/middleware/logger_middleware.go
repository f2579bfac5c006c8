package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"task-manager/pkg/logger"
)

// LoggerMiddleware logs one line per completed request.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		logger.DebugContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
		)

		err := c.Next()

		// run the error handler now so the logged status is the one sent
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				logger.ErrorContext(c.UserContext(), "Error handler failed", "path", c.Path(), "error", handlerErr)
				if sendErr := c.SendStatus(fiber.StatusInternalServerError); sendErr != nil {
					logger.ErrorContext(c.UserContext(), "Failed to send error status", "path", c.Path(), "error", sendErr)
				}
			}
		}

		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", len(c.Response().Body()),
		)

		return nil
	}
}
