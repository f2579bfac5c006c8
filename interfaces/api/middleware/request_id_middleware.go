package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"task-manager/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the client's X-Request-ID or generates one.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		ctx := logger.ContextWithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)

		c.Locals("request_id", requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext returns the id set by RequestIDMiddleware, or "".
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals("request_id").(string); ok {
		return requestID
	}
	return ""
}
