package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"task-manager/pkg/logger"
)

const (
	componentOK       = "ok"
	componentDown     = "down"
	componentDisabled = "disabled"
)

// HealthCheck probes one dependency. A nil Check means the dependency is not configured.
// Details, when set, is reported under "details" for a healthy dependency.
type HealthCheck struct {
	Name     string
	Required bool
	Check    func(ctx context.Context) error
	Details  func(ctx context.Context) (any, error)
}

type HealthHandler struct {
	appName string
	checks  []HealthCheck
}

// NewHealthHandler runs checks in order on every /health request.
func NewHealthHandler(appName string, checks []HealthCheck) *HealthHandler {
	return &HealthHandler{
		appName: appName,
		checks:  checks,
	}
}

// Health answers 503 when a required dependency is down.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	body := fiber.Map{}
	details := fiber.Map{}
	healthy := true

	for _, check := range h.checks {
		if check.Check == nil {
			body[check.Name] = componentDisabled
			continue
		}
		if err := check.Check(ctx); err != nil {
			logger.WarnContext(ctx, "Health check failed", "component", check.Name, "error", err)
			body[check.Name] = componentDown
			if check.Required {
				healthy = false
			}
			continue
		}
		body[check.Name] = componentOK

		if check.Details != nil {
			info, err := check.Details(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Health details unavailable", "component", check.Name, "error", err)
				continue
			}
			details[check.Name] = info
		}
	}
	if len(details) > 0 {
		body["details"] = details
	}

	status := fiber.StatusOK
	body["status"] = "ok"
	if !healthy {
		status = fiber.StatusServiceUnavailable
		body["status"] = "degraded"
	}

	return c.Status(status).JSON(body)
}

// Index describes the service and its main paths.
func (h *HealthHandler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to " + h.appName,
		"version": "1.0.0",
		"tasks":   "/v1/tasks",
		"users":   "/users",
		"health":  "/health",
	})
}
