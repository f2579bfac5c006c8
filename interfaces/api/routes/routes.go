package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-manager/interfaces/api/handlers"
)

// SetupRoutes registers every route. groupMiddleware (e.g. rate limiting)
// applies to the /v1 and /users groups only.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, groupMiddleware ...fiber.Handler) {
	SetupHealthRoutes(app, h)

	v1 := app.Group("/v1", groupMiddleware...)
	v1.Get("/test", h.TaskHandler.HelloWorld)
	SetupTaskRoutes(v1, h)

	SetupUserRoutes(app.Group("/users", groupMiddleware...), h)
}
