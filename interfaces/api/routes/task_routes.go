package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-manager/interfaces/api/handlers"
)

// SetupTaskRoutes mounts /tasks under api.
func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	// fixed paths before /:id
	tasks.Get("/paginated", h.TaskHandler.ListTasksPaginated)
	tasks.Get("/filter", h.TaskHandler.FilterTasks)
	tasks.Get("/till-date", h.TaskHandler.TasksTillDate)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
