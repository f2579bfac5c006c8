package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-manager/interfaces/api/handlers"
)

// SetupUserRoutes mounts the user endpoints on users.
func SetupUserRoutes(users fiber.Router, h *handlers.Handlers) {
	users.Post("/", h.UserHandler.CreateUser)
	users.Get("/getUserById/:id", h.UserHandler.GetUserByID)
	users.Get("/getUserByUserName/:userName", h.UserHandler.GetUserByUserName)
	users.Put("/:key", h.UserHandler.UpdateUser)
}
