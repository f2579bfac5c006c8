package handlers

import (
	"task-manager/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService  services.TaskService
	UserService  services.UserService
	AppName      string
	HealthChecks []HealthCheck
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler   *TaskHandler
	UserHandler   *UserHandler
	HealthHandler *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService),
		UserHandler:   NewUserHandler(services.UserService),
		HealthHandler: NewHealthHandler(services.AppName, services.HealthChecks),
	}
}
