package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"task-manager/interfaces/api/handlers"
	"task-manager/interfaces/api/middleware"
	"task-manager/interfaces/api/routes"
	"task-manager/pkg/di"
	"task-manager/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// logger may not be ready yet
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               cfg.App.Name,
		BodyLimit:             1 * 1024 * 1024,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// order matters: request id before logger, recover inside logger
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(recover.New())
	app.Use(middleware.CorsMiddleware(cfg.CORS.AllowOrigins))

	h := handlers.NewHandlers(container.GetHandlerServices())

	var groupMiddleware []fiber.Handler
	if container.RateLimiter != nil {
		groupMiddleware = append(groupMiddleware, middleware.RateLimitMiddleware(container.RateLimiter))
	}
	routes.SetupRoutes(app, h, groupMiddleware...)

	setupGracefulShutdown(app)

	logger.Info("Server starting",
		"port", cfg.App.Port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+cfg.App.Port+"/health",
		"tasks", "http://localhost:"+cfg.App.Port+"/v1/tasks",
		"users", "http://localhost:"+cfg.App.Port+"/users",
	)

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Error("Server failed to start", "error", err)
		_ = container.Cleanup()
		os.Exit(1)
	}

	if err := container.Cleanup(); err != nil {
		logger.Error("Error during cleanup", "error", err)
	}
	logger.Info("Shutdown complete")
}

// setupGracefulShutdown stops accepting connections on SIGINT/SIGTERM and
// lets in-flight requests finish, after which Listen returns.
func setupGracefulShutdown(app *fiber.App) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
	}()
}
