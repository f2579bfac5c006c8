package di

import (
	"context"

	"gorm.io/gorm"

	"task-manager/application/serviceimpl"
	"task-manager/domain/ports"
	"task-manager/domain/repositories"
	"task-manager/domain/services"
	"task-manager/infrastructure/database"
	"task-manager/infrastructure/messaging"
	natspkg "task-manager/infrastructure/nats"
	redispkg "task-manager/infrastructure/redis"
	"task-manager/interfaces/api/handlers"
	"task-manager/pkg/config"
	"task-manager/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // optional, backs the rate limiter
	NATSClient  *natspkg.Client  // optional, carries task events

	// Ports
	EventPublisher ports.TaskEventPublisher
	RateLimiter    ports.RateLimiter // nil when rate limiting is off

	// Repositories
	TaskRepository repositories.TaskRepository
	UserRepository repositories.UserRepository

	// Services
	TaskService services.TaskService
	UserService services.UserService
}

func NewContainer() *Container {
	return &Container{}
}

// Initialize wires config, logging, infrastructure, repositories and services in that order.
func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	return c.initServices()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := database.DatabaseConfig{
		Driver:   c.Config.Database.Driver,
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		Path:     c.Config.Database.Path,
		LogLevel: c.Config.Database.LogLevel,
	}

	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", dbConfig.Driver, "db", dbConfig.DBName)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional; without it requests are not rate limited
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (rate limiting disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	if c.RedisClient != nil && c.Config.RateLimitEnabled() {
		c.RateLimiter = redispkg.NewFixedWindowLimiter(c.RedisClient, c.Config.RateLimit.Requests, c.Config.RateLimit.Window)
		logger.Info("Rate limiting enabled",
			"requests", c.Config.RateLimit.Requests,
			"window", c.Config.RateLimit.Window.String(),
		)
	}

	c.initMessaging()

	return nil
}

// initMessaging falls back to the noop publisher when NATS is absent or unreachable.
func (c *Container) initMessaging() {
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = messaging.NewNATSTaskEventPublisher(natsClient.JetStream())
			logger.Info("Task events published to JetStream", "stream", natspkg.StreamName)
			return
		}
	}

	c.EventPublisher = messaging.NewNoopTaskEventPublisher()
}

func (c *Container) initRepositories() error {
	c.TaskRepository = database.NewTaskRepository(c.DB)
	c.UserRepository = database.NewUserRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventPublisher)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	logger.Info("Services initialized")
	return nil
}

// Cleanup closes NATS, Redis and the database. Failures are logged, not returned.
func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		if err := database.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices collects what the HTTP handlers need.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:  c.TaskService,
		UserService:  c.UserService,
		AppName:      c.Config.App.Name,
		HealthChecks: c.healthChecks(),
	}
}

func (c *Container) healthChecks() []handlers.HealthCheck {
	checks := []handlers.HealthCheck{
		{
			Name:     "database",
			Required: true,
			Check: func(ctx context.Context) error {
				return database.Ping(ctx, c.DB)
			},
		},
		{Name: "redis"},
		{Name: "nats"},
	}

	if c.RedisClient != nil {
		checks[1].Check = c.RedisClient.Ping
	}
	if c.NATSClient != nil {
		checks[2].Check = func(ctx context.Context) error {
			return c.NATSClient.Ping()
		}
		checks[2].Details = func(ctx context.Context) (any, error) {
			return c.NATSClient.GetStatus(ctx)
		}
	}
	return checks
}
