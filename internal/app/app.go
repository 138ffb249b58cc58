// Package app wires repositories, services and handlers into a Fiber application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"signup/internal/config"
	"signup/internal/database"
	"signup/internal/handlers"
	"signup/internal/middleware"
	"signup/internal/repositories"
	"signup/internal/services"
	"signup/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Resources are the external collaborators opened for a configuration.
type Resources struct {
	Accounts  repositories.AccountRepository
	Publisher services.EventPublisher
	DB        *gorm.DB

	closers []func() error
}

// Open connects the datastore selected by cfg and, when configured, the
// RabbitMQ event publisher. Call Close when done.
func Open(cfg config.Config, logger *slog.Logger) (*Resources, error) {
	res := &Resources{}

	if cfg.DatabaseDriver == config.DriverMemory {
		logger.Warn("using in-memory account store; accounts are lost on restart")
		res.Accounts = repositories.NewMemoryAccountRepository()
	} else {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		res.DB = db
		res.closers = append(res.closers, func() error { return database.Close(db) })

		if cfg.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				_ = res.Close()
				return nil, err
			}
		}
		res.Accounts = repositories.NewGORMAccountRepository(db)
	}

	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			_ = res.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		res.Publisher = mqClient
		res.closers = append(res.closers, mqClient.Close)
	}

	return res, nil
}

// Close releases every opened collaborator.
func (r *Resources) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// New builds the Fiber application serving the registration page, the JSON
// API and the health check. Access logs are written to accessLog when non-nil.
func New(cfg config.Config, res *Resources, logger *slog.Logger, accessLog io.Writer) *fiber.App {
	opts := []services.Option{
		services.WithHashCost(cfg.BcryptCost),
		services.WithLogger(logger),
	}
	if res.Publisher != nil {
		opts = append(opts, services.WithEventPublisher(res.Publisher))
	}
	registrationService := services.NewRegistrationService(res.Accounts, opts...)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, cfg.LoginURL, logger)

	app := fiber.New(fiber.Config{
		AppName:               "signup",
		DisableStartupMessage: true,
		Immutable:             true,
	})

	app.Use(recover.New())
	if accessLog != nil {
		app.Use(fiberlogger.New(fiberlogger.Config{Output: accessLog}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	pages := app.Group("", middleware.SecureHeaders())
	registrationHandler.RegisterRoutes(pages)

	apiV1 := app.Group("/api/v1")
	registrationHandler.RegisterAPIRoutes(apiV1)

	return app
}
