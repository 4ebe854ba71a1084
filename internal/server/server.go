package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/framewright/framegen/internal/service"
)

// New builds the fiber app with middleware and routes wired to the
// given service. Listening is the caller's job so tests can drive the
// app in-process.
func New(cfg *Config, svc *service.FrameService) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "framegen",
	})

	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(CORS())
	app.Use(RequestLogger())

	h := NewHandlers(svc)
	app.Post("/generate", h.Generate)
	app.Get("/rules", h.Rules)
	app.Get("/health", h.Health)

	return app
}

// Listen starts the app on the configured port. Blocks until the server
// stops.
func Listen(app *fiber.App, cfg *Config) error {
	return app.Listen(fmt.Sprintf(":%s", cfg.Port))
}
