package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"canopy/internal/config"
	"canopy/internal/logger"
)

// NewApp assembles the Fiber application: middleware, error mapping and the
// /api routes. Tests build the same app against an in-memory store.
func NewApp(db *sqlx.DB, cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(log),
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(recover.New())
	app.Use(cors.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: time.Minute,
		}))
	}
	app.Use(logger.Access(log))

	deps := NewDeps(db, cfg, log)

	api := app.Group("/api")
	api.Get("/carbon-credits", deps.CreditHandler.List)
	api.Get("/carbon-credits/:id", deps.CreditHandler.Get)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders", deps.OrderHandler.List)
	api.Patch("/orders/:id/status", deps.OrderHandler.UpdateStatus)
	api.Get("/portfolio", deps.PortfolioHandler.List)
	api.Post("/contact", deps.ContactHandler.Create)
	api.Get("/market-stats", deps.StatsHandler.Get)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	return app
}
