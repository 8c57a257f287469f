package app

import (
	"errors"
	"time"

	config "github.com/anjiri1684/course_hours/configs"
	"github.com/anjiri1684/course_hours/handlers"
	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/middleware"
	"github.com/anjiri1684/course_hours/routes"
	"github.com/anjiri1684/course_hours/services"
	"github.com/anjiri1684/course_hours/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// New wires the engine, the realtime hub and every route onto a fiber app.
// The caller runs the returned hub.
func New(cfg config.AppConfig, db *gorm.DB, log *logger.Logger) (*fiber.App, *websocket.Hub) {
	hub := websocket.NewHub(log, 256)
	handlers.Configure(services.NewConsumptionService(db, log, hub, cfg.ConsumeWorkers), hub)

	server := fiber.New(fiber.Config{
		AppName:       "Course Hours",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
	server.Use(middleware.RequestLogger(log))

	routes.Setup(server, cfg.StaticDir)
	return server, hub
}
