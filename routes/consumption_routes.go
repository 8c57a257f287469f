package routes

import (
	"github.com/anjiri1684/course_hours/handlers"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ConsumptionRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/consume", handlers.ConsumeHours)

	records := api.Group("/consumption-records")
	records.Get("", handlers.ListConsumptionRecords)
	records.Delete("/:id", handlers.ReverseConsumption)
}

func StatsRoutes(app *fiber.App) {
	app.Get("/api/stats", handlers.GetStats)
}

func FeedRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/consumptions", websocket.New(handlers.ServeConsumptionFeed))
}
