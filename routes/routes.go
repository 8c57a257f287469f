package routes

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, staticDir string) {
	StudentRoutes(app)
	CoursePackageRoutes(app)
	AssignmentRoutes(app)
	ActivityRuleRoutes(app)
	ConsumptionRoutes(app)
	StatsRoutes(app)
	FeedRoutes(app)
	StaticRoutes(app, staticDir)
}

func StaticRoutes(app *fiber.App, dir string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if dir == "" {
		return
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(dir, "index.html"))
	})
	app.Static("/", dir)
}
