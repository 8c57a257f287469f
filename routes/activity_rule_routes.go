package routes

import (
	"github.com/anjiri1684/course_hours/handlers"
	"github.com/gofiber/fiber/v2"
)

func ActivityRuleRoutes(app *fiber.App) {
	rules := app.Group("/api/activity-rules")
	rules.Get("", handlers.ListActivityRules)
	rules.Post("", handlers.CreateActivityRule)
	rules.Put("/:id", handlers.UpdateActivityRule)
	rules.Delete("/:id", handlers.DeleteActivityRule)
}
