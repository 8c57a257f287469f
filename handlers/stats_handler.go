package handlers

import (
	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/services"
	"github.com/gofiber/fiber/v2"
)

func GetStats(c *fiber.Ctx) error {
	stats, err := services.GetStats(c.UserContext(), database.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
