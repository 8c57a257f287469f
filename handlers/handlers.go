package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/services"
	"github.com/anjiri1684/course_hours/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var (
	consumption *services.ConsumptionService
	feed        *websocket.Hub
)

// Configure installs the consumption engine and the realtime feed used by
// the handlers. Database access goes through database.DB.
func Configure(svc *services.ConsumptionService, hub *websocket.Hub) {
	consumption = svc
	feed = hub
}

func respondError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	var nfErr *services.NotFoundError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
	case errors.As(err, &nfErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nfErr.Error()})
	default:
		logger.L().Error("request failed", "path", c.Path(), "method", c.Method(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func serverError(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

func idParam(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
