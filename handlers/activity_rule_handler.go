package handlers

import (
	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/models"
	"github.com/anjiri1684/course_hours/services"
	"github.com/gofiber/fiber/v2"
)

type ActivityRuleRequest struct {
	Name       string  `json:"name" validate:"required"`
	CourseType string  `json:"course_type" validate:"required"`
	Days       int     `json:"days" validate:"required,gt=0"`
	TotalHours float64 `json:"total_hours" validate:"required,gt=0"`
}

const activityRuleRequired = "activity name, course_type, days and total_hours are required"

func (r ActivityRuleRequest) input() services.ActivityRuleInput {
	return services.ActivityRuleInput{Name: r.Name, CourseType: r.CourseType, Days: r.Days, TotalHours: r.TotalHours}
}

func ListActivityRules(c *fiber.Ctx) error {
	rules := []models.ActivityRule{}
	if err := database.DB.WithContext(c.UserContext()).Order("id").Find(&rules).Error; err != nil {
		return serverError(c, err)
	}
	return c.JSON(rules)
}

func CreateActivityRule(c *fiber.Ctx) error {
	var req ActivityRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, activityRuleRequired)
	}
	rule, err := services.CreateActivityRule(c.UserContext(), database.DB, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func UpdateActivityRule(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid activity rule ID")
	}
	var req ActivityRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, activityRuleRequired)
	}
	rule, err := services.UpdateActivityRule(c.UserContext(), database.DB, id, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rule)
}

func DeleteActivityRule(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid activity rule ID")
	}
	result := database.DB.WithContext(c.UserContext()).Delete(&models.ActivityRule{}, id)
	if result.Error != nil {
		return serverError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Activity rule not found")
	}
	return c.JSON(fiber.Map{"message": "Activity rule deleted"})
}
