package handlers

import (
	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/models"
	"github.com/anjiri1684/course_hours/utils"
	"github.com/gofiber/fiber/v2"
)

type CoursePackageRequest struct {
	Name       string   `json:"name" validate:"required"`
	TotalHours float64  `json:"total_hours" validate:"required,gt=0"`
	CourseType string   `json:"course_type" validate:"required"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
}

const coursePackageRequired = "course package name, total_hours and course_type are required"

func ListCoursePackages(c *fiber.Ctx) error {
	page := utils.ParsePage(c, 10)
	packages := []models.CoursePackage{}
	err := database.DB.WithContext(c.UserContext()).
		Order("id").Limit(page.Limit).Offset(page.Offset).
		Find(&packages).Error
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(packages)
}

func CreateCoursePackage(c *fiber.Ctx) error {
	var req CoursePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, coursePackageRequired)
	}

	pkg := models.CoursePackage{
		Name:       req.Name,
		TotalHours: req.TotalHours,
		CourseType: req.CourseType,
		Price:      req.Price,
	}
	if err := database.DB.WithContext(c.UserContext()).Create(&pkg).Error; err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func UpdateCoursePackage(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid course package ID")
	}
	var req CoursePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, coursePackageRequired)
	}

	db := database.DB.WithContext(c.UserContext())
	result := db.Model(&models.CoursePackage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"total_hours": req.TotalHours,
		"course_type": req.CourseType,
		"price":       req.Price,
	})
	if result.Error != nil {
		return serverError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Course package not found")
	}

	var pkg models.CoursePackage
	if err := db.First(&pkg, id).Error; err != nil {
		return serverError(c, err)
	}
	return c.JSON(pkg)
}

func DeleteCoursePackage(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid course package ID")
	}
	result := database.DB.WithContext(c.UserContext()).Delete(&models.CoursePackage{}, id)
	if result.Error != nil {
		return serverError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Course package not found")
	}
	return c.JSON(fiber.Map{"message": "Course package deleted"})
}
