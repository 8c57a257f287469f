package handlers

import (
	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/models"
	"github.com/anjiri1684/course_hours/services"
	"github.com/anjiri1684/course_hours/utils"
	"github.com/gofiber/fiber/v2"
)

type StudentRequest struct {
	Name          string `json:"name" validate:"required"`
	Nickname      string `json:"nickname"`
	ParentContact string `json:"parent_contact"`
	Phone         string `json:"phone"`
}

func ListStudents(c *fiber.Ctx) error {
	page := utils.ParsePage(c, 10)
	q := database.DB.WithContext(c.UserContext()).Model(&models.Student{})
	if name := c.Query("name"); name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	students := []models.Student{}
	if err := q.Order("id").Limit(page.Limit).Offset(page.Offset).Find(&students).Error; err != nil {
		return serverError(c, err)
	}
	return c.JSON(students)
}

func CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "student name is required")
	}

	student := models.Student{
		Name:          req.Name,
		Nickname:      req.Nickname,
		ParentContact: req.ParentContact,
		Phone:         req.Phone,
	}
	if err := database.DB.WithContext(c.UserContext()).Create(&student).Error; err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid student ID")
	}
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "student name is required")
	}

	db := database.DB.WithContext(c.UserContext())
	result := db.Model(&models.Student{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":           req.Name,
		"nickname":       req.Nickname,
		"parent_contact": req.ParentContact,
		"phone":          req.Phone,
	})
	if result.Error != nil {
		return serverError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(c, "Student not found")
	}

	var student models.Student
	if err := db.First(&student, id).Error; err != nil {
		return serverError(c, err)
	}
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid student ID")
	}
	if err := services.DeleteStudent(c.UserContext(), database.DB, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted along with their consumption records and course packages"})
}

func GetStudentCoursePackages(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid student ID")
	}
	views, err := services.ListStudentPackages(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}
