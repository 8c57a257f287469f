package handlers

import (
	"strconv"
	"time"

	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/models"
	"github.com/anjiri1684/course_hours/services"
	"github.com/anjiri1684/course_hours/utils"
	"github.com/gofiber/fiber/v2"
)

type AssignPackageRequest struct {
	StudentID       uint    `json:"student_id" validate:"required"`
	CoursePackageID uint    `json:"course_package_id" validate:"required"`
	RemainingHours  float64 `json:"remaining_hours" validate:"gte=0"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
}

func ListStudentCoursePackages(c *fiber.Ctx) error {
	page := utils.ParsePage(c, 100)
	q := database.DB.WithContext(c.UserContext()).Model(&models.StudentCoursePackage{})
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid student_id")
		}
		q = q.Where("student_id = ?", studentID)
	}

	assignments := []models.StudentCoursePackage{}
	if err := q.Order("id").Limit(page.Limit).Offset(page.Offset).Find(&assignments).Error; err != nil {
		return serverError(c, err)
	}
	return c.JSON(assignments)
}

func AssignCoursePackage(c *fiber.Ctx) error {
	var req AssignPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "student_id and course_package_id are required, remaining_hours must not be negative")
	}

	in := services.AssignInput{
		StudentID:       req.StudentID,
		CoursePackageID: req.CoursePackageID,
		RemainingHours:  req.RemainingHours,
	}
	var ok bool
	if in.StartDate, ok = optionalDate(req.StartDate); !ok {
		return badRequest(c, "Invalid start_date, expected YYYY-MM-DD")
	}
	if in.EndDate, ok = optionalDate(req.EndDate); !ok {
		return badRequest(c, "Invalid end_date, expected YYYY-MM-DD")
	}

	assignment, err := services.AssignPackage(c.UserContext(), database.DB, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func ListExpiredCoursePackages(c *fiber.Ctx) error {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			return badRequest(c, "Invalid as_of date")
		}
		asOf = t
	}
	expired, err := services.ListExpiredAssignments(c.UserContext(), database.DB, asOf)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expired)
}

func optionalDate(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
