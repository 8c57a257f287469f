package routes

import (
	"github.com/anjiri1684/course_hours/handlers"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	students := app.Group("/api/students")
	students.Get("", handlers.ListStudents)
	students.Post("", handlers.CreateStudent)
	students.Put("/:id", handlers.UpdateStudent)
	students.Delete("/:id", handlers.DeleteStudent)
	students.Get("/:id/course-packages", handlers.GetStudentCoursePackages)
}
