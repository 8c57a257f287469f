package routes

import (
	"github.com/anjiri1684/course_hours/handlers"
	"github.com/gofiber/fiber/v2"
)

func CoursePackageRoutes(app *fiber.App) {
	packages := app.Group("/api/course-packages")
	packages.Get("", handlers.ListCoursePackages)
	packages.Post("", handlers.CreateCoursePackage)
	packages.Put("/:id", handlers.UpdateCoursePackage)
	packages.Delete("/:id", handlers.DeleteCoursePackage)
}

func AssignmentRoutes(app *fiber.App) {
	assignments := app.Group("/api/student-course-packages")
	assignments.Get("", handlers.ListStudentCoursePackages)
	assignments.Get("/expired", handlers.ListExpiredCoursePackages)
	assignments.Post("", handlers.AssignCoursePackage)
}
