package dbtest

import (
	"fmt"
	"testing"

	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Open returns a migrated, private in-memory SQLite database.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedStudent(tb testing.TB, db *gorm.DB, name string) *models.Student {
	tb.Helper()
	s := &models.Student{Name: name}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedPackage(tb testing.TB, db *gorm.DB, name, courseType string, totalHours float64) *models.CoursePackage {
	tb.Helper()
	p := &models.CoursePackage{Name: name, CourseType: courseType, TotalHours: totalHours}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed course package: %v", err)
	}
	return p
}

func SeedAssignment(tb testing.TB, db *gorm.DB, studentID, packageID uint, remaining float64) *models.StudentCoursePackage {
	tb.Helper()
	a := &models.StudentCoursePackage{StudentID: studentID, CoursePackageID: packageID, RemainingHours: remaining}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed assignment: %v", err)
	}
	return a
}

func SeedRule(tb testing.TB, db *gorm.DB, name, courseType string, days int, totalHours, perClass float64) *models.ActivityRule {
	tb.Helper()
	r := &models.ActivityRule{Name: name, CourseType: courseType, Days: days, TotalHours: totalHours, HoursPerClass: perClass}
	if err := db.Create(r).Error; err != nil {
		tb.Fatalf("seed activity rule: %v", err)
	}
	return r
}

func Remaining(tb testing.TB, db *gorm.DB, assignmentID uint) float64 {
	tb.Helper()
	var a models.StudentCoursePackage
	if err := db.First(&a, assignmentID).Error; err != nil {
		tb.Fatalf("load assignment %d: %v", assignmentID, err)
	}
	return a.RemainingHours
}
