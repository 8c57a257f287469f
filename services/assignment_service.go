package services

import (
	"context"
	"errors"
	"time"

	"github.com/anjiri1684/course_hours/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignInput struct {
	StudentID       uint
	CoursePackageID uint
	RemainingHours  float64
	StartDate       *time.Time
	EndDate         *time.Time
}

// AssignPackage grants a package to a student. A zero RemainingHours means
// the package's full quota.
func AssignPackage(ctx context.Context, db *gorm.DB, in AssignInput) (*models.StudentCoursePackage, error) {
	if in.StudentID == 0 || in.CoursePackageID == 0 {
		return nil, invalid("student_id and course_package_id are required")
	}
	if in.RemainingHours < 0 {
		return nil, invalid("remaining_hours must not be negative")
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, invalid("end_date must not be before start_date")
	}

	db = db.WithContext(ctx)
	var student models.Student
	if err := db.Select("id").First(&student, in.StudentID).Error; err != nil {
		return nil, lookupErr(err, "student", in.StudentID)
	}
	var pkg models.CoursePackage
	if err := db.First(&pkg, in.CoursePackageID).Error; err != nil {
		return nil, lookupErr(err, "course package", in.CoursePackageID)
	}

	hours := roundHours(in.RemainingHours)
	if hours == 0 {
		hours = pkg.TotalHours
	}
	assignment := models.StudentCoursePackage{
		StudentID:       in.StudentID,
		CoursePackageID: in.CoursePackageID,
		RemainingHours:  hours,
		StartDate:       toDate(in.StartDate),
		EndDate:         toDate(in.EndDate),
	}
	if err := db.Create(&assignment).Error; err != nil {
		return nil, storeErr("create student course package", err)
	}
	return &assignment, nil
}

func ListStudentPackages(ctx context.Context, db *gorm.DB, studentID uint) ([]models.StudentCoursePackageView, error) {
	views := []models.StudentCoursePackageView{}
	err := db.WithContext(ctx).
		Table("student_course_packages AS scp").
		Select("scp.*, cp.name AS package_name, cp.course_type, cp.total_hours").
		Joins("JOIN course_packages cp ON scp.course_package_id = cp.id").
		Where("scp.student_id = ?", studentID).
		Order("scp.id").
		Scan(&views).Error
	if err != nil {
		return nil, storeErr("list student course packages", err)
	}
	return views, nil
}

// ListExpiredAssignments returns assignments whose end date is before asOf's
// day and that still hold hours. The validity window is advisory only.
func ListExpiredAssignments(ctx context.Context, db *gorm.DB, asOf time.Time) ([]models.StudentCoursePackage, error) {
	var candidates []models.StudentCoursePackage
	err := db.WithContext(ctx).
		Where("end_date IS NOT NULL AND remaining_hours >= ?", hoursEpsilon).
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, storeErr("list assignments", err)
	}

	y, m, d := asOf.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	expired := []models.StudentCoursePackage{}
	for _, a := range candidates {
		ey, em, ed := time.Time(*a.EndDate).Date()
		if time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).Before(today) {
			expired = append(expired, a)
		}
	}
	return expired, nil
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func lookupErr(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return storeErr("load "+entity, err)
}
