package services

import (
	"context"

	"github.com/anjiri1684/course_hours/models"
	"gorm.io/gorm"
)

// DeleteStudent removes the student's consumption records, then its
// assignments, then the student row. The error names the failing step.
func DeleteStudent(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.ConsumptionRecord{}).Error; err != nil {
			return storeErr("delete consumption records", err)
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.StudentCoursePackage{}).Error; err != nil {
			return storeErr("delete student course packages", err)
		}
		res := tx.Delete(&models.Student{}, id)
		if res.Error != nil {
			return storeErr("delete student", res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "student", ID: id}
		}
		return nil
	})
}
