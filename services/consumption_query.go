package services

import (
	"context"

	"github.com/anjiri1684/course_hours/models"
	"gorm.io/gorm"
)

type RecordFilter struct {
	StudentName     string
	CoursePackageID uint
	Limit           int
	Offset          int
}

// ListConsumptionRecords returns records newest first, joined with the
// student, package and (optional) activity names.
func ListConsumptionRecords(ctx context.Context, db *gorm.DB, f RecordFilter) ([]models.ConsumptionRecordView, error) {
	q := db.WithContext(ctx).
		Table("consumption_records AS cr").
		Select("cr.*, s.name AS student_name, cp.name AS package_name, ar.name AS activity_name").
		Joins("JOIN students s ON cr.student_id = s.id").
		Joins("JOIN course_packages cp ON cr.course_package_id = cp.id").
		Joins("LEFT JOIN activity_rules ar ON cr.activity_id = ar.id")
	if f.StudentName != "" {
		q = q.Where("s.name LIKE ?", "%"+f.StudentName+"%")
	}
	if f.CoursePackageID != 0 {
		q = q.Where("cp.id = ?", f.CoursePackageID)
	}

	records := []models.ConsumptionRecordView{}
	err := q.Order("cr.consume_date DESC, cr.id DESC").Limit(f.Limit).Offset(f.Offset).Scan(&records).Error
	if err != nil {
		return nil, storeErr("list consumption records", err)
	}
	return records, nil
}

type Stats struct {
	TotalStudents           int64   `json:"total_students"`
	TotalCoursePackages     int64   `json:"total_course_packages"`
	TotalConsumptionRecords int64   `json:"total_consumption_records"`
	TotalHoursConsumed      float64 `json:"total_hours_consumed"`
	TotalHoursRemaining     float64 `json:"total_hours_remaining"`
}

func GetStats(ctx context.Context, db *gorm.DB) (*Stats, error) {
	db = db.WithContext(ctx)
	var st Stats
	if err := db.Model(&models.Student{}).Count(&st.TotalStudents).Error; err != nil {
		return nil, storeErr("count students", err)
	}
	if err := db.Model(&models.CoursePackage{}).Count(&st.TotalCoursePackages).Error; err != nil {
		return nil, storeErr("count course packages", err)
	}
	if err := db.Model(&models.ConsumptionRecord{}).Count(&st.TotalConsumptionRecords).Error; err != nil {
		return nil, storeErr("count consumption records", err)
	}
	if err := db.Model(&models.ConsumptionRecord{}).Select("COALESCE(SUM(hours_consumed), 0)").Scan(&st.TotalHoursConsumed).Error; err != nil {
		return nil, storeErr("sum hours consumed", err)
	}
	if err := db.Model(&models.StudentCoursePackage{}).Select("COALESCE(SUM(remaining_hours), 0)").Scan(&st.TotalHoursRemaining).Error; err != nil {
		return nil, storeErr("sum hours remaining", err)
	}
	st.TotalHoursConsumed = roundHours(st.TotalHoursConsumed)
	st.TotalHoursRemaining = roundHours(st.TotalHoursRemaining)
	return &st, nil
}
