package models

import "gorm.io/datatypes"

// StudentCoursePackage is the grant of a package's hours to one student.
// RemainingHours is only changed by the consumption engine.
type StudentCoursePackage struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	StudentID       uint            `gorm:"not null;index" json:"student_id"`
	CoursePackageID uint            `gorm:"not null;index" json:"course_package_id"`
	RemainingHours  float64         `gorm:"not null" json:"remaining_hours"`
	StartDate       *datatypes.Date `json:"start_date"`
	EndDate         *datatypes.Date `json:"end_date"`
}

// StudentCoursePackageView is an assignment joined with its package.
type StudentCoursePackageView struct {
	StudentCoursePackage
	PackageName string  `json:"package_name"`
	CourseType  string  `json:"course_type"`
	TotalHours  float64 `json:"total_hours"`
}
