package models

import "time"

// ConsumptionRecord is the audit entry of one debit. AssignmentID is nil
// for rows written before assignments were tracked on the record.
type ConsumptionRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StudentID       uint      `gorm:"not null;index" json:"student_id"`
	CoursePackageID uint      `gorm:"not null;index" json:"course_package_id"`
	AssignmentID    *uint     `gorm:"index" json:"assignment_id"`
	ActivityID      *uint     `json:"activity_id"`
	BatchID         string    `gorm:"size:36;index" json:"batch_id"`
	HoursConsumed   float64   `gorm:"not null" json:"hours_consumed"`
	Remark          string    `gorm:"type:text" json:"remark"`
	ConsumeDate     time.Time `gorm:"not null;index" json:"consume_date"`
}

type ConsumptionRecordView struct {
	ConsumptionRecord
	StudentName  string  `json:"student_name"`
	PackageName  string  `json:"package_name"`
	ActivityName *string `json:"activity_name"`
}
