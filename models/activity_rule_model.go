package models

import "time"

type ActivityRule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	CourseType    string    `gorm:"size:100;not null" json:"course_type"`
	Days          int       `gorm:"not null" json:"days"`
	TotalHours    float64   `gorm:"not null" json:"total_hours"`
	HoursPerClass float64   `gorm:"not null" json:"hours_per_class"`
	CreatedAt     time.Time `json:"created_at"`
}
