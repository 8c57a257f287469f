package models

import "time"

type CoursePackage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	TotalHours float64   `gorm:"not null" json:"total_hours"`
	CourseType string    `gorm:"size:100;not null;index" json:"course_type"`
	Price      *float64  `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
