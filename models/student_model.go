package models

import "time"

type Student struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Nickname      string    `gorm:"size:255;default:''" json:"nickname"`
	ParentContact string    `gorm:"size:255;default:''" json:"parent_contact"`
	Phone         string    `gorm:"size:50;default:''" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}
