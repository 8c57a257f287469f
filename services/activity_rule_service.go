package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/anjiri1684/course_hours/models"
	"gorm.io/gorm"
)

type ActivityRuleInput struct {
	Name       string
	CourseType string
	Days       int
	TotalHours float64
}

// HoursPerClass is total/days rounded half-up to one decimal.
func HoursPerClass(totalHours float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return math.Floor(totalHours/float64(days)*10+0.5) / 10
}

func (in ActivityRuleInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CourseType) == "" || in.Days <= 0 || in.TotalHours <= 0 {
		return invalid("name, course_type, days and total_hours are required")
	}
	return nil
}

func CreateActivityRule(ctx context.Context, db *gorm.DB, in ActivityRuleInput) (*models.ActivityRule, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	rule := models.ActivityRule{
		Name:          in.Name,
		CourseType:    in.CourseType,
		Days:          in.Days,
		TotalHours:    in.TotalHours,
		HoursPerClass: HoursPerClass(in.TotalHours, in.Days),
	}
	if err := db.WithContext(ctx).Create(&rule).Error; err != nil {
		return nil, storeErr("create activity rule", err)
	}
	return &rule, nil
}

func UpdateActivityRule(ctx context.Context, db *gorm.DB, id uint, in ActivityRuleInput) (*models.ActivityRule, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var rule models.ActivityRule
	if err := db.WithContext(ctx).First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "activity rule", ID: id}
		}
		return nil, storeErr("load activity rule", err)
	}

	rule.Name = in.Name
	rule.CourseType = in.CourseType
	rule.Days = in.Days
	rule.TotalHours = in.TotalHours
	rule.HoursPerClass = HoursPerClass(in.TotalHours, in.Days)
	if err := db.WithContext(ctx).Save(&rule).Error; err != nil {
		return nil, storeErr("update activity rule", err)
	}
	return &rule, nil
}
