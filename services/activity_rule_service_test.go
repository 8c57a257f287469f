package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anjiri1684/course_hours/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursPerClass(t *testing.T) {
	tests := []struct {
		total float64
		days  int
		want  float64
	}{
		{10, 3, 3.3},
		{4, 2, 2},
		{5, 2, 2.5},
		{1, 8, 0.1},
		{1, 16, 0.1},
		{2, 3, 0.7},
		{7, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HoursPerClass(tt.total, tt.days), "total=%v days=%d", tt.total, tt.days)
	}
}

func TestCreateActivityRuleDerivesHoursPerClass(t *testing.T) {
	db := dbtest.Open(t)
	rule, err := CreateActivityRule(context.Background(), db, ActivityRuleInput{Name: "Camp", CourseType: "A", Days: 3, TotalHours: 10})
	require.NoError(t, err)
	assert.NotZero(t, rule.ID)
	assert.Equal(t, 3.3, rule.HoursPerClass)
}

func TestCreateActivityRuleRejectsMissingFields(t *testing.T) {
	db := dbtest.Open(t)
	inputs := []ActivityRuleInput{
		{CourseType: "A", Days: 1, TotalHours: 1},
		{Name: "x", Days: 1, TotalHours: 1},
		{Name: "x", CourseType: "A", TotalHours: 1},
		{Name: "x", CourseType: "A", Days: 1},
	}
	for _, in := range inputs {
		_, err := CreateActivityRule(context.Background(), db, in)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), "%+v", in)
	}
}

func TestUpdateActivityRuleRecomputes(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	rule, err := CreateActivityRule(ctx, db, ActivityRuleInput{Name: "Camp", CourseType: "A", Days: 2, TotalHours: 4})
	require.NoError(t, err)

	updated, err := UpdateActivityRule(ctx, db, rule.ID, ActivityRuleInput{Name: "Camp+", CourseType: "B", Days: 4, TotalHours: 5})
	require.NoError(t, err)
	assert.Equal(t, "Camp+", updated.Name)
	assert.Equal(t, 1.3, updated.HoursPerClass)

	_, err = UpdateActivityRule(ctx, db, 999, ActivityRuleInput{Name: "x", CourseType: "A", Days: 1, TotalHours: 1})
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}
