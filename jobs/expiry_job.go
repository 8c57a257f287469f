package jobs

import (
	"context"
	"time"

	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/services"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReportExpiredAssignments logs assignments past their end date that still
// hold hours. It never changes balances.
func ReportExpiredAssignments(db *gorm.DB, log *logger.Logger) func() {
	return func() {
		log.Info("Running job: ReportExpiredAssignments")

		expired, err := services.ListExpiredAssignments(context.Background(), db, time.Now())
		if err != nil {
			log.Error("expired assignment scan failed", "error", err)
			return
		}
		if len(expired) == 0 {
			log.Info("No expired assignments with remaining hours.")
			return
		}

		ids := make([]uint, 0, len(expired))
		var hours float64
		for _, a := range expired {
			ids = append(ids, a.ID)
			hours += a.RemainingHours
		}
		log.Warn("expired assignments still hold hours", "count", len(expired), "hours", hours, "assignment_ids", ids)
	}
}

func Schedule(spec string, db *gorm.DB, log *logger.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, ReportExpiredAssignments(db, log)); err != nil {
		return nil, err
	}
	return c, nil
}
