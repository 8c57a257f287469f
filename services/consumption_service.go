package services

import (
	"context"
	"errors"
	"time"

	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const defaultHoursPerClass = 1.0

// Failure reasons reported per student in a ConsumeResult.
const (
	ReasonNoEligiblePackage   = "no_eligible_package"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonStoreError          = "store_error"
)

type ConsumeInput struct {
	StudentIDs    []uint
	ActivityID    *uint
	HoursConsumed *float64
	Remark        string
	ConsumeDate   *time.Time
}

type ConsumeFailure struct {
	StudentID uint   `json:"student_id"`
	Reason    string `json:"reason"`
}

type ConsumeResult struct {
	Message         string           `json:"message"`
	BatchID         string           `json:"batch_id"`
	HoursConsumed   float64          `json:"hours_consumed"`
	SuccessCount    int              `json:"success_count"`
	FailedCount     int              `json:"failed_count"`
	SuccessStudents []uint           `json:"success_students"`
	FailedStudents  []uint           `json:"failed_students"`
	Failures        []ConsumeFailure `json:"failures"`
}

const (
	EventConsumed = "consumed"
	EventReversed = "reversed"
)

type ConsumptionEvent struct {
	Kind            string    `json:"kind"`
	BatchID         string    `json:"batch_id,omitempty"`
	StudentID       uint      `json:"student_id"`
	CoursePackageID uint      `json:"course_package_id"`
	RecordID        uint      `json:"record_id,omitempty"`
	Hours           float64   `json:"hours"`
	At              time.Time `json:"at"`
}

// EventPublisher receives consumption events. Publish must not block.
type EventPublisher interface {
	Publish(ConsumptionEvent)
}

type ConsumptionService struct {
	db      *gorm.DB
	log     *logger.Logger
	events  EventPublisher
	workers int
	now     func() time.Time
}

func NewConsumptionService(db *gorm.DB, log *logger.Logger, events EventPublisher, workers int) *ConsumptionService {
	if log == nil {
		log = logger.Nop()
	}
	if workers <= 0 {
		workers = 1
	}
	return &ConsumptionService{db: db, log: log, events: events, workers: workers, now: time.Now}
}

type studentOutcome struct {
	studentID uint
	ok        bool
	reason    string
}

// Consume debits one session of hours from every listed student. The hours
// and course type are resolved once for the whole batch; each student is
// then processed independently and reported as a success or a failure.
func (s *ConsumptionService) Consume(ctx context.Context, in ConsumeInput) (*ConsumeResult, error) {
	if len(in.StudentIDs) == 0 {
		return nil, invalid("student_ids must not be empty")
	}

	rule, err := s.resolveActivity(ctx, in.ActivityID)
	if err != nil {
		return nil, err
	}

	hours := defaultHoursPerClass
	switch {
	case in.HoursConsumed != nil && roundHours(*in.HoursConsumed) > 0:
		hours = roundHours(*in.HoursConsumed)
	case rule != nil && roundHours(rule.HoursPerClass) > 0:
		hours = roundHours(rule.HoursPerClass)
	}
	courseType := ""
	if rule != nil {
		courseType = rule.CourseType
	}

	consumedAt := s.now()
	if in.ConsumeDate != nil {
		consumedAt = *in.ConsumeDate
	}
	batchID := uuid.NewString()
	log := s.log.With("batch_id", batchID)

	// Once accepted, every student is attempted even if the caller goes away.
	taskCtx := context.WithoutCancel(ctx)
	outcomes := make([]studentOutcome, len(in.StudentIDs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, studentID := range in.StudentIDs {
		g.Go(func() error {
			outcomes[i] = s.consumeOne(taskCtx, log, studentID, courseType, hours, in.ActivityID, in.Remark, consumedAt, batchID)
			return nil
		})
	}
	_ = g.Wait()

	result := &ConsumeResult{
		Message:         "consumption processed",
		BatchID:         batchID,
		HoursConsumed:   hours,
		SuccessStudents: []uint{},
		FailedStudents:  []uint{},
		Failures:        []ConsumeFailure{},
	}
	for _, o := range outcomes {
		if o.ok {
			result.SuccessStudents = append(result.SuccessStudents, o.studentID)
			continue
		}
		result.FailedStudents = append(result.FailedStudents, o.studentID)
		result.Failures = append(result.Failures, ConsumeFailure{StudentID: o.studentID, Reason: o.reason})
	}
	result.SuccessCount = len(result.SuccessStudents)
	result.FailedCount = len(result.FailedStudents)

	log.Info("batch consume finished",
		"hours", hours,
		"course_type", courseType,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *ConsumptionService) consumeOne(
	ctx context.Context,
	log *logger.Logger,
	studentID uint,
	courseType string,
	hours float64,
	activityID *uint,
	remark string,
	consumedAt time.Time,
	batchID string,
) studentOutcome {
	out := studentOutcome{studentID: studentID}

	assignment, err := s.eligibleAssignment(ctx, studentID, courseType)
	if err != nil {
		log.Error("select assignment failed", "student_id", studentID, "error", err)
		out.reason = ReasonStoreError
		return out
	}
	if assignment == nil {
		out.reason = ReasonNoEligiblePackage
		return out
	}

	res := s.db.WithContext(ctx).
		Model(&models.StudentCoursePackage{}).
		Where("id = ? AND remaining_hours >= ?", assignment.ID, hours-hoursEpsilon).
		Update("remaining_hours", balanceMinus(hours))
	if res.Error != nil {
		log.Error("debit failed", "student_id", studentID, "assignment_id", assignment.ID, "error", res.Error)
		out.reason = ReasonStoreError
		return out
	}
	if res.RowsAffected == 0 {
		out.reason = ReasonInsufficientBalance
		return out
	}

	assignmentID := assignment.ID
	record := models.ConsumptionRecord{
		StudentID:       studentID,
		CoursePackageID: assignment.CoursePackageID,
		AssignmentID:    &assignmentID,
		ActivityID:      activityID,
		BatchID:         batchID,
		HoursConsumed:   hours,
		Remark:          remark,
		ConsumeDate:     consumedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// The debit is already committed; the student still counts as consumed.
		log.Error("consumption record not written, hours debited without audit entry",
			"student_id", studentID,
			"assignment_id", assignment.ID,
			"hours", hours,
			"error", err,
		)
	}

	out.ok = true
	s.publish(ConsumptionEvent{
		Kind:            EventConsumed,
		BatchID:         batchID,
		StudentID:       studentID,
		CoursePackageID: assignment.CoursePackageID,
		RecordID:        record.ID,
		Hours:           hours,
		At:              consumedAt,
	})
	return out
}

// eligibleAssignment picks the student's positive balance with the smallest
// remaining hours, so nearly used packages are finished first.
func (s *ConsumptionService) eligibleAssignment(ctx context.Context, studentID uint, courseType string) (*models.StudentCoursePackage, error) {
	q := s.db.WithContext(ctx).
		Table("student_course_packages AS scp").
		Select("scp.*").
		Joins("JOIN course_packages cp ON cp.id = scp.course_package_id").
		Where("scp.student_id = ? AND scp.remaining_hours >= ?", studentID, hoursEpsilon)
	if courseType != "" {
		q = q.Where("cp.course_type = ?", courseType)
	}

	var found []models.StudentCoursePackage
	if err := q.Order("scp.remaining_hours ASC, scp.id ASC").Limit(1).Scan(&found).Error; err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *ConsumptionService) resolveActivity(ctx context.Context, activityID *uint) (*models.ActivityRule, error) {
	if activityID == nil {
		return nil, nil
	}
	var rule models.ActivityRule
	err := s.db.WithContext(ctx).First(&rule, *activityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("load activity rule", err)
	}
	return &rule, nil
}

// Reverse restores the hours of one consumption record to the assignment it
// was debited from and deletes the record, in a single transaction.
func (s *ConsumptionService) Reverse(ctx context.Context, recordID uint) (*models.ConsumptionRecord, error) {
	var record models.ConsumptionRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "consumption record", ID: recordID}
			}
			return storeErr("load consumption record", err)
		}

		q := tx.Model(&models.StudentCoursePackage{})
		if record.AssignmentID != nil {
			q = q.Where("id = ?", *record.AssignmentID)
		} else {
			q = q.Where("student_id = ? AND course_package_id = ?", record.StudentID, record.CoursePackageID)
		}
		res := q.Update("remaining_hours", balancePlus(record.HoursConsumed))
		if res.Error != nil {
			return storeErr("restore hours", res.Error)
		}
		if res.RowsAffected == 0 {
			s.log.Warn("reversal found no assignment to restore",
				"record_id", record.ID,
				"student_id", record.StudentID,
				"course_package_id", record.CoursePackageID,
			)
		}

		if err := tx.Delete(&models.ConsumptionRecord{}, record.ID).Error; err != nil {
			return storeErr("delete consumption record", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("consumption reversed", "record_id", record.ID, "student_id", record.StudentID, "hours", record.HoursConsumed)
	s.publish(ConsumptionEvent{
		Kind:            EventReversed,
		BatchID:         record.BatchID,
		StudentID:       record.StudentID,
		CoursePackageID: record.CoursePackageID,
		RecordID:        record.ID,
		Hours:           record.HoursConsumed,
		At:              s.now(),
	})
	return &record, nil
}

func (s *ConsumptionService) publish(ev ConsumptionEvent) {
	if s.events != nil {
		s.events.Publish(ev)
	}
}
