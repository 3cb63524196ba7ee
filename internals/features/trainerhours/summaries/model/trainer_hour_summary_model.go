package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM + FSM: summary status
   ========================================================= */

type SummaryStatus string

const (
	SummaryStatusDraft     SummaryStatus = "draft"
	SummaryStatusSubmitted SummaryStatus = "submitted"
	SummaryStatusApproved  SummaryStatus = "approved"
	SummaryStatusPaid      SummaryStatus = "paid"
)

// summaryTransitions only moves forward, one step at a time.
var summaryTransitions = map[SummaryStatus]SummaryStatus{
	SummaryStatusDraft:     SummaryStatusSubmitted,
	SummaryStatusSubmitted: SummaryStatusApproved,
	SummaryStatusApproved:  SummaryStatusPaid,
}

// CanTransition reports whether from -> to is the legal next step.
func CanTransition(from, to SummaryStatus) bool {
	return summaryTransitions[from] == to
}

// Transition validates and returns the new status.
func Transition(from, to SummaryStatus) (SummaryStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("invalid summary transition %s -> %s", from, to)
	}
	return to, nil
}

/* =========================================================
   MODEL: trainer_hour_summaries
   ========================================================= */

type TrainerHourSummaryModel struct {
	TrainerHourSummaryID uuid.UUID `json:"trainer_hour_summary_id" gorm:"column:trainer_hour_summary_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TrainerHourSummaryUserID uuid.UUID `json:"trainer_hour_summary_user_id" gorm:"column:trainer_hour_summary_user_id;type:uuid;not null;uniqueIndex:uq_trainer_hour_summary_period"`
	TrainerHourSummaryYear   int       `json:"trainer_hour_summary_year" gorm:"column:trainer_hour_summary_year;not null;uniqueIndex:uq_trainer_hour_summary_period"`
	TrainerHourSummaryMonth  int       `json:"trainer_hour_summary_month" gorm:"column:trainer_hour_summary_month;not null;uniqueIndex:uq_trainer_hour_summary_period"`

	TrainerHourSummaryLessonHours      float64 `json:"trainer_hour_summary_lesson_hours" gorm:"column:trainer_hour_summary_lesson_hours;type:numeric(8,2);not null;default:0"`
	TrainerHourSummaryPreparationHours float64 `json:"trainer_hour_summary_preparation_hours" gorm:"column:trainer_hour_summary_preparation_hours;type:numeric(8,2);not null;default:0"`
	TrainerHourSummaryMeetingHours     float64 `json:"trainer_hour_summary_meeting_hours" gorm:"column:trainer_hour_summary_meeting_hours;type:numeric(8,2);not null;default:0"`
	TrainerHourSummaryTournamentHours  float64 `json:"trainer_hour_summary_tournament_hours" gorm:"column:trainer_hour_summary_tournament_hours;type:numeric(8,2);not null;default:0"`
	TrainerHourSummaryOtherHours       float64 `json:"trainer_hour_summary_other_hours" gorm:"column:trainer_hour_summary_other_hours;type:numeric(8,2);not null;default:0"`

	TrainerHourSummaryTotalHours  float64 `json:"trainer_hour_summary_total_hours" gorm:"column:trainer_hour_summary_total_hours;type:numeric(8,2);not null;default:0"`
	TrainerHourSummaryTotalAmount float64 `json:"trainer_hour_summary_total_amount" gorm:"column:trainer_hour_summary_total_amount;type:numeric(10,2);not null;default:0"`

	TrainerHourSummaryStatus SummaryStatus `json:"trainer_hour_summary_status" gorm:"column:trainer_hour_summary_status;type:varchar(20);not null;default:'draft';index"`

	TrainerHourSummarySubmittedAt      *time.Time `json:"trainer_hour_summary_submitted_at,omitempty" gorm:"column:trainer_hour_summary_submitted_at"`
	TrainerHourSummaryApprovedBy       *uuid.UUID `json:"trainer_hour_summary_approved_by,omitempty" gorm:"column:trainer_hour_summary_approved_by;type:uuid"`
	TrainerHourSummaryApprovedAt       *time.Time `json:"trainer_hour_summary_approved_at,omitempty" gorm:"column:trainer_hour_summary_approved_at"`
	TrainerHourSummaryPaidAt           *time.Time `json:"trainer_hour_summary_paid_at,omitempty" gorm:"column:trainer_hour_summary_paid_at"`
	TrainerHourSummaryPaymentReference *string    `json:"trainer_hour_summary_payment_reference,omitempty" gorm:"column:trainer_hour_summary_payment_reference;type:varchar(100)"`

	TrainerHourSummaryCreatedAt time.Time      `json:"trainer_hour_summary_created_at" gorm:"column:trainer_hour_summary_created_at;autoCreateTime"`
	TrainerHourSummaryUpdatedAt time.Time      `json:"trainer_hour_summary_updated_at" gorm:"column:trainer_hour_summary_updated_at;autoUpdateTime"`
	TrainerHourSummaryDeletedAt gorm.DeletedAt `json:"-" gorm:"column:trainer_hour_summary_deleted_at;index"`
}

func (TrainerHourSummaryModel) TableName() string { return "trainer_hour_summaries" }
