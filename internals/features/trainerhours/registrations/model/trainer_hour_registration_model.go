package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
)

/* =========================================================
   ENUM + FSM: hour registration status
   ========================================================= */

type HourRegistrationStatus string

const (
	HourRegistrationStatusPending  HourRegistrationStatus = "pending"
	HourRegistrationStatusApproved HourRegistrationStatus = "approved"
	HourRegistrationStatusRejected HourRegistrationStatus = "rejected"
	HourRegistrationStatusPaid     HourRegistrationStatus = "paid"
)

// hourRegistrationTransitions is the closed edge set of the workflow. A
// rejected registration goes back to pending only through an owner edit.
var hourRegistrationTransitions = map[HourRegistrationStatus][]HourRegistrationStatus{
	HourRegistrationStatusPending:  {HourRegistrationStatusApproved, HourRegistrationStatusRejected},
	HourRegistrationStatusApproved: {HourRegistrationStatusPaid},
	HourRegistrationStatusRejected: {HourRegistrationStatusPending},
	HourRegistrationStatusPaid:     {},
}

// CanTransition reports whether from -> to is a legal workflow edge.
func CanTransition(from, to HourRegistrationStatus) bool {
	for _, next := range hourRegistrationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and returns the new status, or an error naming the
// rejected edge.
func Transition(from, to HourRegistrationStatus) (HourRegistrationStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("invalid hour registration transition %s -> %s", from, to)
	}
	return to, nil
}

/* =========================================================
   MODEL: trainer_hour_registrations
   ========================================================= */

type TrainerHourRegistrationModel struct {
	TrainerHourRegistrationID uuid.UUID `json:"trainer_hour_registration_id" gorm:"column:trainer_hour_registration_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TrainerHourRegistrationUserID     uuid.UUID  `json:"trainer_hour_registration_user_id" gorm:"column:trainer_hour_registration_user_id;type:uuid;not null;index"`
	TrainerHourRegistrationScheduleID *uuid.UUID `json:"trainer_hour_registration_schedule_id,omitempty" gorm:"column:trainer_hour_registration_schedule_id;type:uuid;index"`

	TrainerHourRegistrationDate      time.Time `json:"trainer_hour_registration_date" gorm:"column:trainer_hour_registration_date;type:date;not null;index"`
	TrainerHourRegistrationStartTime time.Time `json:"trainer_hour_registration_start_time" gorm:"column:trainer_hour_registration_start_time;type:time;not null"`
	TrainerHourRegistrationEndTime   time.Time `json:"trainer_hour_registration_end_time" gorm:"column:trainer_hour_registration_end_time;type:time;not null"`

	TrainerHourRegistrationHours       float64 `json:"trainer_hour_registration_hours" gorm:"column:trainer_hour_registration_hours;type:numeric(6,2);not null"`
	TrainerHourRegistrationHourlyRate  float64 `json:"trainer_hour_registration_hourly_rate" gorm:"column:trainer_hour_registration_hourly_rate;type:numeric(8,2);not null"`
	TrainerHourRegistrationTotalAmount float64 `json:"trainer_hour_registration_total_amount" gorm:"column:trainer_hour_registration_total_amount;type:numeric(10,2);not null"`

	TrainerHourRegistrationType        contractmodel.HourType `json:"trainer_hour_registration_type" gorm:"column:trainer_hour_registration_type;type:varchar(20);not null;default:'lesson';index"`
	TrainerHourRegistrationDescription *string                `json:"trainer_hour_registration_description,omitempty" gorm:"column:trainer_hour_registration_description;type:text"`

	TrainerHourRegistrationStatus HourRegistrationStatus `json:"trainer_hour_registration_status" gorm:"column:trainer_hour_registration_status;type:varchar(20);not null;default:'pending';index"`

	// reviewed-by metadata: filled on approval AND rejection, the status
	// column tells which verdict was given
	TrainerHourRegistrationApprovedBy *uuid.UUID `json:"trainer_hour_registration_approved_by,omitempty" gorm:"column:trainer_hour_registration_approved_by;type:uuid"`
	TrainerHourRegistrationApprovedAt *time.Time `json:"trainer_hour_registration_approved_at,omitempty" gorm:"column:trainer_hour_registration_approved_at"`

	TrainerHourRegistrationNotes      *string `json:"trainer_hour_registration_notes,omitempty" gorm:"column:trainer_hour_registration_notes;type:text"`
	TrainerHourRegistrationAdminNotes *string `json:"trainer_hour_registration_admin_notes,omitempty" gorm:"column:trainer_hour_registration_admin_notes;type:text"`

	TrainerHourRegistrationCreatedAt time.Time      `json:"trainer_hour_registration_created_at" gorm:"column:trainer_hour_registration_created_at;autoCreateTime"`
	TrainerHourRegistrationUpdatedAt time.Time      `json:"trainer_hour_registration_updated_at" gorm:"column:trainer_hour_registration_updated_at;autoUpdateTime"`
	TrainerHourRegistrationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:trainer_hour_registration_deleted_at;index"`
}

func (TrainerHourRegistrationModel) TableName() string { return "trainer_hour_registrations" }
