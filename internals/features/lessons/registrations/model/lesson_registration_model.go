package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUMS
   ========================================================= */

type LessonRegistrationStatus string

const (
	LessonRegistrationStatusPending   LessonRegistrationStatus = "pending"
	LessonRegistrationStatusConfirmed LessonRegistrationStatus = "confirmed"
	LessonRegistrationStatusCancelled LessonRegistrationStatus = "cancelled"
)

type LessonRegistrationPaymentStatus string

const (
	LessonRegistrationPaymentUnpaid   LessonRegistrationPaymentStatus = "unpaid"
	LessonRegistrationPaymentPaid     LessonRegistrationPaymentStatus = "paid"
	LessonRegistrationPaymentRefunded LessonRegistrationPaymentStatus = "refunded"
)

/* =========================================================
   MODEL: lesson_registrations
   ========================================================= */

type LessonRegistrationModel struct {
	LessonRegistrationID uuid.UUID `json:"lesson_registration_id" gorm:"column:lesson_registration_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonRegistrationPackageID uuid.UUID `json:"lesson_registration_package_id" gorm:"column:lesson_registration_package_id;type:uuid;not null;index"`
	LessonRegistrationUserID    uuid.UUID `json:"lesson_registration_user_id" gorm:"column:lesson_registration_user_id;type:uuid;not null;index"`

	LessonRegistrationAvailableDays     pq.StringArray `json:"lesson_registration_available_days" gorm:"column:lesson_registration_available_days;type:text[]"`
	LessonRegistrationPreferredPartners pq.StringArray `json:"lesson_registration_preferred_partners" gorm:"column:lesson_registration_preferred_partners;type:text[]"`

	LessonRegistrationLevel   string  `json:"lesson_registration_level" gorm:"column:lesson_registration_level;type:varchar(20);not null;default:'beginner'"`
	LessonRegistrationRemarks *string `json:"lesson_registration_remarks,omitempty" gorm:"column:lesson_registration_remarks;type:text"`

	// nil until the capacity assigner places the registration
	LessonRegistrationAssignedGroupID *uuid.UUID `json:"lesson_registration_assigned_group_id,omitempty" gorm:"column:lesson_registration_assigned_group_id;type:uuid;index"`

	LessonRegistrationStatus        LessonRegistrationStatus        `json:"lesson_registration_status" gorm:"column:lesson_registration_status;type:varchar(20);not null;default:'pending';index"`
	LessonRegistrationPaymentStatus LessonRegistrationPaymentStatus `json:"lesson_registration_payment_status" gorm:"column:lesson_registration_payment_status;type:varchar(20);not null;default:'unpaid'"`
	LessonRegistrationAmountPaid    float64                         `json:"lesson_registration_amount_paid" gorm:"column:lesson_registration_amount_paid;type:numeric(8,2);not null;default:0"`

	LessonRegistrationCreatedAt time.Time      `json:"lesson_registration_created_at" gorm:"column:lesson_registration_created_at;autoCreateTime"`
	LessonRegistrationUpdatedAt time.Time      `json:"lesson_registration_updated_at" gorm:"column:lesson_registration_updated_at;autoUpdateTime"`
	LessonRegistrationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_registration_deleted_at;index"`
}

func (LessonRegistrationModel) TableName() string { return "lesson_registrations" }
