package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUMS
   ========================================================= */

type EventRegistrationStatus string

const (
	EventRegistrationStatusPending   EventRegistrationStatus = "pending"
	EventRegistrationStatusConfirmed EventRegistrationStatus = "confirmed"
	EventRegistrationStatusCancelled EventRegistrationStatus = "cancelled"
)

type EventRegistrationPaymentStatus string

const (
	EventRegistrationPaymentUnpaid   EventRegistrationPaymentStatus = "unpaid"
	EventRegistrationPaymentPaid     EventRegistrationPaymentStatus = "paid"
	EventRegistrationPaymentRefunded EventRegistrationPaymentStatus = "refunded"
)

/* =========================================================
   MODEL: event_registrations
   ========================================================= */

type EventRegistrationModel struct {
	EventRegistrationID uuid.UUID `json:"event_registration_id" gorm:"column:event_registration_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EventRegistrationEventID uuid.UUID  `json:"event_registration_event_id" gorm:"column:event_registration_event_id;type:uuid;not null;index"`
	EventRegistrationUserID  *uuid.UUID `json:"event_registration_user_id,omitempty" gorm:"column:event_registration_user_id;type:uuid;index"`

	// guest registrations carry their contact details inline
	EventRegistrationGuestName  *string `json:"event_registration_guest_name,omitempty" gorm:"column:event_registration_guest_name;type:varchar(100)"`
	EventRegistrationGuestEmail *string `json:"event_registration_guest_email,omitempty" gorm:"column:event_registration_guest_email;type:varchar(255)"`
	EventRegistrationGuestPhone *string `json:"event_registration_guest_phone,omitempty" gorm:"column:event_registration_guest_phone;type:varchar(30)"`

	EventRegistrationStatus        EventRegistrationStatus        `json:"event_registration_status" gorm:"column:event_registration_status;type:varchar(20);not null;default:'pending';index"`
	EventRegistrationPaymentStatus EventRegistrationPaymentStatus `json:"event_registration_payment_status" gorm:"column:event_registration_payment_status;type:varchar(20);not null;default:'unpaid'"`

	EventRegistrationAmountDue  float64    `json:"event_registration_amount_due" gorm:"column:event_registration_amount_due;type:numeric(8,2);not null;default:0"`
	EventRegistrationAmountPaid float64    `json:"event_registration_amount_paid" gorm:"column:event_registration_amount_paid;type:numeric(8,2);not null;default:0"`
	EventRegistrationPaidAt     *time.Time `json:"event_registration_paid_at,omitempty" gorm:"column:event_registration_paid_at"`

	EventRegistrationNotes *string `json:"event_registration_notes,omitempty" gorm:"column:event_registration_notes;type:text"`

	EventRegistrationCreatedAt time.Time      `json:"event_registration_created_at" gorm:"column:event_registration_created_at;autoCreateTime"`
	EventRegistrationUpdatedAt time.Time      `json:"event_registration_updated_at" gorm:"column:event_registration_updated_at;autoUpdateTime"`
	EventRegistrationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:event_registration_deleted_at;index"`
}

func (EventRegistrationModel) TableName() string { return "event_registrations" }
