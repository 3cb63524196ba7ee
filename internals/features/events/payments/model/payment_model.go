package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUMS
   ========================================================= */

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusExpired  PaymentStatus = "expired"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PayableKind tags which record a payment settles.
type PayableKind string

const (
	PayableKindEventRegistration PayableKind = "event_registration"
)

/* =========================================================
   MODEL: payments
   ========================================================= */

type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// polymorphic target, always read the pair together
	PaymentPayableKind PayableKind `json:"payment_payable_kind" gorm:"column:payment_payable_kind;type:varchar(40);not null;index:idx_payments_payable"`
	PaymentPayableID   uuid.UUID   `json:"payment_payable_id" gorm:"column:payment_payable_id;type:uuid;not null;index:idx_payments_payable"`

	PaymentOrderID string  `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex"`
	PaymentAmount  float64 `json:"payment_amount" gorm:"column:payment_amount;type:numeric(10,2);not null"`

	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index"`
	PaymentSnapToken *string       `json:"payment_snap_token,omitempty" gorm:"column:payment_snap_token;type:text"`
	PaymentMethod    *string       `json:"payment_method,omitempty" gorm:"column:payment_method;type:varchar(50)"`

	PaymentProviderResponse datatypes.JSON `json:"payment_provider_response,omitempty" gorm:"column:payment_provider_response;type:jsonb"`

	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at"`

	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;autoCreateTime"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;autoUpdateTime"`
	PaymentDeletedAt gorm.DeletedAt `json:"-" gorm:"column:payment_deleted_at;index"`
}

func (PaymentModel) TableName() string { return "payments" }
