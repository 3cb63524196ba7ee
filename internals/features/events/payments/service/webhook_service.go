package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	paymentmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/model"
)

// MapTransactionStatus translates a Midtrans transaction_status into our
// payment status. fraud_status "deny" overrides to failed.
func MapTransactionStatus(transactionStatus, fraudStatus string) paymentmodel.PaymentStatus {
	if fraudStatus == "deny" {
		return paymentmodel.PaymentStatusFailed
	}
	switch transactionStatus {
	case "settlement", "capture", "success":
		return paymentmodel.PaymentStatusPaid
	case "deny", "failure", "cancel":
		return paymentmodel.PaymentStatusFailed
	case "expire":
		return paymentmodel.PaymentStatusExpired
	case "refund", "partial_refund":
		return paymentmodel.PaymentStatusRefunded
	default:
		return paymentmodel.PaymentStatusPending
	}
}

// ProcessNotification applies a provider notification to the payment row and,
// when the payable is an event registration, flips its payment status too.
// The updated payment is returned so callers can react to the final status.
func ProcessNotification(db *gorm.DB, body map[string]interface{}) (*paymentmodel.PaymentModel, error) {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	fraudStatus, _ := body["fraud_status"].(string)
	paymentType, _ := body["payment_type"].(string)

	if orderID == "" {
		return nil, fmt.Errorf("notification misses order_id")
	}

	var payment paymentmodel.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, fmt.Errorf("payment %s not found: %w", orderID, err)
	}

	newStatus := MapTransactionStatus(transactionStatus, fraudStatus)

	raw, err := json.Marshal(body)
	if err == nil {
		payment.PaymentProviderResponse = raw
	}
	payment.PaymentStatus = newStatus
	if paymentType != "" {
		payment.PaymentMethod = &paymentType
	}
	if newStatus == paymentmodel.PaymentStatusPaid && payment.PaymentPaidAt == nil {
		now := time.Now()
		payment.PaymentPaidAt = &now
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		if payment.PaymentPayableKind != paymentmodel.PayableKindEventRegistration {
			return nil
		}

		var reg regmodel.EventRegistrationModel
		if err := tx.First(&reg, "event_registration_id = ?", payment.PaymentPayableID).Error; err != nil {
			log.Printf("[PAYMENT] registration %s for order %s not found: %v",
				payment.PaymentPayableID, orderID, err)
			return nil
		}

		switch newStatus {
		case paymentmodel.PaymentStatusPaid:
			now := time.Now()
			reg.EventRegistrationPaymentStatus = regmodel.EventRegistrationPaymentPaid
			reg.EventRegistrationStatus = regmodel.EventRegistrationStatusConfirmed
			reg.EventRegistrationAmountPaid = payment.PaymentAmount
			reg.EventRegistrationPaidAt = &now
		case paymentmodel.PaymentStatusRefunded:
			reg.EventRegistrationPaymentStatus = regmodel.EventRegistrationPaymentRefunded
		case paymentmodel.PaymentStatusFailed, paymentmodel.PaymentStatusExpired:
			reg.EventRegistrationPaymentStatus = regmodel.EventRegistrationPaymentUnpaid
		default:
			return nil
		}
		return tx.Save(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
