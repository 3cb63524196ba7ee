package service

import (
	"testing"

	paymentmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/model"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              paymentmodel.PaymentStatus
	}{
		{"settlement", "settlement", "", paymentmodel.PaymentStatusPaid},
		{"capture", "capture", "accept", paymentmodel.PaymentStatusPaid},
		{"capture denied by fraud check", "capture", "deny", paymentmodel.PaymentStatusFailed},
		{"deny", "deny", "", paymentmodel.PaymentStatusFailed},
		{"cancel", "cancel", "", paymentmodel.PaymentStatusFailed},
		{"expire", "expire", "", paymentmodel.PaymentStatusExpired},
		{"refund", "refund", "", paymentmodel.PaymentStatusRefunded},
		{"partial refund", "partial_refund", "", paymentmodel.PaymentStatusRefunded},
		{"pending", "pending", "", paymentmodel.PaymentStatusPending},
		{"unknown status stays pending", "authorize", "", paymentmodel.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTransactionStatus(tt.transactionStatus, tt.fraudStatus)
			if got != tt.want {
				t.Errorf("MapTransactionStatus(%q, %q) = %q, want %q",
					tt.transactionStatus, tt.fraudStatus, got, tt.want)
			}
		})
	}
}
