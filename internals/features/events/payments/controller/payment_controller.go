package controller

import (
	"errors"
	"fmt"
	"log"
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
	paymentmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/service"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

type PaymentController struct {
	DB     *gorm.DB
	Mailer mailer.Service
}

func NewPaymentController(db *gorm.DB, m mailer.Service) *PaymentController {
	return &PaymentController{DB: db, Mailer: m}
}

// HandleNotification receives the provider webhook and applies it.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid webhook payload"})
	}

	payment, err := service.ProcessNotification(ctl.DB, body)
	if err != nil {
		log.Printf("[PAYMENT] webhook failed: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if payment.PaymentStatus == paymentmodel.PaymentStatusPaid {
		ctl.sendConfirmationEmail(payment)
	}

	return c.SendStatus(fiber.StatusOK)
}

// Status lets the frontend poll a payment by order id.
func (ctl *PaymentController) Status(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	var payment paymentmodel.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"order_id": payment.PaymentOrderID,
		"status":   payment.PaymentStatus,
		"amount":   payment.PaymentAmount,
		"paid_at":  payment.PaymentPaidAt,
	})
}

func (ctl *PaymentController) sendConfirmationEmail(payment *paymentmodel.PaymentModel) {
	if payment.PaymentPayableKind != paymentmodel.PayableKindEventRegistration {
		return
	}

	var reg regmodel.EventRegistrationModel
	if err := ctl.DB.First(&reg, "event_registration_id = ?", payment.PaymentPayableID).Error; err != nil {
		return
	}

	var event eventmodel.EventModel
	if err := ctl.DB.First(&event, "event_id = ?", reg.EventRegistrationEventID).Error; err != nil {
		return
	}

	name, email := "", ""
	if reg.EventRegistrationUserID != nil {
		var user usermodel.UserModel
		if err := ctl.DB.First(&user, "user_id = ?", *reg.EventRegistrationUserID).Error; err == nil {
			name, email = user.UserName, user.UserEmail
		}
	} else {
		if reg.EventRegistrationGuestName != nil {
			name = *reg.EventRegistrationGuestName
		}
		if reg.EventRegistrationGuestEmail != nil {
			email = *reg.EventRegistrationGuestEmail
		}
	}
	if email == "" {
		return
	}

	msg := &mailer.Message{
		To:      mail.Address{Name: name, Address: email},
		Subject: fmt.Sprintf("Inschrijving bevestigd: %s", event.EventTitle),
		TextBody: fmt.Sprintf(
			"Beste %s,\n\nJe betaling van %.2f EUR voor %s is ontvangen. Je inschrijving is bevestigd.\n\nTot dan!\nTC Zutendaal",
			name, payment.PaymentAmount, event.EventTitle),
	}
	if err := ctl.Mailer.Send(msg); err != nil {
		log.Printf("[PAYMENT] confirmation mail to %s failed: %v", email, err)
	}
}
