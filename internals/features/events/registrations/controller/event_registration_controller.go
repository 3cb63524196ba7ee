package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sappico-be/tc-zutendaal-backend/internals/constants"
	eventdto "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/dto"
	eventmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
	paymentmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/model"
	paymentservice "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/payments/service"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type EventRegistrationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventRegistrationController(db *gorm.DB) *EventRegistrationController {
	return &EventRegistrationController{DB: db, Validator: validator.New()}
}

func newOrderID(regID uuid.UUID) string {
	return fmt.Sprintf("EVT-%s-%d", regID.String()[:8], time.Now().Unix())
}

// Register signs a member or a guest up for an event. Free events confirm
// immediately, paid events get a pending payment with a Snap token.
func (ctl *EventRegistrationController) Register(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var req eventdto.RegisterEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var event eventmodel.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// resolve who registers: a logged-in user or a guest with contact details
	var user *usermodel.UserModel
	if userID, err := helper.GetUserIDFromCtx(c); err == nil {
		var u usermodel.UserModel
		if err := ctl.DB.First(&u, "user_id = ?", userID).Error; err == nil {
			user = &u
		}
	}
	if user == nil {
		if event.EventMembersOnly {
			return helper.JsonError(c, fiber.StatusForbidden, "this event is open to members only")
		}
		if req.GuestName == nil || req.GuestEmail == nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "guest_name and guest_email are required for guest registrations")
		}
	}

	var confirmed int64
	if err := ctl.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", event.EventID).
		Where("event_registration_status = ?", model.EventRegistrationStatusConfirmed).
		Count(&confirmed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !event.CanRegister(time.Now(), confirmed) {
		return helper.JsonError(c, fiber.StatusConflict, "registration is closed for this event")
	}

	membershipType := constants.MembershipNonMember
	if user != nil {
		membershipType = user.UserMembershipType

		var existing int64
		ctl.DB.Model(&model.EventRegistrationModel{}).
			Where("event_registration_event_id = ?", event.EventID).
			Where("event_registration_user_id = ?", user.UserID).
			Where("event_registration_status <> ?", model.EventRegistrationStatusCancelled).
			Count(&existing)
		if existing > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "you are already registered for this event")
		}
	}
	amount := event.PriceFor(membershipType)

	reg := model.EventRegistrationModel{
		EventRegistrationEventID:    event.EventID,
		EventRegistrationGuestName:  req.GuestName,
		EventRegistrationGuestEmail: req.GuestEmail,
		EventRegistrationGuestPhone: req.GuestPhone,
		EventRegistrationNotes:      req.Notes,
		EventRegistrationAmountDue:  amount,
		EventRegistrationStatus:     model.EventRegistrationStatusPending,
	}
	if user != nil {
		reg.EventRegistrationUserID = &user.UserID
	}

	if amount <= 0 {
		now := time.Now()
		reg.EventRegistrationStatus = model.EventRegistrationStatusConfirmed
		reg.EventRegistrationPaymentStatus = model.EventRegistrationPaymentPaid
		reg.EventRegistrationPaidAt = &now
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if amount <= 0 {
		return helper.JsonCreated(c, "registration confirmed", fiber.Map{
			"registration_id": reg.EventRegistrationID,
			"status":          reg.EventRegistrationStatus,
			"amount_due":      0,
		})
	}

	name, email := "Gast", ""
	if user != nil {
		name, email = user.UserName, user.UserEmail
	} else {
		if req.GuestName != nil {
			name = *req.GuestName
		}
		if req.GuestEmail != nil {
			email = *req.GuestEmail
		}
	}

	orderID := newOrderID(reg.EventRegistrationID)
	token, err := paymentservice.GenerateSnapToken(orderID, amount, name, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to start payment: "+err.Error())
	}

	payment := paymentmodel.PaymentModel{
		PaymentPayableKind: paymentmodel.PayableKindEventRegistration,
		PaymentPayableID:   reg.EventRegistrationID,
		PaymentOrderID:     orderID,
		PaymentAmount:      amount,
		PaymentStatus:      paymentmodel.PaymentStatusPending,
		PaymentSnapToken:   &token,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "registration created, payment required", fiber.Map{
		"registration_id": reg.EventRegistrationID,
		"status":          reg.EventRegistrationStatus,
		"amount_due":      amount,
		"order_id":        orderID,
		"snap_token":      token,
	})
}

// AdminList returns the registrations of one event.
func (ctl *EventRegistrationController) AdminList(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", eventID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("event_registration_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var regs []model.EventRegistrationModel
	if err := q.Order("event_registration_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", regs, &p)
}

// Cancel marks a registration cancelled. Already-cancelled rows pass through.
func (ctl *EventRegistrationController) Cancel(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	var reg model.EventRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&reg, "event_registration_id = ?", regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// owners may cancel their own registration, admins anyone's
	if !helper.IsAdmin(c) {
		userID, err := helper.GetUserIDFromCtx(c)
		if err != nil || reg.EventRegistrationUserID == nil || *reg.EventRegistrationUserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "not allowed to cancel this registration")
		}
	}

	if reg.EventRegistrationStatus != model.EventRegistrationStatusCancelled {
		reg.EventRegistrationStatus = model.EventRegistrationStatusCancelled
		if err := ctl.DB.WithContext(c.UserContext()).Save(&reg).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonUpdated(c, "registration cancelled", fiber.Map{
		"registration_id": reg.EventRegistrationID,
		"status":          reg.EventRegistrationStatus,
	})
}
