package controller

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

type LessonRegistrationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Mailer    mailer.Service
}

func NewLessonRegistrationController(db *gorm.DB, m mailer.Service) *LessonRegistrationController {
	return &LessonRegistrationController{DB: db, Validator: validator.New(), Mailer: m}
}

type createLessonRegistrationRequest struct {
	PackageID         uuid.UUID  `json:"package_id" validate:"required"`
	UserID            *uuid.UUID `json:"user_id"`
	AvailableDays     []string   `json:"available_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PreferredPartners []string   `json:"preferred_partners" validate:"omitempty,dive,max=100"`
	Level             string     `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Remarks           *string    `json:"remarks" validate:"omitempty,max=500"`
}

// Create enrolls a member in a package. Admins may register someone else by
// passing user_id; everyone else registers themselves.
func (ctl *LessonRegistrationController) Create(c *fiber.Ctx) error {
	var req createLessonRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	userID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if req.UserID != nil && *req.UserID != userID {
		if !helper.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "only administrators can register other members")
		}
		userID = *req.UserID
	}

	var pkg pkgmodel.LessonPackageModel
	if err := ctl.DB.First(&pkg, "lesson_package_id = ?", req.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if pkg.LessonPackageStatus != pkgmodel.LessonPackageStatusOpen {
		return helper.JsonError(c, fiber.StatusConflict, "package is not open for registration")
	}
	if time.Now().After(pkg.LessonPackageRegistrationDeadline.AddDate(0, 0, 1)) {
		return helper.JsonError(c, fiber.StatusConflict, "registration deadline has passed")
	}

	var existing int64
	ctl.DB.Model(&model.LessonRegistrationModel{}).
		Where("lesson_registration_package_id = ?", pkg.LessonPackageID).
		Where("lesson_registration_user_id = ?", userID).
		Count(&existing)
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "already registered for this package")
	}

	level := req.Level
	if level == "" {
		level = "beginner"
	}

	reg := model.LessonRegistrationModel{
		LessonRegistrationPackageID:         pkg.LessonPackageID,
		LessonRegistrationUserID:            userID,
		LessonRegistrationAvailableDays:     req.AvailableDays,
		LessonRegistrationPreferredPartners: req.PreferredPartners,
		LessonRegistrationLevel:             level,
		LessonRegistrationRemarks:           req.Remarks,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "registration created", reg)
}

// List returns the registrations of one package, filterable by assignment
// and payment state.
func (ctl *LessonRegistrationController) List(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonRegistrationModel{}).
		Where("lesson_registration_package_id = ?", packageID)

	switch c.Query("assigned") {
	case "1", "true":
		q = q.Where("lesson_registration_assigned_group_id IS NOT NULL")
	case "0", "false":
		q = q.Where("lesson_registration_assigned_group_id IS NULL")
	}
	if ps := strings.TrimSpace(c.Query("payment_status")); ps != "" {
		q = q.Where("lesson_registration_payment_status = ?", ps)
	}

	var regs []model.LessonRegistrationModel
	if err := q.Order("lesson_registration_created_at ASC").Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", regs)
}

// MarkPaid records payment of the package fee, priced by membership type.
func (ctl *LessonRegistrationController) MarkPaid(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	var reg model.LessonRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&reg, "lesson_registration_id = ?", regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if reg.LessonRegistrationPaymentStatus == model.LessonRegistrationPaymentPaid {
		return helper.JsonError(c, fiber.StatusConflict, "registration is already paid")
	}

	var pkg pkgmodel.LessonPackageModel
	if err := ctl.DB.First(&pkg, "lesson_package_id = ?", reg.LessonRegistrationPackageID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var user usermodel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", reg.LessonRegistrationUserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	reg.LessonRegistrationPaymentStatus = model.LessonRegistrationPaymentPaid
	reg.LessonRegistrationAmountPaid = pkg.PriceFor(user.UserMembershipType)
	reg.LessonRegistrationStatus = model.LessonRegistrationStatusConfirmed

	if err := ctl.DB.WithContext(c.UserContext()).Save(&reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "registration marked paid", reg)
}

func (ctl *LessonRegistrationController) sendPaymentReminder(reg *model.LessonRegistrationModel, pkg *pkgmodel.LessonPackageModel) error {
	var user usermodel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", reg.LessonRegistrationUserID).Error; err != nil {
		return err
	}

	amount := pkg.PriceFor(user.UserMembershipType)
	msg := &mailer.Message{
		To:      mail.Address{Name: user.UserName, Address: user.UserEmail},
		Subject: fmt.Sprintf("Betalingsherinnering: %s", pkg.LessonPackageName),
		TextBody: fmt.Sprintf(
			"Beste %s,\n\nVoor je inschrijving op %s staat nog een betaling open van %.2f EUR.\n\nSportieve groeten,\nTC Zutendaal",
			user.UserName, pkg.LessonPackageName, amount),
	}
	return ctl.Mailer.Send(msg)
}

// SendPaymentReminder mails one unpaid registrant.
func (ctl *LessonRegistrationController) SendPaymentReminder(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	var reg model.LessonRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&reg, "lesson_registration_id = ?", regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if reg.LessonRegistrationPaymentStatus == model.LessonRegistrationPaymentPaid {
		return helper.JsonError(c, fiber.StatusConflict, "registration is already paid")
	}

	var pkg pkgmodel.LessonPackageModel
	if err := ctl.DB.First(&pkg, "lesson_package_id = ?", reg.LessonRegistrationPackageID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.sendPaymentReminder(&reg, &pkg); err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "failed to send reminder: "+err.Error())
	}

	return helper.JsonOK(c, "payment reminder sent", fiber.Map{
		"lesson_registration_id": reg.LessonRegistrationID,
	})
}

// SendPaymentReminders mails every unpaid registrant of a package. Individual
// failures are logged and skipped; the response carries both counters.
func (ctl *LessonRegistrationController) SendPaymentReminders(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	var pkg pkgmodel.LessonPackageModel
	if err := ctl.DB.First(&pkg, "lesson_package_id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var regs []model.LessonRegistrationModel
	if err := ctl.DB.
		Where("lesson_registration_package_id = ?", packageID).
		Where("lesson_registration_payment_status = ?", model.LessonRegistrationPaymentUnpaid).
		Where("lesson_registration_status <> ?", model.LessonRegistrationStatusCancelled).
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sent, failed := 0, 0
	for i := range regs {
		if err := ctl.sendPaymentReminder(&regs[i], &pkg); err != nil {
			failed++
			log.Printf("[REMINDER] payment reminder for registration %s failed: %v",
				regs[i].LessonRegistrationID, err)
			continue
		}
		sent++
	}

	return helper.JsonOK(c, "payment reminders processed", fiber.Map{
		"sent_count":   sent,
		"failed_count": failed,
	})
}
