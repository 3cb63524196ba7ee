package controller

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/notifications/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	schedmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

type LessonNotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Mailer    mailer.Service
}

func NewLessonNotificationController(db *gorm.DB, m mailer.Service) *LessonNotificationController {
	return &LessonNotificationController{DB: db, Validator: validator.New(), Mailer: m}
}

/* =========================================================
   REMINDER SETTINGS
   ========================================================= */

type reminderSettingRequest struct {
	Enabled       bool    `json:"enabled"`
	DaysBefore    int     `json:"days_before" validate:"min=0,max=14"`
	SendTime      string  `json:"send_time" validate:"required"`
	Channel       string  `json:"channel" validate:"omitempty,oneof=email sms both"`
	EmailTemplate *string `json:"email_template" validate:"omitempty,max=2000"`
}

// GetSetting returns the reminder configuration of one package, if any.
func (ctl *LessonNotificationController) GetSetting(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	var setting model.ReminderSettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&setting, "reminder_setting_package_id = ?", packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no reminder setting for this package")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", setting)
}

// UpsertSetting creates or replaces the per-package reminder configuration.
func (ctl *LessonNotificationController) UpsertSetting(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	var req reminderSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	sendTime, err := helper.ParseTimeOfDay(req.SendTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid send_time")
	}

	channel := model.NotificationChannelEmail
	if req.Channel != "" {
		channel = model.NotificationChannel(req.Channel)
	}

	var setting model.ReminderSettingModel
	err = ctl.DB.WithContext(c.UserContext()).
		First(&setting, "reminder_setting_package_id = ?", packageID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = model.ReminderSettingModel{ReminderSettingPackageID: packageID}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	setting.ReminderSettingEnabled = req.Enabled
	setting.ReminderSettingDaysBefore = req.DaysBefore
	setting.ReminderSettingSendTime = sendTime
	setting.ReminderSettingChannel = channel
	setting.ReminderSettingEmailTemplate = req.EmailTemplate

	if err := ctl.DB.WithContext(c.UserContext()).Save(&setting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "reminder setting saved", setting)
}

/* =========================================================
   AD-HOC NOTIFICATIONS
   ========================================================= */

type notifyGroupRequest struct {
	Subject  string `json:"subject" validate:"required,max=150"`
	Message  string `json:"message" validate:"required,max=2000"`
	Template string `json:"template" validate:"omitempty,oneof=custom reminder cancelled schedule-change"`
	TestMode bool   `json:"test_mode"`
}

// templateIntro prepends a fixed opening line per template kind so the mail
// reads consistently even with free-form message bodies.
func templateIntro(template string, schedule *schedmodel.LessonScheduleModel) string {
	date := schedule.LessonScheduleDate.Format("02-01-2006")
	switch template {
	case "reminder":
		return fmt.Sprintf("Herinnering: je hebt tennisles op %s.\n\n", date)
	case "cancelled":
		return fmt.Sprintf("De tennisles van %s gaat niet door.\n\n", date)
	case "schedule-change":
		return fmt.Sprintf("De tennisles van %s is gewijzigd.\n\n", date)
	default:
		return ""
	}
}

// NotifyGroup mails every member of one schedule's group. In test mode only
// the caller receives the mail.
func (ctl *LessonNotificationController) NotifyGroup(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var req notifyGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var schedule schedmodel.LessonScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&schedule, "lesson_schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var recipients []usermodel.UserModel
	if req.TestMode {
		callerID, err := helper.GetUserIDFromCtx(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		var caller usermodel.UserModel
		if err := ctl.DB.First(&caller, "user_id = ?", callerID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		recipients = []usermodel.UserModel{caller}
	} else {
		if err := ctl.DB.
			Where("user_id IN (?)",
				ctl.DB.Model(&regmodel.LessonRegistrationModel{}).
					Select("lesson_registration_user_id").
					Where("lesson_registration_assigned_group_id = ?", schedule.LessonScheduleGroupID)).
			Find(&recipients).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	ids := make([]string, 0, len(recipients))
	for i := range recipients {
		ids = append(ids, recipients[i].UserID.String())
	}

	notification := model.LessonNotificationModel{
		LessonNotificationScheduleID:      schedule.LessonScheduleID,
		LessonNotificationType:            "manual",
		LessonNotificationChannel:         model.NotificationChannelEmail,
		LessonNotificationMessage:         req.Message,
		LessonNotificationRecipients:      ids,
		LessonNotificationRecipientsCount: len(ids),
		LessonNotificationStatus:          model.LessonNotificationStatusSending,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sent, failed := 0, 0
	for i := range recipients {
		msg := &mailer.Message{
			To:       mail.Address{Name: recipients[i].UserName, Address: recipients[i].UserEmail},
			Subject:  req.Subject,
			TextBody: fmt.Sprintf("Beste %s,\n\n%s%s\n\nTC Zutendaal", recipients[i].UserName, templateIntro(req.Template, &schedule), req.Message),
		}
		if err := ctl.Mailer.Send(msg); err != nil {
			failed++
			log.Printf("[NOTIFY] sending to %s failed: %v", recipients[i].UserEmail, err)
			continue
		}
		sent++
	}

	sentAt := time.Now()
	notification.LessonNotificationStatus = model.LessonNotificationStatusSent
	notification.LessonNotificationSentAt = &sentAt
	if err := ctl.DB.WithContext(c.UserContext()).Save(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "notification sent", fiber.Map{
		"lesson_notification_id": notification.LessonNotificationID,
		"sent_count":             sent,
		"failed_count":           failed,
		"test_mode":              req.TestMode,
	})
}

// History lists the notifications recorded for one schedule.
func (ctl *LessonNotificationController) History(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var rows []model.LessonNotificationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("lesson_notification_schedule_id = ?", scheduleID).
		Order("lesson_notification_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", rows)
}
