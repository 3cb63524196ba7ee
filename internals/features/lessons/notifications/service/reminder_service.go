package service

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"time"

	"gorm.io/gorm"

	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/notifications/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	schedmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
	"github.com/sappico-be/tc-zutendaal-backend/internals/mailer"
)

// sendWindowMinutes is the tolerance around the configured send time.
const sendWindowMinutes = 5

// InSendWindow compares now and sendTime as times of day and reports whether
// their absolute difference is at most five minutes. The date parts of both
// values are ignored, so the check recurs daily.
func InSendWindow(now, sendTime time.Time) bool {
	diff := helper.MinutesOfDay(now) - helper.MinutesOfDay(sendTime)
	if diff < 0 {
		diff = -diff
	}
	return diff <= sendWindowMinutes
}

// AlreadyRemindedToday reports whether a reminder recorded at lastSent
// already covers the day of now. A nil lastSent means none was ever sent
// for the occurrence.
func AlreadyRemindedToday(lastSent *time.Time, now time.Time) bool {
	if lastSent == nil {
		return false
	}
	return !lastSent.Before(helper.StartOfDay(now))
}

// ReminderService runs the periodic reminder evaluation.
type ReminderService struct {
	DB     *gorm.DB
	Mailer mailer.Service
}

func NewReminderService(db *gorm.DB, m mailer.Service) *ReminderService {
	return &ReminderService{DB: db, Mailer: m}
}

// Run evaluates every enabled per-package reminder setting against the clock
// and dispatches what is due. Safe to invoke every few minutes.
func (s *ReminderService) Run(now time.Time) {
	var settings []model.ReminderSettingModel
	if err := s.DB.
		Where("reminder_setting_enabled = ?", true).
		Find(&settings).Error; err != nil {
		log.Printf("[REMINDER] loading settings failed: %v", err)
		return
	}

	for i := range settings {
		s.processSetting(&settings[i], now)
	}
}

func (s *ReminderService) processSetting(setting *model.ReminderSettingModel, now time.Time) {
	if !InSendWindow(now, setting.ReminderSettingSendTime) {
		return
	}

	targetDate := helper.StartOfDay(now.AddDate(0, 0, setting.ReminderSettingDaysBefore))

	var lessons []schedmodel.LessonScheduleModel
	err := s.DB.
		Where("lesson_schedule_date = ?", targetDate).
		Where("lesson_schedule_status = ?", schedmodel.LessonScheduleStatusScheduled).
		Where("lesson_schedule_group_id IN (?)",
			s.DB.Model(&groupmodel.LessonGroupModel{}).
				Select("lesson_group_id").
				Where("lesson_group_package_id = ?", setting.ReminderSettingPackageID)).
		Find(&lessons).Error
	if err != nil {
		log.Printf("[REMINDER] loading lessons for package %s failed: %v",
			setting.ReminderSettingPackageID, err)
		return
	}

	for i := range lessons {
		s.sendForLesson(&lessons[i], setting, now)
	}
}

func (s *ReminderService) sendForLesson(lesson *schedmodel.LessonScheduleModel, setting *model.ReminderSettingModel, now time.Time) {
	// one reminder per occurrence per day
	var lastSent *time.Time
	var last model.LessonNotificationModel
	err := s.DB.
		Where("lesson_notification_schedule_id = ?", lesson.LessonScheduleID).
		Where("lesson_notification_type = ?", "reminder").
		Order("lesson_notification_created_at DESC").
		First(&last).Error
	switch {
	case err == nil:
		lastSent = &last.LessonNotificationCreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		// never reminded
	default:
		log.Printf("[REMINDER] dedup check for schedule %s failed: %v", lesson.LessonScheduleID, err)
		return
	}
	if AlreadyRemindedToday(lastSent, now) {
		return
	}

	members, err := s.groupMembers(lesson.LessonScheduleGroupID)
	if err != nil {
		log.Printf("[REMINDER] loading members for schedule %s failed: %v", lesson.LessonScheduleID, err)
		return
	}

	message := "Automatische herinnering"
	if setting.ReminderSettingEmailTemplate != nil && *setting.ReminderSettingEmailTemplate != "" {
		message = *setting.ReminderSettingEmailTemplate
	}

	recipients := make([]string, 0, len(members))
	for i := range members {
		recipients = append(recipients, members[i].UserID.String())
	}

	notification := model.LessonNotificationModel{
		LessonNotificationScheduleID:      lesson.LessonScheduleID,
		LessonNotificationType:            "reminder",
		LessonNotificationChannel:         setting.ReminderSettingChannel,
		LessonNotificationMessage:         message,
		LessonNotificationRecipients:      recipients,
		LessonNotificationRecipientsCount: len(recipients),
		LessonNotificationStatus:          model.LessonNotificationStatusSending,
	}
	if err := s.DB.Create(&notification).Error; err != nil {
		log.Printf("[REMINDER] creating notification for schedule %s failed: %v", lesson.LessonScheduleID, err)
		return
	}

	if setting.ReminderSettingChannel == model.NotificationChannelEmail ||
		setting.ReminderSettingChannel == model.NotificationChannelBoth {
		for i := range members {
			if err := s.sendEmail(&members[i], lesson, message); err != nil {
				log.Printf("[REMINDER] sending to %s failed: %v", members[i].UserEmail, err)
			}
		}
	}
	// SMS dispatch would hook in here once a provider is wired

	sentAt := time.Now()
	notification.LessonNotificationStatus = model.LessonNotificationStatusSent
	notification.LessonNotificationSentAt = &sentAt
	if err := s.DB.Save(&notification).Error; err != nil {
		log.Printf("[REMINDER] finalizing notification %s failed: %v", notification.LessonNotificationID, err)
	}

	log.Printf("[REMINDER] sent reminders for schedule %s on %s to %d recipient(s)",
		lesson.LessonScheduleID, lesson.LessonScheduleDate.Format("2006-01-02"), len(recipients))
}

func (s *ReminderService) groupMembers(groupID interface{}) ([]usermodel.UserModel, error) {
	var users []usermodel.UserModel
	err := s.DB.
		Where("user_id IN (?)",
			s.DB.Model(&regmodel.LessonRegistrationModel{}).
				Select("lesson_registration_user_id").
				Where("lesson_registration_assigned_group_id = ?", groupID)).
		Find(&users).Error
	return users, err
}

func (s *ReminderService) sendEmail(user *usermodel.UserModel, lesson *schedmodel.LessonScheduleModel, message string) error {
	msg := &mailer.Message{
		To:      mail.Address{Name: user.UserName, Address: user.UserEmail},
		Subject: fmt.Sprintf("Herinnering: tennisles op %s", lesson.LessonScheduleDate.Format("02-01-2006")),
		TextBody: fmt.Sprintf(
			"Beste %s,\n\n%s\n\nJe les start om %s.\n\nTot op de baan!\nTC Zutendaal",
			user.UserName, message, lesson.LessonScheduleStartTime.Format("15:04")),
	}
	return s.Mailer.Send(msg)
}
