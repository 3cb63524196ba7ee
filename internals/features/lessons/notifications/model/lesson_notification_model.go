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

type LessonNotificationStatus string

const (
	LessonNotificationStatusSending LessonNotificationStatus = "sending"
	LessonNotificationStatusSent    LessonNotificationStatus = "sent"
	LessonNotificationStatusFailed  LessonNotificationStatus = "failed"
)

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelBoth  NotificationChannel = "both"
)

/* =========================================================
   MODEL: lesson_notifications
   ========================================================= */

type LessonNotificationModel struct {
	LessonNotificationID uuid.UUID `json:"lesson_notification_id" gorm:"column:lesson_notification_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonNotificationScheduleID uuid.UUID `json:"lesson_notification_schedule_id" gorm:"column:lesson_notification_schedule_id;type:uuid;not null;index"`

	LessonNotificationType    string              `json:"lesson_notification_type" gorm:"column:lesson_notification_type;type:varchar(30);not null;default:'reminder';index"`
	LessonNotificationChannel NotificationChannel `json:"lesson_notification_channel" gorm:"column:lesson_notification_channel;type:varchar(10);not null;default:'email'"`
	LessonNotificationMessage string              `json:"lesson_notification_message" gorm:"column:lesson_notification_message;type:text"`

	LessonNotificationRecipients      pq.StringArray `json:"lesson_notification_recipients" gorm:"column:lesson_notification_recipients;type:text[]"`
	LessonNotificationRecipientsCount int            `json:"lesson_notification_recipients_count" gorm:"column:lesson_notification_recipients_count;not null;default:0"`

	LessonNotificationStatus LessonNotificationStatus `json:"lesson_notification_status" gorm:"column:lesson_notification_status;type:varchar(20);not null;default:'sending'"`
	LessonNotificationSentAt *time.Time               `json:"lesson_notification_sent_at,omitempty" gorm:"column:lesson_notification_sent_at"`

	LessonNotificationCreatedAt time.Time      `json:"lesson_notification_created_at" gorm:"column:lesson_notification_created_at;autoCreateTime;index"`
	LessonNotificationUpdatedAt time.Time      `json:"lesson_notification_updated_at" gorm:"column:lesson_notification_updated_at;autoUpdateTime"`
	LessonNotificationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_notification_deleted_at;index"`
}

func (LessonNotificationModel) TableName() string { return "lesson_notifications" }
