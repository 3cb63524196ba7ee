package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: lesson_reminder_settings
   ========================================================= */

type ReminderSettingModel struct {
	ReminderSettingID uuid.UUID `json:"reminder_setting_id" gorm:"column:reminder_setting_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ReminderSettingPackageID uuid.UUID `json:"reminder_setting_package_id" gorm:"column:reminder_setting_package_id;type:uuid;not null;uniqueIndex"`

	ReminderSettingEnabled    bool                `json:"reminder_setting_enabled" gorm:"column:reminder_setting_enabled;not null;default:false"`
	ReminderSettingDaysBefore int                 `json:"reminder_setting_days_before" gorm:"column:reminder_setting_days_before;not null;default:1"`
	ReminderSettingSendTime   time.Time           `json:"reminder_setting_send_time" gorm:"column:reminder_setting_send_time;type:time;not null"`
	ReminderSettingChannel    NotificationChannel `json:"reminder_setting_channel" gorm:"column:reminder_setting_channel;type:varchar(10);not null;default:'email'"`

	ReminderSettingEmailTemplate *string `json:"reminder_setting_email_template,omitempty" gorm:"column:reminder_setting_email_template;type:text"`

	ReminderSettingCreatedAt time.Time      `json:"reminder_setting_created_at" gorm:"column:reminder_setting_created_at;autoCreateTime"`
	ReminderSettingUpdatedAt time.Time      `json:"reminder_setting_updated_at" gorm:"column:reminder_setting_updated_at;autoUpdateTime"`
	ReminderSettingDeletedAt gorm.DeletedAt `json:"-" gorm:"column:reminder_setting_deleted_at;index"`
}

func (ReminderSettingModel) TableName() string { return "lesson_reminder_settings" }
