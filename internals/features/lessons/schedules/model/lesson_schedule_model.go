package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: schedule status
   ========================================================= */

type LessonScheduleStatus string

const (
	LessonScheduleStatusScheduled LessonScheduleStatus = "scheduled"
	LessonScheduleStatusCompleted LessonScheduleStatus = "completed"
	LessonScheduleStatusCancelled LessonScheduleStatus = "cancelled"
)

/* =========================================================
   MODEL: lesson_schedules
   ========================================================= */

type LessonScheduleModel struct {
	LessonScheduleID uuid.UUID `json:"lesson_schedule_id" gorm:"column:lesson_schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonScheduleGroupID    uuid.UUID  `json:"lesson_schedule_group_id" gorm:"column:lesson_schedule_group_id;type:uuid;not null;index"`
	LessonScheduleLocationID *uuid.UUID `json:"lesson_schedule_location_id,omitempty" gorm:"column:lesson_schedule_location_id;type:uuid"`

	LessonScheduleDate      time.Time `json:"lesson_schedule_date" gorm:"column:lesson_schedule_date;type:date;not null;index"`
	LessonScheduleStartTime time.Time `json:"lesson_schedule_start_time" gorm:"column:lesson_schedule_start_time;type:time;not null"`
	LessonScheduleEndTime   time.Time `json:"lesson_schedule_end_time" gorm:"column:lesson_schedule_end_time;type:time;not null"`

	LessonScheduleStatus LessonScheduleStatus `json:"lesson_schedule_status" gorm:"column:lesson_schedule_status;type:varchar(20);not null;default:'scheduled';index"`
	LessonScheduleNotes  *string              `json:"lesson_schedule_notes,omitempty" gorm:"column:lesson_schedule_notes;type:text"`

	LessonScheduleCreatedAt time.Time      `json:"lesson_schedule_created_at" gorm:"column:lesson_schedule_created_at;autoCreateTime"`
	LessonScheduleUpdatedAt time.Time      `json:"lesson_schedule_updated_at" gorm:"column:lesson_schedule_updated_at;autoUpdateTime"`
	LessonScheduleDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_schedule_deleted_at;index"`
}

func (LessonScheduleModel) TableName() string { return "lesson_schedules" }
