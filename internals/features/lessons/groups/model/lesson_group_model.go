package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: group level
   ========================================================= */

type LessonGroupLevel string

const (
	LessonGroupLevelBeginner     LessonGroupLevel = "beginner"
	LessonGroupLevelIntermediate LessonGroupLevel = "intermediate"
	LessonGroupLevelAdvanced     LessonGroupLevel = "advanced"
)

/* =========================================================
   MODEL: lesson_groups
   ========================================================= */

type LessonGroupModel struct {
	LessonGroupID uuid.UUID `json:"lesson_group_id" gorm:"column:lesson_group_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonGroupPackageID uuid.UUID  `json:"lesson_group_package_id" gorm:"column:lesson_group_package_id;type:uuid;not null;index"`
	LessonGroupName      string     `json:"lesson_group_name" gorm:"column:lesson_group_name;type:varchar(150);not null"`
	LessonGroupLevel     LessonGroupLevel `json:"lesson_group_level" gorm:"column:lesson_group_level;type:varchar(20);not null;default:'beginner'"`

	LessonGroupTrainerID  *uuid.UUID `json:"lesson_group_trainer_id,omitempty" gorm:"column:lesson_group_trainer_id;type:uuid;index"`
	LessonGroupLocationID *uuid.UUID `json:"lesson_group_location_id,omitempty" gorm:"column:lesson_group_location_id;type:uuid"`

	LessonGroupMaxParticipants int `json:"lesson_group_max_participants" gorm:"column:lesson_group_max_participants;not null;default:4"`

	// when non-empty, overrides the package weekday list for generation
	LessonGroupScheduleDays pq.StringArray `json:"lesson_group_schedule_days" gorm:"column:lesson_group_schedule_days;type:text[]"`

	LessonGroupDefaultStartTime *time.Time `json:"lesson_group_default_start_time,omitempty" gorm:"column:lesson_group_default_start_time;type:time"`
	LessonGroupDefaultEndTime   *time.Time `json:"lesson_group_default_end_time,omitempty" gorm:"column:lesson_group_default_end_time;type:time"`

	LessonGroupCreatedAt time.Time      `json:"lesson_group_created_at" gorm:"column:lesson_group_created_at;autoCreateTime"`
	LessonGroupUpdatedAt time.Time      `json:"lesson_group_updated_at" gorm:"column:lesson_group_updated_at;autoUpdateTime"`
	LessonGroupDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_group_deleted_at;index"`
}

func (LessonGroupModel) TableName() string { return "lesson_groups" }
