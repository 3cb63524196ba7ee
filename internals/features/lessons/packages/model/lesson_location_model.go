package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: lesson_locations
   ========================================================= */

type LessonLocationModel struct {
	LessonLocationID uuid.UUID `json:"lesson_location_id" gorm:"column:lesson_location_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonLocationName     string  `json:"lesson_location_name" gorm:"column:lesson_location_name;type:varchar(150);not null"`
	LessonLocationType     string  `json:"lesson_location_type" gorm:"column:lesson_location_type;type:varchar(50);not null;default:'outdoor'"`
	LessonLocationCapacity *int    `json:"lesson_location_capacity,omitempty" gorm:"column:lesson_location_capacity"`
	LessonLocationIsActive bool    `json:"lesson_location_is_active" gorm:"column:lesson_location_is_active;not null;default:true"`
	LessonLocationNotes    *string `json:"lesson_location_notes,omitempty" gorm:"column:lesson_location_notes;type:text"`

	LessonLocationCreatedAt time.Time      `json:"lesson_location_created_at" gorm:"column:lesson_location_created_at;autoCreateTime"`
	LessonLocationUpdatedAt time.Time      `json:"lesson_location_updated_at" gorm:"column:lesson_location_updated_at;autoUpdateTime"`
	LessonLocationDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_location_deleted_at;index"`
}

func (LessonLocationModel) TableName() string { return "lesson_locations" }
