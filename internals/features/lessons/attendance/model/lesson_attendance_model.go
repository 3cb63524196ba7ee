package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: attendance status
   ========================================================= */

type LessonAttendanceStatus string

const (
	LessonAttendanceStatusPresent LessonAttendanceStatus = "present"
	LessonAttendanceStatusAbsent  LessonAttendanceStatus = "absent"
	LessonAttendanceStatusExcused LessonAttendanceStatus = "excused"
	LessonAttendanceStatusLate    LessonAttendanceStatus = "late"
)

/* =========================================================
   MODEL: lesson_attendances
   ========================================================= */

type LessonAttendanceModel struct {
	LessonAttendanceID uuid.UUID `json:"lesson_attendance_id" gorm:"column:lesson_attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonAttendanceScheduleID uuid.UUID `json:"lesson_attendance_schedule_id" gorm:"column:lesson_attendance_schedule_id;type:uuid;not null;uniqueIndex:uq_lesson_attendance_schedule_user"`
	LessonAttendanceUserID     uuid.UUID `json:"lesson_attendance_user_id" gorm:"column:lesson_attendance_user_id;type:uuid;not null;uniqueIndex:uq_lesson_attendance_schedule_user"`

	LessonAttendanceStatus LessonAttendanceStatus `json:"lesson_attendance_status" gorm:"column:lesson_attendance_status;type:varchar(20);not null;index"`
	LessonAttendanceNotes  *string                `json:"lesson_attendance_notes,omitempty" gorm:"column:lesson_attendance_notes;type:text"`

	LessonAttendanceCheckedBy *uuid.UUID `json:"lesson_attendance_checked_by,omitempty" gorm:"column:lesson_attendance_checked_by;type:uuid"`
	LessonAttendanceCheckedAt *time.Time `json:"lesson_attendance_checked_at,omitempty" gorm:"column:lesson_attendance_checked_at"`

	LessonAttendanceCreatedAt time.Time `json:"lesson_attendance_created_at" gorm:"column:lesson_attendance_created_at;autoCreateTime"`
	LessonAttendanceUpdatedAt time.Time `json:"lesson_attendance_updated_at" gorm:"column:lesson_attendance_updated_at;autoUpdateTime"`
}

func (LessonAttendanceModel) TableName() string { return "lesson_attendances" }
