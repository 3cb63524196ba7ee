package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: lesson package status
   ========================================================= */

type LessonPackageStatus string

const (
	LessonPackageStatusDraft     LessonPackageStatus = "draft"
	LessonPackageStatusOpen      LessonPackageStatus = "open"
	LessonPackageStatusClosed    LessonPackageStatus = "closed"
	LessonPackageStatusCompleted LessonPackageStatus = "completed"
)

/* =========================================================
   MODEL: lesson_packages
   ========================================================= */

type LessonPackageModel struct {
	LessonPackageID uuid.UUID `json:"lesson_package_id" gorm:"column:lesson_package_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LessonPackageName        string `json:"lesson_package_name" gorm:"column:lesson_package_name;type:varchar(150);not null"`
	LessonPackageDescription string `json:"lesson_package_description" gorm:"column:lesson_package_description;type:text"`

	LessonPackageTotalLessons int `json:"lesson_package_total_lessons" gorm:"column:lesson_package_total_lessons;not null"`

	LessonPackageStartDate            time.Time `json:"lesson_package_start_date" gorm:"column:lesson_package_start_date;type:date;not null"`
	LessonPackageEndDate              time.Time `json:"lesson_package_end_date" gorm:"column:lesson_package_end_date;type:date;not null"`
	LessonPackageRegistrationDeadline time.Time `json:"lesson_package_registration_deadline" gorm:"column:lesson_package_registration_deadline;type:date;not null"`

	LessonPackagePriceMembers    float64 `json:"lesson_package_price_members" gorm:"column:lesson_package_price_members;type:numeric(8,2);not null;default:0"`
	LessonPackagePriceNonMembers float64 `json:"lesson_package_price_non_members" gorm:"column:lesson_package_price_non_members;type:numeric(8,2);not null;default:0"`

	LessonPackageMinParticipants *int `json:"lesson_package_min_participants,omitempty" gorm:"column:lesson_package_min_participants"`
	LessonPackageMaxParticipants *int `json:"lesson_package_max_participants,omitempty" gorm:"column:lesson_package_max_participants"`

	// lowercase English weekday names, e.g. {monday, wednesday}
	LessonPackageAvailableDays pq.StringArray `json:"lesson_package_available_days" gorm:"column:lesson_package_available_days;type:text[]"`

	LessonPackageStatus LessonPackageStatus `json:"lesson_package_status" gorm:"column:lesson_package_status;type:varchar(20);not null;default:'draft';index"`

	LessonPackageCreatedAt time.Time      `json:"lesson_package_created_at" gorm:"column:lesson_package_created_at;autoCreateTime"`
	LessonPackageUpdatedAt time.Time      `json:"lesson_package_updated_at" gorm:"column:lesson_package_updated_at;autoUpdateTime"`
	LessonPackageDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_package_deleted_at;index"`
}

func (LessonPackageModel) TableName() string { return "lesson_packages" }

// PriceFor picks the member or non-member price by membership type.
func (m *LessonPackageModel) PriceFor(membershipType string) float64 {
	if membershipType == "member" || membershipType == "honorary" {
		return m.LessonPackagePriceMembers
	}
	return m.LessonPackagePriceNonMembers
}
