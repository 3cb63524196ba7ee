package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: trainer_availabilities
   ========================================================= */

type TrainerAvailabilityModel struct {
	TrainerAvailabilityID uuid.UUID `json:"trainer_availability_id" gorm:"column:trainer_availability_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TrainerAvailabilityUserID    uuid.UUID `json:"trainer_availability_user_id" gorm:"column:trainer_availability_user_id;type:uuid;not null;index"`
	TrainerAvailabilityPackageID uuid.UUID `json:"trainer_availability_package_id" gorm:"column:trainer_availability_package_id;type:uuid;not null;index"`

	// lowercase English weekday name
	TrainerAvailabilityDayOfWeek string `json:"trainer_availability_day_of_week" gorm:"column:trainer_availability_day_of_week;type:varchar(10);not null"`

	TrainerAvailabilityFrom  time.Time `json:"trainer_availability_from" gorm:"column:trainer_availability_from;type:time;not null"`
	TrainerAvailabilityUntil time.Time `json:"trainer_availability_until" gorm:"column:trainer_availability_until;type:time;not null"`

	TrainerAvailabilityIsAvailable bool `json:"trainer_availability_is_available" gorm:"column:trainer_availability_is_available;not null;default:true"`

	TrainerAvailabilityCreatedAt time.Time      `json:"trainer_availability_created_at" gorm:"column:trainer_availability_created_at;autoCreateTime"`
	TrainerAvailabilityUpdatedAt time.Time      `json:"trainer_availability_updated_at" gorm:"column:trainer_availability_updated_at;autoUpdateTime"`
	TrainerAvailabilityDeletedAt gorm.DeletedAt `json:"-" gorm:"column:trainer_availability_deleted_at;index"`
}

func (TrainerAvailabilityModel) TableName() string { return "trainer_availabilities" }
