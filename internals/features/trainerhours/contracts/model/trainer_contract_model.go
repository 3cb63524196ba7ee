package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: hour registration type (shared across trainer hours)
   ========================================================= */

type HourType string

const (
	HourTypeLesson      HourType = "lesson"
	HourTypePreparation HourType = "preparation"
	HourTypeMeeting     HourType = "meeting"
	HourTypeTournament  HourType = "tournament"
	HourTypeOther       HourType = "other"
)

// HourTypes lists every activity type in a stable order.
var HourTypes = []HourType{
	HourTypeLesson, HourTypePreparation, HourTypeMeeting, HourTypeTournament, HourTypeOther,
}

/* =========================================================
   MODEL: trainer_contracts
   ========================================================= */

type TrainerContractModel struct {
	TrainerContractID uuid.UUID `json:"trainer_contract_id" gorm:"column:trainer_contract_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TrainerContractUserID uuid.UUID `json:"trainer_contract_user_id" gorm:"column:trainer_contract_user_id;type:uuid;not null;index"`

	TrainerContractHourlyRate      float64  `json:"trainer_contract_hourly_rate" gorm:"column:trainer_contract_hourly_rate;type:numeric(8,2);not null"`
	TrainerContractPreparationRate *float64 `json:"trainer_contract_preparation_rate,omitempty" gorm:"column:trainer_contract_preparation_rate;type:numeric(8,2)"`
	TrainerContractTournamentRate  *float64 `json:"trainer_contract_tournament_rate,omitempty" gorm:"column:trainer_contract_tournament_rate;type:numeric(8,2)"`

	TrainerContractStartDate time.Time  `json:"trainer_contract_start_date" gorm:"column:trainer_contract_start_date;type:date;not null"`
	TrainerContractEndDate   *time.Time `json:"trainer_contract_end_date,omitempty" gorm:"column:trainer_contract_end_date;type:date"`

	TrainerContractType             string `json:"trainer_contract_type" gorm:"column:trainer_contract_type;type:varchar(30);not null;default:'freelance'"`
	TrainerContractMaxHoursPerWeek  *int   `json:"trainer_contract_max_hours_per_week,omitempty" gorm:"column:trainer_contract_max_hours_per_week"`
	TrainerContractMaxHoursPerMonth *int   `json:"trainer_contract_max_hours_per_month,omitempty" gorm:"column:trainer_contract_max_hours_per_month"`

	TrainerContractIsActive bool              `json:"trainer_contract_is_active" gorm:"column:trainer_contract_is_active;not null;default:true;index"`
	TrainerContractSettings datatypes.JSONMap `json:"trainer_contract_settings" gorm:"column:trainer_contract_settings;type:jsonb"`

	TrainerContractCreatedAt time.Time      `json:"trainer_contract_created_at" gorm:"column:trainer_contract_created_at;autoCreateTime"`
	TrainerContractUpdatedAt time.Time      `json:"trainer_contract_updated_at" gorm:"column:trainer_contract_updated_at;autoUpdateTime"`
	TrainerContractDeletedAt gorm.DeletedAt `json:"-" gorm:"column:trainer_contract_deleted_at;index"`
}

func (TrainerContractModel) TableName() string { return "trainer_contracts" }

// RateForType resolves the hourly rate of one activity type. Preparation and
// tournament may override the base rate; every other type uses the base.
func (m *TrainerContractModel) RateForType(t HourType) float64 {
	switch t {
	case HourTypePreparation:
		if m.TrainerContractPreparationRate != nil {
			return *m.TrainerContractPreparationRate
		}
	case HourTypeTournament:
		if m.TrainerContractTournamentRate != nil {
			return *m.TrainerContractTournamentRate
		}
	}
	return m.TrainerContractHourlyRate
}

// IsValidOn reports whether the contract covers the given date.
func (m *TrainerContractModel) IsValidOn(date time.Time) bool {
	if !m.TrainerContractIsActive {
		return false
	}
	if date.Before(m.TrainerContractStartDate) {
		return false
	}
	if m.TrainerContractEndDate != nil && date.After(*m.TrainerContractEndDate) {
		return false
	}
	return true
}
