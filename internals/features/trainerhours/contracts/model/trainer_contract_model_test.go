package model

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestRateForType(t *testing.T) {
	contract := TrainerContractModel{
		TrainerContractHourlyRate:      30.00,
		TrainerContractPreparationRate: fptr(20.00),
	}

	tests := []struct {
		hourType HourType
		want     float64
	}{
		{HourTypeLesson, 30.00},
		{HourTypePreparation, 20.00},
		{HourTypeMeeting, 30.00},
		{HourTypeTournament, 30.00},
		{HourTypeOther, 30.00},
	}
	for _, tt := range tests {
		if got := contract.RateForType(tt.hourType); got != tt.want {
			t.Errorf("RateForType(%s) = %v, want %v", tt.hourType, got, tt.want)
		}
	}

	// without overrides everything falls back to the base rate
	plain := TrainerContractModel{TrainerContractHourlyRate: 28.50}
	if got := plain.RateForType(HourTypePreparation); got != 28.50 {
		t.Errorf("RateForType without override = %v, want 28.50", got)
	}
}

func TestIsValidOn(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		contract TrainerContractModel
		date     time.Time
		want     bool
	}{
		{
			"inside range",
			TrainerContractModel{TrainerContractIsActive: true, TrainerContractStartDate: start, TrainerContractEndDate: &end},
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"before start",
			TrainerContractModel{TrainerContractIsActive: true, TrainerContractStartDate: start, TrainerContractEndDate: &end},
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"after end",
			TrainerContractModel{TrainerContractIsActive: true, TrainerContractStartDate: start, TrainerContractEndDate: &end},
			time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"open ended",
			TrainerContractModel{TrainerContractIsActive: true, TrainerContractStartDate: start},
			time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"inactive",
			TrainerContractModel{TrainerContractIsActive: false, TrainerContractStartDate: start},
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contract.IsValidOn(tt.date); got != tt.want {
				t.Errorf("IsValidOn(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
