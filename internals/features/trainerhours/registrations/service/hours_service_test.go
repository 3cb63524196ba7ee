package service

import (
	"testing"
	"time"

	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
)

func tod(hour, min int) time.Time {
	return time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"one hour", tod(19, 0), tod(20, 0), 1.00},
		{"ninety minutes", tod(18, 30), tod(20, 0), 1.50},
		{"rounds to two decimals", tod(10, 0), tod(10, 50), 0.83},
		{"crosses midnight", tod(22, 0), tod(2, 0), 4.00},
		{"crosses midnight with minutes", tod(23, 30), tod(0, 15), 0.75},
		{"zero length", tod(9, 0), tod(9, 0), 0.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeHours(tt.start, tt.end); got != tt.want {
				t.Errorf("ComputeHours(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestValidateImportRange(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantErr bool
	}{
		{"normal window", day(1), day(31), false},
		{"single day", day(10), day(10), false},
		{"inverted window", day(31), day(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImportRange(tt.from, tt.to)
			if tt.wantErr && err != ErrInvalidImportRange {
				t.Errorf("ValidateImportRange(%v, %v) = %v, want ErrInvalidImportRange", tt.from, tt.to, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateImportRange(%v, %v) = %v, want nil", tt.from, tt.to, err)
			}
		})
	}
}

func TestHourRegistrationTransitions(t *testing.T) {
	tests := []struct {
		from hourmodel.HourRegistrationStatus
		to   hourmodel.HourRegistrationStatus
		ok   bool
	}{
		{hourmodel.HourRegistrationStatusPending, hourmodel.HourRegistrationStatusApproved, true},
		{hourmodel.HourRegistrationStatusPending, hourmodel.HourRegistrationStatusRejected, true},
		{hourmodel.HourRegistrationStatusPending, hourmodel.HourRegistrationStatusPaid, false},
		{hourmodel.HourRegistrationStatusApproved, hourmodel.HourRegistrationStatusPaid, true},
		{hourmodel.HourRegistrationStatusApproved, hourmodel.HourRegistrationStatusPending, false},
		{hourmodel.HourRegistrationStatusRejected, hourmodel.HourRegistrationStatusPending, true},
		{hourmodel.HourRegistrationStatusRejected, hourmodel.HourRegistrationStatusApproved, false},
		{hourmodel.HourRegistrationStatusPaid, hourmodel.HourRegistrationStatusApproved, false},
	}
	for _, tt := range tests {
		if got := hourmodel.CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}
