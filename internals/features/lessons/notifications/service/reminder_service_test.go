package service

import (
	"testing"
	"time"

	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

func tod(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := helper.ParseTimeOfDay(v)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", v, err)
	}
	return parsed
}

func TestInSendWindow(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		sendTime string
		want     bool
	}{
		{"exact match", "18:00", "18:00", true},
		{"five minutes early", "17:55", "18:00", true},
		{"five minutes late", "18:05", "18:00", true},
		{"six minutes early", "17:54", "18:00", false},
		{"six minutes late", "18:06", "18:00", false},
		{"hours apart", "09:00", "18:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InSendWindow(tod(t, tt.now), tod(t, tt.sendTime))
			if got != tt.want {
				t.Errorf("InSendWindow(%s, %s) = %v, want %v", tt.now, tt.sendTime, got, tt.want)
			}
		})
	}
}

func TestInSendWindowIgnoresDate(t *testing.T) {
	// the clock value carries today's date, the setting a placeholder date
	now := time.Date(2025, time.July, 14, 18, 2, 0, 0, time.UTC)
	sendTime := tod(t, "18:00")

	if !InSendWindow(now, sendTime) {
		t.Errorf("expected the window check to compare times of day only")
	}
}

func TestAlreadyRemindedToday(t *testing.T) {
	now := time.Date(2025, time.July, 14, 18, 0, 0, 0, time.UTC)
	at := func(v time.Time) *time.Time { return &v }

	tests := []struct {
		name     string
		lastSent *time.Time
		want     bool
	}{
		{"never reminded", nil, false},
		{"reminded yesterday evening", at(time.Date(2025, time.July, 13, 23, 59, 0, 0, time.UTC)), false},
		{"reminded at midnight today", at(time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)), true},
		{"reminded earlier today", at(time.Date(2025, time.July, 14, 12, 30, 0, 0, time.UTC)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlreadyRemindedToday(tt.lastSent, now); got != tt.want {
				t.Errorf("AlreadyRemindedToday(%v, %v) = %v, want %v", tt.lastSent, now, got, tt.want)
			}
		})
	}
}
