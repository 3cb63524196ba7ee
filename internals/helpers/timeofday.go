package helper

import (
	"fmt"
	"strings"
	"time"
)

/* =========================
   Time-of-day helpers
   Wall-clock values stored as "HH:MM" strings, no timezone math.
========================= */

// ParseTimeOfDay accepts "15:04" or "15:04:05" and anchors the result at a
// fixed reference date so only the clock part is meaningful.
func ParseTimeOfDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return time.Date(2000, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid time-of-day format: %q", s)
}

// CombineDateTOD puts a time-of-day on a calendar date.
func CombineDateTOD(d, tod time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, d.Location())
}

// StartOfDay truncates to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekdayName returns the lowercase English weekday name ("monday"...).
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// MinutesOfDay returns minutes since midnight for a time-of-day value.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
