package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name   string
		counts AttendanceCounts
		want   float64
	}{
		{"all present", AttendanceCounts{Present: 10}, 100},
		{"zero denominator", AttendanceCounts{}, 0},
		{"late counts as attended", AttendanceCounts{Present: 2, Late: 2, Absent: 4}, 50},
		{"excused lowers the rate", AttendanceCounts{Present: 3, Excused: 1}, 75},
		{"one decimal rounding", AttendanceCounts{Present: 1, Absent: 2}, 33.3},
		{"rounds half up", AttendanceCounts{Present: 5, Absent: 3}, 62.5},
		{"two thirds", AttendanceCounts{Present: 2, Absent: 1}, 66.7},
		{"all absent", AttendanceCounts{Absent: 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.counts); got != tt.want {
				t.Errorf("Rate(%+v) = %v, want %v", tt.counts, got, tt.want)
			}
		})
	}
}

func TestSortMembersByRateIsStable(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	members := []MemberStats{
		{UserID: a, AttendanceRate: 50},
		{UserID: b, AttendanceRate: 80},
		{UserID: c, AttendanceRate: 50},
		{UserID: d, AttendanceRate: 100},
	}

	SortMembersByRate(members)

	wantOrder := []uuid.UUID{d, b, a, c}
	for i, want := range wantOrder {
		if members[i].UserID != want {
			t.Fatalf("position %d: got %s, want %s", i, members[i].UserID, want)
		}
	}
}
