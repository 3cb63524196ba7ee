package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	pkgmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandOccurrencesStopsAtTotalLessons(t *testing.T) {
	// 2025-01-01 is a Wednesday; the first three monday/wednesday hits are
	// Jan 1, Jan 6 and Jan 8 even though the range runs a month longer.
	plan := GenerationPlan{
		StartDate:    date(2025, time.January, 1),
		EndDate:      date(2025, time.February, 1),
		Weekdays:     []string{"monday", "wednesday"},
		TotalLessons: 3,
	}

	got := ExpandOccurrences(plan)
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(got))
	}

	want := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 6),
		date(2025, time.January, 8),
	}
	for i, occ := range got {
		if !occ.Date.Equal(want[i]) {
			t.Errorf("occurrence %d: got %s, want %s",
				i, occ.Date.Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func TestExpandOccurrencesEdgeCases(t *testing.T) {
	base := GenerationPlan{
		StartDate:    date(2025, time.March, 3),
		EndDate:      date(2025, time.March, 31),
		Weekdays:     []string{"monday"},
		TotalLessons: 10,
	}

	t.Run("empty weekday set yields nothing", func(t *testing.T) {
		plan := base
		plan.Weekdays = nil
		if got := ExpandOccurrences(plan); len(got) != 0 {
			t.Errorf("expected no occurrences, got %d", len(got))
		}
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		plan := base
		plan.StartDate, plan.EndDate = plan.EndDate, plan.StartDate
		if got := ExpandOccurrences(plan); len(got) != 0 {
			t.Errorf("expected no occurrences, got %d", len(got))
		}
	})

	t.Run("range shorter than total lessons emits what fits", func(t *testing.T) {
		got := ExpandOccurrences(base)
		// March 2025 has five Mondays: 3, 10, 17, 24, 31
		if len(got) != 5 {
			t.Errorf("expected 5 occurrences, got %d", len(got))
		}
	})

	t.Run("start day itself counts when it matches", func(t *testing.T) {
		got := ExpandOccurrences(base)
		if len(got) == 0 || !got[0].Date.Equal(base.StartDate) {
			t.Errorf("expected first occurrence on the start date")
		}
	})
}

func TestResolvePlanLayering(t *testing.T) {
	pkgStart := date(2025, time.April, 1)
	pkgEnd := date(2025, time.June, 30)
	pkg := pkgmodel.LessonPackageModel{
		LessonPackageStartDate:     pkgStart,
		LessonPackageEndDate:       pkgEnd,
		LessonPackageAvailableDays: []string{"tuesday", "thursday"},
		LessonPackageTotalLessons:  10,
	}

	t.Run("package defaults apply without overrides", func(t *testing.T) {
		group := groupmodel.LessonGroupModel{}
		plan := ResolvePlan(&pkg, &group, nil, nil)

		if !plan.StartDate.Equal(pkgStart) || !plan.EndDate.Equal(pkgEnd) {
			t.Errorf("expected package date range")
		}
		if len(plan.Weekdays) != 2 || plan.Weekdays[0] != "tuesday" {
			t.Errorf("expected package weekdays, got %v", plan.Weekdays)
		}
		if plan.StartTime.Format("15:04") != "19:00" || plan.EndTime.Format("15:04") != "20:00" {
			t.Errorf("expected 19:00-20:00 fallback, got %s-%s",
				plan.StartTime.Format("15:04"), plan.EndTime.Format("15:04"))
		}
	})

	t.Run("group overrides win", func(t *testing.T) {
		groupStart, _ := helper.ParseTimeOfDay("18:30")
		groupEnd, _ := helper.ParseTimeOfDay("19:30")
		group := groupmodel.LessonGroupModel{
			LessonGroupScheduleDays:     []string{"saturday"},
			LessonGroupDefaultStartTime: &groupStart,
			LessonGroupDefaultEndTime:   &groupEnd,
		}
		overrideStart := date(2025, time.May, 1)
		plan := ResolvePlan(&pkg, &group, &overrideStart, nil)

		if !plan.StartDate.Equal(overrideStart) {
			t.Errorf("expected override start date")
		}
		if !plan.EndDate.Equal(pkgEnd) {
			t.Errorf("end date should still come from the package")
		}
		if len(plan.Weekdays) != 1 || plan.Weekdays[0] != "saturday" {
			t.Errorf("expected group weekday override, got %v", plan.Weekdays)
		}
		if plan.StartTime.Format("15:04") != "18:30" || plan.EndTime.Format("15:04") != "19:30" {
			t.Errorf("expected group time defaults")
		}
	})
}

func TestCheckExisting(t *testing.T) {
	t.Run("refuses while occurrences exist", func(t *testing.T) {
		err := CheckExisting(3, false)
		var conflict *ExistingSchedulesError
		if !errors.As(err, &conflict) {
			t.Fatalf("CheckExisting(3, false) = %v, want ExistingSchedulesError", err)
		}
		if conflict.Count != 3 {
			t.Errorf("conflict count = %d, want 3", conflict.Count)
		}
		if !strings.Contains(conflict.Error(), "3") {
			t.Errorf("error should report the existing count, got %q", conflict.Error())
		}
	})

	t.Run("regenerate overrides the refusal", func(t *testing.T) {
		if err := CheckExisting(3, true); err != nil {
			t.Errorf("CheckExisting(3, true) = %v, want nil", err)
		}
	})

	t.Run("empty group generates freely", func(t *testing.T) {
		if err := CheckExisting(0, false); err != nil {
			t.Errorf("CheckExisting(0, false) = %v, want nil", err)
		}
	})
}
