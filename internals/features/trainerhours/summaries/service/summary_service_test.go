package service

import (
	"testing"

	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/model"
)

func row(t contractmodel.HourType, hours, amount float64) hourmodel.TrainerHourRegistrationModel {
	return hourmodel.TrainerHourRegistrationModel{
		TrainerHourRegistrationType:        t,
		TrainerHourRegistrationHours:       hours,
		TrainerHourRegistrationTotalAmount: amount,
	}
}

func TestAccumulateTotals(t *testing.T) {
	rows := []hourmodel.TrainerHourRegistrationModel{
		row(contractmodel.HourTypeLesson, 1.5, 45.00),
		row(contractmodel.HourTypeLesson, 2.0, 60.00),
		row(contractmodel.HourTypePreparation, 0.75, 15.00),
		row(contractmodel.HourTypeTournament, 4.0, 140.00),
		row(contractmodel.HourTypeOther, 1.0, 25.00),
	}

	got := AccumulateTotals(rows)

	if got.LessonHours != 3.5 {
		t.Errorf("LessonHours = %v, want 3.5", got.LessonHours)
	}
	if got.PreparationHours != 0.75 {
		t.Errorf("PreparationHours = %v, want 0.75", got.PreparationHours)
	}
	if got.MeetingHours != 0 {
		t.Errorf("MeetingHours = %v, want 0", got.MeetingHours)
	}
	if got.TournamentHours != 4.0 {
		t.Errorf("TournamentHours = %v, want 4.0", got.TournamentHours)
	}
	if got.OtherHours != 1.0 {
		t.Errorf("OtherHours = %v, want 1.0", got.OtherHours)
	}
	if got.TotalHours != 9.25 {
		t.Errorf("TotalHours = %v, want 9.25", got.TotalHours)
	}
	if got.TotalAmount != 285.00 {
		t.Errorf("TotalAmount = %v, want 285.00", got.TotalAmount)
	}
}

func TestAccumulateTotalsEmpty(t *testing.T) {
	got := AccumulateTotals(nil)
	if got.TotalHours != 0 || got.TotalAmount != 0 {
		t.Errorf("empty input should give zero totals, got %+v", got)
	}
}

func TestAccumulateTotalsIdempotent(t *testing.T) {
	rows := []hourmodel.TrainerHourRegistrationModel{
		row(contractmodel.HourTypeLesson, 1.25, 31.25),
		row(contractmodel.HourTypeMeeting, 0.5, 12.50),
	}
	first := AccumulateTotals(rows)
	second := AccumulateTotals(rows)
	if first != second {
		t.Errorf("repeated accumulation differs: %+v vs %+v", first, second)
	}
}

func TestSummaryTransitions(t *testing.T) {
	tests := []struct {
		from model.SummaryStatus
		to   model.SummaryStatus
		ok   bool
	}{
		{model.SummaryStatusDraft, model.SummaryStatusSubmitted, true},
		{model.SummaryStatusSubmitted, model.SummaryStatusApproved, true},
		{model.SummaryStatusApproved, model.SummaryStatusPaid, true},
		{model.SummaryStatusDraft, model.SummaryStatusApproved, false},
		{model.SummaryStatusDraft, model.SummaryStatusPaid, false},
		{model.SummaryStatusSubmitted, model.SummaryStatusDraft, false},
		{model.SummaryStatusApproved, model.SummaryStatusSubmitted, false},
		{model.SummaryStatusPaid, model.SummaryStatusApproved, false},
	}
	for _, tt := range tests {
		if got := model.CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}
