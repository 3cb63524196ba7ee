package service

import (
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/model"
)

// Totals is the per-type breakdown of a month's approved hours.
type Totals struct {
	LessonHours      float64
	PreparationHours float64
	MeetingHours     float64
	TournamentHours  float64
	OtherHours       float64
	TotalHours       float64
	TotalAmount      float64
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// AccumulateTotals folds hour registrations into a per-type breakdown.
// Callers pass approved rows only; this function does not filter.
func AccumulateTotals(rows []hourmodel.TrainerHourRegistrationModel) Totals {
	var t Totals
	for i := range rows {
		hours := rows[i].TrainerHourRegistrationHours
		switch rows[i].TrainerHourRegistrationType {
		case contractmodel.HourTypeLesson:
			t.LessonHours += hours
		case contractmodel.HourTypePreparation:
			t.PreparationHours += hours
		case contractmodel.HourTypeMeeting:
			t.MeetingHours += hours
		case contractmodel.HourTypeTournament:
			t.TournamentHours += hours
		default:
			t.OtherHours += hours
		}
		t.TotalHours += hours
		t.TotalAmount += rows[i].TrainerHourRegistrationTotalAmount
	}
	t.LessonHours = round2(t.LessonHours)
	t.PreparationHours = round2(t.PreparationHours)
	t.MeetingHours = round2(t.MeetingHours)
	t.TournamentHours = round2(t.TournamentHours)
	t.OtherHours = round2(t.OtherHours)
	t.TotalHours = round2(t.TotalHours)
	t.TotalAmount = round2(t.TotalAmount)
	return t
}

// GetOrCreate fetches the summary row for a trainer and period, creating a
// draft one on first access.
func GetOrCreate(db *gorm.DB, trainerID uuid.UUID, year, month int) (*model.TrainerHourSummaryModel, error) {
	var summary model.TrainerHourSummaryModel
	err := db.
		Where(model.TrainerHourSummaryModel{
			TrainerHourSummaryUserID: trainerID,
			TrainerHourSummaryYear:   year,
			TrainerHourSummaryMonth:  month,
		}).
		Attrs(model.TrainerHourSummaryModel{
			TrainerHourSummaryStatus: model.SummaryStatusDraft,
		}).
		FirstOrCreate(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// CalculateTotals recomputes a summary from the approved registrations of
// its period and persists the result. Safe to call repeatedly.
func CalculateTotals(db *gorm.DB, summary *model.TrainerHourSummaryModel) error {
	var rows []hourmodel.TrainerHourRegistrationModel
	if err := db.
		Where("trainer_hour_registration_user_id = ?", summary.TrainerHourSummaryUserID).
		Where("trainer_hour_registration_status = ?", hourmodel.HourRegistrationStatusApproved).
		Where("EXTRACT(YEAR FROM trainer_hour_registration_date) = ?", summary.TrainerHourSummaryYear).
		Where("EXTRACT(MONTH FROM trainer_hour_registration_date) = ?", summary.TrainerHourSummaryMonth).
		Find(&rows).Error; err != nil {
		return err
	}

	t := AccumulateTotals(rows)
	summary.TrainerHourSummaryLessonHours = t.LessonHours
	summary.TrainerHourSummaryPreparationHours = t.PreparationHours
	summary.TrainerHourSummaryMeetingHours = t.MeetingHours
	summary.TrainerHourSummaryTournamentHours = t.TournamentHours
	summary.TrainerHourSummaryOtherHours = t.OtherHours
	summary.TrainerHourSummaryTotalHours = t.TotalHours
	summary.TrainerHourSummaryTotalAmount = t.TotalAmount

	return db.Save(summary).Error
}

// CountPendingForPeriod returns how many registrations of the summary's
// period still await review. A summary cannot be submitted while any exist.
func CountPendingForPeriod(db *gorm.DB, summary *model.TrainerHourSummaryModel) (int64, error) {
	var count int64
	err := db.Model(&hourmodel.TrainerHourRegistrationModel{}).
		Where("trainer_hour_registration_user_id = ?", summary.TrainerHourSummaryUserID).
		Where("trainer_hour_registration_status = ?", hourmodel.HourRegistrationStatusPending).
		Where("EXTRACT(YEAR FROM trainer_hour_registration_date) = ?", summary.TrainerHourSummaryYear).
		Where("EXTRACT(MONTH FROM trainer_hour_registration_date) = ?", summary.TrainerHourSummaryMonth).
		Count(&count).Error
	return count, err
}
