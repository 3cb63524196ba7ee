package service

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sappico-be/tc-zutendaal-backend/internals/constants"
	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	schedulemodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

/* =========================================================
   PURE: hour computation
   ========================================================= */

// ComputeHours returns the elapsed hours between two times of day, rounded
// to 2 decimals. When the end time is earlier than the start time the shift
// crosses midnight and the end rolls over to the next day.
func ComputeHours(start, end time.Time) float64 {
	startMin := helper.MinutesOfDay(start)
	endMin := helper.MinutesOfDay(end)
	if endMin < startMin {
		endMin += 24 * 60
	}
	minutes := endMin - startMin
	return math.Round(float64(minutes)/60*100) / 100
}

/* =========================================================
   RATE RESOLUTION
   ========================================================= */

// ResolveRate determines the hourly rate for a trainer on a given date.
// Order: active contract valid on the date (with its per-type overrides),
// then the trainer's default rate, then the club fallback rate.
func ResolveRate(db *gorm.DB, trainerID uuid.UUID, hourType contractmodel.HourType, date time.Time) float64 {
	var contract contractmodel.TrainerContractModel
	err := db.
		Where("trainer_contract_user_id = ? AND trainer_contract_is_active = ?", trainerID, true).
		Order("trainer_contract_start_date DESC").
		First(&contract).Error
	if err == nil && contract.IsValidOn(date) {
		return contract.RateForType(hourType)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[HOURS] rate lookup failed for trainer %s: %v", trainerID, err)
	}

	var user usermodel.UserModel
	if err := db.First(&user, "user_id = ?", trainerID).Error; err == nil {
		if user.UserDefaultHourlyRate != nil && *user.UserDefaultHourlyRate > 0 {
			return *user.UserDefaultHourlyRate
		}
	}

	return constants.DefaultHourlyRate
}

/* =========================================================
   IMPORT FROM SCHEDULE
   ========================================================= */

// ErrInvalidImportRange rejects an import window whose end precedes its
// start.
var ErrInvalidImportRange = errors.New("import range end precedes start")

// ValidateImportRange checks the import window. Both bounds are inclusive,
// a single-day window (from == to) is fine.
func ValidateImportRange(from, to time.Time) error {
	if to.Before(from) {
		return ErrInvalidImportRange
	}
	return nil
}

// ImportFromSchedules creates pending lesson hour registrations for the
// completed lessons of the trainer's groups inside [from, to] that have no
// registration linked to them yet. Returns the created rows.
func ImportFromSchedules(db *gorm.DB, trainerID uuid.UUID, from, to time.Time) ([]hourmodel.TrainerHourRegistrationModel, error) {
	if err := ValidateImportRange(from, to); err != nil {
		return nil, err
	}

	var groupIDs []uuid.UUID
	if err := db.Model(&groupmodel.LessonGroupModel{}).
		Where("lesson_group_trainer_id = ?", trainerID).
		Pluck("lesson_group_id", &groupIDs).Error; err != nil {
		return nil, err
	}
	if len(groupIDs) == 0 {
		return nil, nil
	}

	var schedules []schedulemodel.LessonScheduleModel
	if err := db.
		Where("lesson_schedule_group_id IN ?", groupIDs).
		Where("lesson_schedule_status = ?", schedulemodel.LessonScheduleStatusCompleted).
		Where("lesson_schedule_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("lesson_schedule_id NOT IN (?)",
			db.Model(&hourmodel.TrainerHourRegistrationModel{}).
				Select("trainer_hour_registration_schedule_id").
				Where("trainer_hour_registration_user_id = ?", trainerID).
				Where("trainer_hour_registration_schedule_id IS NOT NULL"),
		).
		Order("lesson_schedule_date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, nil
	}

	created := make([]hourmodel.TrainerHourRegistrationModel, 0, len(schedules))
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sch := range schedules {
			hours := ComputeHours(sch.LessonScheduleStartTime, sch.LessonScheduleEndTime)
			rate := ResolveRate(tx, trainerID, contractmodel.HourTypeLesson, sch.LessonScheduleDate)
			scheduleID := sch.LessonScheduleID

			row := hourmodel.TrainerHourRegistrationModel{
				TrainerHourRegistrationUserID:      trainerID,
				TrainerHourRegistrationScheduleID:  &scheduleID,
				TrainerHourRegistrationDate:        sch.LessonScheduleDate,
				TrainerHourRegistrationStartTime:   sch.LessonScheduleStartTime,
				TrainerHourRegistrationEndTime:     sch.LessonScheduleEndTime,
				TrainerHourRegistrationHours:       hours,
				TrainerHourRegistrationHourlyRate:  rate,
				TrainerHourRegistrationTotalAmount: math.Round(hours*rate*100) / 100,
				TrainerHourRegistrationType:        contractmodel.HourTypeLesson,
				TrainerHourRegistrationStatus:      hourmodel.HourRegistrationStatusPending,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[HOURS] imported %d lessons for trainer %s", len(created), trainerID)
	return created, nil
}
