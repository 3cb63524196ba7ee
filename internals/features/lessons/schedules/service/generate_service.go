package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sappico-be/tc-zutendaal-backend/internals/constants"
	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	pkgmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

// ExistingSchedulesError blocks generation while occurrences already exist
// and regenerate was not requested.
type ExistingSchedulesError struct {
	Count int64
}

func (e *ExistingSchedulesError) Error() string {
	return fmt.Sprintf("group already has %d schedule(s); pass regenerate to replace them", e.Count)
}

// CheckExisting decides whether generation may proceed given how many
// occurrences the group already has.
func CheckExisting(existing int64, regenerate bool) error {
	if existing > 0 && !regenerate {
		return &ExistingSchedulesError{Count: existing}
	}
	return nil
}

// Occurrence is one generated lesson slot before persistence.
type Occurrence struct {
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

// GenerationPlan is the fully resolved input of one generation run.
type GenerationPlan struct {
	StartDate    time.Time
	EndDate      time.Time
	Weekdays     []string // lowercase English names
	StartTime    time.Time
	EndTime      time.Time
	TotalLessons int
}

// ResolvePlan layers the effective settings: group weekday override wins over
// the package list, explicit date overrides win over the package range, and
// group time defaults win over the 19:00-20:00 fallback.
func ResolvePlan(pkg *pkgmodel.LessonPackageModel, group *groupmodel.LessonGroupModel, overrideStart, overrideEnd *time.Time) GenerationPlan {
	plan := GenerationPlan{
		StartDate:    pkg.LessonPackageStartDate,
		EndDate:      pkg.LessonPackageEndDate,
		Weekdays:     pkg.LessonPackageAvailableDays,
		TotalLessons: pkg.LessonPackageTotalLessons,
	}
	if len(group.LessonGroupScheduleDays) > 0 {
		plan.Weekdays = group.LessonGroupScheduleDays
	}
	if overrideStart != nil {
		plan.StartDate = *overrideStart
	}
	if overrideEnd != nil {
		plan.EndDate = *overrideEnd
	}

	if group.LessonGroupDefaultStartTime != nil {
		plan.StartTime = *group.LessonGroupDefaultStartTime
	} else {
		plan.StartTime, _ = helper.ParseTimeOfDay(constants.DefaultLessonStartTime)
	}
	if group.LessonGroupDefaultEndTime != nil {
		plan.EndTime = *group.LessonGroupDefaultEndTime
	} else {
		plan.EndTime, _ = helper.ParseTimeOfDay(constants.DefaultLessonEndTime)
	}
	return plan
}

// ExpandOccurrences walks each day of the plan's range inclusive and emits
// one occurrence per day whose weekday is in the set, stopping at
// TotalLessons. An empty weekday set or an inverted range yields nothing.
func ExpandOccurrences(plan GenerationPlan) []Occurrence {
	if len(plan.Weekdays) == 0 || plan.TotalLessons <= 0 {
		return nil
	}

	allowed := make(map[string]bool, len(plan.Weekdays))
	for _, d := range plan.Weekdays {
		allowed[d] = true
	}

	var out []Occurrence
	start := helper.StartOfDay(plan.StartDate)
	end := helper.StartOfDay(plan.EndDate)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !allowed[helper.WeekdayName(day)] {
			continue
		}
		out = append(out, Occurrence{
			Date:      day,
			StartTime: plan.StartTime,
			EndTime:   plan.EndTime,
		})
		if len(out) >= plan.TotalLessons {
			break
		}
	}
	return out
}

// GenerateForGroup materializes the plan into lesson_schedules rows. When the
// group already has schedules the call fails with ExistingSchedulesError
// unless regenerate is set, in which case all previous rows (including any
// manual edits) are removed first.
func GenerateForGroup(db *gorm.DB, groupID uuid.UUID, overrideStart, overrideEnd *time.Time, regenerate bool) ([]model.LessonScheduleModel, error) {
	var group groupmodel.LessonGroupModel
	if err := db.First(&group, "lesson_group_id = ?", groupID).Error; err != nil {
		return nil, err
	}
	var pkg pkgmodel.LessonPackageModel
	if err := db.First(&pkg, "lesson_package_id = ?", group.LessonGroupPackageID).Error; err != nil {
		return nil, err
	}

	var existing int64
	if err := db.Model(&model.LessonScheduleModel{}).
		Where("lesson_schedule_group_id = ?", group.LessonGroupID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if err := CheckExisting(existing, regenerate); err != nil {
		return nil, err
	}

	plan := ResolvePlan(&pkg, &group, overrideStart, overrideEnd)
	occurrences := ExpandOccurrences(plan)

	rows := make([]model.LessonScheduleModel, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, model.LessonScheduleModel{
			LessonScheduleGroupID:    group.LessonGroupID,
			LessonScheduleLocationID: group.LessonGroupLocationID,
			LessonScheduleDate:       occ.Date,
			LessonScheduleStartTime:  occ.StartTime,
			LessonScheduleEndTime:    occ.EndTime,
			LessonScheduleStatus:     model.LessonScheduleStatusScheduled,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if existing > 0 {
			if err := tx.Unscoped().
				Where("lesson_schedule_group_id = ?", group.LessonGroupID).
				Delete(&model.LessonScheduleModel{}).Error; err != nil {
				return err
			}
			log.Printf("[GENERATE] group %s: removed %d existing schedule(s)", group.LessonGroupID, existing)
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 100).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[GENERATE] group %s: created %d schedule(s)", group.LessonGroupID, len(rows))
	return rows, nil
}
