package service

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/attendance/model"
	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	schedmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
)

// AttendanceCounts is one (present, absent, excused, late) tuple.
type AttendanceCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
	Late    int `json:"late"`
}

func (c AttendanceCounts) Total() int {
	return c.Present + c.Absent + c.Excused + c.Late
}

// Rate is the attendance percentage: (present + late) over all recorded
// statuses, rounded to one decimal. A zero denominator yields 0.
func Rate(c AttendanceCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return math.Round(100*float64(c.Present+c.Late)/float64(total)*10) / 10
}

func countsFrom(rows []model.LessonAttendanceModel) AttendanceCounts {
	var c AttendanceCounts
	for i := range rows {
		switch rows[i].LessonAttendanceStatus {
		case model.LessonAttendanceStatusPresent:
			c.Present++
		case model.LessonAttendanceStatusAbsent:
			c.Absent++
		case model.LessonAttendanceStatusExcused:
			c.Excused++
		case model.LessonAttendanceStatusLate:
			c.Late++
		}
	}
	return c
}

/* =========================================================
   PER USER WITHIN PACKAGE
   ========================================================= */

type UserPackageStats struct {
	UserID         uuid.UUID        `json:"user_id"`
	EligibleCount  int64            `json:"eligible_count"`
	Counts         AttendanceCounts `json:"counts"`
	AttendanceRate float64          `json:"attendance_rate"`
}

// ComputeUserStats counts eligible lessons as every non-cancelled schedule of
// the groups the user is assigned to within the package, and the rate from
// every attendance row regardless of schedule completion.
func ComputeUserStats(db *gorm.DB, packageID, userID uuid.UUID) (*UserPackageStats, error) {
	var groupIDs []uuid.UUID
	if err := db.Model(&regmodel.LessonRegistrationModel{}).
		Where("lesson_registration_package_id = ?", packageID).
		Where("lesson_registration_user_id = ?", userID).
		Where("lesson_registration_assigned_group_id IS NOT NULL").
		Pluck("lesson_registration_assigned_group_id", &groupIDs).Error; err != nil {
		return nil, err
	}

	stats := &UserPackageStats{UserID: userID}
	if len(groupIDs) == 0 {
		return stats, nil
	}

	if err := db.Model(&schedmodel.LessonScheduleModel{}).
		Where("lesson_schedule_group_id IN ?", groupIDs).
		Where("lesson_schedule_status <> ?", schedmodel.LessonScheduleStatusCancelled).
		Count(&stats.EligibleCount).Error; err != nil {
		return nil, err
	}

	var rows []model.LessonAttendanceModel
	if err := db.
		Where("lesson_attendance_user_id = ?", userID).
		Where("lesson_attendance_schedule_id IN (?)",
			db.Model(&schedmodel.LessonScheduleModel{}).
				Select("lesson_schedule_id").
				Where("lesson_schedule_group_id IN ?", groupIDs)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	stats.Counts = countsFrom(rows)
	stats.AttendanceRate = Rate(stats.Counts)
	return stats, nil
}

/* =========================================================
   PER GROUP
   ========================================================= */

type MemberStats struct {
	UserID         uuid.UUID        `json:"user_id"`
	Counts         AttendanceCounts `json:"counts"`
	AttendanceRate float64          `json:"attendance_rate"`
}

type GroupStats struct {
	GroupID            uuid.UUID     `json:"group_id"`
	CompletedSchedules int64         `json:"completed_schedules"`
	Members            []MemberStats `json:"members"`
}

// SortMembersByRate orders members by rate descending; ties keep their
// original order.
func SortMembersByRate(members []MemberStats) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].AttendanceRate > members[j].AttendanceRate
	})
}

// ComputeGroupStats restricts to completed schedules and reports one rate per
// current member, best attendance first.
func ComputeGroupStats(db *gorm.DB, groupID uuid.UUID) (*GroupStats, error) {
	stats := &GroupStats{GroupID: groupID, Members: []MemberStats{}}

	if err := db.Model(&schedmodel.LessonScheduleModel{}).
		Where("lesson_schedule_group_id = ?", groupID).
		Where("lesson_schedule_status = ?", schedmodel.LessonScheduleStatusCompleted).
		Count(&stats.CompletedSchedules).Error; err != nil {
		return nil, err
	}

	var members []regmodel.LessonRegistrationModel
	if err := db.
		Where("lesson_registration_assigned_group_id = ?", groupID).
		Order("lesson_registration_created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	completedScheduleIDs := db.Model(&schedmodel.LessonScheduleModel{}).
		Select("lesson_schedule_id").
		Where("lesson_schedule_group_id = ?", groupID).
		Where("lesson_schedule_status = ?", schedmodel.LessonScheduleStatusCompleted)

	for i := range members {
		var rows []model.LessonAttendanceModel
		if err := db.
			Where("lesson_attendance_user_id = ?", members[i].LessonRegistrationUserID).
			Where("lesson_attendance_schedule_id IN (?)", completedScheduleIDs).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		counts := countsFrom(rows)
		stats.Members = append(stats.Members, MemberStats{
			UserID:         members[i].LessonRegistrationUserID,
			Counts:         counts,
			AttendanceRate: Rate(counts),
		})
	}

	SortMembersByRate(stats.Members)
	return stats, nil
}

/* =========================================================
   PER PACKAGE
   ========================================================= */

type PackageStats struct {
	PackageID          uuid.UUID        `json:"package_id"`
	CompletedSchedules int64            `json:"completed_schedules"`
	AssignedMembers    int64            `json:"assigned_members"`
	// diagnostic figure only; the rate below uses recorded rows
	TotalPossibleAttendances int64            `json:"total_possible_attendances"`
	Counts                   AttendanceCounts `json:"counts"`
	AttendanceRate           float64          `json:"attendance_rate"`
}

// ComputePackageStats aggregates across every completed schedule of every
// group in the package.
func ComputePackageStats(db *gorm.DB, packageID uuid.UUID) (*PackageStats, error) {
	stats := &PackageStats{PackageID: packageID}

	groupIDs := db.Model(&groupmodel.LessonGroupModel{}).
		Select("lesson_group_id").
		Where("lesson_group_package_id = ?", packageID)

	if err := db.Model(&schedmodel.LessonScheduleModel{}).
		Where("lesson_schedule_group_id IN (?)", groupIDs).
		Where("lesson_schedule_status = ?", schedmodel.LessonScheduleStatusCompleted).
		Count(&stats.CompletedSchedules).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&regmodel.LessonRegistrationModel{}).
		Where("lesson_registration_package_id = ?", packageID).
		Where("lesson_registration_assigned_group_id IS NOT NULL").
		Count(&stats.AssignedMembers).Error; err != nil {
		return nil, err
	}
	stats.TotalPossibleAttendances = stats.AssignedMembers * stats.CompletedSchedules

	var rows []model.LessonAttendanceModel
	if err := db.
		Where("lesson_attendance_schedule_id IN (?)",
			db.Model(&schedmodel.LessonScheduleModel{}).
				Select("lesson_schedule_id").
				Where("lesson_schedule_group_id IN (?)", groupIDs).
				Where("lesson_schedule_status = ?", schedmodel.LessonScheduleStatusCompleted)).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	stats.Counts = countsFrom(rows)
	stats.AttendanceRate = Rate(stats.Counts)
	return stats, nil
}
