package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/attendance/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/attendance/service"
	schedmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type LessonAttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonAttendanceController(db *gorm.DB) *LessonAttendanceController {
	return &LessonAttendanceController{DB: db, Validator: validator.New()}
}

type attendanceEntry struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=present absent excused late"`
	Notes  *string   `json:"notes" validate:"omitempty,max=500"`
}

type markAttendanceRequest struct {
	Entries []attendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// Mark upserts attendance for one schedule. The first recorded attendance
// flips the schedule from scheduled to completed.
func (ctl *LessonAttendanceController) Mark(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var req markAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var schedule schedmodel.LessonScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&schedule, "lesson_schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if schedule.LessonScheduleStatus == schedmodel.LessonScheduleStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "cannot mark attendance on a cancelled lesson")
	}

	checkedBy, _ := helper.GetUserIDFromCtx(c)
	now := time.Now()

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			var row model.LessonAttendanceModel
			err := tx.
				Where("lesson_attendance_schedule_id = ?", schedule.LessonScheduleID).
				Where("lesson_attendance_user_id = ?", entry.UserID).
				First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = model.LessonAttendanceModel{
					LessonAttendanceScheduleID: schedule.LessonScheduleID,
					LessonAttendanceUserID:     entry.UserID,
				}
			case err != nil:
				return err
			}

			row.LessonAttendanceStatus = model.LessonAttendanceStatus(entry.Status)
			row.LessonAttendanceNotes = entry.Notes
			row.LessonAttendanceCheckedAt = &now
			if checkedBy != uuid.Nil {
				row.LessonAttendanceCheckedBy = &checkedBy
			}

			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}

		if schedule.LessonScheduleStatus == schedmodel.LessonScheduleStatusScheduled {
			schedule.LessonScheduleStatus = schedmodel.LessonScheduleStatusCompleted
			if err := tx.Save(&schedule).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "attendance recorded", fiber.Map{
		"lesson_schedule_id": schedule.LessonScheduleID,
		"schedule_status":    schedule.LessonScheduleStatus,
		"marked_count":       len(req.Entries),
	})
}

// ListForSchedule returns the recorded attendance rows of one occurrence.
func (ctl *LessonAttendanceController) ListForSchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var rows []model.LessonAttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("lesson_attendance_schedule_id = ?", scheduleID).
		Order("lesson_attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", rows)
}

/* =========================================================
   STATS
   ========================================================= */

func (ctl *LessonAttendanceController) UserStats(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("packageId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	stats, err := service.ComputeUserStats(ctl.DB.WithContext(c.UserContext()), packageID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", stats)
}

func (ctl *LessonAttendanceController) GroupStats(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	stats, err := service.ComputeGroupStats(ctl.DB.WithContext(c.UserContext()), groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", stats)
}

func (ctl *LessonAttendanceController) PackageStats(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	stats, err := service.ComputePackageStats(ctl.DB.WithContext(c.UserContext()), packageID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", stats)
}
