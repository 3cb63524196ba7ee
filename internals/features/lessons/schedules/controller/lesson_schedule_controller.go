package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/service"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type LessonScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonScheduleController(db *gorm.DB) *LessonScheduleController {
	return &LessonScheduleController{DB: db, Validator: validator.New()}
}

// Generate creates the lesson occurrences for one group.
func (ctl *LessonScheduleController) Generate(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req dto.GenerateSchedulesRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var overrideStart, overrideEnd *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		overrideStart = &d
	}
	if req.EndDate != nil && *req.EndDate != "" {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		overrideEnd = &d
	}

	rows, err := service.GenerateForGroup(ctl.DB.WithContext(c.UserContext()), groupID, overrideStart, overrideEnd, req.Regenerate)
	if err != nil {
		var existsErr *service.ExistingSchedulesError
		switch {
		case errors.As(err, &existsErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":        false,
				"message":        existsErr.Error(),
				"error_code":     "CONFLICT",
				"existing_count": existsErr.Count,
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "lesson group not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	out := make([]dto.LessonScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewLessonScheduleResponse(&rows[i]))
	}

	return helper.JsonCreated(c, "schedules generated", fiber.Map{
		"generated_count": len(out),
		"schedules":       out,
	})
}

// List returns schedules filtered by group, package and/or date range. The
// package filter spans every group of that package, a full calendar feed.
func (ctl *LessonScheduleController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonScheduleModel{})

	if group := c.Query("group_id"); group != "" {
		groupID, err := uuid.Parse(group)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid group_id")
		}
		q = q.Where("lesson_schedule_group_id = ?", groupID)
	}
	if pkg := c.Query("package_id"); pkg != "" {
		pkgID, err := uuid.Parse(pkg)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid package_id")
		}
		q = q.Where("lesson_schedule_group_id IN (?)",
			ctl.DB.Model(&groupmodel.LessonGroupModel{}).
				Select("lesson_group_id").
				Where("lesson_group_package_id = ?", pkgID),
		)
	}
	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid from date")
		}
		q = q.Where("lesson_schedule_date >= ?", d)
	}
	if until := c.Query("until"); until != "" {
		d, err := time.Parse("2006-01-02", until)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid until date")
		}
		q = q.Where("lesson_schedule_date <= ?", d)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("lesson_schedule_status = ?", status)
	}

	var rows []model.LessonScheduleModel
	if err := q.Order("lesson_schedule_date ASC, lesson_schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.LessonScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewLessonScheduleResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// Update reschedules or annotates a single occurrence.
func (ctl *LessonScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var req dto.UpdateLessonScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var row model.LessonScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "lesson_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if row.LessonScheduleStatus == model.LessonScheduleStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "cancelled schedules cannot be edited")
	}

	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
		}
		row.LessonScheduleDate = d
	}
	if req.StartTime != nil {
		t, err := helper.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_time")
		}
		row.LessonScheduleStartTime = t
	}
	if req.EndTime != nil {
		t, err := helper.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_time")
		}
		row.LessonScheduleEndTime = t
	}
	if req.LocationID != nil {
		row.LessonScheduleLocationID = req.LocationID
	}
	if req.Notes != nil {
		row.LessonScheduleNotes = req.Notes
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "schedule updated", dto.NewLessonScheduleResponse(&row))
}

// Cancel marks one occurrence cancelled, keeping the reason in the notes.
func (ctl *LessonScheduleController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid schedule id")
	}

	var req dto.CancelLessonScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var row model.LessonScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "lesson_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row.LessonScheduleStatus = model.LessonScheduleStatusCancelled
	row.LessonScheduleNotes = &req.Reason

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "schedule cancelled", dto.NewLessonScheduleResponse(&row))
}

/* =========================================================
   TRAINER AVAILABILITY
   ========================================================= */

// SetAvailability replaces the caller's availability slots for one package.
func (ctl *LessonScheduleController) SetAvailability(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	rows := make([]model.TrainerAvailabilityModel, 0, len(req.Slots))
	for _, slot := range req.Slots {
		from, err := helper.ParseTimeOfDay(slot.From)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid from time")
		}
		until, err := helper.ParseTimeOfDay(slot.Until)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid until time")
		}
		available := true
		if slot.IsAvailable != nil {
			available = *slot.IsAvailable
		}
		rows = append(rows, model.TrainerAvailabilityModel{
			TrainerAvailabilityUserID:      userID,
			TrainerAvailabilityPackageID:   req.PackageID,
			TrainerAvailabilityDayOfWeek:   slot.DayOfWeek,
			TrainerAvailabilityFrom:        from,
			TrainerAvailabilityUntil:       until,
			TrainerAvailabilityIsAvailable: available,
		})
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("trainer_availability_user_id = ?", userID).
			Where("trainer_availability_package_id = ?", req.PackageID).
			Delete(&model.TrainerAvailabilityModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "availability saved", rows)
}

// GetAvailability lists availability, optionally narrowed to one package or
// one trainer.
func (ctl *LessonScheduleController) GetAvailability(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TrainerAvailabilityModel{})

	if pkg := c.Query("package_id"); pkg != "" {
		pkgID, err := uuid.Parse(pkg)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid package_id")
		}
		q = q.Where("trainer_availability_package_id = ?", pkgID)
	}
	if trainer := c.Query("trainer_id"); trainer != "" {
		trainerID, err := uuid.Parse(trainer)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
		}
		q = q.Where("trainer_availability_user_id = ?", trainerID)
	} else if !helper.IsAdmin(c) {
		// trainers see their own rows unless they ask for someone specific
		userID, err := helper.GetUserIDFromCtx(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		q = q.Where("trainer_availability_user_id = ?", userID)
	}

	if day := c.Query("day"); day != "" {
		q = q.Where("trainer_availability_day_of_week = ?", day)
	}
	if c.Query("available") == "1" || c.Query("available") == "true" {
		q = q.Where("trainer_availability_is_available = ?", true)
	}

	var rows []model.TrainerAvailabilityModel
	if err := q.Order("trainer_availability_day_of_week ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", rows)
}
