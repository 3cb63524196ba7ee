package controller

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/service"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type TrainerHourController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainerHourController(db *gorm.DB) *TrainerHourController {
	return &TrainerHourController{DB: db, Validator: validator.New()}
}

/* =========================================================
   LIST + DETAIL
   ========================================================= */

// List returns hour registrations. Non-admins only ever see their own.
// Filters: trainer_id (admin only), status, type, year, month.
func (ctl *TrainerHourController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	paging := helper.ResolvePaging(c, 25, 100)
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TrainerHourRegistrationModel{})

	if helper.IsAdmin(c) {
		if trainer := c.Query("trainer_id"); trainer != "" {
			trainerID, err := uuid.Parse(trainer)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
			}
			q = q.Where("trainer_hour_registration_user_id = ?", trainerID)
		}
	} else {
		q = q.Where("trainer_hour_registration_user_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("trainer_hour_registration_status = ?", status)
	}
	if hourType := c.Query("type"); hourType != "" {
		q = q.Where("trainer_hour_registration_type = ?", hourType)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("EXTRACT(YEAR FROM trainer_hour_registration_date) = ?", year)
		if month := c.QueryInt("month"); month >= 1 && month <= 12 {
			q = q.Where("EXTRACT(MONTH FROM trainer_hour_registration_date) = ?", month)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TrainerHourRegistrationModel
	if err := q.
		Order("trainer_hour_registration_date DESC, trainer_hour_registration_start_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.NewHourRegistrationResponses(rows), &pagination)
}

/* =========================================================
   STORE
   ========================================================= */

// Store records worked hours. Hours and amount are always computed server
// side. Entries created by an admin are approved on the spot.
func (ctl *TrainerHourController) Store(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.CreateHourRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	isAdmin := helper.IsAdmin(c)
	ownerID := actorID
	if req.UserID != nil && *req.UserID != actorID {
		if !isAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "cannot register hours for another trainer")
		}
		ownerID = *req.UserID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
	}
	startTime, err := helper.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_time")
	}
	endTime, err := helper.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_time")
	}

	hourType := contractmodel.HourType(req.Type)
	hours := service.ComputeHours(startTime, endTime)
	rate := service.ResolveRate(ctl.DB, ownerID, hourType, date)

	row := model.TrainerHourRegistrationModel{
		TrainerHourRegistrationUserID:      ownerID,
		TrainerHourRegistrationScheduleID:  req.ScheduleID,
		TrainerHourRegistrationDate:        date,
		TrainerHourRegistrationStartTime:   startTime,
		TrainerHourRegistrationEndTime:     endTime,
		TrainerHourRegistrationHours:       hours,
		TrainerHourRegistrationHourlyRate:  rate,
		TrainerHourRegistrationTotalAmount: math.Round(hours*rate*100) / 100,
		TrainerHourRegistrationType:        hourType,
		TrainerHourRegistrationDescription: req.Description,
		TrainerHourRegistrationNotes:       req.Notes,
		TrainerHourRegistrationStatus:      model.HourRegistrationStatusPending,
	}

	if isAdmin {
		now := time.Now()
		row.TrainerHourRegistrationStatus = model.HourRegistrationStatusApproved
		row.TrainerHourRegistrationApprovedBy = &actorID
		row.TrainerHourRegistrationApprovedAt = &now
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "hours registered", dto.NewHourRegistrationResponse(&row))
}

/* =========================================================
   UPDATE + DESTROY
   ========================================================= */

// Update edits a registration. Owners cannot touch approved or paid rows.
// Editing a rejected row sends it back to pending and clears the approval
// trail. Time changes recompute hours and amount.
func (ctl *TrainerHourController) Update(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateHourRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var row model.TrainerHourRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "trainer_hour_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "hour registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	isAdmin := helper.IsAdmin(c)
	isOwner := row.TrainerHourRegistrationUserID == actorID
	if !isAdmin && !isOwner {
		return helper.JsonError(c, fiber.StatusForbidden, "forbidden")
	}
	if !isAdmin {
		switch row.TrainerHourRegistrationStatus {
		case model.HourRegistrationStatusApproved, model.HourRegistrationStatusPaid:
			return helper.JsonError(c, fiber.StatusConflict, "approved hours can no longer be edited")
		}
	}

	wasRejected := row.TrainerHourRegistrationStatus == model.HourRegistrationStatusRejected

	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date")
		}
		row.TrainerHourRegistrationDate = d
	}
	timesChanged := false
	if req.StartTime != nil {
		t, err := helper.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_time")
		}
		row.TrainerHourRegistrationStartTime = t
		timesChanged = true
	}
	if req.EndTime != nil {
		t, err := helper.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_time")
		}
		row.TrainerHourRegistrationEndTime = t
		timesChanged = true
	}
	if req.Type != nil {
		row.TrainerHourRegistrationType = contractmodel.HourType(*req.Type)
	}
	if req.Description != nil {
		row.TrainerHourRegistrationDescription = req.Description
	}
	if req.Notes != nil {
		row.TrainerHourRegistrationNotes = req.Notes
	}

	if timesChanged || req.Type != nil || req.Date != nil {
		hours := service.ComputeHours(row.TrainerHourRegistrationStartTime, row.TrainerHourRegistrationEndTime)
		rate := service.ResolveRate(ctl.DB, row.TrainerHourRegistrationUserID, row.TrainerHourRegistrationType, row.TrainerHourRegistrationDate)
		row.TrainerHourRegistrationHours = hours
		row.TrainerHourRegistrationHourlyRate = rate
		row.TrainerHourRegistrationTotalAmount = math.Round(hours*rate*100) / 100
	}

	if wasRejected && isOwner && !isAdmin {
		row.TrainerHourRegistrationStatus = model.HourRegistrationStatusPending
		row.TrainerHourRegistrationApprovedBy = nil
		row.TrainerHourRegistrationApprovedAt = nil
		row.TrainerHourRegistrationAdminNotes = nil
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "hour registration updated", dto.NewHourRegistrationResponse(&row))
}

// Destroy removes a registration. Owners may only delete pending rows.
func (ctl *TrainerHourController) Destroy(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var row model.TrainerHourRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "trainer_hour_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "hour registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	isAdmin := helper.IsAdmin(c)
	if !isAdmin {
		if row.TrainerHourRegistrationUserID != actorID {
			return helper.JsonError(c, fiber.StatusForbidden, "forbidden")
		}
		if row.TrainerHourRegistrationStatus != model.HourRegistrationStatusPending {
			return helper.JsonError(c, fiber.StatusConflict, "only pending hours can be deleted")
		}
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "hour registration deleted", fiber.Map{"id": id})
}

/* =========================================================
   APPROVAL WORKFLOW (admin)
   ========================================================= */

// Approve moves a pending registration to approved.
func (ctl *TrainerHourController) Approve(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var row model.TrainerHourRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "trainer_hour_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "hour registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next, err := model.Transition(row.TrainerHourRegistrationStatus, model.HourRegistrationStatusApproved)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	now := time.Now()
	row.TrainerHourRegistrationStatus = next
	row.TrainerHourRegistrationApprovedBy = &actorID
	row.TrainerHourRegistrationApprovedAt = &now

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "hours approved", dto.NewHourRegistrationResponse(&row))
}

// Reject moves a pending registration to rejected. The reason is mandatory
// and lands in the admin notes so the trainer sees why.
func (ctl *TrainerHourController) Reject(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.RejectHourRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var row model.TrainerHourRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&row, "trainer_hour_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "hour registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next, err := model.Transition(row.TrainerHourRegistrationStatus, model.HourRegistrationStatusRejected)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	now := time.Now()
	row.TrainerHourRegistrationStatus = next
	row.TrainerHourRegistrationApprovedBy = &actorID
	row.TrainerHourRegistrationApprovedAt = &now
	row.TrainerHourRegistrationAdminNotes = &req.Reason

	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "hours rejected", dto.NewHourRegistrationResponse(&row))
}

// BulkApprove approves a batch of pending registrations in one transaction.
// Rows that are not pending are skipped, not failed.
func (ctl *TrainerHourController) BulkApprove(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.BulkApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	approved := 0
	skipped := 0
	now := time.Now()

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var rows []model.TrainerHourRegistrationModel
		if err := tx.Where("trainer_hour_registration_id IN ?", req.RegistrationIDs).
			Find(&rows).Error; err != nil {
			return err
		}
		for i := range rows {
			if rows[i].TrainerHourRegistrationStatus != model.HourRegistrationStatusPending {
				skipped++
				continue
			}
			rows[i].TrainerHourRegistrationStatus = model.HourRegistrationStatusApproved
			rows[i].TrainerHourRegistrationApprovedBy = &actorID
			rows[i].TrainerHourRegistrationApprovedAt = &now
			if err := tx.Save(&rows[i]).Error; err != nil {
				return err
			}
			approved++
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[HOURS] bulk approve by %s: %d approved, %d skipped", actorID, approved, skipped)
	return helper.JsonOK(c, "bulk approval done", fiber.Map{
		"approved": approved,
		"skipped":  skipped,
	})
}

/* =========================================================
   IMPORT FROM SCHEDULE
   ========================================================= */

// ImportFromSchedule turns the trainer's completed lessons in a date range
// without an hour registration into pending registrations.
func (ctl *TrainerHourController) ImportFromSchedule(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ImportFromScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}
	from, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date_from")
	}
	to, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date_to")
	}

	trainerID := actorID
	if helper.IsAdmin(c) {
		if trainer := c.Query("trainer_id"); trainer != "" {
			trainerID, err = uuid.Parse(trainer)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
			}
		}
	}

	created, err := service.ImportFromSchedules(ctl.DB.WithContext(c.UserContext()), trainerID, from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImportRange) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "schedule import done", fiber.Map{
		"imported":      len(created),
		"registrations": dto.NewHourRegistrationResponses(created),
	})
}
