package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/summaries/service"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type TrainerHourSummaryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainerHourSummaryController(db *gorm.DB) *TrainerHourSummaryController {
	return &TrainerHourSummaryController{DB: db, Validator: validator.New()}
}

func resolvePeriod(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if year < 2000 || year > 2100 {
		return 0, 0, errors.New("invalid year")
	}
	if month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}
	return year, month, nil
}

/* =========================================================
   TRAINER SELF-SERVICE
   ========================================================= */

// GetMonthly returns the trainer's summary for a month, creating the draft
// row on first access and refreshing its totals from approved hours.
func (ctl *TrainerHourSummaryController) GetMonthly(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	trainerID := userID
	if helper.IsAdmin(c) {
		if trainer := c.Query("trainer_id"); trainer != "" {
			trainerID, err = uuid.Parse(trainer)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
			}
		}
	}

	year, month, err := resolvePeriod(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())
	summary, err := service.GetOrCreate(db, trainerID, year, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Totals are live while the summary is still editable.
	if summary.TrainerHourSummaryStatus == model.SummaryStatusDraft {
		if err := service.CalculateTotals(db, summary); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	pending, err := service.CountPendingForPeriod(db, summary)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"summary":       summary,
		"pending_hours": pending,
	})
}

// SubmitMonthly moves the trainer's draft summary to submitted. Refused
// while any registration of the month still awaits review.
func (ctl *TrainerHourSummaryController) SubmitMonthly(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := resolvePeriod(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())
	summary, err := service.GetOrCreate(db, userID, year, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pending, err := service.CountPendingForPeriod(db, summary)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if pending > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "cannot submit while hours are still pending review")
	}

	next, err := model.Transition(summary.TrainerHourSummaryStatus, model.SummaryStatusSubmitted)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	if err := service.CalculateTotals(db, summary); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	summary.TrainerHourSummaryStatus = next
	summary.TrainerHourSummarySubmittedAt = &now
	if err := db.Save(summary).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "summary submitted", summary)
}

/* =========================================================
   ADMIN: PAYROLL
   ========================================================= */

// PayrollOverview lists every tracked trainer's summary for a month,
// refreshing draft totals so the admin sees current numbers.
func (ctl *TrainerHourSummaryController) PayrollOverview(c *fiber.Ctx) error {
	year, month, err := resolvePeriod(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())

	var trainers []usermodel.UserModel
	if err := db.
		Where("user_tracks_hours = ?", true).
		Where("user_is_active = ?", true).
		Order("user_name ASC").
		Find(&trainers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	type payrollRow struct {
		TrainerID   uuid.UUID                      `json:"trainer_id"`
		TrainerName string                         `json:"trainer_name"`
		Summary     *model.TrainerHourSummaryModel `json:"summary"`
	}

	rows := make([]payrollRow, 0, len(trainers))
	var totalAmount float64
	for i := range trainers {
		summary, err := service.GetOrCreate(db, trainers[i].UserID, year, month)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if summary.TrainerHourSummaryStatus == model.SummaryStatusDraft {
			if err := service.CalculateTotals(db, summary); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
		}
		totalAmount += summary.TrainerHourSummaryTotalAmount
		rows = append(rows, payrollRow{
			TrainerID:   trainers[i].UserID,
			TrainerName: trainers[i].UserName,
			Summary:     summary,
		})
	}

	return helper.JsonOK(c, "", fiber.Map{
		"year":         year,
		"month":        month,
		"trainers":     rows,
		"total_amount": totalAmount,
	})
}

// Approve moves a submitted summary to approved.
func (ctl *TrainerHourSummaryController) Approve(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromCtx(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var summary model.TrainerHourSummaryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&summary, "trainer_hour_summary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "summary not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next, err := model.Transition(summary.TrainerHourSummaryStatus, model.SummaryStatusApproved)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	now := time.Now()
	summary.TrainerHourSummaryStatus = next
	summary.TrainerHourSummaryApprovedBy = &actorID
	summary.TrainerHourSummaryApprovedAt = &now
	if err := ctl.DB.WithContext(c.UserContext()).Save(&summary).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "summary approved", summary)
}

type markPaidRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,min=3,max=100"`
}

// MarkAsPaid closes out an approved summary with a payment reference.
func (ctl *TrainerHourSummaryController) MarkAsPaid(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req markPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var summary model.TrainerHourSummaryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&summary, "trainer_hour_summary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "summary not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next, err := model.Transition(summary.TrainerHourSummaryStatus, model.SummaryStatusPaid)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	now := time.Now()
	summary.TrainerHourSummaryStatus = next
	summary.TrainerHourSummaryPaidAt = &now
	summary.TrainerHourSummaryPaymentReference = &req.PaymentReference
	if err := ctl.DB.WithContext(c.UserContext()).Save(&summary).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "summary marked as paid", summary)
}
