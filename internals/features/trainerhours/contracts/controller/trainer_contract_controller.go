package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	usermodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type TrainerContractController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainerContractController(db *gorm.DB) *TrainerContractController {
	return &TrainerContractController{DB: db, Validator: validator.New()}
}

type storeContractRequest struct {
	UserID           uuid.UUID              `json:"user_id" validate:"required"`
	HourlyRate       float64                `json:"hourly_rate" validate:"required,gt=0"`
	PreparationRate  *float64               `json:"preparation_rate" validate:"omitempty,gt=0"`
	TournamentRate   *float64               `json:"tournament_rate" validate:"omitempty,gt=0"`
	StartDate        string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          *string                `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	ContractType     string                 `json:"contract_type" validate:"omitempty,max=30"`
	MaxHoursPerWeek  *int                   `json:"max_hours_per_week" validate:"omitempty,min=1"`
	MaxHoursPerMonth *int                   `json:"max_hours_per_month" validate:"omitempty,min=1"`
	Settings         map[string]interface{} `json:"settings"`
}

// List returns contracts, optionally narrowed to one trainer.
func (ctl *TrainerContractController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TrainerContractModel{})

	if trainer := c.Query("trainer_id"); trainer != "" {
		trainerID, err := uuid.Parse(trainer)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
		}
		q = q.Where("trainer_contract_user_id = ?", trainerID)
	}
	if c.Query("active") == "1" || c.Query("active") == "true" {
		q = q.Where("trainer_contract_is_active = ?", true)
	}

	var contracts []model.TrainerContractModel
	if err := q.Order("trainer_contract_start_date DESC").Find(&contracts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", contracts)
}

// Store creates a new contract for a trainer and retires any other active
// one. The trainer's profile picks up the new base rate as its default.
func (ctl *TrainerContractController) Store(c *fiber.Ctx) error {
	var req storeContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		if d.Before(startDate) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "end_date must not be before start_date")
		}
		endDate = &d
	}

	var user usermodel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "trainer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	contractType := req.ContractType
	if contractType == "" {
		contractType = "freelance"
	}

	contract := model.TrainerContractModel{
		TrainerContractUserID:           req.UserID,
		TrainerContractHourlyRate:       req.HourlyRate,
		TrainerContractPreparationRate:  req.PreparationRate,
		TrainerContractTournamentRate:   req.TournamentRate,
		TrainerContractStartDate:        startDate,
		TrainerContractEndDate:          endDate,
		TrainerContractType:             contractType,
		TrainerContractMaxHoursPerWeek:  req.MaxHoursPerWeek,
		TrainerContractMaxHoursPerMonth: req.MaxHoursPerMonth,
		TrainerContractIsActive:         true,
		TrainerContractSettings:         req.Settings,
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TrainerContractModel{}).
			Where("trainer_contract_user_id = ?", req.UserID).
			Where("trainer_contract_is_active = ?", true).
			Update("trainer_contract_is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}
		return tx.Model(&usermodel.UserModel{}).
			Where("user_id = ?", req.UserID).
			Updates(map[string]interface{}{
				"user_tracks_hours":        true,
				"user_default_hourly_rate": req.HourlyRate,
			}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "contract created", contract)
}

// Deactivate retires a contract without deleting its history.
func (ctl *TrainerContractController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid contract id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.TrainerContractModel{}).
		Where("trainer_contract_id = ?", id).
		Update("trainer_contract_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "contract not found")
	}

	return helper.JsonUpdated(c, "contract deactivated", fiber.Map{"trainer_contract_id": id})
}
