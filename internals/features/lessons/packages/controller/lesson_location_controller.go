package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type LessonLocationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonLocationController(db *gorm.DB) *LessonLocationController {
	return &LessonLocationController{DB: db, Validator: validator.New()}
}

func (ctl *LessonLocationController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonLocationModel{})
	if c.Query("active") == "1" || c.Query("active") == "true" {
		q = q.Where("lesson_location_is_active = ?", true)
	}

	var locations []model.LessonLocationModel
	if err := q.Order("lesson_location_name ASC").Find(&locations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", locations)
}

func (ctl *LessonLocationController) Create(c *fiber.Ctx) error {
	var req dto.LessonLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	typ := req.Type
	if typ == "" {
		typ = "outdoor"
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	location := model.LessonLocationModel{
		LessonLocationName:     req.Name,
		LessonLocationType:     typ,
		LessonLocationCapacity: req.Capacity,
		LessonLocationIsActive: active,
		LessonLocationNotes:    req.Notes,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "location created", location)
}

func (ctl *LessonLocationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid location id")
	}

	var req dto.LessonLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var location model.LessonLocationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&location, "lesson_location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "location not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	location.LessonLocationName = req.Name
	if req.Type != "" {
		location.LessonLocationType = req.Type
	}
	location.LessonLocationCapacity = req.Capacity
	if req.IsActive != nil {
		location.LessonLocationIsActive = *req.IsActive
	}
	location.LessonLocationNotes = req.Notes

	if err := ctl.DB.WithContext(c.UserContext()).Save(&location).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "location updated", location)
}

// Delete refuses while groups still use the location.
func (ctl *LessonLocationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid location id")
	}

	var inUse int64
	if err := ctl.DB.Model(&groupmodel.LessonGroupModel{}).
		Where("lesson_group_location_id = ?", id).
		Count(&inUse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "location is still assigned to groups")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.LessonLocationModel{}, "lesson_location_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "location not found")
	}

	return helper.JsonDeleted(c, "location deleted", fiber.Map{"lesson_location_id": id})
}
