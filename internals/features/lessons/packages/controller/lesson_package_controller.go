package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type LessonPackageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonPackageController(db *gorm.DB) *LessonPackageController {
	return &LessonPackageController{DB: db, Validator: validator.New()}
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

// validatePackageDates enforces end >= start and deadline before start.
func validatePackageDates(start, end, deadline time.Time) error {
	if end.Before(start) {
		return errors.New("end_date must not be before start_date")
	}
	if !deadline.Before(start) {
		return errors.New("registration_deadline must be before start_date")
	}
	return nil
}

func (ctl *LessonPackageController) counts(packageID uuid.UUID) (groups, regs int64, err error) {
	if err = ctl.DB.Model(&groupmodel.LessonGroupModel{}).
		Where("lesson_group_package_id = ?", packageID).
		Count(&groups).Error; err != nil {
		return
	}
	err = ctl.DB.Model(&regmodel.LessonRegistrationModel{}).
		Where("lesson_registration_package_id = ?", packageID).
		Count(&regs).Error
	return
}

func (ctl *LessonPackageController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonPackageModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("lesson_package_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var packages []model.LessonPackageModel
	if err := q.Order("lesson_package_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&packages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.LessonPackageResponse, 0, len(packages))
	for i := range packages {
		groups, regs, err := ctl.counts(packages[i].LessonPackageID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.NewLessonPackageResponse(&packages[i], groups, regs))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *LessonPackageController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	var pkg model.LessonPackageModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&pkg, "lesson_package_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	groups, regs, err := ctl.counts(pkg.LessonPackageID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.NewLessonPackageResponse(&pkg, groups, regs))
}

func (ctl *LessonPackageController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
	}
	deadline, err := parseDate(req.RegistrationDeadline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration_deadline")
	}
	if err := validatePackageDates(start, end, deadline); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	status := model.LessonPackageStatusDraft
	if req.Status != "" {
		status = model.LessonPackageStatus(req.Status)
	}

	pkg := model.LessonPackageModel{
		LessonPackageName:                 req.Name,
		LessonPackageDescription:          req.Description,
		LessonPackageTotalLessons:         req.TotalLessons,
		LessonPackageStartDate:            start,
		LessonPackageEndDate:              end,
		LessonPackageRegistrationDeadline: deadline,
		LessonPackagePriceMembers:         req.PriceMembers,
		LessonPackagePriceNonMembers:      req.PriceNonMembers,
		LessonPackageMinParticipants:      req.MinParticipants,
		LessonPackageMaxParticipants:      req.MaxParticipants,
		LessonPackageAvailableDays:        req.AvailableDays,
		LessonPackageStatus:               status,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&pkg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "lesson package created", dto.NewLessonPackageResponse(&pkg, 0, 0))
}

func (ctl *LessonPackageController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	var req dto.UpdateLessonPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var pkg model.LessonPackageModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&pkg, "lesson_package_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		pkg.LessonPackageName = *req.Name
	}
	if req.Description != nil {
		pkg.LessonPackageDescription = *req.Description
	}
	if req.TotalLessons != nil {
		pkg.LessonPackageTotalLessons = *req.TotalLessons
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		pkg.LessonPackageStartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		pkg.LessonPackageEndDate = d
	}
	if req.RegistrationDeadline != nil {
		d, err := parseDate(*req.RegistrationDeadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration_deadline")
		}
		pkg.LessonPackageRegistrationDeadline = d
	}
	if err := validatePackageDates(
		pkg.LessonPackageStartDate,
		pkg.LessonPackageEndDate,
		pkg.LessonPackageRegistrationDeadline,
	); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.PriceMembers != nil {
		pkg.LessonPackagePriceMembers = *req.PriceMembers
	}
	if req.PriceNonMembers != nil {
		pkg.LessonPackagePriceNonMembers = *req.PriceNonMembers
	}
	if req.MinParticipants != nil {
		pkg.LessonPackageMinParticipants = req.MinParticipants
	}
	if req.MaxParticipants != nil {
		pkg.LessonPackageMaxParticipants = req.MaxParticipants
	}
	if req.AvailableDays != nil {
		pkg.LessonPackageAvailableDays = *req.AvailableDays
	}
	if req.Status != nil {
		pkg.LessonPackageStatus = model.LessonPackageStatus(*req.Status)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&pkg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	groups, regs, _ := ctl.counts(pkg.LessonPackageID)
	return helper.JsonUpdated(c, "lesson package updated", dto.NewLessonPackageResponse(&pkg, groups, regs))
}

// Delete refuses while groups or registrations still reference the package.
func (ctl *LessonPackageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid package id")
	}

	groups, regs, err := ctl.counts(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if groups > 0 || regs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "package still has groups or registrations")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.LessonPackageModel{}, "lesson_package_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
	}

	return helper.JsonDeleted(c, "lesson package deleted", fiber.Map{"lesson_package_id": id})
}
