package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
	service "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/service"
	pkgmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/registrations/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type LessonGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonGroupController(db *gorm.DB) *LessonGroupController {
	return &LessonGroupController{DB: db, Validator: validator.New()}
}

func (ctl *LessonGroupController) memberCount(groupID uuid.UUID) (int64, error) {
	var cnt int64
	err := ctl.DB.Model(&regmodel.LessonRegistrationModel{}).
		Where("lesson_registration_assigned_group_id = ?", groupID).
		Count(&cnt).Error
	return cnt, err
}

func (ctl *LessonGroupController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.LessonGroupModel{})

	if pkg := c.Query("package_id"); pkg != "" {
		pkgID, err := uuid.Parse(pkg)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid package_id")
		}
		q = q.Where("lesson_group_package_id = ?", pkgID)
	}
	if trainer := c.Query("trainer_id"); trainer != "" {
		trainerID, err := uuid.Parse(trainer)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid trainer_id")
		}
		q = q.Where("lesson_group_trainer_id = ?", trainerID)
	}

	var groups []model.LessonGroupModel
	if err := q.Order("lesson_group_name ASC").Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.LessonGroupResponse, 0, len(groups))
	for i := range groups {
		cnt, err := ctl.memberCount(groups[i].LessonGroupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.NewLessonGroupResponse(&groups[i], cnt))
	}

	return helper.JsonOK(c, "", out)
}

func (ctl *LessonGroupController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	var group model.LessonGroupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&group, "lesson_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cnt, err := ctl.memberCount(group.LessonGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var members []regmodel.LessonRegistrationModel
	if err := ctl.DB.
		Where("lesson_registration_assigned_group_id = ?", group.LessonGroupID).
		Order("lesson_registration_created_at ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"group":   dto.NewLessonGroupResponse(&group, cnt),
		"members": members,
	})
}

func (ctl *LessonGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var pkg pkgmodel.LessonPackageModel
	if err := ctl.DB.First(&pkg, "lesson_package_id = ?", req.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson package not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	level := model.LessonGroupLevelBeginner
	if req.Level != "" {
		level = model.LessonGroupLevel(req.Level)
	}

	group := model.LessonGroupModel{
		LessonGroupPackageID:       pkg.LessonPackageID,
		LessonGroupName:            req.Name,
		LessonGroupLevel:           level,
		LessonGroupTrainerID:       req.TrainerID,
		LessonGroupLocationID:      req.LocationID,
		LessonGroupMaxParticipants: req.MaxParticipants,
		LessonGroupScheduleDays:    req.ScheduleDays,
	}

	if req.DefaultStartTime != nil && *req.DefaultStartTime != "" {
		t, err := helper.ParseTimeOfDay(*req.DefaultStartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid default_start_time")
		}
		group.LessonGroupDefaultStartTime = &t
	}
	if req.DefaultEndTime != nil && *req.DefaultEndTime != "" {
		t, err := helper.ParseTimeOfDay(*req.DefaultEndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid default_end_time")
		}
		group.LessonGroupDefaultEndTime = &t
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "lesson group created", dto.NewLessonGroupResponse(&group, 0))
}

func (ctl *LessonGroupController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req dto.UpdateLessonGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var group model.LessonGroupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&group, "lesson_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		group.LessonGroupName = *req.Name
	}
	if req.Level != nil {
		group.LessonGroupLevel = model.LessonGroupLevel(*req.Level)
	}
	if req.TrainerID != nil {
		group.LessonGroupTrainerID = req.TrainerID
	}
	if req.LocationID != nil {
		group.LessonGroupLocationID = req.LocationID
	}
	if req.MaxParticipants != nil {
		cnt, err := ctl.memberCount(group.LessonGroupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if int64(*req.MaxParticipants) < cnt {
			return helper.JsonError(c, fiber.StatusConflict, "max_participants cannot drop below current member count")
		}
		group.LessonGroupMaxParticipants = *req.MaxParticipants
	}
	if req.ScheduleDays != nil {
		group.LessonGroupScheduleDays = *req.ScheduleDays
	}
	if req.DefaultStartTime != nil {
		if *req.DefaultStartTime == "" {
			group.LessonGroupDefaultStartTime = nil
		} else {
			t, err := helper.ParseTimeOfDay(*req.DefaultStartTime)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid default_start_time")
			}
			group.LessonGroupDefaultStartTime = &t
		}
	}
	if req.DefaultEndTime != nil {
		if *req.DefaultEndTime == "" {
			group.LessonGroupDefaultEndTime = nil
		} else {
			t, err := helper.ParseTimeOfDay(*req.DefaultEndTime)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid default_end_time")
			}
			group.LessonGroupDefaultEndTime = &t
		}
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cnt, _ := ctl.memberCount(group.LessonGroupID)
	return helper.JsonUpdated(c, "lesson group updated", dto.NewLessonGroupResponse(&group, cnt))
}

// Delete refuses while registrations are still assigned to the group.
func (ctl *LessonGroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	cnt, err := ctl.memberCount(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "group still has assigned members")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.LessonGroupModel{}, "lesson_group_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "lesson group not found")
	}

	return helper.JsonDeleted(c, "lesson group deleted", fiber.Map{"lesson_group_id": id})
}

// Assign places a batch of registrations into the group, all or nothing.
func (ctl *LessonGroupController) Assign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	var req dto.AssignRegistrationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	assigned, err := service.AssignToGroup(ctl.DB.WithContext(c.UserContext()), id, req.RegistrationIDs)
	if err != nil {
		var capErr *service.CapacityError
		switch {
		case errors.As(err, &capErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":         false,
				"message":         capErr.Error(),
				"error_code":      "CONFLICT",
				"remaining_slots": capErr.Remaining,
			})
		case errors.Is(err, service.ErrGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPackageMismatch):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonUpdated(c, "registrations assigned", fiber.Map{
		"lesson_group_id": id,
		"assigned_count":  assigned,
	})
}

// Unassign clears the group reference of one registration, idempotently.
func (ctl *LessonGroupController) Unassign(c *fiber.Ctx) error {
	regID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration id")
	}

	if err := service.RemoveFromGroup(ctl.DB.WithContext(c.UserContext()), regID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "registration removed from group", fiber.Map{
		"lesson_registration_id": regID,
	})
}
