package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sappico-be/tc-zutendaal-backend/internals/constants"
	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(user_name) LIKE ? OR lower(user_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.NewUserResponse(&user))
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	role := req.Role
	if role == "" {
		role = constants.RoleMember
	}
	membership := req.MembershipType
	if membership == "" {
		membership = constants.MembershipMember
	}

	user := model.UserModel{
		UserName:              req.Name,
		UserEmail:             strings.ToLower(strings.TrimSpace(req.Email)),
		UserPhone:             req.Phone,
		UserPassword:          string(hash),
		UserRole:              role,
		UserMembershipType:    membership,
		UserIsActive:          true,
		UserTracksHours:       req.TracksHours,
		UserDefaultHourlyRate: req.DefaultHourlyRate,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "user created", dto.NewUserResponse(&user))
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		user.UserName = *req.Name
	}
	if req.Email != nil {
		user.UserEmail = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.UserPhone = req.Phone
	}
	if req.Role != nil {
		user.UserRole = *req.Role
	}
	if req.MembershipType != nil {
		user.UserMembershipType = *req.MembershipType
	}
	if req.IsActive != nil {
		user.UserIsActive = *req.IsActive
	}
	if req.TracksHours != nil {
		user.UserTracksHours = *req.TracksHours
	}
	if req.DefaultHourlyRate != nil {
		user.UserDefaultHourlyRate = req.DefaultHourlyRate
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "user updated", dto.NewUserResponse(&user))
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}

	return helper.JsonDeleted(c, "user deleted", fiber.Map{"user_id": id})
}
