package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sappico-be/tc-zutendaal-backend/internals/constants"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

func GetUserIDFromCtx(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(LocUserID)
	if raw == nil {
		return uuid.Nil, errors.New("user scope not found")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return uuid.Nil, errors.New("user scope is empty")
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, errors.New("invalid user scope")
		}
		return id, nil
	default:
		return uuid.Nil, errors.New("invalid user scope type")
	}
}

func GetRoleFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetRoleFromCtx(c) == constants.RoleAdmin
}

// BuildFieldErrors maps validator errors to the 422 envelope shape.
func BuildFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_error"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		msg := ""
		switch fe.Tag() {
		case "required":
			msg = "field is required"
		case "email":
			msg = "invalid email address"
		case "max":
			msg = "value is too long"
		case "min":
			msg = "value is too short"
		case "oneof":
			msg = "value is not allowed"
		default:
			msg = "invalid value"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
