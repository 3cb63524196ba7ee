package dto

import (
	"time"

	"github.com/google/uuid"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/users/users/model"
)

type CreateUserRequest struct {
	Name               string   `json:"name" validate:"required,max=120"`
	Email              string   `json:"email" validate:"required,email,max=160"`
	Phone              *string  `json:"phone" validate:"omitempty,max=40"`
	Password           string   `json:"password" validate:"required,min=8"`
	Role               string   `json:"role" validate:"omitempty,oneof=member trainer admin"`
	MembershipType     string   `json:"membership_type" validate:"omitempty,oneof=member non_member honorary"`
	TracksHours        bool     `json:"tracks_hours"`
	DefaultHourlyRate  *float64 `json:"default_hourly_rate" validate:"omitempty,gte=0"`
}

type UpdateUserRequest struct {
	Name              *string  `json:"name" validate:"omitempty,max=120"`
	Email             *string  `json:"email" validate:"omitempty,email,max=160"`
	Phone             *string  `json:"phone" validate:"omitempty,max=40"`
	Role              *string  `json:"role" validate:"omitempty,oneof=member trainer admin"`
	MembershipType    *string  `json:"membership_type" validate:"omitempty,oneof=member non_member honorary"`
	IsActive          *bool    `json:"is_active"`
	TracksHours       *bool    `json:"tracks_hours"`
	DefaultHourlyRate *float64 `json:"default_hourly_rate" validate:"omitempty,gte=0"`
}

type UserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             *string    `json:"phone,omitempty"`
	Role              string     `json:"role"`
	MembershipType    string     `json:"membership_type"`
	MemberSince       *time.Time `json:"member_since,omitempty"`
	IsActive          bool       `json:"is_active"`
	TracksHours       bool       `json:"tracks_hours"`
	DefaultHourlyRate *float64   `json:"default_hourly_rate,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:                m.UserID,
		Name:              m.UserName,
		Email:             m.UserEmail,
		Phone:             m.UserPhone,
		Role:              m.UserRole,
		MembershipType:    m.UserMembershipType,
		MemberSince:       m.UserMemberSince,
		IsActive:          m.UserIsActive,
		TracksHours:       m.UserTracksHours,
		DefaultHourlyRate: m.UserDefaultHourlyRate,
		CreatedAt:         m.UserCreatedAt,
	}
}
