package dto

import (
	"time"

	"github.com/google/uuid"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/packages/model"
)

type CreateLessonPackageRequest struct {
	Name                 string   `json:"name" validate:"required,max=150"`
	Description          string   `json:"description"`
	TotalLessons         int      `json:"total_lessons" validate:"required,min=1"`
	StartDate            string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	RegistrationDeadline string   `json:"registration_deadline" validate:"required,datetime=2006-01-02"`
	PriceMembers         float64  `json:"price_members" validate:"min=0"`
	PriceNonMembers      float64  `json:"price_non_members" validate:"min=0"`
	MinParticipants      *int     `json:"min_participants" validate:"omitempty,min=1"`
	MaxParticipants      *int     `json:"max_participants" validate:"omitempty,min=1"`
	AvailableDays        []string `json:"available_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Status               string   `json:"status" validate:"omitempty,oneof=draft open closed completed"`
}

type UpdateLessonPackageRequest struct {
	Name                 *string   `json:"name" validate:"omitempty,max=150"`
	Description          *string   `json:"description"`
	TotalLessons         *int      `json:"total_lessons" validate:"omitempty,min=1"`
	StartDate            *string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate              *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	RegistrationDeadline *string   `json:"registration_deadline" validate:"omitempty,datetime=2006-01-02"`
	PriceMembers         *float64  `json:"price_members" validate:"omitempty,min=0"`
	PriceNonMembers      *float64  `json:"price_non_members" validate:"omitempty,min=0"`
	MinParticipants      *int      `json:"min_participants" validate:"omitempty,min=1"`
	MaxParticipants      *int      `json:"max_participants" validate:"omitempty,min=1"`
	AvailableDays        *[]string `json:"available_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Status               *string   `json:"status" validate:"omitempty,oneof=draft open closed completed"`
}

type LessonPackageResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	TotalLessons         int       `json:"total_lessons"`
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	RegistrationDeadline string    `json:"registration_deadline"`
	PriceMembers         float64   `json:"price_members"`
	PriceNonMembers      float64   `json:"price_non_members"`
	MinParticipants      *int      `json:"min_participants,omitempty"`
	MaxParticipants      *int      `json:"max_participants,omitempty"`
	AvailableDays        []string  `json:"available_days"`
	Status               string    `json:"status"`
	GroupCount           int64     `json:"group_count"`
	RegistrationCount    int64     `json:"registration_count"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewLessonPackageResponse(m *model.LessonPackageModel, groupCount, registrationCount int64) LessonPackageResponse {
	resp := LessonPackageResponse{
		ID:                   m.LessonPackageID,
		Name:                 m.LessonPackageName,
		Description:          m.LessonPackageDescription,
		TotalLessons:         m.LessonPackageTotalLessons,
		StartDate:            m.LessonPackageStartDate.Format("2006-01-02"),
		EndDate:              m.LessonPackageEndDate.Format("2006-01-02"),
		RegistrationDeadline: m.LessonPackageRegistrationDeadline.Format("2006-01-02"),
		PriceMembers:         m.LessonPackagePriceMembers,
		PriceNonMembers:      m.LessonPackagePriceNonMembers,
		MinParticipants:      m.LessonPackageMinParticipants,
		MaxParticipants:      m.LessonPackageMaxParticipants,
		AvailableDays:        m.LessonPackageAvailableDays,
		Status:               string(m.LessonPackageStatus),
		GroupCount:           groupCount,
		RegistrationCount:    registrationCount,
		CreatedAt:            m.LessonPackageCreatedAt,
		UpdatedAt:            m.LessonPackageUpdatedAt,
	}
	if resp.AvailableDays == nil {
		resp.AvailableDays = []string{}
	}
	return resp
}

type LessonLocationRequest struct {
	Name     string  `json:"name" validate:"required,max=150"`
	Type     string  `json:"type" validate:"omitempty,oneof=indoor outdoor"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
	IsActive *bool   `json:"is_active"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
}
