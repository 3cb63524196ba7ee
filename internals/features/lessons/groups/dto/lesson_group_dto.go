package dto

import (
	"time"

	"github.com/google/uuid"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/groups/model"
)

type CreateLessonGroupRequest struct {
	PackageID        uuid.UUID  `json:"package_id" validate:"required"`
	Name             string     `json:"name" validate:"required,max=150"`
	Level            string     `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	TrainerID        *uuid.UUID `json:"trainer_id"`
	LocationID       *uuid.UUID `json:"location_id"`
	MaxParticipants  int        `json:"max_participants" validate:"required,min=1"`
	ScheduleDays     []string   `json:"schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	DefaultStartTime *string    `json:"default_start_time"`
	DefaultEndTime   *string    `json:"default_end_time"`
}

type UpdateLessonGroupRequest struct {
	Name             *string    `json:"name" validate:"omitempty,max=150"`
	Level            *string    `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	TrainerID        *uuid.UUID `json:"trainer_id"`
	LocationID       *uuid.UUID `json:"location_id"`
	MaxParticipants  *int       `json:"max_participants" validate:"omitempty,min=1"`
	ScheduleDays     *[]string  `json:"schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	DefaultStartTime *string    `json:"default_start_time"`
	DefaultEndTime   *string    `json:"default_end_time"`
}

type AssignRegistrationsRequest struct {
	RegistrationIDs []uuid.UUID `json:"registration_ids" validate:"required,min=1"`
}

type LessonGroupResponse struct {
	ID               uuid.UUID  `json:"id"`
	PackageID        uuid.UUID  `json:"package_id"`
	Name             string     `json:"name"`
	Level            string     `json:"level"`
	TrainerID        *uuid.UUID `json:"trainer_id,omitempty"`
	LocationID       *uuid.UUID `json:"location_id,omitempty"`
	MaxParticipants  int        `json:"max_participants"`
	MemberCount      int64      `json:"member_count"`
	RemainingSlots   int64      `json:"remaining_slots"`
	ScheduleDays     []string   `json:"schedule_days"`
	DefaultStartTime *string    `json:"default_start_time,omitempty"`
	DefaultEndTime   *string    `json:"default_end_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewLessonGroupResponse(m *model.LessonGroupModel, memberCount int64) LessonGroupResponse {
	resp := LessonGroupResponse{
		ID:              m.LessonGroupID,
		PackageID:       m.LessonGroupPackageID,
		Name:            m.LessonGroupName,
		Level:           string(m.LessonGroupLevel),
		TrainerID:       m.LessonGroupTrainerID,
		LocationID:      m.LessonGroupLocationID,
		MaxParticipants: m.LessonGroupMaxParticipants,
		MemberCount:     memberCount,
		ScheduleDays:    m.LessonGroupScheduleDays,
		CreatedAt:       m.LessonGroupCreatedAt,
		UpdatedAt:       m.LessonGroupUpdatedAt,
	}
	resp.RemainingSlots = int64(m.LessonGroupMaxParticipants) - memberCount
	if resp.RemainingSlots < 0 {
		resp.RemainingSlots = 0
	}
	if resp.ScheduleDays == nil {
		resp.ScheduleDays = []string{}
	}
	if m.LessonGroupDefaultStartTime != nil {
		s := m.LessonGroupDefaultStartTime.Format("15:04")
		resp.DefaultStartTime = &s
	}
	if m.LessonGroupDefaultEndTime != nil {
		s := m.LessonGroupDefaultEndTime.Format("15:04")
		resp.DefaultEndTime = &s
	}
	return resp
}
