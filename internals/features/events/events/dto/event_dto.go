package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
)

type CreateEventRequest struct {
	Title                string                 `json:"title" validate:"required,max=200"`
	Description          string                 `json:"description"`
	Type                 string                 `json:"type" validate:"omitempty,max=50"`
	Location             *string                `json:"location" validate:"omitempty,max=200"`
	StartDate            string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate              string                 `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime            *string                `json:"start_time" validate:"omitempty"`
	RegistrationDeadline *string                `json:"registration_deadline"` // RFC3339
	MinParticipants      *int                   `json:"min_participants" validate:"omitempty,min=0"`
	MaxParticipants      *int                   `json:"max_participants" validate:"omitempty,min=1"`
	PriceMember          float64                `json:"price_member" validate:"min=0"`
	PriceNonMember       float64                `json:"price_non_member" validate:"min=0"`
	MembersOnly          bool                   `json:"members_only"`
	Status               string                 `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
	Settings             map[string]interface{} `json:"settings"`
}

type UpdateEventRequest struct {
	Title                *string                 `json:"title" validate:"omitempty,max=200"`
	Description          *string                 `json:"description"`
	Type                 *string                 `json:"type" validate:"omitempty,max=50"`
	Location             *string                 `json:"location" validate:"omitempty,max=200"`
	StartDate            *string                 `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate              *string                 `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime            *string                 `json:"start_time"`
	RegistrationDeadline *string                 `json:"registration_deadline"`
	MinParticipants      *int                    `json:"min_participants" validate:"omitempty,min=0"`
	MaxParticipants      *int                    `json:"max_participants" validate:"omitempty,min=1"`
	PriceMember          *float64                `json:"price_member" validate:"omitempty,min=0"`
	PriceNonMember       *float64                `json:"price_non_member" validate:"omitempty,min=0"`
	MembersOnly          *bool                   `json:"members_only"`
	Status               *string                 `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
	Settings             *map[string]interface{} `json:"settings"`
}

type EventResponse struct {
	ID                   uuid.UUID         `json:"id"`
	Title                string            `json:"title"`
	Slug                 string            `json:"slug"`
	Description          string            `json:"description"`
	Type                 string            `json:"type"`
	Location             *string           `json:"location,omitempty"`
	StartDate            string            `json:"start_date"`
	EndDate              string            `json:"end_date"`
	StartTime            *string           `json:"start_time,omitempty"`
	RegistrationDeadline *time.Time        `json:"registration_deadline,omitempty"`
	MinParticipants      *int              `json:"min_participants,omitempty"`
	MaxParticipants      *int              `json:"max_participants,omitempty"`
	PriceMember          float64           `json:"price_member"`
	PriceNonMember       float64           `json:"price_non_member"`
	MembersOnly          bool              `json:"members_only"`
	Status               string            `json:"status"`
	Settings             datatypes.JSONMap `json:"settings,omitempty"`
	ConfirmedCount       int64             `json:"confirmed_count"`
	SpotsLeft            *int64            `json:"spots_left,omitempty"`
	CanRegister          bool              `json:"can_register"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func NewEventResponse(m *model.EventModel, confirmedCount int64, now time.Time) EventResponse {
	resp := EventResponse{
		ID:                   m.EventID,
		Title:                m.EventTitle,
		Slug:                 m.EventSlug,
		Description:          m.EventDescription,
		Type:                 m.EventType,
		Location:             m.EventLocation,
		StartDate:            m.EventStartDate.Format("2006-01-02"),
		EndDate:              m.EventEndDate.Format("2006-01-02"),
		RegistrationDeadline: m.EventRegistrationDeadline,
		MinParticipants:      m.EventMinParticipants,
		MaxParticipants:      m.EventMaxParticipants,
		PriceMember:          m.EventPriceMember,
		PriceNonMember:       m.EventPriceNonMember,
		MembersOnly:          m.EventMembersOnly,
		Status:               string(m.EventStatus),
		Settings:             m.EventSettings,
		ConfirmedCount:       confirmedCount,
		CanRegister:          m.CanRegister(now, confirmedCount),
		CreatedAt:            m.EventCreatedAt,
		UpdatedAt:            m.EventUpdatedAt,
	}
	if m.EventStartTime != nil {
		s := m.EventStartTime.Format("15:04")
		resp.StartTime = &s
	}
	if m.EventMaxParticipants != nil {
		left := int64(*m.EventMaxParticipants) - confirmedCount
		if left < 0 {
			left = 0
		}
		resp.SpotsLeft = &left
	}
	return resp
}

type RegisterEventRequest struct {
	GuestName  *string `json:"guest_name" validate:"omitempty,max=100"`
	GuestEmail *string `json:"guest_email" validate:"omitempty,email"`
	GuestPhone *string `json:"guest_phone" validate:"omitempty,max=30"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}
