package dto

import (
	"time"

	"github.com/google/uuid"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/lessons/schedules/model"
)

type GenerateSchedulesRequest struct {
	StartDate  *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Regenerate bool    `json:"regenerate"`
}

type UpdateLessonScheduleRequest struct {
	Date       *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime  *string    `json:"start_time"`
	EndTime    *string    `json:"end_time"`
	LocationID *uuid.UUID `json:"location_id"`
	Notes      *string    `json:"notes" validate:"omitempty,max=500"`
}

type CancelLessonScheduleRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type SetAvailabilityRequest struct {
	PackageID uuid.UUID           `json:"package_id" validate:"required"`
	Slots     []AvailabilitySlot  `json:"slots" validate:"required,dive"`
}

type AvailabilitySlot struct {
	DayOfWeek   string `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	From        string `json:"from" validate:"required"`
	Until       string `json:"until" validate:"required"`
	IsAvailable *bool  `json:"is_available"`
}

type LessonScheduleResponse struct {
	ID         uuid.UUID  `json:"id"`
	GroupID    uuid.UUID  `json:"group_id"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewLessonScheduleResponse(m *model.LessonScheduleModel) LessonScheduleResponse {
	return LessonScheduleResponse{
		ID:         m.LessonScheduleID,
		GroupID:    m.LessonScheduleGroupID,
		LocationID: m.LessonScheduleLocationID,
		Date:       m.LessonScheduleDate.Format("2006-01-02"),
		StartTime:  m.LessonScheduleStartTime.Format("15:04"),
		EndTime:    m.LessonScheduleEndTime.Format("15:04"),
		Status:     string(m.LessonScheduleStatus),
		Notes:      m.LessonScheduleNotes,
		CreatedAt:  m.LessonScheduleCreatedAt,
		UpdatedAt:  m.LessonScheduleUpdatedAt,
	}
}
