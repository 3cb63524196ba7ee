package dto

import (
	"time"

	"github.com/google/uuid"

	contractmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/contracts/model"
	hourmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/trainerhours/registrations/model"
)

type CreateHourRegistrationRequest struct {
	UserID      *uuid.UUID `json:"user_id" validate:"omitempty"`
	ScheduleID  *uuid.UUID `json:"schedule_id" validate:"omitempty"`
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string     `json:"start_time" validate:"required"`
	EndTime     string     `json:"end_time" validate:"required"`
	Type        string     `json:"type" validate:"required,oneof=lesson preparation meeting tournament other"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Notes       *string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateHourRegistrationRequest struct {
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty"`
	EndTime     *string `json:"end_time" validate:"omitempty"`
	Type        *string `json:"type" validate:"omitempty,oneof=lesson preparation meeting tournament other"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

type RejectHourRegistrationRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=1000"`
}

type ImportFromScheduleRequest struct {
	DateFrom string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"required,datetime=2006-01-02"`
}

type BulkApproveRequest struct {
	RegistrationIDs []uuid.UUID `json:"registration_ids" validate:"required,min=1,dive,required"`
}

type HourRegistrationResponse struct {
	ID          uuid.UUID                        `json:"id"`
	UserID      uuid.UUID                        `json:"user_id"`
	ScheduleID  *uuid.UUID                       `json:"schedule_id,omitempty"`
	Date        string                           `json:"date"`
	StartTime   string                           `json:"start_time"`
	EndTime     string                           `json:"end_time"`
	Hours       float64                          `json:"hours"`
	HourlyRate  float64                          `json:"hourly_rate"`
	TotalAmount float64                          `json:"total_amount"`
	Type        contractmodel.HourType           `json:"type"`
	Description *string                          `json:"description,omitempty"`
	Status      hourmodel.HourRegistrationStatus `json:"status"`
	ApprovedBy  *uuid.UUID                       `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time                       `json:"approved_at,omitempty"`
	Notes       *string                          `json:"notes,omitempty"`
	AdminNotes  *string                          `json:"admin_notes,omitempty"`
	CreatedAt   time.Time                        `json:"created_at"`
}

func NewHourRegistrationResponse(m *hourmodel.TrainerHourRegistrationModel) HourRegistrationResponse {
	return HourRegistrationResponse{
		ID:          m.TrainerHourRegistrationID,
		UserID:      m.TrainerHourRegistrationUserID,
		ScheduleID:  m.TrainerHourRegistrationScheduleID,
		Date:        m.TrainerHourRegistrationDate.Format("2006-01-02"),
		StartTime:   m.TrainerHourRegistrationStartTime.Format("15:04"),
		EndTime:     m.TrainerHourRegistrationEndTime.Format("15:04"),
		Hours:       m.TrainerHourRegistrationHours,
		HourlyRate:  m.TrainerHourRegistrationHourlyRate,
		TotalAmount: m.TrainerHourRegistrationTotalAmount,
		Type:        m.TrainerHourRegistrationType,
		Description: m.TrainerHourRegistrationDescription,
		Status:      m.TrainerHourRegistrationStatus,
		ApprovedBy:  m.TrainerHourRegistrationApprovedBy,
		ApprovedAt:  m.TrainerHourRegistrationApprovedAt,
		Notes:       m.TrainerHourRegistrationNotes,
		AdminNotes:  m.TrainerHourRegistrationAdminNotes,
		CreatedAt:   m.TrainerHourRegistrationCreatedAt,
	}
}

func NewHourRegistrationResponses(rows []hourmodel.TrainerHourRegistrationModel) []HourRegistrationResponse {
	out := make([]HourRegistrationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewHourRegistrationResponse(&rows[i]))
	}
	return out
}
