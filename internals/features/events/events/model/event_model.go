package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: event status
   ========================================================= */

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

/* =========================================================
   MODEL: events
   ========================================================= */

type EventModel struct {
	EventID uuid.UUID `json:"event_id" gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EventTitle       string  `json:"event_title" gorm:"column:event_title;type:varchar(200);not null"`
	EventSlug        string  `json:"event_slug" gorm:"column:event_slug;type:varchar(220);not null;uniqueIndex"`
	EventDescription string  `json:"event_description" gorm:"column:event_description;type:text"`
	EventType        string  `json:"event_type" gorm:"column:event_type;type:varchar(50);not null;default:'general';index"`
	EventLocation    *string `json:"event_location,omitempty" gorm:"column:event_location;type:varchar(200)"`

	EventStartDate            time.Time  `json:"event_start_date" gorm:"column:event_start_date;type:date;not null;index"`
	EventEndDate              time.Time  `json:"event_end_date" gorm:"column:event_end_date;type:date;not null"`
	EventStartTime            *time.Time `json:"event_start_time,omitempty" gorm:"column:event_start_time;type:time"`
	EventRegistrationDeadline *time.Time `json:"event_registration_deadline,omitempty" gorm:"column:event_registration_deadline"`

	EventMinParticipants *int `json:"event_min_participants,omitempty" gorm:"column:event_min_participants"`
	EventMaxParticipants *int `json:"event_max_participants,omitempty" gorm:"column:event_max_participants"`

	EventPriceMember    float64 `json:"event_price_member" gorm:"column:event_price_member;type:numeric(8,2);not null;default:0"`
	EventPriceNonMember float64 `json:"event_price_non_member" gorm:"column:event_price_non_member;type:numeric(8,2);not null;default:0"`
	EventMembersOnly    bool    `json:"event_members_only" gorm:"column:event_members_only;not null;default:false"`

	EventStatus   EventStatus       `json:"event_status" gorm:"column:event_status;type:varchar(20);not null;default:'draft';index"`
	EventSettings datatypes.JSONMap `json:"event_settings" gorm:"column:event_settings;type:jsonb"`

	EventCreatedAt time.Time      `json:"event_created_at" gorm:"column:event_created_at;autoCreateTime"`
	EventUpdatedAt time.Time      `json:"event_updated_at" gorm:"column:event_updated_at;autoUpdateTime"`
	EventDeletedAt gorm.DeletedAt `json:"-" gorm:"column:event_deleted_at;index"`
}

func (EventModel) TableName() string { return "events" }

// PriceFor picks the member or non-member rate by membership type.
func (m *EventModel) PriceFor(membershipType string) float64 {
	if membershipType == "member" || membershipType == "honorary" {
		return m.EventPriceMember
	}
	return m.EventPriceNonMember
}

// CanRegister reports whether registration is open: the event must be
// published, the deadline (when set) not passed, and spots left.
func (m *EventModel) CanRegister(now time.Time, confirmedCount int64) bool {
	if m.EventStatus != EventStatusPublished {
		return false
	}
	if m.EventRegistrationDeadline != nil && now.After(*m.EventRegistrationDeadline) {
		return false
	}
	if m.EventMaxParticipants != nil && confirmedCount >= int64(*m.EventMaxParticipants) {
		return false
	}
	return true
}
