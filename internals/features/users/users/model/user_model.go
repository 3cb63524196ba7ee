package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: users
   Club members, trainers and administrators.
====================================================== */

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	// identity
	UserName  string `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(160);not null;uniqueIndex" json:"user_email"`
	UserPhone *string `gorm:"column:user_phone;type:varchar(40)" json:"user_phone,omitempty"`

	// auth
	UserPassword string `gorm:"column:user_password;type:text;not null" json:"-"`
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:member" json:"user_role"`

	// club membership
	UserMembershipType string     `gorm:"column:user_membership_type;type:varchar(20);not null;default:member" json:"user_membership_type"`
	UserMemberSince    *time.Time `gorm:"column:user_member_since" json:"user_member_since,omitempty"`
	UserIsActive       bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// trainer payroll settings
	UserTracksHours       bool     `gorm:"column:user_tracks_hours;not null;default:false" json:"user_tracks_hours"`
	UserDefaultHourlyRate *float64 `gorm:"column:user_default_hourly_rate;type:numeric(8,2)" json:"user_default_hourly_rate,omitempty"`

	// audit
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) IsAdmin() bool { return m.UserRole == "admin" }

func (m *UserModel) IsTrainer() bool { return m.UserRole == "trainer" }
