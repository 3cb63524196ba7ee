package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: news status
   ========================================================= */

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

/* =========================================================
   MODEL: news
   ========================================================= */

type NewsModel struct {
	NewsID uuid.UUID `json:"news_id" gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey"`

	NewsTitle   string `json:"news_title" gorm:"column:news_title;type:varchar(200);not null"`
	NewsSlug    string `json:"news_slug" gorm:"column:news_slug;type:varchar(220);not null;uniqueIndex"`
	NewsExcerpt string `json:"news_excerpt" gorm:"column:news_excerpt;type:text"`
	NewsBody    string `json:"news_body" gorm:"column:news_body;type:text;not null"`

	NewsCoverImageURL *string        `json:"news_cover_image_url,omitempty" gorm:"column:news_cover_image_url;type:text"`
	NewsTags          pq.StringArray `json:"news_tags" gorm:"column:news_tags;type:text[]"`

	NewsStatus      NewsStatus `json:"news_status" gorm:"column:news_status;type:varchar(20);not null;default:'draft';index"`
	NewsPublishedAt *time.Time `json:"news_published_at,omitempty" gorm:"column:news_published_at;index"`

	NewsViewsCount int `json:"news_views_count" gorm:"column:news_views_count;not null;default:0"`

	NewsAuthorID *uuid.UUID `json:"news_author_id,omitempty" gorm:"column:news_author_id;type:uuid;index"`

	NewsCreatedAt time.Time      `json:"news_created_at" gorm:"column:news_created_at;autoCreateTime"`
	NewsUpdatedAt time.Time      `json:"news_updated_at" gorm:"column:news_updated_at;autoUpdateTime"`
	NewsDeletedAt gorm.DeletedAt `json:"-" gorm:"column:news_deleted_at;index"`
}

func (NewsModel) TableName() string { return "news" }

// IsVisible reports whether the article should appear on the public site.
func (m *NewsModel) IsVisible(now time.Time) bool {
	if m.NewsStatus != NewsStatusPublished {
		return false
	}
	if m.NewsPublishedAt == nil {
		return false
	}
	return !m.NewsPublishedAt.After(now)
}
