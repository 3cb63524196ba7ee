package dto

import (
	"time"

	"github.com/google/uuid"

	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/model"
)

type CreateNewsRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Excerpt       string   `json:"excerpt" validate:"max=500"`
	Body          string   `json:"body" validate:"required"`
	CoverImageURL *string  `json:"cover_image_url" validate:"omitempty,url"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=50"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *string  `json:"published_at"` // RFC3339, optional
}

type UpdateNewsRequest struct {
	Title         *string   `json:"title" validate:"omitempty,max=200"`
	Excerpt       *string   `json:"excerpt" validate:"omitempty,max=500"`
	Body          *string   `json:"body"`
	CoverImageURL *string   `json:"cover_image_url" validate:"omitempty,url"`
	Tags          *[]string `json:"tags" validate:"omitempty,dive,max=50"`
	Status        *string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *string   `json:"published_at"`
}

type NewsResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Body          string     `json:"body,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ViewsCount    int        `json:"views_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewNewsResponse(m *model.NewsModel, withBody bool) NewsResponse {
	resp := NewsResponse{
		ID:            m.NewsID,
		Title:         m.NewsTitle,
		Slug:          m.NewsSlug,
		Excerpt:       m.NewsExcerpt,
		CoverImageURL: m.NewsCoverImageURL,
		Tags:          m.NewsTags,
		Status:        string(m.NewsStatus),
		PublishedAt:   m.NewsPublishedAt,
		ViewsCount:    m.NewsViewsCount,
		CreatedAt:     m.NewsCreatedAt,
		UpdatedAt:     m.NewsUpdatedAt,
	}
	if withBody {
		resp.Body = m.NewsBody
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}
