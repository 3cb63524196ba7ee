package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/news/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type NewsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db, Validator: validator.New()}
}

var newsSlugOpts = helper.SlugOptions{
	Table:            "news",
	SlugColumn:       "news_slug",
	SoftDeleteColumn: "news_deleted_at",
	MaxLen:           220,
	DefaultBase:      "artikel",
}

func parsePublishedAt(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, errors.New("published_at must be RFC3339")
	}
	return &t, nil
}

/* =========================================================
   PUBLIC
   ========================================================= */

// PublicList only returns articles that are published and past their
// publication time.
func (ctl *NewsController) PublicList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)
	now := time.Now()

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{}).
		Where("news_status = ?", model.NewsStatusPublished).
		Where("news_published_at IS NOT NULL AND news_published_at <= ?", now)

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(news_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.NewsModel
	if err := q.Order("news_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewNewsResponse(&items[i], false))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

// PublicDetail looks up by slug and bumps the view counter.
func (ctl *NewsController) PublicDetail(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	now := time.Now()

	var item model.NewsModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("news_slug = ?", slug).
		Where("news_status = ?", model.NewsStatusPublished).
		Where("news_published_at IS NOT NULL AND news_published_at <= ?", now).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// fire-and-forget increment; a lost view is acceptable
	ctl.DB.Model(&model.NewsModel{}).
		Where("news_id = ?", item.NewsID).
		UpdateColumn("news_views_count", gorm.Expr("news_views_count + 1"))
	item.NewsViewsCount++

	return helper.JsonOK(c, "", dto.NewNewsResponse(&item, true))
}

/* =========================================================
   ADMIN
   ========================================================= */

func (ctl *NewsController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.NewsModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("news_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.NewsModel
	if err := q.Order("news_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewNewsResponse(&items[i], false))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	publishedAt, err := parsePublishedAt(req.PublishedAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctl.DB, newsSlugOpts, req.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	status := model.NewsStatusDraft
	if req.Status != "" {
		status = model.NewsStatus(req.Status)
	}
	if status == model.NewsStatusPublished && publishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}

	var authorID *uuid.UUID
	if id, err := helper.GetUserIDFromCtx(c); err == nil {
		authorID = &id
	}

	item := model.NewsModel{
		NewsTitle:         req.Title,
		NewsSlug:          slug,
		NewsExcerpt:       req.Excerpt,
		NewsBody:          req.Body,
		NewsCoverImageURL: req.CoverImageURL,
		NewsTags:          req.Tags,
		NewsStatus:        status,
		NewsPublishedAt:   publishedAt,
		NewsAuthorID:      authorID,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "article created", dto.NewNewsResponse(&item, true))
}

func (ctl *NewsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var item model.NewsModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&item, "news_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Title != nil && *req.Title != item.NewsTitle {
		slug, err := helper.GenerateUniqueSlug(ctl.DB, newsSlugOpts, *req.Title)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		item.NewsTitle = *req.Title
		item.NewsSlug = slug
	}
	if req.Excerpt != nil {
		item.NewsExcerpt = *req.Excerpt
	}
	if req.Body != nil {
		item.NewsBody = *req.Body
	}
	if req.CoverImageURL != nil {
		item.NewsCoverImageURL = req.CoverImageURL
	}
	if req.Tags != nil {
		item.NewsTags = *req.Tags
	}
	if req.PublishedAt != nil {
		publishedAt, err := parsePublishedAt(req.PublishedAt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		item.NewsPublishedAt = publishedAt
	}
	if req.Status != nil {
		item.NewsStatus = model.NewsStatus(*req.Status)
		if item.NewsStatus == model.NewsStatusPublished && item.NewsPublishedAt == nil {
			now := time.Now()
			item.NewsPublishedAt = &now
		}
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "article updated", dto.NewNewsResponse(&item, true))
}

func (ctl *NewsController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid article id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.NewsModel{}, "news_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "article not found")
	}

	return helper.JsonDeleted(c, "article deleted", fiber.Map{"news_id": id})
}
