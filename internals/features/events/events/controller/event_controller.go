package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/dto"
	model "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/events/model"
	regmodel "github.com/sappico-be/tc-zutendaal-backend/internals/features/events/registrations/model"
	helper "github.com/sappico-be/tc-zutendaal-backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validator: validator.New()}
}

var eventSlugOpts = helper.SlugOptions{
	Table:            "events",
	SlugColumn:       "event_slug",
	SoftDeleteColumn: "event_deleted_at",
	MaxLen:           220,
	DefaultBase:      "evenement",
}

func (ctl *EventController) confirmedCount(eventID uuid.UUID) (int64, error) {
	var cnt int64
	err := ctl.DB.Model(&regmodel.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", eventID).
		Where("event_registration_status = ?", regmodel.EventRegistrationStatusConfirmed).
		Count(&cnt).Error
	return cnt, err
}

func parseDateField(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

/* =========================================================
   PUBLIC
   ========================================================= */

func (ctl *EventController) PublicList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EventModel{}).
		Where("event_status = ?", model.EventStatusPublished)

	if upcoming := c.Query("upcoming"); upcoming == "1" || upcoming == "true" {
		q = q.Where("event_end_date >= ?", helper.StartOfDay(time.Now()))
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("event_type = ?", typ)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []model.EventModel
	if err := q.Order("event_start_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		cnt, err := ctl.confirmedCount(events[i].EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.NewEventResponse(&events[i], cnt, now))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *EventController) PublicDetail(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var event model.EventModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("event_slug = ?", slug).
		Where("event_status IN ?", []model.EventStatus{
			model.EventStatusPublished, model.EventStatusCompleted,
		}).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cnt, err := ctl.confirmedCount(event.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.NewEventResponse(&event, cnt, time.Now()))
}

/* =========================================================
   ADMIN
   ========================================================= */

func (ctl *EventController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EventModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("event_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var events []model.EventModel
	if err := q.Order("event_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		cnt, err := ctl.confirmedCount(events[i].EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.NewEventResponse(&events[i], cnt, now))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", out, &p)
}

func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	startDate, err := parseDateField(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	endDate, err := parseDateField(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
	}
	if endDate.Before(startDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "end_date must not be before start_date")
	}

	var startTime *time.Time
	if req.StartTime != nil && *req.StartTime != "" {
		t, err := helper.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_time")
		}
		startTime = &t
	}

	var deadline *time.Time
	if req.RegistrationDeadline != nil && *req.RegistrationDeadline != "" {
		t, err := time.Parse(time.RFC3339, *req.RegistrationDeadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "registration_deadline must be RFC3339")
		}
		deadline = &t
	}

	slug, err := helper.GenerateUniqueSlug(ctl.DB, eventSlugOpts, req.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	status := model.EventStatusDraft
	if req.Status != "" {
		status = model.EventStatus(req.Status)
	}
	typ := req.Type
	if typ == "" {
		typ = "general"
	}

	event := model.EventModel{
		EventTitle:                req.Title,
		EventSlug:                 slug,
		EventDescription:          req.Description,
		EventType:                 typ,
		EventLocation:             req.Location,
		EventStartDate:            startDate,
		EventEndDate:              endDate,
		EventStartTime:            startTime,
		EventRegistrationDeadline: deadline,
		EventMinParticipants:      req.MinParticipants,
		EventMaxParticipants:      req.MaxParticipants,
		EventPriceMember:          req.PriceMember,
		EventPriceNonMember:       req.PriceNonMember,
		EventMembersOnly:          req.MembersOnly,
		EventStatus:               status,
		EventSettings:             req.Settings,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "event created", dto.NewEventResponse(&event, 0, time.Now()))
}

func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.BuildFieldErrors(err))
	}

	var event model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Title != nil && *req.Title != event.EventTitle {
		slug, err := helper.GenerateUniqueSlug(ctl.DB, eventSlugOpts, *req.Title)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		event.EventTitle = *req.Title
		event.EventSlug = slug
	}
	if req.Description != nil {
		event.EventDescription = *req.Description
	}
	if req.Type != nil {
		event.EventType = *req.Type
	}
	if req.Location != nil {
		event.EventLocation = req.Location
	}
	if req.StartDate != nil {
		d, err := parseDateField(*req.StartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		event.EventStartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDateField(*req.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid end_date")
		}
		event.EventEndDate = d
	}
	if event.EventEndDate.Before(event.EventStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "end_date must not be before start_date")
	}
	if req.StartTime != nil {
		if *req.StartTime == "" {
			event.EventStartTime = nil
		} else {
			t, err := helper.ParseTimeOfDay(*req.StartTime)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid start_time")
			}
			event.EventStartTime = &t
		}
	}
	if req.RegistrationDeadline != nil {
		if *req.RegistrationDeadline == "" {
			event.EventRegistrationDeadline = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.RegistrationDeadline)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "registration_deadline must be RFC3339")
			}
			event.EventRegistrationDeadline = &t
		}
	}
	if req.MinParticipants != nil {
		event.EventMinParticipants = req.MinParticipants
	}
	if req.MaxParticipants != nil {
		event.EventMaxParticipants = req.MaxParticipants
	}
	if req.PriceMember != nil {
		event.EventPriceMember = *req.PriceMember
	}
	if req.PriceNonMember != nil {
		event.EventPriceNonMember = *req.PriceNonMember
	}
	if req.MembersOnly != nil {
		event.EventMembersOnly = *req.MembersOnly
	}
	if req.Settings != nil {
		event.EventSettings = *req.Settings
	}
	if req.Status != nil {
		event.EventStatus = model.EventStatus(*req.Status)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cnt, _ := ctl.confirmedCount(event.EventID)
	return helper.JsonUpdated(c, "event updated", dto.NewEventResponse(&event, cnt, time.Now()))
}

func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var regCount int64
	if err := ctl.DB.Model(&regmodel.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", id).
		Count(&regCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if regCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "event has registrations and cannot be deleted")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.EventModel{}, "event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "event not found")
	}

	return helper.JsonDeleted(c, "event deleted", fiber.Map{"event_id": id})
}
