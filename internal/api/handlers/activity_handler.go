package handlers

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/internal/api/presenters"
	"MediTrack-Backend/pkg/activity"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		GetActivityFeed(c *fiber.Ctx) error
		GetNotifications(c *fiber.Ctx) error
		MarkNotificationRead(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
		validator       *validator.Validate
	}
)

func NewActivityHandler(activityService activity.ActivityService, validator *validator.Validate) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
		validator:       validator,
	}
}

func (h *activityHandler) GetActivityFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	patientID := c.Query("patient_id", userID)
	eventType := c.Query("type", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	events, count, err := h.activityService.GetActivityFeed(c.Context(), patientID, userID, eventType, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivity, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"events": events,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetActivity)
}

func (h *activityHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	notifications, count, err := h.activityService.GetNotifications(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": notifications,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *activityHandler) MarkNotificationRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.activityService.MarkNotificationRead(c.Context(), notificationID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReadNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReadNotification)
}
