package handlers

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/internal/api/presenters"
	"MediTrack-Backend/pkg/mealtime"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealTimeHandler interface {
		GetMealTimes(c *fiber.Ctx) error
		UpdateMealTimes(c *fiber.Ctx) error
	}

	mealTimeHandler struct {
		mealTimeService mealtime.MealTimeService
		validator       *validator.Validate
	}
)

func NewMealTimeHandler(mealTimeService mealtime.MealTimeService, validator *validator.Validate) MealTimeHandler {
	return &mealTimeHandler{
		mealTimeService: mealTimeService,
		validator:       validator,
	}
}

func (h *mealTimeHandler) GetMealTimes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealTimeService.GetMealTimes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealTimes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealTimes)
}

func (h *mealTimeHandler) UpdateMealTimes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateMealTimesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealTimes, err)
	}

	res, err := h.mealTimeService.UpdateMealTimes(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealTimes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealTimes)
}
