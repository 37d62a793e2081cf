package handlers

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/internal/api/presenters"
	"MediTrack-Backend/pkg/caregiver"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CaregiverHandler interface {
		RequestLink(c *fiber.Ctx) error
		RespondLink(c *fiber.Ctx) error
		RevokeLink(c *fiber.Ctx) error
		GetPatients(c *fiber.Ctx) error
		GetCaregivers(c *fiber.Ctx) error
	}

	caregiverHandler struct {
		caregiverService caregiver.CaregiverService
		validator        *validator.Validate
	}
)

func NewCaregiverHandler(caregiverService caregiver.CaregiverService, validator *validator.Validate) CaregiverHandler {
	return &caregiverHandler{
		caregiverService: caregiverService,
		validator:        validator,
	}
}

func (h *caregiverHandler) RequestLink(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RequestLinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestLink, err)
	}

	res, err := h.caregiverService.RequestLink(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestLink, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestLink)
}

func (h *caregiverHandler) RespondLink(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	linkID := c.Params("id")
	req := new(domain.RespondLinkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.caregiverService.RespondLink(c.Context(), linkID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRespondLink, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRespondLink)
}

func (h *caregiverHandler) RevokeLink(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	linkID := c.Params("id")

	if err := h.caregiverService.RevokeLink(c.Context(), linkID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRevokeLink, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRevokeLink)
}

func (h *caregiverHandler) GetPatients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.caregiverService.GetPatients(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPatients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPatients)
}

func (h *caregiverHandler) GetCaregivers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.caregiverService.GetCaregivers(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCaregivers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCaregivers)
}
