package handlers

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/internal/api/presenters"
	"MediTrack-Backend/pkg/medication"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MedicationHandler interface {
		AddMedication(c *fiber.Ctx) error
		UpdateMedication(c *fiber.Ctx) error
		DeleteMedication(c *fiber.Ctx) error
		GetMedications(c *fiber.Ctx) error
		GetMedicationDetails(c *fiber.Ctx) error
		ResolveBarcode(c *fiber.Ctx) error
		RegenerateBarcode(c *fiber.Ctx) error
		UploadMedicationImage(c *fiber.Ctx) error
	}

	medicationHandler struct {
		medicationService medication.MedicationService
		validator         *validator.Validate
	}
)

func NewMedicationHandler(medicationService medication.MedicationService, validator *validator.Validate) MedicationHandler {
	return &medicationHandler{
		medicationService: medicationService,
		validator:         validator,
	}
}

func (h *medicationHandler) AddMedication(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddMedicationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMedication, err)
	}

	res, err := h.medicationService.AddMedication(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMedication, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMedication)
}

func (h *medicationHandler) UpdateMedication(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")
	req := new(domain.UpdateMedicationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMedication, err)
	}

	if err := h.medicationService.UpdateMedication(c.Context(), medicationID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMedication, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMedication)
}

func (h *medicationHandler) DeleteMedication(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")

	if err := h.medicationService.DeleteMedication(c.Context(), medicationID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMedication, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMedication)
}

func (h *medicationHandler) GetMedications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	patientID := c.Query("patient_id", userID)
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.medicationService.GetMedications(c.Context(), patientID, userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMedications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetMedications)
}

func (h *medicationHandler) GetMedicationDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")

	res, err := h.medicationService.GetMedicationByID(c.Context(), medicationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMedications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMedications)
}

func (h *medicationHandler) ResolveBarcode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	code := c.Params("code")

	res, err := h.medicationService.ResolveBarcode(c.Context(), code, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResolveBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveBarcode)
}

func (h *medicationHandler) RegenerateBarcode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")

	code, err := h.medicationService.RegenerateBarcode(c.Context(), medicationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateBarcode, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"barcode_data": code}, fiber.StatusOK, domain.MessageSuccessGenerateBarcode)
}

func (h *medicationHandler) UploadMedicationImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadMedicationImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedImage, err)
	}

	if err := h.medicationService.UploadMedicationImage(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadMedImage)
}
