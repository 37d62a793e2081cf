package handlers

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/internal/api/presenters"
	"MediTrack-Backend/pkg/dosing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DosingHandler interface {
		CheckDose(c *fiber.Ctx) error
		LogDose(c *fiber.Ctx) error
	}

	dosingHandler struct {
		dosingService dosing.DosingService
		validator     *validator.Validate
	}
)

func NewDosingHandler(dosingService dosing.DosingService, validator *validator.Validate) DosingHandler {
	return &dosingHandler{
		dosingService: dosingService,
		validator:     validator,
	}
}

func (h *dosingHandler) CheckDose(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")
	override := c.QueryBool("override", false)

	res, err := h.dosingService.EvaluateDosingSafety(c.Context(), medicationID, userID, override)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDoseCheck, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDoseCheck)
}

// LogDose returns 200 with the full safety result either way; a rejected
// dose is not an error, the result carries can_take=false and the reason.
func (h *dosingHandler) LogDose(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	medicationID := c.Params("id")
	req := new(domain.LogDoseRequest)

	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.dosingService.LogDose(c.Context(), medicationID, userID, req.Override)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogDose, err)
	}

	message := domain.MessageSuccessLogDose
	if !res.Result.CanTake {
		message = domain.MessageDoseRejected
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}
