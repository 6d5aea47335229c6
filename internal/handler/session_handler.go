package handler

import (
	"mentorloop/internal/dto"
	"mentorloop/internal/service"
	"mentorloop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles learning session HTTP requests
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// StartSession godoc
// @Summary Start a learning session
// @Description Begins a fresh session for one exercise
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Exercise to start"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateStartSessionRequest(req.ExerciseID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartSession(c.Context(), req.ExerciseID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession godoc
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Evaluates one answer attempt and returns a structured outcome
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswerRequest(id, req.Answer); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.Context(), id, req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetSession godoc
// @Summary Reset session progress
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ResetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndSession godoc
// @Summary End a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	if err := h.service.EndSession(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
