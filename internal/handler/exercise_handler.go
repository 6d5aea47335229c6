package handler

import (
	"mentorloop/internal/dto"
	"mentorloop/internal/logger"
	"mentorloop/internal/service"
	"mentorloop/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExerciseHandler handles exercise authoring HTTP requests
type ExerciseHandler struct {
	service   service.ExerciseService
	validator *validation.Validator
}

// NewExerciseHandler creates a new ExerciseHandler instance
func NewExerciseHandler(service service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateExercise godoc
// @Summary Create an exercise
// @Description Creates a new exercise with a question and correct answer
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExerciseRequest true "Exercise"
// @Success 201 {object} dto.ExerciseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateExerciseRequest(req.Title, req.Question, req.CorrectAnswer); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateExercise(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetExercise godoc
// @Summary Get an exercise
// @Description Returns one exercise including its correct answer
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.ExerciseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetExercise(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListExercises godoc
// @Summary List exercises
// @Description Returns all exercises without correct answers
// @Tags exercises
// @Produce json
// @Success 200 {array} dto.ExerciseSummary
// @Failure 500 {object} middleware.ErrorResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	summaries, err := h.service.ListExercises(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summaries)
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param request body dto.UpdateExerciseRequest true "Exercise"
// @Success 200 {object} dto.ExerciseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	var req dto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateExerciseRequest(req.Title, req.Question, req.CorrectAnswer); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateExercise(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags exercises
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	if err := h.service.DeleteExercise(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadMaterial godoc
// @Summary Attach reference material
// @Description Uploads a reference PDF and indexes it for retrieval
// @Tags exercises
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param material formData file true "Reference PDF"
// @Success 200 {object} dto.MaterialUploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exercises/{id}/material [post]
func (h *ExerciseHandler) UploadMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	fileHeader, err := c.FormFile("material")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "material file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	resp, err := h.service.AttachMaterial(c.Context(), id, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		logger.Get().Error("Failed to attach material",
			zap.Error(err),
			zap.String("exerciseID", id),
			zap.String("filename", fileHeader.Filename))
		return err
	}
	return c.JSON(resp)
}

// ReindexMaterial godoc
// @Summary Re-index reference material
// @Description Rebuilds the vector index from the stored PDF
// @Tags exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} dto.MaterialUploadResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exercises/{id}/reindex [post]
func (h *ExerciseHandler) ReindexMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateID("id", id); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.ReindexMaterial(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
