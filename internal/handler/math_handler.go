package handler

import (
	"kidsedu/internal/domain"
	"kidsedu/internal/dto"
	"kidsedu/internal/logger"
	"kidsedu/internal/service"
	"kidsedu/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MathHandler handles the arithmetic game HTTP requests
type MathHandler struct {
	service   service.MathService
	validator *validation.Validator
}

// NewMathHandler creates a new MathHandler instance
func NewMathHandler(service service.MathService) *MathHandler {
	return &MathHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Generate godoc
// @Summary Generate a math game
// @Description Returns ten arithmetic questions with four options each. max_number is clamped to [1, 100].
// @Tags math
// @Accept json
// @Produce json
// @Param request body dto.MathGenerateRequest true "Game settings"
// @Success 200 {object} dto.MathGenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /math/generate [post]
func (h *MathHandler) Generate(c *fiber.Ctx) error {
	var req dto.MathGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateMathGenerateRequest(req.MaxNumber, req.Operations); len(errs) > 0 {
		return errs
	}

	questions := h.service.GenerateQuestions(*req.MaxNumber, domain.OperationMode(req.Operations))
	logger.Get().Debug("Math game generated",
		zap.Int("max_number", *req.MaxNumber),
		zap.String("operations", req.Operations),
	)

	return c.JSON(dto.MathGenerateResponse{Questions: questions})
}

// Check godoc
// @Summary Score a math game
// @Description Compares answers with the correct answers position by position
// @Tags math
// @Accept json
// @Produce json
// @Param request body dto.MathCheckRequest true "Submitted answers"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /math/check [post]
func (h *MathHandler) Check(c *fiber.Ctx) error {
	var req dto.MathCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateAnswerLists(req.Answers != nil, req.CorrectAnswers != nil,
		len(req.Answers), len(req.CorrectAnswers)); len(errs) > 0 {
		return errs
	}

	result := h.service.CheckAnswers(req.Answers, req.CorrectAnswers)
	return c.JSON(dto.NewScoreResponse(result))
}
