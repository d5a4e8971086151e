package handler

import (
	"io"
	"net/http"

	"kidsedu/internal/domain"
	"kidsedu/internal/dto"
	"kidsedu/internal/middleware"
	"kidsedu/internal/service"
	"kidsedu/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// VocabularyHandler handles the picture vocabulary game HTTP requests
type VocabularyHandler struct {
	service   service.VocabularyService
	validator *validation.Validator
}

// NewVocabularyHandler creates a new VocabularyHandler instance
func NewVocabularyHandler(service service.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Items godoc
// @Summary List vocabulary items
// @Description Returns every uploaded image, labeled or not, newest first
// @Tags vocabulary
// @Produce json
// @Success 200 {object} dto.VocabularyItemsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /vocabulary/items [get]
func (h *VocabularyHandler) Items(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.VocabularyItem{}
	}
	return c.JSON(dto.VocabularyItemsResponse{Items: items})
}

// Upload godoc
// @Summary Upload an image
// @Description Stores an image and creates an unlabeled vocabulary item for it
// @Tags vocabulary
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} domain.VocabularyItem
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /vocabulary/upload [post]
func (h *VocabularyHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidInputError("Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInvalidInputError("Could not read uploaded file")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" || contentType == fiber.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	if errs := h.validator.ValidateImageUpload(len(data), contentType); len(errs) > 0 {
		return errs
	}

	item, err := h.service.UploadImage(c.UserContext(), dto.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// UpdateLabel godoc
// @Summary Label an image
// @Description Assigns the vocabulary word shown by an image
// @Tags vocabulary
// @Accept x-www-form-urlencoded
// @Produce json
// @Param itemId path string true "Vocabulary item ID"
// @Param vocabulary formData string true "Word for the image"
// @Success 200 {object} dto.UpdateLabelResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /vocabulary/update/{itemId} [post]
func (h *VocabularyHandler) UpdateLabel(c *fiber.Ctx) error {
	itemID, _ := c.Locals(middleware.ItemIDLocal).(string)
	if itemID == "" {
		itemID = c.Params("itemId")
	}
	label := c.FormValue("vocabulary")

	if errs := h.validator.ValidateLabel(label); len(errs) > 0 {
		return errs
	}

	item, err := h.service.UpdateLabel(c.UserContext(), itemID, label)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateLabelResponse{Success: true, Item: item})
}

// Generate godoc
// @Summary Generate a vocabulary game
// @Description Returns up to ten picture questions built from labeled items
// @Tags vocabulary
// @Produce json
// @Success 200 {object} dto.VocabularyGenerateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /vocabulary/generate [post]
func (h *VocabularyHandler) Generate(c *fiber.Ctx) error {
	questions, err := h.service.GenerateQuestions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.VocabularyGenerateResponse{Questions: questions})
}

// Check godoc
// @Summary Score a vocabulary game
// @Description Compares chosen words with the correct words position by position
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body dto.VocabularyCheckRequest true "Submitted answers"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /vocabulary/check [post]
func (h *VocabularyHandler) Check(c *fiber.Ctx) error {
	var req dto.VocabularyCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateAnswerLists(req.Answers != nil, req.CorrectAnswers != nil,
		len(req.Answers), len(req.CorrectAnswers)); len(errs) > 0 {
		return errs
	}

	result, err := h.service.CheckAnswers(req.Answers, req.CorrectAnswers)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewScoreResponse(result))
}
