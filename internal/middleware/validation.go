package middleware

import (
	"kidsedu/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ItemIDLocal is the Locals key holding the validated :itemId path parameter.
const ItemIDLocal = "validated_item_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateItemID validates the :itemId path parameter
func (vm *ValidationMiddleware) ValidateItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("itemId")

		if errors := vm.validator.ValidateItemID(itemID); len(errors) > 0 {
			return errors
		}

		c.Locals(ItemIDLocal, itemID)
		return c.Next()
	}
}
