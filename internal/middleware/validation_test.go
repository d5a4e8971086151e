package middleware_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"kidsedu/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateItemID(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/items/:itemId", vm.ValidateItemID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.ItemIDLocal).(string))
	})

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"ulid", "01HGZ8VNRYXS8QKNJV5GRWPWDQ", fiber.StatusOK},
		{"uuid", "3f2504e0-4f89-11d3-9a0c-0305e82c3301", fiber.StatusOK},
		{"bad characters", "abc!def", fiber.StatusBadRequest},
		{"too long", strings.Repeat("a", 65), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("POST", "/items/"+tt.id, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
