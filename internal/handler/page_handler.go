package handler

import (
	"io/fs"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the embedded game pages
type PageHandler struct {
	pages fs.FS
}

// NewPageHandler creates a PageHandler over the given page files
func NewPageHandler(pages fs.FS) *PageHandler {
	return &PageHandler{pages: pages}
}

// Page returns a handler that writes the named HTML page.
func (h *PageHandler) Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := fs.ReadFile(h.pages, name)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Page not found")
		}
		c.Type("html", "utf-8")
		return c.Send(content)
	}
}
