package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marzkaterina/Logio-app/internal/application/reporting"
)

// CatalogHandler serves the static catalogs: priced products, plants and
// suppliers.
type CatalogHandler struct {
	uc *reporting.ReportUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *reporting.ReportUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products returns the priced product table (retail price plus the derived
// manufacturing cost).
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	return c.JSON(h.uc.Products())
}

// Plants returns the plant catalog.
func (h *CatalogHandler) Plants(c *fiber.Ctx) error {
	return c.JSON(h.uc.Plants())
}

// Suppliers returns the supplier catalog.
func (h *CatalogHandler) Suppliers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suppliers())
}
