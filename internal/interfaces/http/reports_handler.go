package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/marzkaterina/Logio-app/internal/application/dto"
	"github.com/marzkaterina/Logio-app/internal/application/reporting"
)

// ReportsHandler serves the filterable dashboard reports. All filtering runs
// against the immutable snapshot; an empty result is a 200 with empty rows,
// never an error.
type ReportsHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *reporting.ReportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// parseDateRange validates the required from/to query params (ISO dates,
// inclusive range).
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, *dto.ErrorResponse) {
	fromText := c.Query("from")
	toText := c.Query("to")
	if fromText == "" || toText == "" {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{
			Code: "VALIDATION", Message: "from and to query params are required (2006-01-02)",
		}
	}
	from, err := time.Parse(dto.DateLayout, fromText)
	if err != nil {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{
			Code: "VALIDATION", Message: "from must be an ISO date (2006-01-02)",
		}
	}
	to, err := time.Parse(dto.DateLayout, toText)
	if err != nil {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{
			Code: "VALIDATION", Message: "to must be an ISO date (2006-01-02)",
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, &dto.ErrorResponse{
			Code: "VALIDATION", Message: "to must not be before from",
		}
	}
	return from, to, nil
}

// Production returns the costed production events inside the inclusive
// [from, to] range, optionally narrowed to one plant, plus the
// quantity-by-product series for the bar chart.
func (h *ReportsHandler) Production(c *fiber.Ctx) error {
	from, to, verr := parseDateRange(c)
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	plant := c.Query("plant")
	return c.JSON(h.uc.ProductionReport(from, to, plant))
}

// Transport returns the distance-enriched movements inside the range,
// optionally narrowed to one destination plant. cost_per_km is the
// user-supplied rate for the transport cost estimate; without it (or for
// movements with no defined distance) the estimate stays null.
func (h *ReportsHandler) Transport(c *fiber.Ctx) error {
	from, to, verr := parseDateRange(c)
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	plant := c.Query("plant")

	var costPerKm *decimal.Decimal
	if raw := c.Query("cost_per_km"); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil || rate.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "cost_per_km must be a non-negative number",
			})
		}
		costPerKm = &rate
	}

	return c.JSON(h.uc.TransportReport(from, to, plant, costPerKm))
}
