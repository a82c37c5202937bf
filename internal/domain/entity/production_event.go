package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord is a raw row of the production log (vyroba.txt) as loaded
// from disk. DateText keeps the original day-first text; parsing happens
// during costing so a bad date aborts derivation with the offending row.
type ProductionRecord struct {
	DateText  string
	ProductID string
	PlantID   string
	Quantity  decimal.Decimal
}

// ProductionEvent is a costed production record: the date normalized to a
// calendar day and ManufacturingCost = Quantity × product manufacturing cost.
// Events are never aggregated; one input row yields one event.
type ProductionEvent struct {
	Date              time.Time
	ProductID         string
	PlantID           string
	Quantity          decimal.Decimal
	ManufacturingCost decimal.Decimal
}
