package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRecord is a raw row of the inter-plant component transfer log
// (pohyby.csv). DateText keeps the original day-first text until derivation.
type MovementRecord struct {
	OriginPlantID      string
	DestinationPlantID string
	DateText           string
	WeightKg           decimal.Decimal
}

// Movement is a distance-enriched transfer. DistanceKm is nil when the plant
// pair is outside the fixed distance table (including a plant paired with
// itself); downstream cost estimates must stay absent then, never zero.
type Movement struct {
	OriginPlantID      string
	DestinationPlantID string
	Date               time.Time
	WeightKg           decimal.Decimal
	DistanceKm         *int
}
