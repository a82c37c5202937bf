// Package transport holds the fixed inter-plant distance table and the
// movement enrichment step. The kilometers are domain constants for the
// three-plant network, not computed from coordinates.
package transport

import (
	"github.com/marzkaterina/Logio-app/internal/domain"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// plantPair is an unordered pair of plant identifiers, canonicalized so that
// A always sorts before B. Lookup is therefore symmetric by construction.
type plantPair struct {
	A, B string
}

func newPlantPair(x, y string) plantPair {
	if x > y {
		x, y = y, x
	}
	return plantPair{A: x, B: y}
}

// distancesKm: Plzeň (ZP10) – Přerov (ZP20) 381 km,
// Přerov (ZP20) – Ostrava (ZP30) 83 km, Plzeň (ZP10) – Ostrava (ZP30) 463 km.
var distancesKm = map[plantPair]int{
	newPlantPair(entity.PlantPlzen, entity.PlantPrerov):   381,
	newPlantPair(entity.PlantPrerov, entity.PlantOstrava): 83,
	newPlantPair(entity.PlantPlzen, entity.PlantOstrava):  463,
}

// Distance returns the kilometers between two plants, in either order.
// Any pair outside the table — a plant paired with itself or an unknown
// identifier — is an explicit miss, never a zero.
func Distance(origin, destination string) (int, bool) {
	km, ok := distancesKm[newPlantPair(origin, destination)]
	return km, ok
}

// EnrichMovements parses movement dates (day-first, like the production log)
// and attaches the plant-pair distance. An undefined pair leaves DistanceKm
// nil so downstream transport-cost estimates stay absent rather than wrong;
// a bad date still aborts derivation.
func EnrichMovements(records []entity.MovementRecord) ([]entity.Movement, error) {
	movements := make([]entity.Movement, len(records))
	for i, r := range records {
		date, ok := domain.ParseDayFirstDate(r.DateText)
		if !ok {
			return nil, &domain.MalformedDateError{Table: "pohyby", Row: i + 1, Value: r.DateText}
		}
		m := entity.Movement{
			OriginPlantID:      r.OriginPlantID,
			DestinationPlantID: r.DestinationPlantID,
			Date:               date,
			WeightKg:           r.WeightKg,
		}
		if km, ok := Distance(r.OriginPlantID, r.DestinationPlantID); ok {
			m.DistanceKm = &km
		}
		movements[i] = m
	}
	return movements, nil
}
