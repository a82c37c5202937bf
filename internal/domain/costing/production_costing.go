package costing

import (
	"github.com/marzkaterina/Logio-app/internal/domain"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// CostEvents turns raw production records into costed events: the date text
// is parsed day-first and the event cost is quantity × the product's
// manufacturing cost from the priced product table. One output row per input
// row, in input order; events are never summed together.
//
// An unparseable date or a product missing from the priced table aborts the
// run, same policy as product costing.
func CostEvents(priced []entity.Product, records []entity.ProductionRecord) ([]entity.ProductionEvent, error) {
	byID := make(map[string]entity.Product, len(priced))
	for _, p := range priced {
		byID[p.ID] = p
	}

	events := make([]entity.ProductionEvent, len(records))
	for i, r := range records {
		date, ok := domain.ParseDayFirstDate(r.DateText)
		if !ok {
			return nil, &domain.MalformedDateError{Table: "vyroba", Row: i + 1, Value: r.DateText}
		}
		product, ok := byID[r.ProductID]
		if !ok {
			return nil, &domain.MissingReferenceError{
				Table: "vyroba",
				Field: "ID_produktu",
				Key:   r.ProductID,
			}
		}
		events[i] = entity.ProductionEvent{
			Date:              date,
			ProductID:         r.ProductID,
			PlantID:           r.PlantID,
			Quantity:          r.Quantity,
			ManufacturingCost: r.Quantity.Mul(product.ManufacturingCost),
		}
	}
	return events, nil
}
