// Package costing implements the derivation core: component price lookup,
// product manufacturing costs from the bill of materials, and per-event
// production costs. All functions are pure; inputs are never mutated.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// PriceIndex answers "what is the unit acquisition price of component X?".
// There is no default price: a miss is an explicit (zero, false) result that
// callers must turn into a missing-reference error.
type PriceIndex map[string]decimal.Decimal

// NewPriceIndex builds the index from the component table. Later duplicates
// of an identifier win, matching a plain keyed load.
func NewPriceIndex(components []entity.Component) PriceIndex {
	idx := make(PriceIndex, len(components))
	for _, c := range components {
		idx[c.ID] = c.AcquisitionPrice
	}
	return idx
}

// Price returns the unit acquisition price for the component identifier.
func (idx PriceIndex) Price(componentID string) (decimal.Decimal, bool) {
	p, ok := idx[componentID]
	return p, ok
}
