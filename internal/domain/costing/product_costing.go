package costing

import (
	"github.com/shopspring/decimal"

	"github.com/marzkaterina/Logio-app/internal/domain"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// PriceProducts computes the manufacturing cost of every product in the
// product table: the sum over its bill-of-materials lines of
// quantity × component unit price. Products with no BOM lines cost 0.
//
// Returns a new slice in the same order as products; the input is not
// touched. A BOM line whose component is absent from the index aborts the
// whole run with a missing-reference error — never a silent 0 contribution.
func PriceProducts(products []entity.Product, bom []entity.BOMLine, idx PriceIndex) ([]entity.Product, error) {
	// Group BOM lines once instead of rescanning the table per product.
	linesByProduct := make(map[string][]entity.BOMLine, len(products))
	for _, line := range bom {
		linesByProduct[line.ProductID] = append(linesByProduct[line.ProductID], line)
	}

	priced := make([]entity.Product, len(products))
	for i, p := range products {
		cost := decimal.Zero
		for _, line := range linesByProduct[p.ID] {
			price, ok := idx.Price(line.ComponentID)
			if !ok {
				return nil, &domain.MissingReferenceError{
					Table: "matice_vyroby",
					Field: "ID_komponenty",
					Key:   line.ComponentID,
				}
			}
			cost = cost.Add(line.Quantity.Mul(price))
		}
		p.ManufacturingCost = cost
		priced[i] = p
	}
	return priced, nil
}
