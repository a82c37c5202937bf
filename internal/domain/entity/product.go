package entity

import "github.com/shopspring/decimal"

// Product is a finished good from produkty.csv.
// ManufacturingCost starts at 0 and is assigned exactly once during
// derivation from the bill of materials and the component prices.
type Product struct {
	ID                string
	RetailPrice       decimal.Decimal
	ManufacturingCost decimal.Decimal
}

// BOMLine is one row of the production matrix (matice_vyroby.txt): product P
// needs Quantity units of component C. A product appears once per component
// it uses.
type BOMLine struct {
	ProductID   string
	ComponentID string
	Quantity    decimal.Decimal
}
