package entity

import "github.com/shopspring/decimal"

// Component is a purchasable part used to manufacture products.
// AcquisitionPrice is the unit purchase price from komponenty.csv.
type Component struct {
	ID               string
	AcquisitionPrice decimal.Decimal
}
