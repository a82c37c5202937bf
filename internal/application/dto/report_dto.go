package dto

import "github.com/shopspring/decimal"

// DateLayout is the wire format for calendar dates (what the front-end date
// picker sends and receives).
const DateLayout = "2006-01-02"

// ProductDTO is one priced product for GET /api/products.
type ProductDTO struct {
	ID                string          `json:"id"`
	RetailPrice       decimal.Decimal `json:"retail_price"`
	ManufacturingCost decimal.Decimal `json:"manufacturing_cost"`
}

// PlantDTO is one manufacturing site for GET /api/plants.
type PlantDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupplierDTO is one component vendor for GET /api/suppliers.
type SupplierDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductionRowDTO is one costed production event (the dashboard table row).
type ProductionRowDTO struct {
	Date              string          `json:"date"` // 2006-01-02
	ProductID         string          `json:"product_id"`
	PlantID           string          `json:"plant_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	ManufacturingCost decimal.Decimal `json:"manufacturing_cost"`
}

// ProductionSeriesPointDTO is one bar of the quantity-by-product chart for
// the selected plant.
type ProductionSeriesPointDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ProductionReportResponse is the body of GET /api/reports/production.
// MinDate/MaxDate span the full (unfiltered) production log; the date picker
// uses them as its allowed range.
type ProductionReportResponse struct {
	SnapshotID string                     `json:"snapshot_id"`
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	Plant      string                     `json:"plant,omitempty"`
	MinDate    string                     `json:"min_date,omitempty"`
	MaxDate    string                     `json:"max_date,omitempty"`
	Rows       []ProductionRowDTO         `json:"rows"`
	Series     []ProductionSeriesPointDTO `json:"series"`
}

// TransportRowDTO is one distance-enriched movement. DistanceKm and
// EstimatedCost are null when the plant pair has no defined distance —
// an unknown estimate is sent as unknown, never as zero.
type TransportRowDTO struct {
	Date               string           `json:"date"`
	OriginPlantID      string           `json:"origin_plant_id"`
	DestinationPlantID string           `json:"destination_plant_id"`
	WeightKg           decimal.Decimal  `json:"weight_kg"`
	DistanceKm         *int             `json:"distance_km"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost"`
}

// TransportReportResponse is the body of GET /api/reports/transport.
type TransportReportResponse struct {
	SnapshotID string            `json:"snapshot_id"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Plant      string            `json:"plant,omitempty"`
	CostPerKm  *decimal.Decimal  `json:"cost_per_km,omitempty"`
	Rows       []TransportRowDTO `json:"rows"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
