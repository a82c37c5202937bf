package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marzkaterina/Logio-app/internal/application/dto"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// ReportUseCase serves the dashboard queries against one immutable snapshot.
// Every method builds fresh result slices; the snapshot itself is never
// reordered or written, so concurrent requests need no locking and repeating
// a query always returns the same answer.
type ReportUseCase struct {
	snap *Snapshot
}

// NewReportUseCase builds the use case over a derived snapshot.
func NewReportUseCase(snap *Snapshot) *ReportUseCase {
	return &ReportUseCase{snap: snap}
}

// Products lists the priced product table.
func (uc *ReportUseCase) Products() []dto.ProductDTO {
	items := make([]dto.ProductDTO, len(uc.snap.Products))
	for i, p := range uc.snap.Products {
		items[i] = dto.ProductDTO{
			ID:                p.ID,
			RetailPrice:       p.RetailPrice,
			ManufacturingCost: p.ManufacturingCost,
		}
	}
	return items
}

// Plants lists the plant catalog.
func (uc *ReportUseCase) Plants() []dto.PlantDTO {
	items := make([]dto.PlantDTO, len(uc.snap.Plants))
	for i, p := range uc.snap.Plants {
		items[i] = dto.PlantDTO{ID: p.ID, Name: p.Name}
	}
	return items
}

// Suppliers lists the supplier catalog.
func (uc *ReportUseCase) Suppliers() []dto.SupplierDTO {
	items := make([]dto.SupplierDTO, len(uc.snap.Suppliers))
	for i, s := range uc.snap.Suppliers {
		items[i] = dto.SupplierDTO{ID: s.ID, Name: s.Name}
	}
	return items
}

// inRange reports whether d falls inside the inclusive [from, to] range.
func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// ProductionReport filters the costed production log to the inclusive date
// range, sorted by date ascending (input order preserved within a day).
// plant narrows the rows to one site; empty means all sites. A range that
// matches nothing is a valid empty report. The series sums quantity per
// product over the filtered rows, for the bar chart.
func (uc *ReportUseCase) ProductionReport(from, to time.Time, plant string) *dto.ProductionReportResponse {
	filtered := make([]entity.ProductionEvent, 0, len(uc.snap.Events))
	for _, e := range uc.snap.Events {
		if !inRange(e.Date, from, to) {
			continue
		}
		if plant != "" && e.PlantID != plant {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	rows := make([]dto.ProductionRowDTO, len(filtered))
	totals := make(map[string]decimal.Decimal)
	productOrder := make([]string, 0)
	for i, e := range filtered {
		rows[i] = dto.ProductionRowDTO{
			Date:              e.Date.Format(dto.DateLayout),
			ProductID:         e.ProductID,
			PlantID:           e.PlantID,
			Quantity:          e.Quantity,
			ManufacturingCost: e.ManufacturingCost,
		}
		if _, seen := totals[e.ProductID]; !seen {
			productOrder = append(productOrder, e.ProductID)
		}
		totals[e.ProductID] = totals[e.ProductID].Add(e.Quantity)
	}
	sort.Strings(productOrder)

	series := make([]dto.ProductionSeriesPointDTO, len(productOrder))
	for i, id := range productOrder {
		series[i] = dto.ProductionSeriesPointDTO{ProductID: id, Quantity: totals[id]}
	}

	resp := &dto.ProductionReportResponse{
		SnapshotID: uc.snap.ID.String(),
		From:       from.Format(dto.DateLayout),
		To:         to.Format(dto.DateLayout),
		Plant:      plant,
		Rows:       rows,
		Series:     series,
	}
	if min, max, ok := uc.eventDateBounds(); ok {
		resp.MinDate = min.Format(dto.DateLayout)
		resp.MaxDate = max.Format(dto.DateLayout)
	}
	return resp
}

// eventDateBounds returns the first and last calendar date present in the
// full production log (the date picker's allowed range).
func (uc *ReportUseCase) eventDateBounds() (time.Time, time.Time, bool) {
	if len(uc.snap.Events) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max := uc.snap.Events[0].Date, uc.snap.Events[0].Date
	for _, e := range uc.snap.Events[1:] {
		if e.Date.Before(min) {
			min = e.Date
		}
		if e.Date.After(max) {
			max = e.Date
		}
	}
	return min, max, true
}

// TransportReport filters the enriched movement log to the inclusive date
// range and, when plant is non-empty, to movements arriving at that plant.
// costPerKm is the caller-supplied rate; when nil, or when a movement has no
// defined distance, the estimated cost stays null.
func (uc *ReportUseCase) TransportReport(from, to time.Time, plant string, costPerKm *decimal.Decimal) *dto.TransportReportResponse {
	filtered := make([]entity.Movement, 0, len(uc.snap.Movements))
	for _, m := range uc.snap.Movements {
		if !inRange(m.Date, from, to) {
			continue
		}
		if plant != "" && m.DestinationPlantID != plant {
			continue
		}
		filtered = append(filtered, m)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	rows := make([]dto.TransportRowDTO, len(filtered))
	for i, m := range filtered {
		row := dto.TransportRowDTO{
			Date:               m.Date.Format(dto.DateLayout),
			OriginPlantID:      m.OriginPlantID,
			DestinationPlantID: m.DestinationPlantID,
			WeightKg:           m.WeightKg,
			DistanceKm:         m.DistanceKm,
		}
		if m.DistanceKm != nil && costPerKm != nil {
			cost := decimal.NewFromInt(int64(*m.DistanceKm)).Mul(*costPerKm)
			row.EstimatedCost = &cost
		}
		rows[i] = row
	}

	return &dto.TransportReportResponse{
		SnapshotID: uc.snap.ID.String(),
		From:       from.Format(dto.DateLayout),
		To:         to.Format(dto.DateLayout),
		Plant:      plant,
		CostPerKm:  costPerKm,
		Rows:       rows,
	}
}
