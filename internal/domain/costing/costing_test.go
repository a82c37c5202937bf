package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marzkaterina/Logio-app/internal/domain"
	"github.com/marzkaterina/Logio-app/internal/domain/costing"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testComponents() []entity.Component {
	return []entity.Component{
		{ID: "C1", AcquisitionPrice: dec("10")},
		{ID: "C2", AcquisitionPrice: dec("5")},
	}
}

// Product P1 needs 2×C1 (price 10) and 3×C2 (price 5), so its manufacturing
// cost must come out as 2*10 + 3*5 = 35.
func TestPriceProducts_SumsBOMLines(t *testing.T) {
	products := []entity.Product{{ID: "P1", RetailPrice: dec("100")}}
	bom := []entity.BOMLine{
		{ProductID: "P1", ComponentID: "C1", Quantity: dec("2")},
		{ProductID: "P1", ComponentID: "C2", Quantity: dec("3")},
	}
	idx := costing.NewPriceIndex(testComponents())

	priced, err := costing.PriceProducts(products, bom, idx)
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.True(t, dec("35").Equal(priced[0].ManufacturingCost),
		"expected 35, got %s", priced[0].ManufacturingCost)
	assert.True(t, dec("100").Equal(priced[0].RetailPrice), "retail price must carry over")
}

func TestPriceProducts_EmptyBOMCostsZero(t *testing.T) {
	products := []entity.Product{{ID: "P9", RetailPrice: dec("50")}}
	idx := costing.NewPriceIndex(testComponents())

	priced, err := costing.PriceProducts(products, nil, idx)
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.True(t, priced[0].ManufacturingCost.IsZero(),
		"a product without BOM lines must cost 0")
}

// The sum must not depend on the order of the BOM lines.
func TestPriceProducts_OrderIndependent(t *testing.T) {
	products := []entity.Product{{ID: "P1"}}
	forward := []entity.BOMLine{
		{ProductID: "P1", ComponentID: "C1", Quantity: dec("2")},
		{ProductID: "P1", ComponentID: "C2", Quantity: dec("3")},
	}
	reversed := []entity.BOMLine{forward[1], forward[0]}
	idx := costing.NewPriceIndex(testComponents())

	a, err := costing.PriceProducts(products, forward, idx)
	require.NoError(t, err)
	b, err := costing.PriceProducts(products, reversed, idx)
	require.NoError(t, err)
	assert.True(t, a[0].ManufacturingCost.Equal(b[0].ManufacturingCost))
}

func TestPriceProducts_DoesNotMutateInput(t *testing.T) {
	products := []entity.Product{{ID: "P1"}}
	bom := []entity.BOMLine{{ProductID: "P1", ComponentID: "C1", Quantity: dec("2")}}
	idx := costing.NewPriceIndex(testComponents())

	_, err := costing.PriceProducts(products, bom, idx)
	require.NoError(t, err)
	assert.True(t, products[0].ManufacturingCost.IsZero(),
		"the input product table must stay untouched")
}

// A BOM line pointing at an unknown component must abort the run, not
// contribute 0 to the product's cost.
func TestPriceProducts_MissingComponentAborts(t *testing.T) {
	products := []entity.Product{{ID: "P1"}}
	bom := []entity.BOMLine{{ProductID: "P1", ComponentID: "C99", Quantity: dec("1")}}
	idx := costing.NewPriceIndex(testComponents())

	priced, err := costing.PriceProducts(products, bom, idx)
	require.Error(t, err)
	assert.Nil(t, priced, "no partial result on error")
	assert.ErrorIs(t, err, domain.ErrMissingReference)
	assert.Contains(t, err.Error(), "C99", "the error must name the missing key")
}

func pricedP1() []entity.Product {
	return []entity.Product{{ID: "P1", RetailPrice: dec("100"), ManufacturingCost: dec("35")}}
}

// Event of 4 units of P1 (cost 35) on "01/02/2018": day-first parsing gives
// 1 February 2018 and the event cost is 4×35 = 140.
func TestCostEvents_CostAndDayFirstDate(t *testing.T) {
	records := []entity.ProductionRecord{
		{DateText: "01/02/2018", ProductID: "P1", PlantID: "ZP10", Quantity: dec("4")},
	}

	events, err := costing.CostEvents(pricedP1(), records)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC), events[0].Date)
	assert.True(t, dec("140").Equal(events[0].ManufacturingCost),
		"expected 140, got %s", events[0].ManufacturingCost)
	assert.Equal(t, "ZP10", events[0].PlantID)
}

// Rows are not aggregated: two events of the same product on the same day
// stay two rows, in input order.
func TestCostEvents_NoAggregation(t *testing.T) {
	records := []entity.ProductionRecord{
		{DateText: "05/03/2018", ProductID: "P1", PlantID: "ZP10", Quantity: dec("2")},
		{DateText: "05/03/2018", ProductID: "P1", PlantID: "ZP20", Quantity: dec("1")},
	}

	events, err := costing.CostEvents(pricedP1(), records)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ZP10", events[0].PlantID)
	assert.Equal(t, "ZP20", events[1].PlantID)
	assert.True(t, dec("70").Equal(events[0].ManufacturingCost))
	assert.True(t, dec("35").Equal(events[1].ManufacturingCost))
}

func TestCostEvents_Deterministic(t *testing.T) {
	records := []entity.ProductionRecord{
		{DateText: "01/02/2018", ProductID: "P1", PlantID: "ZP10", Quantity: dec("4")},
	}

	a, err := costing.CostEvents(pricedP1(), records)
	require.NoError(t, err)
	b, err := costing.CostEvents(pricedP1(), records)
	require.NoError(t, err)
	assert.Equal(t, a, b, "re-running costing must yield identical output")
}

func TestCostEvents_UnknownProductAborts(t *testing.T) {
	records := []entity.ProductionRecord{
		{DateText: "01/02/2018", ProductID: "P404", PlantID: "ZP10", Quantity: dec("1")},
	}

	events, err := costing.CostEvents(pricedP1(), records)
	require.Error(t, err)
	assert.Nil(t, events)
	assert.ErrorIs(t, err, domain.ErrMissingReference)
	assert.Contains(t, err.Error(), "P404")
}

func TestCostEvents_MalformedDateAborts(t *testing.T) {
	records := []entity.ProductionRecord{
		{DateText: "2018-02-31", ProductID: "P1", PlantID: "ZP10", Quantity: dec("1")},
	}

	events, err := costing.CostEvents(pricedP1(), records)
	require.Error(t, err)
	assert.Nil(t, events)
	assert.ErrorIs(t, err, domain.ErrMalformedDate)
	assert.Contains(t, err.Error(), "2018-02-31", "the error must report the offending value")
}

// "05/03/2018" is 5 March, not 3 May.
func TestParseDayFirstDate(t *testing.T) {
	d, ok := domain.ParseDayFirstDate("05/03/2018")
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, time.March, 5, 0, 0, 0, 0, time.UTC), d)

	d, ok = domain.ParseDayFirstDate("5/3/2018")
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, time.March, 5, 0, 0, 0, 0, time.UTC), d)

	_, ok = domain.ParseDayFirstDate("not a date")
	assert.False(t, ok)
}

func TestPriceIndex_MissIsExplicit(t *testing.T) {
	idx := costing.NewPriceIndex(testComponents())

	p, ok := idx.Price("C1")
	require.True(t, ok)
	assert.True(t, dec("10").Equal(p))

	_, ok = idx.Price("C99")
	assert.False(t, ok, "an unknown component must be a miss, not a default price")
}
