// Package reporting contains the derivation use case and the read-only
// report queries the dashboard front end consumes.
package reporting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marzkaterina/Logio-app/internal/domain/costing"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
	"github.com/marzkaterina/Logio-app/internal/domain/repository"
	"github.com/marzkaterina/Logio-app/internal/domain/transport"
)

// Snapshot is the immutable result of one derivation run: priced products,
// costed production events and distance-enriched movements, plus the plant
// and supplier catalogs. It is written once at startup and only read after
// that, so any number of request handlers may query it without locking.
// Queries must copy — never reorder or mutate — the shared slices.
type Snapshot struct {
	ID        uuid.UUID
	DerivedAt time.Time

	Products  []entity.Product
	Events    []entity.ProductionEvent
	Movements []entity.Movement
	Plants    []entity.Plant
	Suppliers []entity.Supplier
}

// Derive loads every input table and runs the derivation pipeline:
// price index → product costing → production costing, and independently
// movement date parsing + distance enrichment. Any load or derivation error
// aborts the whole run; a partially derived snapshot is never returned.
func Derive(repo repository.DatasetRepository) (*Snapshot, error) {
	components, err := repo.LoadComponents()
	if err != nil {
		return nil, fmt.Errorf("load components: %w", err)
	}
	products, err := repo.LoadProducts()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	bom, err := repo.LoadBOMLines()
	if err != nil {
		return nil, fmt.Errorf("load production matrix: %w", err)
	}
	productionRecords, err := repo.LoadProductionRecords()
	if err != nil {
		return nil, fmt.Errorf("load production log: %w", err)
	}
	movementRecords, err := repo.LoadMovementRecords()
	if err != nil {
		return nil, fmt.Errorf("load movements: %w", err)
	}
	plants, err := repo.LoadPlants()
	if err != nil {
		return nil, fmt.Errorf("load plants: %w", err)
	}
	suppliers, err := repo.LoadSuppliers()
	if err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}

	idx := costing.NewPriceIndex(components)
	priced, err := costing.PriceProducts(products, bom, idx)
	if err != nil {
		return nil, fmt.Errorf("product costing: %w", err)
	}
	events, err := costing.CostEvents(priced, productionRecords)
	if err != nil {
		return nil, fmt.Errorf("production costing: %w", err)
	}
	movements, err := transport.EnrichMovements(movementRecords)
	if err != nil {
		return nil, fmt.Errorf("movement enrichment: %w", err)
	}

	return &Snapshot{
		ID:        uuid.New(),
		DerivedAt: time.Now().UTC(),
		Products:  priced,
		Events:    events,
		Movements: movements,
		Plants:    plants,
		Suppliers: suppliers,
	}, nil
}
