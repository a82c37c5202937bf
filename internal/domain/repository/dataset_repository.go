package repository

import "github.com/marzkaterina/Logio-app/internal/domain/entity"

// DatasetRepository is the load-time port for the static input tables.
// Each Load reads one table in full; all of them run exactly once at
// startup, before derivation.
type DatasetRepository interface {
	LoadComponents() ([]entity.Component, error)
	LoadProducts() ([]entity.Product, error)
	LoadBOMLines() ([]entity.BOMLine, error)
	LoadProductionRecords() ([]entity.ProductionRecord, error)
	LoadMovementRecords() ([]entity.MovementRecord, error)
	LoadPlants() ([]entity.Plant, error)
	LoadSuppliers() ([]entity.Supplier, error)
}
