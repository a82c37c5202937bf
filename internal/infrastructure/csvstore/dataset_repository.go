// Package csvstore loads the static input tables from a data directory.
// Files use ';' as separator; a file whose first record parses to a single
// column is re-read tab-separated (the production matrix and the production
// log ship as TSV). Columns are resolved by header name, never by position.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/marzkaterina/Logio-app/internal/domain"
	"github.com/marzkaterina/Logio-app/internal/domain/entity"
)

// Input file names, fixed by the dataset contract.
const (
	fileComponents = "komponenty.csv"
	fileProducts   = "produkty.csv"
	fileBOM        = "matice_vyroby.txt"
	fileProduction = "vyroba.txt"
	fileMovements  = "pohyby.csv"
	filePlants     = "zavody.csv"
	fileSuppliers  = "dodavatele.csv"
)

// DatasetRepository reads the input tables from one directory.
type DatasetRepository struct {
	dir string
}

// NewDatasetRepository builds the repository over the given data directory.
func NewDatasetRepository(dir string) *DatasetRepository {
	return &DatasetRepository{dir: dir}
}

// table is a loaded file: a header-name → column-index map plus data rows.
type table struct {
	file    string
	columns map[string]int
	rows    [][]string
}

// readTable loads a file with ';' as separator, falling back to '\t' when
// the header comes back as a single column.
func (r *DatasetRepository) readTable(file string) (*table, error) {
	records, err := r.readAll(file, ';')
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) < 2 {
		records, err = r.readAll(file, '\t')
		if err != nil {
			return nil, err
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", file)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	return &table{file: file, columns: columns, rows: records[1:]}, nil
}

func (r *DatasetRepository) readAll(file string, sep rune) ([][]string, error) {
	f, err := os.Open(filepath.Join(r.dir, file))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = sep
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return records, nil
}

// column resolves a header name or fails with the file and the header.
func (t *table) column(name string) (int, error) {
	i, ok := t.columns[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w %q", t.file, domain.ErrMissingColumn, name)
	}
	return i, nil
}

// decimalField parses a numeric cell, naming file and row on failure.
func (t *table) decimalField(row int, col int, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(t.rows[row][col])
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s row %d: %w %s: %q",
			t.file, row+1, domain.ErrMalformedField, name, t.rows[row][col])
	}
	return d, nil
}

// LoadComponents reads komponenty.csv (ID_komponenty; Porizovaci_cena).
func (r *DatasetRepository) LoadComponents() ([]entity.Component, error) {
	t, err := r.readTable(fileComponents)
	if err != nil {
		return nil, err
	}
	idCol, err := t.column("ID_komponenty")
	if err != nil {
		return nil, err
	}
	priceCol, err := t.column("Porizovaci_cena")
	if err != nil {
		return nil, err
	}

	components := make([]entity.Component, len(t.rows))
	for i := range t.rows {
		price, err := t.decimalField(i, priceCol, "Porizovaci_cena")
		if err != nil {
			return nil, err
		}
		components[i] = entity.Component{ID: t.rows[i][idCol], AcquisitionPrice: price}
	}
	return components, nil
}

// LoadProducts reads produkty.csv (ID_produktu; Prodejni_cena).
func (r *DatasetRepository) LoadProducts() ([]entity.Product, error) {
	t, err := r.readTable(fileProducts)
	if err != nil {
		return nil, err
	}
	idCol, err := t.column("ID_produktu")
	if err != nil {
		return nil, err
	}
	priceCol, err := t.column("Prodejni_cena")
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, len(t.rows))
	for i := range t.rows {
		price, err := t.decimalField(i, priceCol, "Prodejni_cena")
		if err != nil {
			return nil, err
		}
		products[i] = entity.Product{ID: t.rows[i][idCol], RetailPrice: price}
	}
	return products, nil
}

// LoadBOMLines reads matice_vyroby.txt (ID_produktu, ID_komponenty, Mnozstvi).
func (r *DatasetRepository) LoadBOMLines() ([]entity.BOMLine, error) {
	t, err := r.readTable(fileBOM)
	if err != nil {
		return nil, err
	}
	productCol, err := t.column("ID_produktu")
	if err != nil {
		return nil, err
	}
	componentCol, err := t.column("ID_komponenty")
	if err != nil {
		return nil, err
	}
	qtyCol, err := t.column("Mnozstvi")
	if err != nil {
		return nil, err
	}

	lines := make([]entity.BOMLine, len(t.rows))
	for i := range t.rows {
		qty, err := t.decimalField(i, qtyCol, "Mnozstvi")
		if err != nil {
			return nil, err
		}
		lines[i] = entity.BOMLine{
			ProductID:   t.rows[i][productCol],
			ComponentID: t.rows[i][componentCol],
			Quantity:    qty,
		}
	}
	return lines, nil
}

// LoadProductionRecords reads vyroba.txt (Datum, ID_produktu, ID_zavodu,
// Mnozstvi). The date stays text; derivation parses it day-first.
func (r *DatasetRepository) LoadProductionRecords() ([]entity.ProductionRecord, error) {
	t, err := r.readTable(fileProduction)
	if err != nil {
		return nil, err
	}
	dateCol, err := t.column("Datum")
	if err != nil {
		return nil, err
	}
	productCol, err := t.column("ID_produktu")
	if err != nil {
		return nil, err
	}
	plantCol, err := t.column("ID_zavodu")
	if err != nil {
		return nil, err
	}
	qtyCol, err := t.column("Mnozstvi")
	if err != nil {
		return nil, err
	}

	records := make([]entity.ProductionRecord, len(t.rows))
	for i := range t.rows {
		qty, err := t.decimalField(i, qtyCol, "Mnozstvi")
		if err != nil {
			return nil, err
		}
		records[i] = entity.ProductionRecord{
			DateText:  t.rows[i][dateCol],
			ProductID: t.rows[i][productCol],
			PlantID:   t.rows[i][plantCol],
			Quantity:  qty,
		}
	}
	return records, nil
}

// LoadMovementRecords reads pohyby.csv (ID_zavodu_vychozi; ID_zavodu_cilove;
// Datum; Objem_v_kg).
func (r *DatasetRepository) LoadMovementRecords() ([]entity.MovementRecord, error) {
	t, err := r.readTable(fileMovements)
	if err != nil {
		return nil, err
	}
	originCol, err := t.column("ID_zavodu_vychozi")
	if err != nil {
		return nil, err
	}
	destCol, err := t.column("ID_zavodu_cilove")
	if err != nil {
		return nil, err
	}
	dateCol, err := t.column("Datum")
	if err != nil {
		return nil, err
	}
	weightCol, err := t.column("Objem_v_kg")
	if err != nil {
		return nil, err
	}

	records := make([]entity.MovementRecord, len(t.rows))
	for i := range t.rows {
		weight, err := t.decimalField(i, weightCol, "Objem_v_kg")
		if err != nil {
			return nil, err
		}
		records[i] = entity.MovementRecord{
			OriginPlantID:      t.rows[i][originCol],
			DestinationPlantID: t.rows[i][destCol],
			DateText:           t.rows[i][dateCol],
			WeightKg:           weight,
		}
	}
	return records, nil
}

// LoadPlants reads zavody.csv (ID_zavodu; Nazev).
func (r *DatasetRepository) LoadPlants() ([]entity.Plant, error) {
	t, err := r.readTable(filePlants)
	if err != nil {
		return nil, err
	}
	idCol, err := t.column("ID_zavodu")
	if err != nil {
		return nil, err
	}
	nameCol, err := t.column("Nazev")
	if err != nil {
		return nil, err
	}

	plants := make([]entity.Plant, len(t.rows))
	for i := range t.rows {
		plants[i] = entity.Plant{ID: t.rows[i][idCol], Name: t.rows[i][nameCol]}
	}
	return plants, nil
}

// LoadSuppliers reads dodavatele.csv (ID_dodavatele; Nazev).
func (r *DatasetRepository) LoadSuppliers() ([]entity.Supplier, error) {
	t, err := r.readTable(fileSuppliers)
	if err != nil {
		return nil, err
	}
	idCol, err := t.column("ID_dodavatele")
	if err != nil {
		return nil, err
	}
	nameCol, err := t.column("Nazev")
	if err != nil {
		return nil, err
	}

	suppliers := make([]entity.Supplier, len(t.rows))
	for i := range t.rows {
		suppliers[i] = entity.Supplier{ID: t.rows[i][idCol], Name: t.rows[i][nameCol]}
	}
	return suppliers, nil
}
