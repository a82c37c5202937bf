package entity

// Known plant identifiers. The whole operation runs on exactly these three
// sites; the transport distance table is defined only over pairs of them.
const (
	PlantPlzen   = "ZP10"
	PlantPrerov  = "ZP20"
	PlantOstrava = "ZP30"
)

// Plant is a manufacturing site from zavody.csv.
type Plant struct {
	ID   string
	Name string
}

// Supplier is an external component vendor from dodavatele.csv.
type Supplier struct {
	ID   string
	Name string
}
