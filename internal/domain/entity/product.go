package entity

import "time"

// Categorías del catálogo agropecuario.
const (
	CategoryFertilizer = "Pupuk" // fertilizantes
	CategoryMedicine   = "Obat"  // agroquímicos
)

// Unidades de venta.
const (
	UnitSack  = "Sak"
	UnitKg    = "Kg"
	UnitLiter = "Liter"
	UnitMl    = "Ml"
)

// DefaultMinStock umbral de reposición cuando no se indica otro.
const DefaultMinStock = 5

// Product representa un producto del catálogo.
// Stock es derivado del ledger de movimientos (sum IN - sum OUT) y solo
// se modifica dentro de la misma transacción que registra el movimiento.
type Product struct {
	ID        string
	Code      string // código único
	Name      string
	Category  string
	Unit      string
	CostPrice int64 // montos en rupias enteras
	SalePrice int64
	Stock     int64
	MinStock  int64
	Active    bool // false = borrado lógico
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidCategory indica si la categoría pertenece al catálogo.
func ValidCategory(c string) bool {
	return c == CategoryFertilizer || c == CategoryMedicine
}

// ValidUnit indica si la unidad pertenece al catálogo.
func ValidUnit(u string) bool {
	switch u {
	case UnitSack, UnitKg, UnitLiter, UnitMl:
		return true
	}
	return false
}
