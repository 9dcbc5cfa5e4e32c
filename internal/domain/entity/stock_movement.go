package entity

import "time"

// Tipos de movimiento del ledger de inventario.
const (
	MovementTypeIn  = "IN"  // entrada (compra, ajuste inicial)
	MovementTypeOut = "OUT" // salida (venta)
)

// StockMovement representa una línea del ledger append-only.
// Qty siempre es positiva; el tipo indica el signo.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Qty       int64
	UnitCost  int64  // solo IN; 0 = no informado
	Reference string // nro de factura, nota de entrada, etc.
	CreatedBy string // UserID
	CreatedAt time.Time
}
