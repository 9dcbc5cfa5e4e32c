package entity

import "time"

// Estados de cobro de una venta. Siempre derivados de AmountPaid vs GrandTotal,
// nunca asignados a mano (ver billing.SettleStatus).
const (
	SaleStatusUnpaid  = "Piutang"  // nada pagado
	SaleStatusPartial = "Sebagian" // pago parcial
	SaleStatusPaid    = "Lunas"    // saldada
)

// SaleStatusOpen filtro de listado: cualquier venta con saldo pendiente
// (Piutang o Sebagian). No es un estado persistido.
const SaleStatusOpen = "open"

// Sale representa la cabecera de una venta.
type Sale struct {
	ID         string
	InvoiceNo  string // INV-YYYYMM-NNNNNN, único
	CustomerID string // vacío = venta de mostrador sin cliente
	Date       time.Time
	SubTotal   int64
	Discount   int64
	GrandTotal int64 // SubTotal - Discount
	AmountPaid int64
	Status     string
	CreatedBy  string // UserID
	CreatedAt  time.Time
	Items      []SaleItem
}

// SaleItem representa una línea de venta. ProductName y UnitPrice son
// snapshot del catálogo al momento de vender.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Qty         int64
	UnitPrice   int64
	LineTotal   int64 // Qty * UnitPrice
}
