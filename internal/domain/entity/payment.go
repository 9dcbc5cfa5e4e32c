package entity

import "time"

// Métodos de pago aceptados en caja.
const (
	PaymentMethodCash     = "Tunai"
	PaymentMethodTransfer = "Transfer"
	PaymentMethodQRIS     = "QRIS"
)

// Payment representa un abono aplicado a una venta.
type Payment struct {
	ID        string
	SaleID    string
	Amount    int64
	Method    string
	Date      time.Time
	Note      string
	CreatedBy string // UserID
	CreatedAt time.Time
}

// ValidPaymentMethod indica si el método pertenece a los aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodQRIS:
		return true
	}
	return false
}
