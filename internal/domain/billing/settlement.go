package billing

import (
	"fmt"
	"time"

	"github.com/jmrios/agropos-api/internal/domain/entity"
)

// SettleStatus deriva el estado de cobro de una venta (servicio de dominio).
// Es función pura de lo pagado contra el total: Piutang si no hay pago,
// Sebagian si es parcial, Lunas si cubre o excede el total.
func SettleStatus(amountPaid, grandTotal int64) string {
	switch {
	case amountPaid <= 0:
		return entity.SaleStatusUnpaid
	case amountPaid < grandTotal:
		return entity.SaleStatusPartial
	default:
		return entity.SaleStatusPaid
	}
}

// PeriodKey devuelve el período YYYYMM usado por el consecutivo de facturas.
func PeriodKey(t time.Time) string {
	return t.Format("200601")
}

// InvoiceNumber formatea el número de factura de un período y consecutivo.
func InvoiceNumber(period string, seq int64) string {
	return fmt.Sprintf("INV-%s-%06d", period, seq)
}
