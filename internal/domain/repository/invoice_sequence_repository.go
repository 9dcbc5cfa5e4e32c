package repository

import "context"

// InvoiceSequenceRepository asigna consecutivos de factura por período (YYYYMM).
// Next se ejecuta fuera de la transacción de la venta: si la venta falla el
// consecutivo no se devuelve (huecos tolerados), y el contador nunca retrocede,
// por lo que dos ventas jamás comparten número.
type InvoiceSequenceRepository interface {
	Next(ctx context.Context, period string) (int64, error)
}
