package postgres

import (
	"context"
	"fmt"

	"github.com/jmrios/agropos-api/internal/domain/repository"
)

var _ repository.InvoiceSequenceRepository = (*InvoiceSequenceRepo)(nil)

// InvoiceSequenceRepo asigna consecutivos de factura por período sobre la
// tabla invoice_counters. Se construye con el pool, no con una tx: el
// consecutivo se consume aunque la venta luego falle (huecos tolerados),
// y el upsert atómico garantiza que nunca se repite.
type InvoiceSequenceRepo struct {
	q Querier
}

// NewInvoiceSequenceRepository construye el asignador de consecutivos.
func NewInvoiceSequenceRepository(q Querier) *InvoiceSequenceRepo {
	return &InvoiceSequenceRepo{q: q}
}

// Next devuelve el siguiente consecutivo del período (YYYYMM).
func (r *InvoiceSequenceRepo) Next(ctx context.Context, period string) (int64, error) {
	const query = `
		INSERT INTO invoice_counters (period, last_value)
		VALUES ($1, 1)
		ON CONFLICT (period)
		DO UPDATE SET last_value = invoice_counters.last_value + 1
		RETURNING last_value`
	var seq int64
	if err := r.q.QueryRow(ctx, query, period).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next invoice sequence: %w", err)
	}
	return seq, nil
}
