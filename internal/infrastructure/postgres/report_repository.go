package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmrios/agropos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para reportes. Read-only.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesReport devuelve las ventas del rango, opcionalmente filtradas por estado.
func (r *ReportRepo) GetSalesReport(ctx context.Context, from, to time.Time, status string) ([]repository.SalesReportRow, error) {
	query := `
		SELECT s.id, s.invoice_no, s.date, COALESCE(c.name, ''),
		       s.grand_total, s.amount_paid, s.status
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.date >= $1 AND s.date < $2`
	args := []any{from, to}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND s.status = $%d", len(args))
	}
	query += " ORDER BY s.date DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reports.sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.SaleID, &row.InvoiceNo, &row.Date, &row.CustomerName,
			&row.GrandTotal, &row.AmountPaid, &row.Status); err != nil {
			return nil, fmt.Errorf("reports.sales scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetSalesTotals devuelve los agregados del rango con COALESCE a cero.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (repository.SalesTotals, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(grand_total), 0),
		       COALESCE(SUM(amount_paid), 0)
		FROM sales
		WHERE date >= $1 AND date < $2`
	var t repository.SalesTotals
	err := r.q.QueryRow(ctx, query, from, to).Scan(&t.Count, &t.Revenue, &t.Collected)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("reports.totals: %w", err)
	}
	t.Outstanding = t.Revenue - t.Collected
	return t, nil
}

// GetStockInReport devuelve las entradas IN del rango con su valorización.
func (r *ReportRepo) GetStockInReport(ctx context.Context, from, to time.Time) ([]repository.StockInReportRow, error) {
	const query = `
		SELECT m.id, m.created_at, p.code, p.name, m.qty, m.unit_cost, m.qty * m.unit_cost
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.type = 'IN' AND m.created_at >= $1 AND m.created_at < $2
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.stockin: %w", err)
	}
	defer rows.Close()
	var list []repository.StockInReportRow
	for rows.Next() {
		var row repository.StockInReportRow
		if err := rows.Scan(&row.MovementID, &row.Date, &row.ProductCode, &row.ProductName,
			&row.Qty, &row.UnitCost, &row.Total); err != nil {
			return nil, fmt.Errorf("reports.stockin scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetProfit devuelve ingresos y costo de lo vendido en el rango.
// El costo usa el cost_price vigente del producto (costo de reposición).
func (r *ReportRepo) GetProfit(ctx context.Context, from, to time.Time) (revenue, cogs decimal.Decimal, err error) {
	const query = `
		SELECT COALESCE(SUM(si.line_total), 0)::numeric,
		       COALESCE(SUM(si.qty * p.cost_price), 0)::numeric
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.date >= $1 AND s.date < $2`
	err = r.q.QueryRow(ctx, query, from, to).Scan(&revenue, &cogs)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("reports.profit: %w", err)
	}
	return revenue, cogs, nil
}
