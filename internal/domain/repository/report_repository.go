package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRow fila del reporte de ventas. La produce la DB; el use case
// la convierte en DTO.
type SalesReportRow struct {
	SaleID       string
	InvoiceNo    string
	Date         time.Time
	CustomerName string // vacío en ventas de mostrador
	GrandTotal   int64
	AmountPaid   int64
	Status       string
}

// StockInReportRow fila del reporte de entradas de inventario.
type StockInReportRow struct {
	MovementID  string
	Date        time.Time
	ProductCode string
	ProductName string
	Qty         int64
	UnitCost    int64
	Total       int64 // Qty * UnitCost
}

// SalesTotals agregados del período.
type SalesTotals struct {
	Count       int64
	Revenue     int64 // suma de grand_total
	Collected   int64 // suma de amount_paid
	Outstanding int64 // Revenue - Collected
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetSalesReport devuelve las ventas del rango, opcionalmente filtradas por estado.
	GetSalesReport(ctx context.Context, from, to time.Time, status string) ([]SalesReportRow, error)

	// GetSalesTotals devuelve los agregados del rango con COALESCE a cero.
	GetSalesTotals(ctx context.Context, from, to time.Time) (SalesTotals, error)

	// GetStockInReport devuelve las entradas IN del rango con su valorización.
	GetStockInReport(ctx context.Context, from, to time.Time) ([]StockInReportRow, error)

	// GetProfit devuelve ingresos y costo de lo vendido en el rango.
	// El margen se calcula en el use case con precisión decimal.
	GetProfit(ctx context.Context, from, to time.Time) (revenue, cogs decimal.Decimal, err error)
}
