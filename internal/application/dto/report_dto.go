package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRowDTO fila del reporte de ventas.
type SalesReportRowDTO struct {
	SaleID       string    `json:"saleId"`
	InvoiceNo    string    `json:"invoiceNo"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customerName,omitempty"`
	GrandTotal   int64     `json:"grandTotal"`
	AmountPaid   int64     `json:"amountPaid"`
	Status       string    `json:"status"`
}

// SalesTotalsDTO agregados del período.
type SalesTotalsDTO struct {
	Count       int64 `json:"count"`
	Revenue     int64 `json:"revenue"`
	Collected   int64 `json:"collected"`
	Outstanding int64 `json:"outstanding"`
}

// SalesReportResponse reporte de ventas del período.
type SalesReportResponse struct {
	From   string              `json:"from"`
	To     string              `json:"to"`
	Rows   []SalesReportRowDTO `json:"rows"`
	Totals SalesTotalsDTO      `json:"totals"`
}

// StockInRowDTO fila del reporte de entradas.
type StockInRowDTO struct {
	MovementID  string    `json:"movementId"`
	Date        time.Time `json:"date"`
	ProductCode string    `json:"productCode"`
	ProductName string    `json:"productName"`
	Qty         int64     `json:"qty"`
	UnitCost    int64     `json:"unitCost"`
	Total       int64     `json:"total"`
}

// StockInReportResponse reporte de entradas del período.
type StockInReportResponse struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Rows       []StockInRowDTO `json:"rows"`
	TotalValue int64           `json:"totalValue"`
}

// TotalSalesResponse solo agregados (sin filas).
type TotalSalesResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Totals SalesTotalsDTO `json:"totals"`
}

// ProfitReportResponse utilidad bruta del período.
type ProfitReportResponse struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	Revenue       decimal.Decimal `json:"revenue"`
	COGS          decimal.Decimal `json:"cogs"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}
