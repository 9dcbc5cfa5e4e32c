package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// defaultReportWindow ventana por defecto de los reportes.
const defaultReportWindow = 30 * 24 * time.Hour

// ReportUseCase reportes de lectura sobre ventas e inventario.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// ResolveRange interpreta from/to (YYYY-MM-DD, ambos inclusivos). Sin "to" se
// usa hoy; sin "from", los últimos 30 días. Internamente "to" es exclusivo:
// se corre al inicio del día siguiente.
func ResolveRange(fromStr, toStr string) (from, to time.Time, err error) {
	now := time.Now()
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if toStr != "" {
		to, err = time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha to %q", domain.ErrInvalidInput, toStr)
		}
	}
	to = to.AddDate(0, 0, 1) // fin de día inclusivo

	from = to.Add(-defaultReportWindow - 24*time.Hour)
	if fromStr != "" {
		from, err = time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha from %q", domain.ErrInvalidInput, fromStr)
		}
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from debe ser anterior a to", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// SalesReport ventas del período con agregados.
func (uc *ReportUseCase) SalesReport(ctx context.Context, fromStr, toStr, status string) (*dto.SalesReportResponse, error) {
	from, to, err := ResolveRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.GetSalesReport(ctx, from, to, status)
	if err != nil {
		return nil, err
	}
	totals, err := uc.repo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.SalesReportResponse{
		From: from.Format("2006-01-02"),
		To:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		Rows: make([]dto.SalesReportRowDTO, 0, len(rows)),
		Totals: dto.SalesTotalsDTO{
			Count:       totals.Count,
			Revenue:     totals.Revenue,
			Collected:   totals.Collected,
			Outstanding: totals.Outstanding,
		},
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.SalesReportRowDTO{
			SaleID:       r.SaleID,
			InvoiceNo:    r.InvoiceNo,
			Date:         r.Date,
			CustomerName: r.CustomerName,
			GrandTotal:   r.GrandTotal,
			AmountPaid:   r.AmountPaid,
			Status:       r.Status,
		})
	}
	return out, nil
}

// StockInReport entradas de inventario del período con valorización.
func (uc *ReportUseCase) StockInReport(ctx context.Context, fromStr, toStr string) (*dto.StockInReportResponse, error) {
	from, to, err := ResolveRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.GetStockInReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.StockInReportResponse{
		From: from.Format("2006-01-02"),
		To:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		Rows: make([]dto.StockInRowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.StockInRowDTO{
			MovementID:  r.MovementID,
			Date:        r.Date,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			Qty:         r.Qty,
			UnitCost:    r.UnitCost,
			Total:       r.Total,
		})
		out.TotalValue += r.Total
	}
	return out, nil
}

// TotalSales agregados de ventas del período (sin filas).
func (uc *ReportUseCase) TotalSales(ctx context.Context, fromStr, toStr string) (*dto.TotalSalesResponse, error) {
	from, to, err := ResolveRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	totals, err := uc.repo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.TotalSalesResponse{
		From: from.Format("2006-01-02"),
		To:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		Totals: dto.SalesTotalsDTO{
			Count:       totals.Count,
			Revenue:     totals.Revenue,
			Collected:   totals.Collected,
			Outstanding: totals.Outstanding,
		},
	}, nil
}

// Profit utilidad bruta del período: ingresos, costo y margen con dos decimales.
func (uc *ReportUseCase) Profit(ctx context.Context, fromStr, toStr string) (*dto.ProfitReportResponse, error) {
	from, to, err := ResolveRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	revenue, cogs, err := uc.repo.GetProfit(ctx, from, to)
	if err != nil {
		return nil, err
	}
	gross := revenue.Sub(cogs)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = gross.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return &dto.ProfitReportResponse{
		From:          from.Format("2006-01-02"),
		To:            to.AddDate(0, 0, -1).Format("2006-01-02"),
		Revenue:       revenue,
		COGS:          cogs,
		GrossProfit:   gross,
		MarginPercent: margin,
	}, nil
}
