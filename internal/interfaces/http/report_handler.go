package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmrios/agropos-api/internal/application/usecase"
)

// ReportHandler maneja los reportes de lectura.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        status  query  string  false  "Piutang | Sebagian | Lunas"
// @Success      200     {object}  dto.SalesReportResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.UserContext(), c.Query("from"), c.Query("to"), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockIn godoc
// @Summary      Reporte de entradas de mercancía del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {object}  dto.StockInReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/stock-in [get]
func (h *ReportHandler) StockIn(c *fiber.Ctx) error {
	out, err := h.uc.StockInReport(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotalSales godoc
// @Summary      Totales de ventas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {object}  dto.TotalSalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/total-sales [get]
func (h *ReportHandler) TotalSales(c *fiber.Ctx) error {
	out, err := h.uc.TotalSales(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Profit godoc
// @Summary      Utilidad bruta del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {object}  dto.ProfitReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/profit [get]
func (h *ReportHandler) Profit(c *fiber.Ctx) error {
	out, err := h.uc.Profit(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
