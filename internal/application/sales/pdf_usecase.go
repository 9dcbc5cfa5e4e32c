package sales

import (
	"context"
	"fmt"

	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// ReceiptData datos ya resueltos para el render del comprobante de venta.
type ReceiptData struct {
	Sale         *entity.Sale
	CustomerName string
	Payments     []*entity.Payment
}

// ReceiptGenerator puerto del generador de PDF del comprobante.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data *ReceiptData) ([]byte, error)
}

// PDFUseCase genera el comprobante imprimible (PDF) de una venta.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	payRepo      repository.PaymentRepository
	generator    ReceiptGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	payRepo repository.PaymentRepository,
	generator ReceiptGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		payRepo:      payRepo,
		generator:    generator,
	}
}

// DownloadReceipt recupera la venta completa y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe.
func (uc *PDFUseCase) DownloadReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}

	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	for _, it := range items {
		sale.Items = append(sale.Items, *it)
	}

	customerName := ""
	if sale.CustomerID != "" {
		if customer, cErr := uc.customerRepo.GetByID(sale.CustomerID); cErr == nil && customer != nil {
			customerName = customer.Name
		}
	}

	payments, err := uc.payRepo.ListBySale(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener abonos: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(ctx, &ReceiptData{
		Sale:         sale,
		CustomerName: customerName,
		Payments:     payments,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("venta_%s.pdf", sale.InvoiceNo)
	return pdfBytes, filename, nil
}
