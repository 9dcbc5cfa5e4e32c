package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/billing"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// SaleUseCase crea ventas y descuenta el inventario en una sola transacción,
// y aplica abonos sobre ventas existentes.
type SaleUseCase struct {
	txRunner     SaleTxRunner
	inventoryUC  InventoryUseCase
	seqRepo      repository.InvoiceSequenceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	payRepo      repository.PaymentRepository
}

// NewSaleUseCase construye el caso de uso. Los repos van atados al pool
// (lecturas); las escrituras pasan por txRunner.
func NewSaleUseCase(
	txRunner SaleTxRunner,
	inventoryUC InventoryUseCase,
	seqRepo repository.InvoiceSequenceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	payRepo repository.PaymentRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		inventoryUC:  inventoryUC,
		seqRepo:      seqRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		payRepo:      payRepo,
	}
}

// CreateSale crea la venta completa: valida cliente y productos, asigna el
// número de factura, descuenta inventario línea por línea, guarda cabecera,
// líneas y pago inicial. Cualquier fallo revierte todo menos el consecutivo
// (los huecos de numeración se toleran).
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene líneas", domain.ErrInvalidInput)
	}
	if in.Discount < 0 {
		return nil, fmt.Errorf("%w: discount no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.AmountPaid < 0 {
		return nil, fmt.Errorf("%w: amountPaid no puede ser negativo", domain.ErrInvalidInput)
	}
	method := in.Method
	if method == "" {
		method = entity.PaymentMethodCash
	}
	if in.AmountPaid > 0 && !entity.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.Method)
	}

	// Validar cliente (si la venta no es de mostrador)
	var customerName string
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
		}
		customerName = customer.Name
	}

	// Validar productos y fijar precios de catálogo (fuera de la tx, solo lectura).
	// El chequeo de stock definitivo ocurre dentro de la tx con FOR UPDATE.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	var subTotal int64
	for _, item := range in.Items {
		if item.ProductID == "" || item.Qty <= 0 {
			return nil, fmt.Errorf("%w: cada línea necesita productId y qty > 0", domain.ErrInvalidInput)
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, item.ProductID)
		}
		productsByID[item.ProductID] = product
		subTotal += item.Qty * product.SalePrice
	}
	if in.Discount > subTotal {
		return nil, fmt.Errorf("%w: el descuento (%d) excede el subtotal (%d)", domain.ErrInvalidInput, in.Discount, subTotal)
	}
	grandTotal := subTotal - in.Discount

	now := time.Now()

	// Consecutivo fuera de la tx: si la venta falla, el número se pierde
	// (hueco tolerado) pero nunca se repite.
	period := billing.PeriodKey(now)
	seq, err := uc.seqRepo.Next(ctx, period)
	if err != nil {
		return nil, err
	}
	invoiceNo := billing.InvoiceNumber(period, seq)

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		InvoiceNo:  invoiceNo,
		CustomerID: in.CustomerID,
		Date:       now,
		SubTotal:   subTotal,
		Discount:   in.Discount,
		GrandTotal: grandTotal,
		AmountPaid: in.AmountPaid,
		Status:     billing.SettleStatus(in.AmountPaid, grandTotal),
		CreatedBy:  userID,
		CreatedAt:  now,
	}
	for _, item := range in.Items {
		product := productsByID[item.ProductID]
		sale.Items = append(sale.Items, entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Qty:         item.Qty,
			UnitPrice:   product.SalePrice,
			LineTotal:   item.Qty * product.SalePrice,
		})
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error {
		// 1) Salida de inventario por cada línea, referenciando la factura.
		// Sin stock suficiente se retorna error y se revierte toda la venta.
		for _, item := range sale.Items {
			if err := uc.inventoryUC.RegisterOutInTx(
				movRepo, productRepo,
				item.ProductID, item.Qty,
				userID, invoiceNo, now,
			); err != nil {
				return err
			}
		}

		// 2) Cabecera y líneas
		if err := saleRepo.Create(sale); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("%w: factura %s", domain.ErrDuplicate, invoiceNo)
			}
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}

		// 3) Pago inicial (opcional). Puede exceder el total: el estado queda Lunas.
		if in.AmountPaid > 0 {
			payment := &entity.Payment{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				Amount:    in.AmountPaid,
				Method:    method,
				Date:      now,
				Note:      in.Note,
				CreatedBy: userID,
				CreatedAt: now,
			}
			if err := payRepo.Create(payment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale, customerName, nil), nil
}

// GetSale obtiene una venta con líneas y abonos.
func (uc *SaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		sale.Items = append(sale.Items, *it)
	}
	payments, err := uc.payRepo.ListBySale(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if sale.CustomerID != "" {
		if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
			customerName = customer.Name
		}
	}
	return uc.toResponse(sale, customerName, payments), nil
}

// ListSales lista ventas del rango con filtros y paginación. Sin rango se
// listan los últimos 30 días terminando hoy.
func (uc *SaleUseCase) ListSales(ctx context.Context, f repository.SaleFilter) (*dto.SaleListResponse, error) {
	if f.Status != "" {
		switch f.Status {
		case entity.SaleStatusOpen, entity.SaleStatusUnpaid, entity.SaleStatusPartial, entity.SaleStatusPaid:
		default:
			return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, f.Status)
		}
	}
	if f.To.IsZero() {
		now := time.Now()
		f.To = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	}
	if f.From.IsZero() {
		f.From = f.To.AddDate(0, 0, -31)
	}
	list, err := uc.saleRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *uc.toResponse(s, "", nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

func (uc *SaleUseCase) toResponse(s *entity.Sale, customerName string, payments []*entity.Payment) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           s.ID,
		InvoiceNo:    s.InvoiceNo,
		CustomerID:   s.CustomerID,
		CustomerName: customerName,
		Date:         s.Date,
		SubTotal:     s.SubTotal,
		Discount:     s.Discount,
		GrandTotal:   s.GrandTotal,
		AmountPaid:   s.AmountPaid,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
	if due := s.GrandTotal - s.AmountPaid; due > 0 {
		resp.Due = due
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, toPaymentResponse(p))
	}
	return resp
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		SaleID:    p.SaleID,
		Amount:    p.Amount,
		Method:    p.Method,
		Date:      p.Date,
		Note:      p.Note,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}
