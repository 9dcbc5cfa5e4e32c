package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/billing"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// ApplyPayment aplica un abono sobre una venta existente, en una transacción:
// bloquea la cabecera, valida que el monto no exceda el saldo pendiente,
// inserta el pago y rederiva el estado. A diferencia del pago inicial de la
// venta, aquí el sobrepago se rechaza.
func (uc *SaleUseCase) ApplyPayment(ctx context.Context, userID, saleID string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !entity.ValidPaymentMethod(in.Method) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.Method)
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		SaleID:    saleID,
		Amount:    in.Amount,
		Method:    in.Method,
		Date:      now,
		Note:      in.Note,
		CreatedBy: userID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunSale(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error {
		sale, err := saleRepo.GetForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}
		due := sale.GrandTotal - sale.AmountPaid
		if in.Amount > due {
			return fmt.Errorf("%w: venta %s, saldo pendiente %d", domain.ErrOverpayment, sale.InvoiceNo, due)
		}
		if err := payRepo.Create(payment); err != nil {
			return err
		}
		newPaid := sale.AmountPaid + in.Amount
		return saleRepo.UpdatePayment(sale.ID, newPaid, billing.SettleStatus(newPaid, sale.GrandTotal))
	})
	if err != nil {
		return nil, err
	}
	resp := toPaymentResponse(payment)
	return &resp, nil
}

// ListPayments devuelve los abonos de una venta en orden cronológico.
func (uc *SaleUseCase) ListPayments(ctx context.Context, saleID string) (*dto.PaymentListResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	list, err := uc.payRepo.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items}, nil
}
