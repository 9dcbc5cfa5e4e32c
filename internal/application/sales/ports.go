package sales

import (
	"context"
	"time"

	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repos del flujo de ventas. Un error dentro de fn revierte la venta completa.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		payRepo repository.PaymentRepository,
	) error) error
}

// InventoryUseCase interfaz para integrar ventas con el ledger de inventario.
// RegisterOutInTx ejecuta una salida (OUT) usando los repositorios del caller
// (misma transacción). Si retorna error (ej: ErrInsufficientStock), el caller
// debe hacer rollback.
type InventoryUseCase interface {
	RegisterOutInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		productID string,
		qty int64,
		userID, reference string,
		now time.Time,
	) error
}
