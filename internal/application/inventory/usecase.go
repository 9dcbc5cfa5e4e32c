package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos del ledger de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// La invariante products.stock == sum(IN) - sum(OUT) se sostiene porque la
// línea del ledger y la actualización del stock van en la misma transacción.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso. productRepo y movRepo van atados
// al pool (lecturas); las escrituras pasan por txRunner.
func NewLedgerUseCase(txRunner TxRunner, productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// StockIn registra una entrada de mercancía: bloquea la fila del producto,
// suma stock, actualiza el costo si se informó y guarda la línea IN.
func (uc *LedgerUseCase) StockIn(ctx context.Context, userID string, in dto.StockInRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Qty <= 0 {
		return nil, fmt.Errorf("%w: qty debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitCost < 0 {
		return nil, fmt.Errorf("%w: unitCost no puede ser negativo", domain.ErrInvalidInput)
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      entity.MovementTypeIn,
		Qty:       in.Qty,
		UnitCost:  in.UnitCost,
		Reference: in.Reference,
		CreatedBy: userID,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || !product.Active {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
		}
		if err := productRepo.UpdateStock(product.ID, product.Stock+in.Qty); err != nil {
			return err
		}
		if in.UnitCost > 0 {
			if err := productRepo.UpdateCost(product.ID, in.UnitCost); err != nil {
				return err
			}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// RegisterOutInTx ejecuta una salida (OUT) usando los repositorios del caller
// (misma transacción). Lo usa el flujo de ventas: si retorna error
// (ej: ErrInsufficientStock) el caller hace rollback de toda la venta.
func (uc *LedgerUseCase) RegisterOutInTx(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID string,
	qty int64,
	userID, reference string,
	now time.Time,
) error {
	if qty <= 0 {
		return fmt.Errorf("%w: qty debe ser mayor que cero", domain.ErrInvalidInput)
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.Active {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	if product.Stock < qty {
		return fmt.Errorf("%w: producto %s (disponible %d, solicitado %d)",
			domain.ErrInsufficientStock, product.Name, product.Stock, qty)
	}
	if err := productRepo.UpdateStock(product.ID, product.Stock-qty); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      entity.MovementTypeOut,
		Qty:       qty,
		Reference: reference,
		CreatedBy: userID,
		CreatedAt: now,
	}
	return movRepo.Create(mov)
}

// ListMovements devuelve el ledger de un producto, más reciente primero.
func (uc *LedgerUseCase) ListMovements(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Qty:       m.Qty,
		UnitCost:  m.UnitCost,
		Reference: m.Reference,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
