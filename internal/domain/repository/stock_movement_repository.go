package repository

import "github.com/jmrios/agropos-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger.
// El ledger es append-only: no hay update ni delete.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
