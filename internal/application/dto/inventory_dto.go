package dto

import "time"

// StockInRequest entrada de mercancía al inventario.
type StockInRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
	UnitCost  int64  `json:"unitCost"`
	Reference string `json:"reference"`
}

// MovementResponse una línea del ledger.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Qty       int64     `json:"qty"`
	UnitCost  int64     `json:"unitCost,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovementListResponse ledger paginado de un producto.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
