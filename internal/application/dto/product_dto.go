package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// InitialStock > 0 registra una entrada IN en la misma transacción.
type CreateProductRequest struct {
	Code         string `json:"code" validate:"required,min=1,max=50"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
	CostPrice    int64  `json:"costPrice"`
	SalePrice    int64  `json:"salePrice"`
	MinStock     *int64 `json:"minStock"`
	InitialStock int64  `json:"initialStock"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: ledger).
type UpdateProductRequest struct {
	Code      *string `json:"code"`
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Unit      *string `json:"unit"`
	CostPrice *int64  `json:"costPrice"`
	SalePrice *int64  `json:"salePrice"`
	MinStock  *int64  `json:"minStock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	CostPrice int64     `json:"costPrice"`
	SalePrice int64     `json:"salePrice"`
	Stock     int64     `json:"stock"`
	MinStock  int64     `json:"minStock"`
	LowStock  bool      `json:"lowStock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
