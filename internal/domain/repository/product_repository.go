package repository

import "github.com/jmrios/agropos-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Query    string // ILIKE sobre code y name
	Category string
	LowStock bool // stock <= min_stock
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	List(f ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock derivado; se llama únicamente junto con el
	// insert del movimiento correspondiente, en la misma transacción.
	UpdateStock(id string, stock int64) error
	UpdateCost(id string, costPrice int64) error
	SoftDelete(id string) error
}
