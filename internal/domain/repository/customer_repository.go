package repository

import "github.com/jmrios/agropos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(query string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	// HasSales indica si el cliente tiene ventas asociadas (bloquea el borrado).
	HasSales(id string) (bool, error)
}
