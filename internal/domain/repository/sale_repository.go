package repository

import (
	"time"

	"github.com/jmrios/agropos-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas. From/To son obligatorios para el
// repo (To exclusivo); el use case los completa con la ventana por defecto.
// Status admite los tres estados o el alias entity.SaleStatusOpen.
type SaleFilter struct {
	From       time.Time
	To         time.Time
	Status     string
	CustomerID string
	Limit      int
	Offset     int
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// GetForUpdate bloquea la cabecera (FOR UPDATE) para aplicar pagos.
	GetForUpdate(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	List(f SaleFilter) ([]*entity.Sale, error)
	// UpdatePayment actualiza amount_paid y status juntos.
	UpdatePayment(id string, amountPaid int64, status string) error
}
