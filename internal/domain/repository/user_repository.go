package repository

import "github.com/jmrios/agropos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	// CountActiveAdmins protege contra dejar el sistema sin administradores.
	CountActiveAdmins() (int, error)
}
