package repository

import "github.com/jmrios/agropos-api/internal/domain/entity"

// LoginAuditRepository define el puerto de persistencia de auditoría de logins.
type LoginAuditRepository interface {
	Create(audit *entity.LoginAudit) error
	ListRecent(limit, offset int) ([]*entity.LoginAudit, error)
}
