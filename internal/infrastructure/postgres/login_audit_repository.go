package postgres

import (
	"context"
	"fmt"

	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

var _ repository.LoginAuditRepository = (*LoginAuditRepo)(nil)

// LoginAuditRepo implementación de la auditoría de logins sobre PostgreSQL.
type LoginAuditRepo struct {
	q Querier
}

// NewLoginAuditRepository construye el adaptador de auditoría.
func NewLoginAuditRepository(q Querier) *LoginAuditRepo {
	return &LoginAuditRepo{q: q}
}

// Create inserta un intento de login. user_id va NULL cuando el username no
// resolvió a un usuario.
func (r *LoginAuditRepo) Create(audit *entity.LoginAudit) error {
	query := `
		INSERT INTO login_audits (id, user_id, username, role, success, user_agent, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		audit.ID, nullIfEmpty(audit.UserID), audit.Username, audit.Role,
		audit.Success, audit.UserAgent, audit.IP, audit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert login audit: %w", err)
	}
	return nil
}

// ListRecent devuelve los intentos de login más recientes.
func (r *LoginAuditRepo) ListRecent(limit, offset int) ([]*entity.LoginAudit, error) {
	query := `
		SELECT id, user_id, username, role, success, user_agent, ip, created_at
		FROM login_audits ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list login audits: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoginAudit
	for rows.Next() {
		var a entity.LoginAudit
		var userID *string
		if err := rows.Scan(&a.ID, &userID, &a.Username, &a.Role, &a.Success, &a.UserAgent, &a.IP, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan login audit: %w", err)
		}
		if userID != nil {
			a.UserID = *userID
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
