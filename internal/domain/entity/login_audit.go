package entity

import "time"

// LoginAudit registra el resultado de cada intento de inicio de sesión.
// Solo-agregar, nunca se modifica. UserID y Role quedan vacíos cuando el
// username no resuelve a un usuario conocido.
type LoginAudit struct {
	ID        string
	UserID    string
	Username  string
	Role      string
	Success   bool
	UserAgent string
	IP        string
	CreatedAt time.Time
}
