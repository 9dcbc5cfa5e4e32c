package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más datos básicos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginAuditResponse un intento de login auditado. UserID y Role van vacíos
// cuando el username no resolvió a un usuario.
type LoginAuditResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId,omitempty"`
	Username  string `json:"username"`
	Role      string `json:"role,omitempty"`
	Success   bool   `json:"success"`
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
	CreatedAt string `json:"createdAt"`
}

// LoginAuditListResponse lista paginada de auditorías.
type LoginAuditListResponse struct {
	Items []LoginAuditResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
