package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
	"github.com/jmrios/agropos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y auditoría de accesos.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.LoginAuditRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, auditRepo repository.LoginAuditRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, auditRepo: auditRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta devuelven el mismo error para
// no revelar qué usuarios existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest, userAgent, ip string) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.recordAttempt(nil, in.Username, false, userAgent, ip)
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.recordAttempt(user, in.Username, false, userAgent, ip)
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		uc.recordAttempt(user, in.Username, false, userAgent, ip)
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.recordAttempt(user, in.Username, true, userAgent, ip)

	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// recordAttempt audita cada intento de login, exitoso o no. Best effort: un
// fallo aquí nunca altera el resultado del login.
func (uc *AuthUseCase) recordAttempt(user *entity.User, username string, success bool, userAgent, ip string) {
	audit := &entity.LoginAudit{
		ID:        uuid.New().String(),
		Username:  username,
		Success:   success,
		UserAgent: userAgent,
		IP:        ip,
		CreatedAt: time.Now(),
	}
	if user != nil {
		audit.UserID = user.ID
		audit.Role = user.Role
	}
	if err := uc.auditRepo.Create(audit); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("no se pudo registrar la auditoría de login")
	}
}

// ListAudits devuelve los intentos de login más recientes (solo ADMIN en el
// router).
func (uc *AuthUseCase) ListAudits(limit, offset int) (*dto.LoginAuditListResponse, error) {
	list, err := uc.auditRepo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LoginAuditResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.LoginAuditResponse{
			ID:        a.ID,
			UserID:    a.UserID,
			Username:  a.Username,
			Role:      a.Role,
			Success:   a.Success,
			UserAgent: a.UserAgent,
			IP:        a.IP,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.LoginAuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
