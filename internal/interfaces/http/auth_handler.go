package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmrios/agropos-api/internal/application/auth"
	"github.com/jmrios/agropos-api/internal/application/dto"
)

// AuthHandler maneja login y auditoría de accesos.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in, c.Get("User-Agent"), c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAudits godoc
// @Summary      Listar auditoría de logins
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.LoginAuditListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/audits [get]
func (h *AuthHandler) ListAudits(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListAudits(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
