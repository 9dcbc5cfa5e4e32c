package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain/entity"
)

// RequireRole autoriza el acceso a los roles indicados. Debe ir después de
// AuthMiddleware: lee el rol de c.Locals.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol " + role + " no tiene permiso para esta operación"})
	}
}

// RequireAdmin restringe la ruta a usuarios ADMIN. Las lecturas quedan
// abiertas a cualquier autenticado; toda escritura pasa por aquí.
func RequireAdmin() fiber.Handler {
	return RequireRole(entity.RoleAdmin)
}
