package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/domain"
)

// Cada sentinel de dominio debe traducirse al status y código acordados.
// Stock insuficiente y sobrepago son errores de la petición (400); 409 queda
// reservado para conflictos de unicidad y guardas de integridad.
func TestRespondError_MapeoDeSentinels(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validación", fmt.Errorf("%w: qty debe ser > 0", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{"stock insuficiente", fmt.Errorf("%w: Urea 50kg", domain.ErrInsufficientStock), fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"sobrepago", fmt.Errorf("%w: saldo 5000", domain.ErrOverpayment), fiber.StatusBadRequest, "OVERPAYMENT"},
		{"credenciales", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"sin permiso", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"no encontrado", fmt.Errorf("%w: venta x", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no encontrado", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", fmt.Errorf("%w: factura INV-202608-000001", domain.ErrDuplicate), fiber.StatusConflict, "DUPLICATE"},
		{"conflicto", fmt.Errorf("%w: el cliente tiene ventas", domain.ErrConflict), fiber.StatusConflict, "CONFLICT"},
		{"desconocido", fmt.Errorf("se cayó la base"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
