package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/application/sales"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
)

// creditSale crea una venta a crédito de 25_000 sin pago inicial.
func creditSale(t *testing.T, uc *sales.SaleUseCase) *dto.SaleResponse {
	t.Helper()
	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		Items: []dto.SaleItemRequest{
			{ProductID: ureaID, Qty: 1},      // 15_000
			{ProductID: herbicidaID, Qty: 2}, // 10_000
		},
	})
	require.NoError(t, err)
	require.Equal(t, entity.SaleStatusUnpaid, out.Status)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyPayment
// ──────────────────────────────────────────────────────────────────────────────

// Los abonos se acumulan y el estado transiciona Piutang → Sebagian → Lunas.
func TestApplyPayment_AcumulaYTransicionaEstados(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()
	sale := creditSale(t, uc)

	_, err := uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 10_000, Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPartial, store.sales[sale.ID].Status)
	assert.Equal(t, int64(10_000), store.sales[sale.ID].AmountPaid)

	_, err = uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 15_000, Method: entity.PaymentMethodTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, store.sales[sale.ID].Status)
	assert.Equal(t, int64(25_000), store.sales[sale.ID].AmountPaid)
	assert.Len(t, store.payments[sale.ID], 2)
}

// El abono que excede el saldo pendiente se rechaza y no deja rastro.
func TestApplyPayment_SobrepagoRechazado(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()
	sale := creditSale(t, uc)

	_, err := uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 30_000, Method: entity.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverpayment)
	assert.Contains(t, err.Error(), "25000", "el error debe informar el saldo pendiente")

	assert.Empty(t, store.payments[sale.ID], "no debe quedar pago registrado")
	assert.Equal(t, entity.SaleStatusUnpaid, store.sales[sale.ID].Status)
	assert.Zero(t, store.sales[sale.ID].AmountPaid)
}

// La última rupia exacta salda la venta.
func TestApplyPayment_SaldoExacto_QuedaLunas(t *testing.T) {
	uc, store := newFixture(t)
	ctx := context.Background()
	sale := creditSale(t, uc)

	_, err := uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 24_999, Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPartial, store.sales[sale.ID].Status)

	_, err = uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 1, Method: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPaid, store.sales[sale.ID].Status)

	// Sobre una venta Lunas cualquier abono es sobrepago
	_, err = uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 1, Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrOverpayment)
}

// Validaciones de entrada y venta inexistente.
func TestApplyPayment_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()
	sale := creditSale(t, uc)

	_, err := uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 0, Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	_, err = uc.ApplyPayment(ctx, testUserID, sale.ID, dto.CreatePaymentRequest{
		Amount: 1_000, Method: "Cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método desconocido")

	_, err = uc.ApplyPayment(ctx, testUserID, "no-existe", dto.CreatePaymentRequest{
		Amount: 1_000, Method: entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "venta inexistente")
}

// ListPayments exige que la venta exista.
func TestListPayments_VentaInexistente(t *testing.T) {
	uc, _ := newFixture(t)
	_, err := uc.ListPayments(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
