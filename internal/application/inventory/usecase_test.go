package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/application/inventory"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type ledgerStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

type productRepoFake struct{ s *ledgerStore }

func (r *productRepoFake) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *productRepoFake) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepoFake) GetByCode(code string) (*entity.Product, error) { return nil, nil }

func (r *productRepoFake) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepoFake) List(f repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *productRepoFake) Update(p *entity.Product) error { return nil }

func (r *productRepoFake) UpdateStock(id string, stock int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepoFake) UpdateCost(id string, costPrice int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CostPrice = costPrice
	return nil
}

func (r *productRepoFake) SoftDelete(id string) error { return nil }

type movementRepoFake struct{ s *ledgerStore }

func (r *movementRepoFake) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *movementRepoFake) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// txRunnerFake simula rollback restaurando el estado previo.
type txRunnerFake struct {
	s    *ledgerStore
	txMu sync.Mutex
}

func (r *txRunnerFake) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.s.mu.Lock()
	prevProducts := make(map[string]entity.Product, len(r.s.products))
	for id, p := range r.s.products {
		prevProducts[id] = *p
	}
	prevLen := len(r.s.movements)
	r.s.mu.Unlock()

	if err := fn(&movementRepoFake{r.s}, &productRepoFake{r.s}); err != nil {
		r.s.mu.Lock()
		for id, p := range prevProducts {
			cp := p
			r.s.products[id] = &cp
		}
		r.s.movements = r.s.movements[:prevLen]
		r.s.mu.Unlock()
		return err
	}
	return nil
}

var _ inventory.TxRunner = (*txRunnerFake)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

const (
	usuarioID  = "00000000-0000-0000-0000-00000000000a"
	productoID = "00000000-0000-0000-0000-000000000001"
)

func newLedgerFixture(t *testing.T, stock int64) (*inventory.LedgerUseCase, *ledgerStore, *txRunnerFake) {
	t.Helper()
	store := &ledgerStore{products: make(map[string]*entity.Product)}
	now := time.Now()
	store.products[productoID] = &entity.Product{
		ID: productoID, Code: "PUP-001", Name: "Urea 50kg",
		Category: entity.CategoryFertilizer, Unit: entity.UnitSack,
		CostPrice: 10_000, SalePrice: 15_000,
		Stock: stock, MinStock: 5, Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	runner := &txRunnerFake{s: store}
	uc := inventory.NewLedgerUseCase(runner, &productRepoFake{store}, &movementRepoFake{store})
	return uc, store, runner
}

// ledgerBalance suma IN - OUT de un producto sobre el ledger.
func ledgerBalance(s *ledgerStore, productID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, m := range s.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Type == entity.MovementTypeIn {
			total += m.Qty
		} else {
			total -= m.Qty
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockIn
// ──────────────────────────────────────────────────────────────────────────────

// La entrada suma stock, registra la línea IN y actualiza el costo informado.
func TestStockIn_SumaStockYActualizaCosto(t *testing.T) {
	uc, store, _ := newLedgerFixture(t, 10)

	out, err := uc.StockIn(context.Background(), usuarioID, dto.StockInRequest{
		ProductID: productoID,
		Qty:       5,
		UnitCost:  11_000,
		Reference: "Compra proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeIn, out.Type)
	assert.Equal(t, int64(5), out.Qty)
	assert.Equal(t, int64(15), store.products[productoID].Stock)
	assert.Equal(t, int64(11_000), store.products[productoID].CostPrice,
		"el costo informado reemplaza al anterior")
	require.Len(t, store.movements, 1)
	assert.Equal(t, "Compra proveedor", store.movements[0].Reference)
}

// Sin costo informado (0) el costo del producto no se toca.
func TestStockIn_SinCosto_NoTocaElCosto(t *testing.T) {
	uc, store, _ := newLedgerFixture(t, 10)

	_, err := uc.StockIn(context.Background(), usuarioID, dto.StockInRequest{
		ProductID: productoID,
		Qty:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), store.products[productoID].CostPrice)
	assert.Equal(t, int64(13), store.products[productoID].Stock)
}

// Validaciones de entrada y producto inexistente o inactivo.
func TestStockIn_Validaciones(t *testing.T) {
	uc, store, _ := newLedgerFixture(t, 10)
	ctx := context.Background()

	_, err := uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty cero")

	_, err = uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 1, UnitCost: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "costo negativo")

	_, err = uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: "no-existe", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	store.products[productoID].Active = false
	_, err = uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inactivo")

	assert.Empty(t, store.movements, "ningún intento fallido deja rastro en el ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterOutInTx
// ──────────────────────────────────────────────────────────────────────────────

// La salida descuenta stock dentro de la transacción del caller.
func TestRegisterOut_DescuentaStock(t *testing.T) {
	uc, store, runner := newLedgerFixture(t, 10)

	err := runner.Run(context.Background(), func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.RegisterOutInTx(movRepo, productRepo, productoID, 4, usuarioID, "INV-202608-000001", time.Now())
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), store.products[productoID].Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.MovementTypeOut, store.movements[0].Type)
	assert.Equal(t, "INV-202608-000001", store.movements[0].Reference)
}

// Stock insuficiente retorna error con el detalle y revierte la transacción.
func TestRegisterOut_StockInsuficiente(t *testing.T) {
	uc, store, runner := newLedgerFixture(t, 3)

	err := runner.Run(context.Background(), func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.RegisterOutInTx(movRepo, productRepo, productoID, 5, usuarioID, "ref", time.Now())
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible 3")
	assert.Contains(t, err.Error(), "solicitado 5")

	assert.Equal(t, int64(3), store.products[productoID].Stock)
	assert.Empty(t, store.movements)
}

// Tras una mezcla de entradas y salidas, el stock derivado coincide con el
// balance del ledger.
func TestLedger_InvarianteStockDerivado(t *testing.T) {
	uc, store, runner := newLedgerFixture(t, 0)
	ctx := context.Background()

	_, err := uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 20, UnitCost: 9_500})
	require.NoError(t, err)
	_, err = uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 5})
	require.NoError(t, err)

	err = runner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.RegisterOutInTx(movRepo, productRepo, productoID, 8, usuarioID, "INV-202608-000002", time.Now())
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), store.products[productoID].Stock)
	assert.Equal(t, store.products[productoID].Stock, ledgerBalance(store, productoID),
		"stock == sum(IN) - sum(OUT)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_MasRecientePrimero(t *testing.T) {
	uc, _, _ := newLedgerFixture(t, 0)
	ctx := context.Background()

	_, err := uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 1, Reference: "primera"})
	require.NoError(t, err)
	_, err = uc.StockIn(ctx, usuarioID, dto.StockInRequest{ProductID: productoID, Qty: 2, Reference: "segunda"})
	require.NoError(t, err)

	out, err := uc.ListMovements(productoID, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "segunda", out.Items[0].Reference)
	assert.Equal(t, "primera", out.Items[1].Reference)
}

func TestListMovements_ProductoInexistente(t *testing.T) {
	uc, _, _ := newLedgerFixture(t, 0)
	_, err := uc.ListMovements("no-existe", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
