package sales_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/application/inventory"
	"github.com/jmrios/agropos-api/internal/application/sales"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. Cada método de repo toma el mutex;
// el runner de transacciones serializa las escrituras y hace snapshot/restore
// para simular el rollback.
type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	sales     map[string]*entity.Sale
	items     map[string][]*entity.SaleItem
	payments  map[string][]*entity.Payment
	customers map[string]*entity.Customer
	counters  map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		sales:     make(map[string]*entity.Sale),
		items:     make(map[string][]*entity.SaleItem),
		payments:  make(map[string][]*entity.Payment),
		customers: make(map[string]*entity.Customer),
		counters:  make(map[string]int64),
	}
}

type storeSnapshot struct {
	products  map[string]entity.Product
	movements []entity.StockMovement
	sales     map[string]entity.Sale
	items     map[string][]entity.SaleItem
	payments  map[string][]entity.Payment
}

func (s *memStore) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		products: make(map[string]entity.Product, len(s.products)),
		sales:    make(map[string]entity.Sale, len(s.sales)),
		items:    make(map[string][]entity.SaleItem, len(s.items)),
		payments: make(map[string][]entity.Payment, len(s.payments)),
	}
	for id, p := range s.products {
		snap.products[id] = *p
	}
	for _, m := range s.movements {
		snap.movements = append(snap.movements, *m)
	}
	for id, v := range s.sales {
		snap.sales[id] = *v
	}
	for id, list := range s.items {
		cp := make([]entity.SaleItem, len(list))
		for i, it := range list {
			cp[i] = *it
		}
		snap.items[id] = cp
	}
	for id, list := range s.payments {
		cp := make([]entity.Payment, len(list))
		for i, p := range list {
			cp[i] = *p
		}
		snap.payments[id] = cp
	}
	return snap
}

func (s *memStore) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]*entity.Product, len(snap.products))
	for id, p := range snap.products {
		cp := p
		s.products[id] = &cp
	}
	s.movements = nil
	for _, m := range snap.movements {
		cp := m
		s.movements = append(s.movements, &cp)
	}
	s.sales = make(map[string]*entity.Sale, len(snap.sales))
	for id, v := range snap.sales {
		cp := v
		s.sales[id] = &cp
	}
	s.items = make(map[string][]*entity.SaleItem, len(snap.items))
	for id, list := range snap.items {
		for _, it := range list {
			cp := it
			s.items[id] = append(s.items[id], &cp)
		}
	}
	s.payments = make(map[string][]*entity.Payment, len(snap.payments))
	for id, list := range snap.payments {
		for _, p := range list {
			cp := p
			s.payments[id] = append(s.payments[id], &cp)
		}
	}
}

// ── Repos fakes ───────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) UpdateCost(id string, costPrice int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CostPrice = costPrice
	return nil
}

func (r *fakeProductRepo) SoftDelete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !p.Active {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
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

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.sales {
		if existing.InvoiceNo == sale.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	cp := *sale
	cp.Items = nil
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *item
	r.s.items[item.SaleID] = append(r.s.items[item.SaleID], &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SaleItem
	for _, it := range r.s.items[saleID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		if sale.Date.Before(f.From) || !sale.Date.Before(f.To) {
			continue
		}
		switch {
		case f.Status == entity.SaleStatusOpen:
			if sale.Status == entity.SaleStatusPaid {
				continue
			}
		case f.Status != "":
			if sale.Status != f.Status {
				continue
			}
		}
		if f.CustomerID != "" && sale.CustomerID != f.CustomerID {
			continue
		}
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdatePayment(id string, amountPaid int64, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	sale.AmountPaid = amountPaid
	sale.Status = status
	return nil
}

type fakePaymentRepo struct{ s *memStore }

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.payments[p.SaleID] = append(r.s.payments[p.SaleID], &cp)
	return nil
}

func (r *fakePaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.s.payments[saleID] {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(query string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { return nil }
func (r *fakeCustomerRepo) HasSales(id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sale := range r.s.sales {
		if sale.CustomerID == id {
			return true, nil
		}
	}
	return false, nil
}

// fakeSeqRepo consecutivo en memoria, seguro para goroutines.
type fakeSeqRepo struct{ s *memStore }

func (r *fakeSeqRepo) Next(_ context.Context, period string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.counters[period]++
	return r.s.counters[period], nil
}

// fakeTxRunner serializa transacciones y simula rollback con snapshot/restore.
type fakeTxRunner struct {
	s    *memStore
	txMu sync.Mutex
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	snap := r.s.snapshot()
	if err := fn(&fakeMovementRepo{r.s}, &fakeProductRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.SaleRepository,
	repository.PaymentRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	snap := r.s.snapshot()
	if err := fn(&fakeProductRepo{r.s}, &fakeMovementRepo{r.s}, &fakeSaleRepo{r.s}, &fakePaymentRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

var (
	_ inventory.TxRunner            = (*fakeTxRunner)(nil)
	_ sales.SaleTxRunner            = (*fakeTxRunner)(nil)
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.SaleRepository     = (*fakeSaleRepo)(nil)
	_ repository.CustomerRepository = (*fakeCustomerRepo)(nil)
	_ repository.PaymentRepository  = (*fakePaymentRepo)(nil)
)

// ── Fixture ───────────────────────────────────────────────────────────────────

const (
	testUserID     = "00000000-0000-0000-0000-00000000000a"
	testCustomerID = "00000000-0000-0000-0000-00000000000b"
	ureaID         = "00000000-0000-0000-0000-000000000001"
	herbicidaID    = "00000000-0000-0000-0000-000000000002"
)

// newFixture crea una tienda con dos productos y un cliente.
//
//	Urea:      stock 10, precio 15_000
//	Herbicida: stock 3,  precio 5_000
func newFixture(t *testing.T) (*sales.SaleUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	now := time.Now()
	store.products[ureaID] = &entity.Product{
		ID: ureaID, Code: "PUP-001", Name: "Urea 50kg",
		Category: entity.CategoryFertilizer, Unit: entity.UnitSack,
		CostPrice: 10_000, SalePrice: 15_000,
		Stock: 10, MinStock: 5, Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	store.products[herbicidaID] = &entity.Product{
		ID: herbicidaID, Code: "OBT-001", Name: "Herbicida 1L",
		Category: entity.CategoryMedicine, Unit: entity.UnitLiter,
		CostPrice: 3_000, SalePrice: 5_000,
		Stock: 3, MinStock: 2, Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	store.customers[testCustomerID] = &entity.Customer{
		ID: testCustomerID, Name: "Pak Budi",
		CreatedAt: now, UpdatedAt: now,
	}

	runner := &fakeTxRunner{s: store}
	productRepo := &fakeProductRepo{store}
	movRepo := &fakeMovementRepo{store}
	ledgerUC := inventory.NewLedgerUseCase(runner, productRepo, movRepo)
	uc := sales.NewSaleUseCase(
		runner, ledgerUC, &fakeSeqRepo{store},
		&fakeCustomerRepo{store}, productRepo,
		&fakeSaleRepo{store}, &fakePaymentRepo{store},
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta a crédito con descuento: totales calculados por el servidor, número de
// factura asignado e inventario descontado.
func TestCreateSale_TotalesYDescuentoDeInventario(t *testing.T) {
	uc, store := newFixture(t)

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		Items: []dto.SaleItemRequest{
			{ProductID: ureaID, Qty: 1},      // 15_000
			{ProductID: herbicidaID, Qty: 2}, // 10_000
		},
		Discount: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25_000), out.SubTotal, "subtotal = 1*15000 + 2*5000")
	assert.Equal(t, int64(25_000), out.GrandTotal)
	assert.Equal(t, int64(25_000), out.Due, "sin pago inicial todo queda pendiente")
	assert.Equal(t, entity.SaleStatusUnpaid, out.Status)
	assert.Regexp(t, `^INV-\d{6}-\d{6}$`, out.InvoiceNo)
	assert.Len(t, out.Items, 2)

	// Inventario descontado y salidas referenciando la factura
	assert.Equal(t, int64(9), store.products[ureaID].Stock)
	assert.Equal(t, int64(1), store.products[herbicidaID].Stock)
	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.Equal(t, out.InvoiceNo, m.Reference)
	}
}

// Pago inicial parcial deja la venta Sebagian con saldo correcto.
func TestCreateSale_PagoParcial_QuedaSebagian(t *testing.T) {
	uc, store := newFixture(t)

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		AmountPaid: 10_000,
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusPartial, out.Status)
	assert.Equal(t, int64(5_000), out.Due)
	require.Len(t, store.payments[out.ID], 1, "el pago inicial debe quedar registrado")
	assert.Equal(t, int64(10_000), store.payments[out.ID][0].Amount)
}

// El sobrepago en el momento de la venta se acepta y el estado queda Lunas.
func TestCreateSale_SobrepagoInicial_QuedaLunas(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: herbicidaID, Qty: 1}},
		AmountPaid: 20_000, // total 5_000
		Method:     entity.PaymentMethodQRIS,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusPaid, out.Status)
	assert.Zero(t, out.Due, "el saldo nunca es negativo")
}

// Venta de mostrador: sin cliente asociado.
func TestCreateSale_MostradorSinCliente(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		AmountPaid: 15_000,
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Empty(t, out.CustomerID)
	assert.Equal(t, entity.SaleStatusPaid, out.Status)
}

// Stock insuficiente en cualquier línea revierte la venta completa: ni cabecera,
// ni movimientos, ni descuento parcial de las líneas anteriores.
func TestCreateSale_StockInsuficiente_RevierteTodo(t *testing.T) {
	uc, store := newFixture(t)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		Items: []dto.SaleItemRequest{
			{ProductID: ureaID, Qty: 2},      // alcanza
			{ProductID: herbicidaID, Qty: 5}, // stock 3, no alcanza
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.products[ureaID].Stock,
		"la primera línea debe revertirse también")
	assert.Equal(t, int64(3), store.products[herbicidaID].Stock)
	assert.Empty(t, store.sales, "no debe quedar cabecera")
	assert.Empty(t, store.movements, "no debe quedar ningún movimiento")
}

// Validaciones de entrada.
func TestCreateSale_Validaciones(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	_, err := uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta sin líneas")

	_, err = uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items:    []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		Discount: 20_000, // subtotal 15_000
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descuento mayor que el subtotal")

	_, err = uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		CustomerID: "no-existe",
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")

	_, err = uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		AmountPaid: 1_000,
		Method:     "Cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "método de pago desconocido")
}

// Ventas concurrentes jamás comparten número de factura.
func TestCreateSale_NumerosDeFacturaUnicos_Concurrencia(t *testing.T) {
	uc, _ := newFixture(t)

	const n = 10
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
				Items: []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
			})
			if err == nil {
				results <- out.InvoiceNo
			} else {
				results <- fmt.Sprintf("err: %v", err)
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for invoiceNo := range results {
		assert.Regexp(t, `^INV-\d{6}-\d{6}$`, invoiceNo)
		assert.False(t, seen[invoiceNo], "número de factura repetido: %s", invoiceNo)
		seen[invoiceNo] = true
	}
	assert.Len(t, seen, n)
}

// GetSale arma la venta completa con líneas, abonos y nombre del cliente.
func TestGetSale_VentaCompleta(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	created, err := uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 2}},
		AmountPaid: 10_000,
		Method:     entity.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	out, err := uc.GetSale(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pak Budi", out.CustomerName)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(30_000), out.Items[0].LineTotal)
	require.Len(t, out.Payments, 1)
	assert.Equal(t, entity.PaymentMethodTransfer, out.Payments[0].Method)

	_, err = uc.GetSale(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ListSales valida el estado del filtro.
func TestListSales_EstadoInvalido(t *testing.T) {
	uc, _ := newFixture(t)
	_, err := uc.ListSales(context.Background(), repository.SaleFilter{Status: "Pagada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin from/to el listado cubre los últimos 30 días: una venta de hoy aparece
// aunque el filtro llegue vacío.
func TestListSales_SinRango_ListaUltimos30Dias(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	created, err := uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
	})
	require.NoError(t, err)

	out, err := uc.ListSales(ctx, repository.SaleFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la venta de hoy debe entrar en la ventana por defecto")
	assert.Equal(t, created.InvoiceNo, out.Items[0].InvoiceNo)

	// Un rango explícito en el pasado no la incluye
	past, err := uc.ListSales(ctx, repository.SaleFilter{
		From:  time.Now().AddDate(-1, 0, 0),
		To:    time.Now().AddDate(0, 0, -7),
		Limit: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
}

// El filtro "open" agrupa Piutang y Sebagian; los estados exactos siguen
// funcionando.
func TestListSales_FiltroOpen(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	// Piutang (sin pago), Sebagian (parcial) y Lunas (saldada)
	_, err := uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
	})
	require.NoError(t, err)
	_, err = uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		AmountPaid: 5_000,
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = uc.CreateSale(ctx, testUserID, dto.CreateSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: ureaID, Qty: 1}},
		AmountPaid: 15_000,
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	open, err := uc.ListSales(ctx, repository.SaleFilter{Status: entity.SaleStatusOpen, Limit: 20})
	require.NoError(t, err)
	require.Len(t, open.Items, 2)
	for _, s := range open.Items {
		assert.NotEqual(t, entity.SaleStatusPaid, s.Status)
	}

	paid, err := uc.ListSales(ctx, repository.SaleFilter{Status: entity.SaleStatusPaid, Limit: 20})
	require.NoError(t, err)
	require.Len(t, paid.Items, 1)
}

// Un producto inactivo no se puede vender: la venta se rechaza sin tocar
// inventario.
func TestCreateSale_ProductoInactivo_Rechazado(t *testing.T) {
	uc, store := newFixture(t)

	store.products[herbicidaID].Active = false
	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: ureaID, Qty: 1},
			{ProductID: herbicidaID, Qty: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(10), store.products[ureaID].Stock)
	assert.Equal(t, int64(3), store.products[herbicidaID].Stock)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}
