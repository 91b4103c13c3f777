package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-venta/internal/application/stock"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memState estado compartido por los repos fake. El TxRunner fake lo copia
// antes de cada tx y lo restaura si la función devuelve error, imitando el
// rollback de la base de datos.
type memState struct {
	inventories map[string]*entity.Inventory
	products    map[string]*entity.Product
	invLogs     []*entity.InventoryLog
	prodLogs    []*entity.ProductLog
}

func newMemState() *memState {
	return &memState{
		inventories: map[string]*entity.Inventory{},
		products:    map[string]*entity.Product{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for id, inv := range s.inventories {
		cp := *inv
		c.inventories[id] = &cp
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	c.invLogs = append([]*entity.InventoryLog(nil), s.invLogs...)
	c.prodLogs = append([]*entity.ProductLog(nil), s.prodLogs...)
	return c
}

type memInventoryRepo struct {
	repository.InventoryRepository
	s *memState
}

func (r *memInventoryRepo) GetByID(_ context.Context, id string) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInventoryRepo) AdjustStock(_ context.Context, id string, delta int64) (int64, error) {
	inv, ok := r.s.inventories[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if inv.Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	inv.Stock += delta
	return inv.Stock, nil
}

type memProductRepo struct {
	repository.ProductRepository
	s *memState
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) AdjustStock(_ context.Context, id string, delta int64) (int64, error) {
	p, ok := r.s.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r *memProductRepo) ResetAllStock(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.Stock != 0 {
			p.Stock = 0
			n++
		}
	}
	return n, nil
}

type memInvLogRepo struct {
	repository.InventoryLogRepository
	s *memState
}

func (r *memInvLogRepo) Append(_ context.Context, log *entity.InventoryLog) error {
	r.s.invLogs = append(r.s.invLogs, log)
	return nil
}

type memProdLogRepo struct {
	repository.ProductLogRepository
	s *memState
}

func (r *memProdLogRepo) Append(_ context.Context, log *entity.ProductLog) error {
	r.s.prodLogs = append(r.s.prodLogs, log)
	return nil
}

// memTxRunner imita la semántica transaccional: si fn falla, el estado vuelve
// al snapshot previo.
type memTxRunner struct {
	s *memState
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	invLogRepo repository.InventoryLogRepository,
	prodLogRepo repository.ProductLogRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(
		&memInventoryRepo{s: t.s},
		&memProductRepo{s: t.s},
		&memInvLogRepo{s: t.s},
		&memProdLogRepo{s: t.s},
	)
	if err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

func newEngine(s *memState) *stock.Engine {
	return stock.NewEngine(&memTxRunner{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdjustInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustInventory_Increase(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10, Unit: "kg"}

	inv, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
		ID: "inv-1", Quantity: 5, Action: stock.ActionIncrease,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), inv.Stock)
	assert.Equal(t, int64(15), s.inventories["inv-1"].Stock)

	// Exactamente una entrada en el ledger, con el texto y tipo correctos.
	require.Len(t, s.invLogs, 1)
	assert.Equal(t, "Inventory Harina stock increase by 5", s.invLogs[0].Description)
	assert.Equal(t, entity.InventoryLogINCREASE, s.invLogs[0].Type)
}

func TestAdjustInventory_DecreaseConMemo(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10}

	inv, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
		ID: "inv-1", Quantity: 4, Action: stock.ActionDecrease, Memo: "merma",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), inv.Stock)
	require.Len(t, s.invLogs, 1)
	assert.Equal(t, "Inventory Harina stock decrease by 4", s.invLogs[0].Description)
	assert.Equal(t, entity.InventoryLogDECREASE, s.invLogs[0].Type)
	assert.Equal(t, "merma", s.invLogs[0].Memo)
}

// El decremento que dejaría el stock negativo se rechaza entero: ni cambia el
// stock ni aparece entrada en el ledger.
func TestAdjustInventory_StockInsuficiente(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 3}

	_, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
		ID: "inv-1", Quantity: 4, Action: stock.ActionDecrease,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), s.inventories["inv-1"].Stock)
	assert.Empty(t, s.invLogs)
}

func TestAdjustInventory_NoExiste(t *testing.T) {
	s := newMemState()

	_, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
		ID: "nope", Quantity: 1, Action: stock.ActionIncrease,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.invLogs)
}

func TestAdjustInventory_AccionInvalida(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 3}

	_, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
		ID: "inv-1", Quantity: 1, Action: "duplicate",
	})
	require.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, int64(3), s.inventories["inv-1"].Stock)
}

func TestAdjustInventory_CantidadInvalida(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 3}

	for _, qty := range []int64{0, -5} {
		_, err := newEngine(s).AdjustInventory(context.Background(), stock.AdjustInput{
			ID: "inv-1", Quantity: qty, Action: stock.ActionIncrease,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, int64(3), s.inventories["inv-1"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdjustProduct y ResetProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustProduct_DecreaseHastaCero(t *testing.T) {
	s := newMemState()
	s.products["p-1"] = &entity.Product{ID: "p-1", Name: "Pan", Stock: 2}

	p, err := newEngine(s).AdjustProduct(context.Background(), stock.AdjustInput{
		ID: "p-1", Quantity: 2, Action: stock.ActionDecrease,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock)
	require.Len(t, s.prodLogs, 1)
	assert.Equal(t, "Product Pan stock decrease by 2", s.prodLogs[0].Description)
	assert.Equal(t, entity.ProductLogDECREASE, s.prodLogs[0].Type)
}

func TestResetProducts_DejaUnaEntradaRESET(t *testing.T) {
	s := newMemState()
	s.products["p-1"] = &entity.Product{ID: "p-1", Name: "Pan", Stock: 7}
	s.products["p-2"] = &entity.Product{ID: "p-2", Name: "Torta", Stock: 0}
	s.products["p-3"] = &entity.Product{ID: "p-3", Name: "Café", Stock: 12}

	err := newEngine(s).ResetProducts(context.Background())
	require.NoError(t, err)

	for _, p := range s.products {
		assert.Equal(t, int64(0), p.Stock)
	}
	require.Len(t, s.prodLogs, 1)
	assert.Equal(t, entity.ProductLogRESET, s.prodLogs[0].Type)
	assert.Equal(t, "All products stock reset to 0 (2 products)", s.prodLogs[0].Description)
}
