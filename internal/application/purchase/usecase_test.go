package purchase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-venta/internal/application/purchase"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	inventories map[string]*entity.Inventory
	invLogs     []*entity.InventoryLog
	purchases   []*entity.Purchase
}

func newMemState() *memState {
	return &memState{inventories: map[string]*entity.Inventory{}}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for id, inv := range s.inventories {
		cp := *inv
		c.inventories[id] = &cp
	}
	c.invLogs = append([]*entity.InventoryLog(nil), s.invLogs...)
	c.purchases = append([]*entity.Purchase(nil), s.purchases...)
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

type memInvLogRepo struct {
	repository.InventoryLogRepository
	s *memState
}

func (r *memInvLogRepo) Append(_ context.Context, log *entity.InventoryLog) error {
	r.s.invLogs = append(r.s.invLogs, log)
	return nil
}

type memPurchaseRepo struct {
	s *memState
}

func (r *memPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	for _, existing := range r.s.purchases {
		if existing.InvoiceNumber == p.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.purchases = append(r.s.purchases, p)
	return nil
}

func (r *memPurchaseRepo) List(_ context.Context) ([]*entity.Purchase, error) {
	return r.s.purchases, nil
}

type memTxRunner struct {
	s *memState
}

func (t *memTxRunner) RunPurchase(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	invLogRepo repository.InventoryLogRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(&memInventoryRepo{s: t.s}, &memInvLogRepo{s: t.s}, &memPurchaseRepo{s: t.s})
	if err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

func newUseCase(s *memState) *purchase.UseCase {
	return purchase.NewUseCase(&memTxRunner{s: s}, &memPurchaseRepo{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_IncrementaStockYLedger(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10}
	s.inventories["inv-2"] = &entity.Inventory{ID: "inv-2", Name: "Azúcar", Stock: 0}

	p, err := newUseCase(s).Create(context.Background(), purchase.CreateInput{
		InvoiceNumber: "FV-001",
		Vendor:        "Molinos SA",
		OrderDate:     time.Now(),
		Items: []purchase.LineItem{
			{InventoryID: "inv-1", Quantity: 5, Price: decimal.NewFromInt(100)},
			{InventoryID: "inv-2", Quantity: 3, Price: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	// Total = 5×100 + 3×50
	assert.True(t, p.Total.Equal(decimal.NewFromInt(650)), "total esperado 650, fue %s", p.Total)
	assert.Equal(t, int64(15), s.inventories["inv-1"].Stock)
	assert.Equal(t, int64(3), s.inventories["inv-2"].Stock)

	// Una entrada PURCHASE por línea.
	require.Len(t, s.invLogs, 2)
	assert.Equal(t, "Inventory Harina stock increase by 5 from purchase FV-001", s.invLogs[0].Description)
	assert.Equal(t, entity.InventoryLogPURCHASE, s.invLogs[0].Type)
	require.Len(t, s.purchases, 1)
	require.Len(t, s.purchases[0].Items, 2)
}

// Si una línea referencia un inventario inexistente, ninguna línea se aplica:
// ni stock, ni ledger, ni cabecera.
func TestCreate_InventarioInexistenteRevierteTodo(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10}

	_, err := newUseCase(s).Create(context.Background(), purchase.CreateInput{
		InvoiceNumber: "FV-002",
		Vendor:        "Molinos SA",
		Items: []purchase.LineItem{
			{InventoryID: "inv-1", Quantity: 5, Price: decimal.NewFromInt(100)},
			{InventoryID: "nope", Quantity: 1, Price: decimal.NewFromInt(10)},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), s.inventories["inv-1"].Stock)
	assert.Empty(t, s.invLogs)
	assert.Empty(t, s.purchases)
}

func TestCreate_FacturaDuplicadaRevierteTodo(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10}
	s.purchases = append(s.purchases, &entity.Purchase{InvoiceNumber: "FV-003"})

	_, err := newUseCase(s).Create(context.Background(), purchase.CreateInput{
		InvoiceNumber: "FV-003",
		Vendor:        "Molinos SA",
		Items: []purchase.LineItem{
			{InventoryID: "inv-1", Quantity: 5, Price: decimal.NewFromInt(100)},
		},
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, int64(10), s.inventories["inv-1"].Stock)
	assert.Empty(t, s.invLogs)
}

func TestCreate_SinLineasEsInvalido(t *testing.T) {
	s := newMemState()

	_, err := newUseCase(s).Create(context.Background(), purchase.CreateInput{
		InvoiceNumber: "FV-004",
		Vendor:        "Molinos SA",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadCeroEsInvalida(t *testing.T) {
	s := newMemState()
	s.inventories["inv-1"] = &entity.Inventory{ID: "inv-1", Name: "Harina", Stock: 10}

	_, err := newUseCase(s).Create(context.Background(), purchase.CreateInput{
		InvoiceNumber: "FV-005",
		Vendor:        "Molinos SA",
		Items:         []purchase.LineItem{{InventoryID: "inv-1", Quantity: 0}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(10), s.inventories["inv-1"].Stock)
}
