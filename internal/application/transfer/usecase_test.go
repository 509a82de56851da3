package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) SoftDelete(string) error { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return f.warehouses[id], nil }
func (f *fakeWarehouseRepo) GetMainByCostCenter(string) (*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) ListByCostCenter(string) ([]*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) SoftDelete(string) error { return nil }
func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) { return nil, nil }

type stockKey struct{ productID, warehouseID string }

type fakeStockRepo struct {
	stock map[stockKey]int64
}

func (f *fakeStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: f.stock[stockKey{productID, warehouseID}]}, nil
}
func (f *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return f.Get(productID, warehouseID)
}
func (f *fakeStockRepo) Upsert(s *entity.Stock) error {
	f.stock[stockKey{s.ProductID, s.WarehouseID}] = s.Quantity
	return nil
}
func (f *fakeStockRepo) ListAll() ([]*repository.StockItem, error) { return nil, nil }
func (f *fakeStockRepo) ListByWarehouse(string) ([]*repository.StockItem, error) { return nil, nil }
func (f *fakeStockRepo) ListByProduct(string) ([]*repository.StockItem, error) { return nil, nil }
func (f *fakeStockRepo) LowStock() ([]*repository.StockItem, error) { return nil, nil }

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(string) (*entity.InventoryMovement, error) { return nil, nil }
func (f *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	return f.movements, nil
}

type fakeSerialRepo struct{}

func (fakeSerialRepo) CreateBatch([]*entity.ProductSerial) error { return nil }
func (fakeSerialRepo) UsedSerials(string, []string) ([]string, error) { return nil, nil }
func (fakeSerialRepo) ListByProduct(string) ([]*entity.ProductSerial, error) { return nil, nil }

type fakeOrderRepo struct {
	orders map[string]*entity.TransferOrder
}

func (f *fakeOrderRepo) Create(o *entity.TransferOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.TransferOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (f *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.TransferOrder, error) {
	return f.GetByID(id)
}
func (f *fakeOrderRepo) Update(o *entity.TransferOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.TransferOrder, error) {
	var out []*entity.TransferOrder
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeCounterRepo consecutivo diario en memoria.
type fakeCounterRepo struct {
	counters map[string]int
}

func (f *fakeCounterRepo) NextNumber(day time.Time) (int, error) {
	key := day.Format("2006-01-02")
	f.counters[key]++
	return f.counters[key], nil
}

type fakeTxRunner struct {
	orderRepo   repository.TransferOrderRepository
	counterRepo repository.TransferCounterRepository
	movRepo     repository.InventoryMovementRepository
	stockRepo   repository.StockRepository
	serialRepo  repository.ProductSerialRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.TransferOrderRepository,
	repository.TransferCounterRepository,
	repository.InventoryMovementRepository,
	repository.StockRepository,
	repository.ProductSerialRepository,
) error) error {
	return fn(f.orderRepo, f.counterRepo, f.movRepo, f.stockRepo, f.serialRepo)
}

type fixture struct {
	uc        *transfer.UseCase
	orders    *fakeOrderRepo
	stock     *fakeStockRepo
	movements *fakeMovementRepo
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SKU: "SKU-1", Name: "Router", IsActive: true},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-src": {ID: "wh-src", Name: "Principal", CostCenter: "CC-1", WarehouseType: entity.WarehouseTypeMain, IsActive: true},
		"wh-dst": {ID: "wh-dst", Name: "Plataforma", CostCenter: "CC-1", WarehouseType: entity.WarehouseTypeSub, IsActive: true},
	}}
	stock := &fakeStockRepo{stock: map[stockKey]int64{
		{"prod-1", "wh-src"}: 10,
	}}
	orders := &fakeOrderRepo{orders: make(map[string]*entity.TransferOrder)}
	movements := &fakeMovementRepo{}
	tx := &fakeTxRunner{
		orderRepo:   orders,
		counterRepo: &fakeCounterRepo{counters: make(map[string]int)},
		movRepo:     movements,
		stockRepo:   stock,
		serialRepo:  fakeSerialRepo{},
	}
	uc := transfer.NewUseCase(tx, orders, products, warehouses, stock, transfer.NopMetrics{})
	return &fixture{uc: uc, orders: orders, stock: stock, movements: movements}
}

func createOrder(t *testing.T, f *fixture, quantity int64) *entity.TransferOrder {
	t.Helper()
	order, err := f.uc.Create(context.Background(), transfer.CreateInput{
		ProductID:              "prod-1",
		Quantity:               quantity,
		SourceWarehouseID:      "wh-src",
		DestinationWarehouseID: "wh-dst",
		RequesterID:            "user-1",
	})
	require.NoError(t, err)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La orden nace pendiente, con consecutivo OT-NNN y el centro de costo de la
// bodega de origen cuando no se indica otro.
func TestCreate_OrdenPendienteConConsecutivo(t *testing.T) {
	f := newFixture()

	first := createOrder(t, f, 3)
	assert.Equal(t, entity.TransferStatusPending, first.Status)
	assert.Equal(t, "OT-001", first.OrderNumber)
	assert.Equal(t, "CC-1", first.CostCenter, "hereda el centro de costo del origen")

	second := createOrder(t, f, 2)
	assert.Equal(t, "OT-002", second.OrderNumber, "el consecutivo avanza dentro del día")

	// Crear no mueve stock.
	src, err := f.stock.Get("prod-1", "wh-src")
	require.NoError(t, err)
	assert.Equal(t, int64(10), src.Quantity)
	assert.Empty(t, f.movements.movements)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		input transfer.CreateInput
		want  error
	}{
		{"cantidad cero", transfer.CreateInput{ProductID: "prod-1", Quantity: 0, SourceWarehouseID: "wh-src", DestinationWarehouseID: "wh-dst"}, domain.ErrInvalidInput},
		{"mismo origen y destino", transfer.CreateInput{ProductID: "prod-1", Quantity: 1, SourceWarehouseID: "wh-src", DestinationWarehouseID: "wh-src"}, domain.ErrInvalidInput},
		{"producto inexistente", transfer.CreateInput{ProductID: "nope", Quantity: 1, SourceWarehouseID: "wh-src", DestinationWarehouseID: "wh-dst"}, domain.ErrNotFound},
		{"saldo insuficiente", transfer.CreateInput{ProductID: "prod-1", Quantity: 99, SourceWarehouseID: "wh-src", DestinationWarehouseID: "wh-dst"}, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Aprobar emite salida en origen y entrada en destino, ambas referenciando la orden.
func TestSetStatus_AprobarEmiteMovimientos(t *testing.T) {
	f := newFixture()
	order := createOrder(t, f, 4)

	decided, err := f.uc.SetStatus(context.Background(), order.ID, entity.TransferStatusApproved, "pm-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusApproved, decided.Status)
	assert.Equal(t, "pm-1", decided.ProjectManagerID)

	src, _ := f.stock.Get("prod-1", "wh-src")
	dst, _ := f.stock.Get("prod-1", "wh-dst")
	assert.Equal(t, int64(6), src.Quantity)
	assert.Equal(t, int64(4), dst.Quantity)

	require.Len(t, f.movements.movements, 2)
	out, in := f.movements.movements[0], f.movements.movements[1]
	assert.Equal(t, entity.MovementTypeOUT, out.Type)
	assert.Equal(t, "wh-src", out.WarehouseID)
	assert.Equal(t, entity.MovementTypeIN, in.Type)
	assert.Equal(t, "wh-dst", in.WarehouseID)
	for _, mov := range f.movements.movements {
		assert.Equal(t, order.ID, mov.TransferOrderID, "el movimiento referencia la orden")
		assert.Equal(t, "traslado "+order.OrderNumber, mov.Reason)
		assert.Equal(t, "pm-1", mov.CreatedBy, "los asientos registran al decisor")
	}
}

// Rechazar no mueve stock ni emite movimientos.
func TestSetStatus_RechazarNoMueveStock(t *testing.T) {
	f := newFixture()
	order := createOrder(t, f, 4)

	decided, err := f.uc.SetStatus(context.Background(), order.ID, entity.TransferStatusRejected, "pm-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusRejected, decided.Status)

	src, _ := f.stock.Get("prod-1", "wh-src")
	assert.Equal(t, int64(10), src.Quantity)
	assert.Empty(t, f.movements.movements)
}

// Una orden decidida es terminal: la segunda decisión devuelve conflicto.
func TestSetStatus_OrdenDecididaEsTerminal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	order := createOrder(t, f, 2)

	_, err := f.uc.SetStatus(ctx, order.ID, entity.TransferStatusApproved, "pm-1")
	require.NoError(t, err)

	_, err = f.uc.SetStatus(ctx, order.ID, entity.TransferStatusRejected, "pm-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "rechazar una orden aprobada es conflicto")

	_, err = f.uc.SetStatus(ctx, order.ID, entity.TransferStatusApproved, "pm-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "re-aprobar también es conflicto")
}

// El saldo se reverifica al aprobar: si cayó después de crear la orden, la
// aprobación falla y el stock queda intacto.
func TestSetStatus_ReverificaSaldoAlAprobar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	order := createOrder(t, f, 8)

	// El stock de origen cae entre la creación y la decisión.
	f.stock.stock[stockKey{"prod-1", "wh-src"}] = 5

	_, err := f.uc.SetStatus(ctx, order.ID, entity.TransferStatusApproved, "pm-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := f.uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusPending, stored.Status, "la orden sigue pendiente")
	assert.Empty(t, f.movements.movements)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	f := newFixture()
	order := createOrder(t, f, 1)

	_, err := f.uc.SetStatus(context.Background(), order.ID, "pending", "pm-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pending no es una decisión")

	_, err = f.uc.SetStatus(context.Background(), order.ID, "cancelled", "pm-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStatus_OrdenInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.SetStatus(context.Background(), "no-existe", entity.TransferStatusApproved, "pm-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltroDeEstadoInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.uc.List("cancelled", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
