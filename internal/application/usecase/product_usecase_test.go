package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// fakeProductRepo en memoria. GetByBarcode respeta el contrato del puerto:
// solo productos activos.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Barcode == barcode && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(id string) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type priceKey struct {
	productID   string
	year, month int
}

type fakePriceRepo struct {
	prices map[priceKey]*entity.ProductPrice
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{prices: make(map[priceKey]*entity.ProductPrice)}
}

func (f *fakePriceRepo) Upsert(p *entity.ProductPrice) error {
	cp := *p
	f.prices[priceKey{p.ProductID, p.Year, p.Month}] = &cp
	return nil
}

func (f *fakePriceRepo) Get(productID string, year, month int) (*entity.ProductPrice, error) {
	p, ok := f.prices[priceKey{productID, year, month}]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePriceRepo) ListByProduct(productID string) ([]*entity.ProductPrice, error) {
	var out []*entity.ProductPrice
	for _, p := range f.prices {
		if p.ProductID == productID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo, *fakePriceRepo) {
	repo := newFakeProductRepo()
	prices := newFakePriceRepo()
	return usecase.NewProductUseCase(repo, prices), repo, prices
}

func mustCreate(t *testing.T, uc *usecase.ProductUseCase, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	p, err := uc.Create(in)
	require.NoError(t, err)
	return p
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, _ := newProductUC()
	mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc, _, _ := newProductUC()

	cases := []struct {
		name  string
		input dto.CreateProductRequest
	}{
		{"sin sku", dto.CreateProductRequest{Name: "Router"}},
		{"sin nombre", dto.CreateProductRequest{SKU: "SKU-1"}},
		{"tipo desconocido", dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", ProductType: "virtual"}},
		{"min negativo", dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", MinStock: -1}},
		{"max menor que min", dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", MinStock: 5, MaxStock: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_TipoPorDefectoTangible(t *testing.T) {
	uc, _, _ := newProductUC()
	p := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})
	assert.Equal(t, entity.ProductTypeTangible, p.ProductType)
	assert.True(t, p.IsActive)
}

func TestProductCreate_BarcodeDeOtroActivo(t *testing.T) {
	uc, _, _ := newProductUC()
	mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", Barcode: "750123"})

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-2", Name: "Switch", Barcode: "750123"})
	assert.ErrorIs(t, err, domain.ErrBarcodeInUse)
}

func TestAssignBarcode(t *testing.T) {
	uc, _, _ := newProductUC()
	a := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})
	b := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-2", Name: "Switch"})

	assigned, err := uc.AssignBarcode(a.ID, "750123")
	require.NoError(t, err)
	assert.Equal(t, "750123", assigned.Barcode)

	// Reasignar el mismo código al mismo producto es idempotente.
	again, err := uc.AssignBarcode(a.ID, "750123")
	require.NoError(t, err)
	assert.Equal(t, "750123", again.Barcode)

	// Pero el código de un producto activo no puede pasar a otro.
	_, err = uc.AssignBarcode(b.ID, "750123")
	assert.ErrorIs(t, err, domain.ErrBarcodeInUse)

	_, err = uc.AssignBarcode(a.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La baja lógica libera el código de barras: un producto nuevo puede tomarlo.
func TestSoftDelete_LiberaBarcode(t *testing.T) {
	uc, _, _ := newProductUC()
	a := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", Barcode: "750123"})

	require.NoError(t, uc.SoftDelete(a.ID))

	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "el producto dado de baja ya no se lee")

	b, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-2", Name: "Switch", Barcode: "750123"})
	require.NoError(t, err)
	assert.Equal(t, "750123", b.Barcode)
}

func TestSoftDelete_NoExiste(t *testing.T) {
	uc, _, _ := newProductUC()
	assert.ErrorIs(t, uc.SoftDelete("no-existe"), domain.ErrNotFound)
}

func TestSetPrice_MesEnCursoPorDefecto(t *testing.T) {
	uc, _, prices := newProductUC()
	p := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})

	set, err := uc.SetPrice(p.ID, dto.SetPriceRequest{Price: decimal.NewFromInt(125)})
	require.NoError(t, err)
	assert.NotZero(t, set.Year)
	assert.NotZero(t, set.Month)
	assert.True(t, set.Price.Equal(decimal.NewFromInt(125)))

	stored, err := prices.Get(p.ID, set.Year, set.Month)
	require.NoError(t, err)
	require.NotNil(t, stored)

	current, err := uc.CurrentPrice(p.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.Price.Equal(decimal.NewFromInt(125)))
}

func TestSetPrice_Validaciones(t *testing.T) {
	uc, _, _ := newProductUC()
	p := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})

	_, err := uc.SetPrice(p.ID, dto.SetPriceRequest{Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetPrice(p.ID, dto.SetPriceRequest{Month: 13, Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetPrice("no-existe", dto.SetPriceRequest{Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCurrentPrice_SinPrecioDelMes(t *testing.T) {
	uc, _, _ := newProductUC()
	p := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router"})

	current, err := uc.CurrentPrice(p.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUpdate_ParcialYTipoInvalido(t *testing.T) {
	uc, _, _ := newProductUC()
	p := mustCreate(t, uc, dto.CreateProductRequest{SKU: "SKU-1", Name: "Router", Description: "original"})

	name := "Router AC"
	updated, err := uc.Update(p.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Router AC", updated.Name)
	assert.Equal(t, "original", updated.Description, "los campos no enviados no cambian")

	bad := "virtual"
	_, err = uc.Update(p.ID, dto.UpdateProductRequest{ProductType: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
