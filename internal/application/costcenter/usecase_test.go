package costcenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/costcenter"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeWarehouseRepo repositorio de bodegas en memoria para los tests.
type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	if w.WarehouseType == entity.WarehouseTypeMain {
		for _, existing := range f.warehouses {
			if existing.CostCenter == w.CostCenter && existing.WarehouseType == entity.WarehouseTypeMain && existing.IsActive {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *w
	f.warehouses[w.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := f.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWarehouseRepo) GetMainByCostCenter(costCenter string) (*entity.Warehouse, error) {
	for _, w := range f.warehouses {
		if w.CostCenter == costCenter && w.WarehouseType == entity.WarehouseTypeMain && w.IsActive {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) ListByCostCenter(costCenter string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.CostCenter == costCenter && w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	f.warehouses[w.ID] = &cp
	return nil
}

func (f *fakeWarehouseRepo) SoftDelete(id string) error {
	if w, ok := f.warehouses[id]; ok {
		w.IsActive = false
	}
	return nil
}

func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		if w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente contra el repo en memoria.
type fakeTxRunner struct {
	repo repository.WarehouseRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.WarehouseRepository) error) error {
	return fn(f.repo)
}

func newCostCenterUC(repo *fakeWarehouseRepo) *costcenter.UseCase {
	return costcenter.NewUseCase(&fakeTxRunner{repo: repo}, repo)
}

// El bootstrap de un centro nuevo crea exactamente cinco bodegas: la
// principal más las cuatro secundarias fijas.
func TestEnsurePrincipal_CreaPrincipalYSecundarias(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := newCostCenterUC(repo)

	warehouses, err := uc.EnsurePrincipal(context.Background(), "CC-100", "Bogotá")
	require.NoError(t, err)
	require.Len(t, warehouses, 5, "deben crearse la principal y las 4 secundarias")

	var main *entity.Warehouse
	subTypes := make(map[string]bool)
	for _, w := range warehouses {
		assert.Equal(t, "CC-100", w.CostCenter)
		assert.True(t, w.IsActive)
		switch w.WarehouseType {
		case entity.WarehouseTypeMain:
			require.Nil(t, main, "solo puede haber una bodega principal")
			main = w
		case entity.WarehouseTypeSub:
			subTypes[w.SubWarehouseType] = true
		}
	}
	require.NotNil(t, main)
	assert.Equal(t, "Bodega Principal CC-100", main.Name)

	for _, st := range entity.SubWarehouseTypes {
		assert.True(t, subTypes[st], "falta la bodega secundaria %q", st)
	}
	for _, w := range warehouses {
		if w.WarehouseType == entity.WarehouseTypeSub {
			assert.Equal(t, main.ID, w.ParentWarehouseID,
				"toda secundaria cuelga de la principal")
		}
	}
}

// Un segundo bootstrap del mismo centro no crea bodegas nuevas.
func TestEnsurePrincipal_EsIdempotente(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := newCostCenterUC(repo)

	first, err := uc.EnsurePrincipal(context.Background(), "CC-200", "")
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := uc.EnsurePrincipal(context.Background(), "CC-200", "")
	require.NoError(t, err)
	assert.Len(t, second, 5, "el segundo bootstrap devuelve las bodegas existentes")
	assert.Len(t, repo.warehouses, 5, "no deben crearse bodegas adicionales")
}

func TestEnsurePrincipal_CentroVacioEsInvalido(t *testing.T) {
	uc := newCostCenterUC(newFakeWarehouseRepo())

	_, err := uc.EnsurePrincipal(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Dos centros de costo distintos conviven, cada uno con su principal.
func TestEnsurePrincipal_CentrosIndependientes(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := newCostCenterUC(repo)

	_, err := uc.EnsurePrincipal(context.Background(), "CC-A", "")
	require.NoError(t, err)
	_, err = uc.EnsurePrincipal(context.Background(), "CC-B", "")
	require.NoError(t, err)

	mainA, err := repo.GetMainByCostCenter("CC-A")
	require.NoError(t, err)
	mainB, err := repo.GetMainByCostCenter("CC-B")
	require.NoError(t, err)
	require.NotNil(t, mainA)
	require.NotNil(t, mainB)
	assert.NotEqual(t, mainA.ID, mainB.ID)
}
