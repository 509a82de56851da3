package barcode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/barcode"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// finderStub implementación de ProductFinder para tests.
type finderStub struct {
	product *entity.Product
	err     error
}

func (f *finderStub) FindByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return f.product, f.err
}

func TestFlow_CodigoConocido_TerminaEnFound(t *testing.T) {
	p := &entity.Product{ID: "p1", Name: "Widget", Barcode: "7701234567890"}
	f := barcode.NewFlow(&finderStub{product: p})

	require.NoError(t, f.StartScan())
	assert.Equal(t, barcode.StateScanning, f.State())

	require.NoError(t, f.CodeRead(context.Background(), "7701234567890"))
	assert.Equal(t, barcode.StateProductFound, f.State())
	assert.Equal(t, p, f.Found())

	var selected *entity.Product
	f.OnProductSelected = func(p *entity.Product) { selected = p }
	require.NoError(t, f.Complete(p))

	assert.Equal(t, p, selected, "completar debe disparar el callback con el producto")
	assert.Equal(t, barcode.StateIdle, f.State(), "al completar, el flujo vuelve a idle")
	assert.Empty(t, f.Code())
}

func TestFlow_CodigoDesconocido_AsociarExistente(t *testing.T) {
	f := barcode.NewFlow(&finderStub{}) // sin producto: not-found

	require.NoError(t, f.StartScan())
	require.NoError(t, f.CodeRead(context.Background(), "123"))
	assert.Equal(t, barcode.StateProductNotFound, f.State())

	require.NoError(t, f.ChooseAssociate())
	assert.Equal(t, barcode.StateAssociatingExisting, f.State())

	p := &entity.Product{ID: "p2", Name: "Sin código"}
	require.NoError(t, f.Complete(p))
	assert.Equal(t, barcode.StateIdle, f.State())
}

func TestFlow_CodigoDesconocido_CrearNuevo(t *testing.T) {
	f := barcode.NewFlow(&finderStub{})

	require.NoError(t, f.StartScan())
	require.NoError(t, f.CodeRead(context.Background(), "456"))
	require.NoError(t, f.ChooseCreate())
	assert.Equal(t, barcode.StateCreatingNew, f.State())
	assert.Equal(t, "456", f.Code(), "el código leído queda disponible para prellenar el formulario")
}

func TestFlow_ErrorDeBusqueda_VuelveAScanning(t *testing.T) {
	f := barcode.NewFlow(&finderStub{err: errors.New("timeout")})

	require.NoError(t, f.StartScan())
	err := f.CodeRead(context.Background(), "789")
	assert.Error(t, err)
	assert.Equal(t, barcode.StateScanning, f.State(),
		"un fallo del buscador permite reintentar la lectura")
}

func TestFlow_EventosIlegales(t *testing.T) {
	f := barcode.NewFlow(&finderStub{})

	// En idle solo StartScan es legal.
	assert.ErrorIs(t, f.CodeRead(context.Background(), "1"), barcode.ErrInvalidTransition)
	assert.ErrorIs(t, f.ChooseAssociate(), barcode.ErrInvalidTransition)
	assert.ErrorIs(t, f.ChooseCreate(), barcode.ErrInvalidTransition)
	assert.ErrorIs(t, f.Complete(&entity.Product{}), barcode.ErrInvalidTransition)

	require.NoError(t, f.StartScan())
	assert.ErrorIs(t, f.StartScan(), barcode.ErrInvalidTransition, "no se puede iniciar dos veces")
	assert.ErrorIs(t, f.CodeRead(context.Background(), ""), barcode.ErrInvalidTransition,
		"un código vacío no es una lectura")
}

func TestFlow_CancelDesdeCualquierEstado(t *testing.T) {
	f := barcode.NewFlow(&finderStub{})
	require.NoError(t, f.StartScan())
	require.NoError(t, f.CodeRead(context.Background(), "999"))
	require.NoError(t, f.ChooseCreate())

	f.Cancel()
	assert.Equal(t, barcode.StateIdle, f.State())
	assert.Empty(t, f.Code())
}

func TestState_String(t *testing.T) {
	names := map[barcode.State]string{
		barcode.StateIdle:                "idle",
		barcode.StateScanning:            "scanning",
		barcode.StateSearching:           "searching",
		barcode.StateProductFound:        "product-found",
		barcode.StateProductNotFound:     "product-not-found",
		barcode.StateAssociatingExisting: "associating-existing",
		barcode.StateCreatingNew:         "creating-new",
	}
	for state, name := range names {
		assert.Equal(t, name, state.String())
	}
}
