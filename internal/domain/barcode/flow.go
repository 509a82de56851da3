package barcode

import (
	"context"
	"errors"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ErrInvalidTransition se devuelve cuando un evento no es legal en el estado actual.
var ErrInvalidTransition = errors.New("transición de escaneo inválida")

// State estado del flujo de asociación de códigos de barras (enum tipado:
// los estados ilegales no son representables y cada evento valida el estado de origen).
type State int

const (
	StateIdle State = iota
	StateScanning
	StateSearching
	StateProductFound
	StateProductNotFound
	StateAssociatingExisting
	StateCreatingNew
)

// String nombre legible del estado.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateSearching:
		return "searching"
	case StateProductFound:
		return "product-found"
	case StateProductNotFound:
		return "product-not-found"
	case StateAssociatingExisting:
		return "associating-existing"
	case StateCreatingNew:
		return "creating-new"
	}
	return "unknown"
}

// ProductFinder puerto de búsqueda de productos por código de barras.
// Devuelve (nil, nil) cuando no existe producto activo con ese código.
type ProductFinder interface {
	FindByBarcode(ctx context.Context, code string) (*entity.Product, error)
}

// Flow orquesta la secuencia idle → scanning → searching → found/not-found →
// associating/creating → idle. No persiste nada por sí mismo: las acciones
// finales pasan por el catálogo de productos vía ProductFinder y el callback.
type Flow struct {
	finder ProductFinder

	// OnProductSelected se invoca al completar la asociación o la creación.
	OnProductSelected func(p *entity.Product)

	state State
	code  string
	found *entity.Product
}

// NewFlow construye el flujo en estado idle.
func NewFlow(finder ProductFinder) *Flow {
	return &Flow{finder: finder, state: StateIdle}
}

// State estado actual.
func (f *Flow) State() State { return f.state }

// Code último código leído (vacío en idle).
func (f *Flow) Code() string { return f.code }

// Found producto encontrado por la búsqueda, si lo hubo.
func (f *Flow) Found() *entity.Product { return f.found }

// StartScan el usuario inicia el escaneo: idle → scanning.
func (f *Flow) StartScan() error {
	if f.state != StateIdle {
		return ErrInvalidTransition
	}
	f.state = StateScanning
	return nil
}

// CodeRead la cámara leyó un código: scanning → searching → found/not-found.
// La búsqueda se resuelve en el mismo evento; un error del buscador devuelve
// el flujo a scanning para reintentar la lectura.
func (f *Flow) CodeRead(ctx context.Context, code string) error {
	if f.state != StateScanning {
		return ErrInvalidTransition
	}
	if code == "" {
		return ErrInvalidTransition
	}
	f.state = StateSearching
	f.code = code

	p, err := f.finder.FindByBarcode(ctx, code)
	if err != nil {
		f.state = StateScanning
		return err
	}
	if p != nil {
		f.found = p
		f.state = StateProductFound
	} else {
		f.state = StateProductNotFound
	}
	return nil
}

// ChooseAssociate el usuario decide vincular el código a un producto existente
// sin código: product-not-found → associating-existing.
func (f *Flow) ChooseAssociate() error {
	if f.state != StateProductNotFound {
		return ErrInvalidTransition
	}
	f.state = StateAssociatingExisting
	return nil
}

// ChooseCreate el usuario decide crear un producto nuevo prellenado con el
// código: product-not-found → creating-new.
func (f *Flow) ChooseCreate() error {
	if f.state != StateProductNotFound {
		return ErrInvalidTransition
	}
	f.state = StateCreatingNew
	return nil
}

// Complete cierra el flujo con el producto elegido o creado y vuelve a idle.
// Válido desde product-found, associating-existing y creating-new.
func (f *Flow) Complete(p *entity.Product) error {
	switch f.state {
	case StateProductFound, StateAssociatingExisting, StateCreatingNew:
	default:
		return ErrInvalidTransition
	}
	if f.OnProductSelected != nil && p != nil {
		f.OnProductSelected(p)
	}
	f.reset()
	return nil
}

// Cancel aborta el flujo desde cualquier estado y vuelve a idle.
func (f *Flow) Cancel() {
	f.reset()
}

func (f *Flow) reset() {
	f.state = StateIdle
	f.code = ""
	f.found = nil
}
