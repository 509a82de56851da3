package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/ledger"
)

// El saldo materializado debe cumplir quantity == max(0, Σ(in) - Σ(out))
// después de cualquier secuencia de movimientos.
func TestApply_SecuenciaDeMovimientos(t *testing.T) {
	type mov struct {
		tipo string
		qty  int64
	}
	secuencia := []mov{
		{entity.MovementTypeIN, 10},
		{entity.MovementTypeOUT, 4},
		{entity.MovementTypeIN, 3},
		{entity.MovementTypeOUT, 20}, // más que el saldo: piso en cero
		{entity.MovementTypeIN, 5},
	}

	var saldo int64
	for _, m := range secuencia {
		saldo = ledger.Apply(saldo, m.tipo, m.qty)
		assert.GreaterOrEqual(t, saldo, int64(0), "el saldo nunca debe ser negativo")
	}
	assert.Equal(t, int64(5), saldo)
}

func TestApply_EntradaSuma(t *testing.T) {
	assert.Equal(t, int64(17), ledger.Apply(10, entity.MovementTypeIN, 7))
}

func TestApply_SalidaResta(t *testing.T) {
	assert.Equal(t, int64(6), ledger.Apply(10, entity.MovementTypeOUT, 4))
}

func TestApply_SalidaMayorQueSaldo_PisoEnCero(t *testing.T) {
	assert.Equal(t, int64(0), ledger.Apply(3, entity.MovementTypeOUT, 10),
		"una salida mayor que el saldo debe dejar el saldo en cero, no negativo")
}

func TestApply_TipoDesconocido_NoCambiaSaldo(t *testing.T) {
	assert.Equal(t, int64(8), ledger.Apply(8, "ajuste", 5))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, ledger.IsLowStock(2, 5))
	assert.True(t, ledger.IsLowStock(5, 5), "igual al mínimo cuenta como stock bajo")
	assert.False(t, ledger.IsLowStock(6, 5))
}

func TestValidateSerials(t *testing.T) {
	assert.True(t, ledger.ValidateSerials(3, []string{"SN001", "SN002", "SN003"}))
	assert.False(t, ledger.ValidateSerials(3, []string{"SN001", "SN002"}),
		"deben venir exactamente quantity seriales")
	assert.False(t, ledger.ValidateSerials(2, []string{"SN001", "SN001"}),
		"seriales repetidos no son válidos")
	assert.False(t, ledger.ValidateSerials(1, []string{""}))
	assert.True(t, ledger.ValidateSerials(0, nil))
}
