package ledger

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Apply calcula el nuevo saldo materializado tras un movimiento (servicio de dominio).
// Las salidas tienen piso en cero: el saldo almacenado nunca es negativo aunque
// el libro mayor implique un valor negativo.
func Apply(current int64, movementType string, quantity int64) int64 {
	switch movementType {
	case entity.MovementTypeIN:
		return current + quantity
	case entity.MovementTypeOUT:
		next := current - quantity
		if next < 0 {
			return 0
		}
		return next
	}
	return current
}

// IsLowStock indica si el saldo está en o por debajo del mínimo configurado del producto.
func IsLowStock(quantity, minStock int64) bool {
	return quantity <= minStock
}

// ValidateSerials verifica que una entrada serializada traiga exactamente
// `quantity` números de serie distintos y no vacíos. La unicidad contra los
// ya registrados del producto se verifica en la transacción de persistencia.
func ValidateSerials(quantity int64, serials []string) bool {
	if int64(len(serials)) != quantity {
		return false
	}
	seen := make(map[string]struct{}, len(serials))
	for _, s := range serials {
		if s == "" {
			return false
		}
		if _, dup := seen[s]; dup {
			return false
		}
		seen[s] = struct{}{}
	}
	return true
}
