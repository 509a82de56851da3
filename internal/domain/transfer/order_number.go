package transfer

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Prefijo de las órdenes de traslado.
const OrderNumberPrefix = "OT"

var orderNumberPattern = regexp.MustCompile(`^OT-(\d{3,})$`)

// FormatOrderNumber construye el número de orden OT-NNN para el consecutivo
// diario n (1 -> OT-001). Por encima de 999 el número crece sin truncarse.
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("%s-%03d", OrderNumberPrefix, n)
}

// ParseOrderNumber extrae el consecutivo de un número de orden OT-NNN.
func ParseOrderNumber(s string) (int, error) {
	matches := orderNumberPattern.FindStringSubmatch(s)
	if len(matches) != 2 {
		return 0, fmt.Errorf("número de orden inválido: %s", s)
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("número de orden inválido: %s", s)
	}
	return n, nil
}

// IsDecision indica si un estado es una decisión válida sobre una orden pendiente.
func IsDecision(status string) bool {
	return status == entity.TransferStatusApproved || status == entity.TransferStatusRejected
}

// CanTransition indica si la transición de estado es legal.
// pending -> approved|rejected; approved y rejected son terminales.
func CanTransition(from, to string) bool {
	return from == entity.TransferStatusPending && IsDecision(to)
}
