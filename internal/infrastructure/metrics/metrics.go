package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores Prometheus del almacén. Implementa los puertos de
// métricas de los casos de uso de inventario y traslados.
type Metrics struct {
	movementsApplied *prometheus.CounterVec
	transfersDecided *prometheus.CounterVec
}

// New registra los contadores en el registrador por defecto.
func New() *Metrics {
	return &Metrics{
		movementsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "almacen",
			Name:      "inventory_movements_total",
			Help:      "Movimientos de inventario aplicados, por tipo (in/out).",
		}, []string{"type"}),
		transfersDecided: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "almacen",
			Name:      "transfer_orders_decided_total",
			Help:      "Órdenes de traslado decididas, por estado final.",
		}, []string{"status"}),
	}
}

// MovementApplied registra un movimiento aplicado del tipo dado.
func (m *Metrics) MovementApplied(movementType string) {
	m.movementsApplied.WithLabelValues(movementType).Inc()
}

// TransferDecided registra una orden decidida con el estado dado.
func (m *Metrics) TransferDecided(status string) {
	m.transfersDecided.WithLabelValues(status).Inc()
}
