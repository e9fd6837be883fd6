// Package metrics expone contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores de operaciones del inventario.
type Metrics struct {
	Mutations       *prometheus.CounterVec
	PersistFailures prometheus.Counter
	SeedLoads       prometheus.Counter
}

// New registra los contadores en el registrador indicado (para tests se puede
// pasar un prometheus.NewRegistry propio).
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inventario_mutations_total",
			Help: "Mutaciones aplicadas al inventario, por operación.",
		}, []string{"op"}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "inventario_persist_failures_total",
			Help: "Escrituras al almacén clave-valor que fallaron.",
		}),
		SeedLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "inventario_seed_loads_total",
			Help: "Arranques que sembraron los datos de ejemplo.",
		}),
	}
}
