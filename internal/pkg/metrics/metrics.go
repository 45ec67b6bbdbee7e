// Package metrics expõe contadores e medidores Prometheus da grade.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goarmazem"

// Metrics agrupa os coletores registrados num Registry próprio.
type Metrics struct {
	registry *prometheus.Registry

	Placements   *prometheus.CounterVec // por qualidade
	PlaceErrors  *prometheus.CounterVec // por categoria de erro
	Removals     prometheus.Counter
	OccupiedCell prometheus.Gauge
	Capacity     prometheus.Gauge
	Expiring     *prometheus.GaugeVec // por estado (expired, expiring)
}

// New cria os coletores e os registra. Cada chamada usa um Registry novo,
// o que permite instâncias independentes em testes.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placements_total",
			Help:      "Colocações bem-sucedidas por qualidade.",
		}, []string{"quality"}),
		PlaceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placement_errors_total",
			Help:      "Colocações recusadas por categoria de erro.",
		}, []string{"category"}),
		Removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removals_total",
			Help:      "Remoções de registros.",
		}),
		OccupiedCell: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupied_cells",
			Help:      "Células ocupadas na grade.",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_capacity_cells",
			Help:      "Total de células da grade.",
		}),
		Expiring: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "expiring_records",
			Help:      "Registros frágeis vencidos ou a vencer na última varredura.",
		}, []string{"state"}),
	}

	m.registry.MustRegister(
		m.Placements, m.PlaceErrors, m.Removals, m.OccupiedCell, m.Capacity, m.Expiring,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serve o endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry dá acesso ao registro (usado em testes com testutil).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
