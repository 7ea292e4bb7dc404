// Package metrics exposes prometheus counters for the resource layer. The
// interesting signal is whether a response was served by the live resource
// server or by the fallback store; the original product only logged that to a
// console, which nothing could observe.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the resource-layer metrics. A nil *Collector is valid and
// records nothing, so wiring metrics stays optional.
type Collector struct {
	resourceResults *prometheus.CounterVec
}

// NewCollector registers the collectors on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		resourceResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mercado_resource_results_total",
				Help: "Resource operations by entity kind, operation and serving source.",
			},
			[]string{"kind", "operation", "source"},
		),
	}
	reg.MustRegister(c.resourceResults)
	return c
}

// RecordResult counts one completed resource operation.
func (c *Collector) RecordResult(kind, operation, source string) {
	if c == nil {
		return
	}
	c.resourceResults.WithLabelValues(kind, operation, source).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
