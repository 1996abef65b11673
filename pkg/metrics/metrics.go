// Package metrics exposes Prometheus counters for command handling.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "assistente_gestao"

// Command outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics owns a private registry so tests and multiple servers do not collide.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	tasks    *prometheus.CounterVec
}

// New creates the registry with Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled, by action kind and outcome.",
		}, []string{"kind", "outcome"}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_operations_total",
			Help:      "Task storage operations, by operation.",
		}, []string{"operation"}),
	}
	reg.MustRegister(
		m.commands,
		m.tasks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCommand counts one handled command. kind is empty for unrecognised input.
func (m *Metrics) ObserveCommand(kind, outcome string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "unknown"
	}
	m.commands.WithLabelValues(kind, outcome).Inc()
}

// ObserveTaskOperation counts one write to task storage.
func (m *Metrics) ObserveTaskOperation(operation string) {
	if m == nil {
		return
	}
	m.tasks.WithLabelValues(operation).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
