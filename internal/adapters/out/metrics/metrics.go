// Package metrics exposes Prometheus counters for order status transitions,
// the outbox relay and the auto-assignment job.
package metrics

import (
	"context"
	"errors"
	"net/http"

	"laundry/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "laundry"

// Metrics holds the service collectors. It implements
// ports.OrderStatusSubscriber, so transitions are counted after commit.
type Metrics struct {
	registry        *prometheus.Registry
	transitions     *prometheus.CounterVec
	outboxPublished prometheus.Counter
	outboxFailures  prometheus.Counter
	assignments     *prometheus.CounterVec
}

// New creates the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		outboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox messages handed to the broker.",
		}),
		outboxFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_relay_failures_total",
			Help:      "Outbox relay runs that failed.",
		}),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auto_assign_runs_total",
			Help:      "Auto-assignment runs by outcome.",
		}, []string{"outcome"}),
	}

	if err := errors.Join(
		m.registry.Register(collectors.NewGoCollector()),
		m.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
		m.registry.Register(m.transitions),
		m.registry.Register(m.outboxPublished),
		m.registry.Register(m.outboxFailures),
		m.registry.Register(m.assignments),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) OnOrderStatusChanged(_ context.Context, event order.StatusChanged) error {
	m.transitions.WithLabelValues(event.From.String(), event.To.String()).Inc()
	return nil
}

// ObserveOutboxRelay records one relay run.
func (m *Metrics) ObserveOutboxRelay(published int, err error) {
	if err != nil {
		m.outboxFailures.Inc()
		return
	}
	m.outboxPublished.Add(float64(published))
}

// ObserveAutoAssign records one auto-assignment run by outcome label.
func (m *Metrics) ObserveAutoAssign(outcome string) {
	m.assignments.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
