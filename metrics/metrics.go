// Package metrics exports pushdown machine activity as Prometheus metrics.
package metrics

import (
	"github.com/enetx/pushdown"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors fed by machine transition hooks.
type Metrics struct {
	transitions *prometheus.CounterVec
	depth       *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pushdown_transitions_total",
			Help: "Total number of applied stack transitions by machine, kind and state",
		}, []string{"machine", "kind", "state"}),

		depth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pushdown_stack_depth",
			Help: "Current stack depth by machine",
		}, []string{"machine"}),
	}
}

// Hook returns a transition hook that records into m under the given machine label.
func (m *Metrics) Hook(machine string) pushdown.TransitionHook {
	machine = sanitizeMachine(machine)

	return func(r pushdown.Record) {
		m.transitions.WithLabelValues(machine, r.Kind.String(), sanitizeState(string(r.State))).Inc()
		m.depth.WithLabelValues(machine).Set(float64(r.Depth))
	}
}

// Attach registers a hook on pm and seeds the depth gauge with its current depth.
func (m *Metrics) Attach(machine string, pm *pushdown.Machine) *pushdown.Machine {
	m.depth.WithLabelValues(sanitizeMachine(machine)).Set(float64(pm.Len()))

	return pm.OnTransition(m.Hook(machine))
}

func sanitizeMachine(machine string) string {
	if machine == "" {
		return "default"
	}

	return machine
}

func sanitizeState(state string) string {
	if state == "" {
		return "none"
	}

	return state
}
