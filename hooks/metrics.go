package hooks

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/avltree/avl"
)

// ErrNilRegisterer is returned by NewMetrics when reg is nil.
var ErrNilRegisterer = errors.New("hooks: registerer is nil")

// Metrics holds the Prometheus series fed by MetricsHooks.
type Metrics struct {
	Created   prometheus.Counter
	Removed   prometheus.Counter
	Rewrites  prometheus.Counter
	Rotations *prometheus.CounterVec // label: direction
	Nodes     prometheus.Gauge       // created - removed
}

// NewMetrics creates the series under namespace and registers them on reg.
// Registering the same namespace twice on one registry fails with the
// registry's AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	m := &Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "avl",
			Name:      "nodes_created_total",
			Help:      "Number of nodes allocated by insert",
		}),
		Removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "avl",
			Name:      "nodes_removed_total",
			Help:      "Number of values removed by delete",
		}),
		Rewrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "avl",
			Name:      "rewrites_total",
			Help:      "Number of duplicate inserts that overwrote a stored value",
		}),
		Rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "avl",
			Name:      "rotations_total",
			Help:      "Number of single rotations performed while rebalancing",
		}, []string{"direction"}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "avl",
			Name:      "nodes",
			Help:      "Nodes currently stored, as seen through hooks",
		}),
	}

	for _, c := range []prometheus.Collector{m.Created, m.Removed, m.Rewrites, m.Rotations, m.Nodes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("hooks: register metrics: %w", err)
		}
	}

	return m, nil
}

// MetricsHooks returns hooks that update m. Clear bypasses hooks, so the
// Nodes gauge is only accurate for trees that are never cleared; call
// m.Nodes.Set(0) after Clear to resynchronize.
func MetricsHooks[T cmp.Ordered](m *Metrics) avl.Hooks[T] {
	left := m.Rotations.WithLabelValues(avl.RotateLeft.String())
	right := m.Rotations.WithLabelValues(avl.RotateRight.String())

	return avl.Hooks[T]{
		OnCreate: func(T) {
			m.Created.Inc()
			m.Nodes.Inc()
		},
		OnRemove: func(T) {
			m.Removed.Inc()
			m.Nodes.Dec()
		},
		OnRewrite: func(T) {
			m.Rewrites.Inc()
		},
		OnRotate: func(dir avl.Rotation, _ T) {
			if dir == avl.RotateLeft {
				left.Inc()
				return
			}
			right.Inc()
		},
	}
}
