package scores

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "scores",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type metrics struct{ s Store }

func (m *metrics) Load(c context.Context) (Table, error) {
	defer instrument("Load")()
	return m.s.Load(c)
}

func (m *metrics) Save(c context.Context, t Table) error {
	defer instrument("Save")()
	return m.s.Save(c, t)
}

// Close closes the wrapped store if it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
