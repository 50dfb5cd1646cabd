package session

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "ticks_total",
			Help:      "Ticks applied to running rounds.",
		},
	)
	roundsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "rounds_started_total",
			Help:      "Rounds started, by game mode.",
		},
		[]string{"mode"},
	)
	roundsEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "rounds_ended_total",
			Help:      "Rounds ended, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(ticks, roundsStarted, roundsEnded)
}
