package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus instruments the engine updates once per tick
// (§5: "the SAT solver... is the dominant cost").
type Metrics struct {
	TicksTotal     prometheus.Counter
	SATCallsTotal  prometheus.Counter
	RebuildSeconds prometheus.Histogram
	WumpusKills    prometheus.Counter
}

// NewMetrics builds and registers the engine's instruments against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wumpus_ticks_total",
			Help: "Total number of controller ticks executed.",
		}),
		SATCallsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wumpus_sat_calls_total",
			Help: "Total number of entailment-oracle solver invocations.",
		}),
		RebuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wumpus_rebuild_seconds",
			Help:    "Wall-clock time spent in Step, dominated by knowledge rebuilds.",
			Buckets: prometheus.DefBuckets,
		}),
		WumpusKills: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wumpus_kills_total",
			Help: "Total number of wumpuses killed by shooting.",
		}),
	}

	reg.MustRegister(m.TicksTotal, m.SATCallsTotal, m.RebuildSeconds, m.WumpusKills)

	return m
}
