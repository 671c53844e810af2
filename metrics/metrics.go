// Package metrics exports branch-and-bound search events to Prometheus.
//
// *Metrics implements bnb.Recorder; pass it with bnb.WithRecorder. Collectors
// are registered on the Registerer given to New, so tests and embedders can
// use a private prometheus.Registry instead of the global one.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lpclique/bnb"
)

const (
	namespace = "lpclique"
	subsystem = "search"
)

// Metrics holds the search collectors.
type Metrics struct {
	Nodes         prometheus.Counter
	PrunedTotal   *prometheus.CounterVec // label: reason
	Depth         prometheus.Histogram
	Objective     prometheus.Gauge // last relaxation optimum seen
	IncumbentSize prometheus.Gauge
	Improvements  prometheus.Counter
	Runs          *prometheus.CounterVec // label: outcome
	RunDuration   prometheus.Histogram
}

var _ bnb.Recorder = (*Metrics)(nil)

// New creates and registers the collectors on reg.
// promauto panics if a collector is already registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Nodes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_total",
			Help:      "Search nodes whose relaxation was solved",
		}),
		PrunedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pruned_total",
			Help:      "Search nodes closed without branching, by reason",
		}, []string{"reason"}),
		Depth: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "node_depth",
			Help:      "Depth of solved search nodes",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Objective: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "last_objective",
			Help:      "Most recent relaxation optimum",
		}),
		IncumbentSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "incumbent_size",
			Help:      "Size of the best clique found so far",
		}),
		Improvements: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "incumbent_improvements_total",
			Help:      "Strict improvements of the incumbent clique",
		}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Finished searches by outcome (complete, interrupted, failed)",
		}, []string{"outcome"}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a search",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}
}

// NodeSolved implements bnb.Recorder.
func (m *Metrics) NodeSolved(depth int, objective float64) {
	m.Nodes.Inc()
	m.Depth.Observe(float64(depth))
	m.Objective.Set(objective)
}

// Pruned implements bnb.Recorder.
func (m *Metrics) Pruned(reason bnb.PruneReason) {
	m.PrunedTotal.WithLabelValues(reason.String()).Inc()
}

// IncumbentImproved implements bnb.Recorder.
func (m *Metrics) IncumbentImproved(size int) {
	m.Improvements.Inc()
	m.IncumbentSize.Set(float64(size))
}

// Outcome labels for ObserveRun.
const (
	OutcomeComplete    = "complete"
	OutcomeInterrupted = "interrupted"
	OutcomeFailed      = "failed"
)

// ObserveRun records one finished search.
func (m *Metrics) ObserveRun(outcome string, elapsed time.Duration) {
	m.Runs.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}
