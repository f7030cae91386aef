package elimination

import "github.com/prometheus/client_golang/prometheus"

// Query outcomes recorded by Metrics.
const (
	OutcomeDominated  = "dominated"  // eliminated by a single team, no solver run
	OutcomeLeader     = "leader"     // nobody can pass the team, no solver run
	OutcomeEliminated = "eliminated" // eliminated by the flow check
	OutcomeContender  = "contender"  // survived the flow check
)

// Metrics counts elimination queries and the solver work they caused.
type Metrics struct {
	Queries       *prometheus.CounterVec
	SolverRuns    prometheus.Counter
	Augmentations prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is what tests usually want.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "elimination",
			Name:      "queries_total",
			Help:      "Elimination queries by outcome.",
		}, []string{"outcome"}),
		SolverRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "elimination",
			Name:      "solver_runs_total",
			Help:      "Max-flow computations performed.",
		}),
		Augmentations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "elimination",
			Name:      "augmentations_total",
			Help:      "Augmenting pushes performed across all solver runs.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Queries, m.SolverRuns, m.Augmentations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) recordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) recordSolve(augmentations int) {
	if m == nil {
		return
	}
	m.SolverRuns.Inc()
	m.Augmentations.Add(float64(augmentations))
}
