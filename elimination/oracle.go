package elimination

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/internal/logging"
	"github.com/katalvlaran/elimination/standings"
)

// Oracle answers elimination queries over one Division.
type Oracle struct {
	division *standings.Division
	solve    flow.Solver
	logger   *slog.Logger
	metrics  *Metrics
	flowOpts []flow.Option
}

// New returns an Oracle for d. Without options it uses Edmonds–Karp, no
// logging and unregistered metrics.
func New(d *standings.Division, opts ...Option) (*Oracle, error) {
	if d == nil {
		return nil, ErrNilDivision
	}
	o := &Oracle{division: d, solve: flow.EdmondsKarp}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		m, err := NewMetrics(nil)
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}

	return o, nil
}

// Division returns the standings the Oracle reasons about.
func (o *Oracle) Division() *standings.Division { return o.division }

// IsEliminated reports whether team can no longer finish first.
// Unknown or empty names fail with standings.ErrInvalidArgument.
func (o *Oracle) IsEliminated(ctx context.Context, team string) (bool, error) {
	v, err := o.Evaluate(ctx, team)
	if err != nil {
		return false, err
	}

	return v.Eliminated, nil
}

// Certificate returns the teams that together prove team is eliminated, in
// index order. A team that is not eliminated has a nil certificate.
func (o *Oracle) Certificate(ctx context.Context, team string) ([]string, error) {
	v, err := o.Evaluate(ctx, team)
	if err != nil {
		return nil, err
	}

	return v.Certificate, nil
}

// Evaluate computes the verdict and certificate for team with at most one
// solver run.
func (o *Oracle) Evaluate(ctx context.Context, team string) (Verdict, error) {
	x, err := o.division.Index(team)
	if err != nil {
		return Verdict{}, err
	}

	return o.evaluate(ctx, x)
}

// EvaluateAll evaluates every team sequentially in index order. The first
// error aborts the run.
func (o *Oracle) EvaluateAll(ctx context.Context) ([]Verdict, error) {
	n := o.division.NumberOfTeams()
	out := make([]Verdict, 0, n)
	for x := 0; x < n; x++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := o.evaluate(ctx, x)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func (o *Oracle) evaluate(ctx context.Context, x int) (Verdict, error) {
	d := o.division
	v := Verdict{Team: d.Name(x)}

	if i, ok := dominator(d, x); ok {
		v.Eliminated, v.Trivial = true, true
		v.Certificate = []string{d.Name(i)}
		o.record(OutcomeDominated, v)
		return v, nil
	}
	if uncatchable(d, x) {
		v.Trivial = true
		o.record(OutcomeLeader, v)
		return v, nil
	}

	nw, err := BuildNetwork(d, x)
	if err != nil {
		return Verdict{}, err
	}
	opts := append([]flow.Option{flow.WithContext(ctx)}, o.flowOpts...)
	res, err := o.solve(nw.Graph, nw.Source, nw.Sink, opts...)
	if err != nil {
		return Verdict{}, fmt.Errorf("elimination: solving for %q: %w", v.Team, err)
	}
	o.metrics.recordSolve(res.Augmentations())

	v.MaxFlow, v.SourceCapacity = res.Value(), nw.SourceCapacity
	if v.MaxFlow >= v.SourceCapacity {
		o.record(OutcomeContender, v)
		return v, nil
	}

	v.Eliminated = true
	for _, i := range nw.CutTeams(res) {
		v.Certificate = append(v.Certificate, d.Name(i))
	}
	if len(v.Certificate) == 0 {
		return Verdict{}, fmt.Errorf("%w: %q (max flow %d < %d)", ErrEmptyCertificate, v.Team, v.MaxFlow, v.SourceCapacity)
	}
	o.record(OutcomeEliminated, v)

	return v, nil
}

func (o *Oracle) record(outcome string, v Verdict) {
	o.metrics.recordOutcome(outcome)
	logging.Debug(o.logger, "elimination verdict",
		logging.FieldTeam, v.Team,
		logging.FieldEliminated, v.Eliminated,
		logging.FieldTrivial, v.Trivial,
		logging.FieldCertificate, v.Certificate,
		logging.FieldMaxFlow, v.MaxFlow,
		logging.FieldSourceCapacity, v.SourceCapacity,
		"outcome", outcome,
	)
}

// dominator returns the first team that already has more wins than x can
// still reach.
func dominator(d *standings.Division, x int) (int, bool) {
	best := d.MaxWins(x)
	for i := 0; i < d.NumberOfTeams(); i++ {
		if i != x && d.WinsAt(i) > best {
			return i, true
		}
	}

	return -1, false
}

// uncatchable reports whether no other team can finish with more wins than
// x's best total. Every game among the others then fits under the sink
// capacities, so the flow check could only confirm x is alive.
func uncatchable(d *standings.Division, x int) bool {
	best := d.MaxWins(x)
	for i := 0; i < d.NumberOfTeams(); i++ {
		if i != x && d.MaxWins(i) > best {
			return false
		}
	}

	return true
}
