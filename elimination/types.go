package elimination

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/elimination/flow"
)

// Sentinel errors for elimination queries.
var (
	// ErrNilDivision is returned by New when no division is supplied.
	ErrNilDivision = errors.New("elimination: division is nil")

	// ErrEmptyCertificate signals a flow-based elimination whose minimum cut
	// holds no team vertex. It can only come from a defect in the network
	// layout or the solver.
	ErrEmptyCertificate = errors.New("elimination: eliminated team has an empty certificate")

	// ErrUnknownAlgorithm is returned by SolverByName for an unsupported name.
	ErrUnknownAlgorithm = errors.New("elimination: unknown max-flow algorithm")
)

// Verdict is the full answer for one team.
type Verdict struct {
	Team       string
	Eliminated bool
	// Trivial is true when the verdict was reached without running the solver.
	Trivial bool
	// Certificate lists the witness teams in index order; nil unless Eliminated.
	Certificate []string
	// MaxFlow and SourceCapacity are zero when Trivial.
	MaxFlow        int64
	SourceCapacity int64
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithSolver selects the max-flow algorithm (default flow.EdmondsKarp).
func WithSolver(solve flow.Solver) Option {
	return func(o *Oracle) {
		if solve != nil {
			o.solve = solve
		}
	}
}

// WithLogger routes verdict records to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Oracle) { o.logger = logger }
}

// WithMetrics records query outcomes and solver work on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Oracle) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithFlowOptions passes extra options to every solver run.
func WithFlowOptions(opts ...flow.Option) Option {
	return func(o *Oracle) { o.flowOpts = append(o.flowOpts, opts...) }
}

// SolverByName maps an algorithm name to its solver. Accepted names are
// "edmonds-karp", "ford-fulkerson" and "dinic", case-insensitive.
func SolverByName(name string) (flow.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "edmonds-karp", "edmondskarp", "bfs":
		return flow.EdmondsKarp, nil
	case "ford-fulkerson", "fordfulkerson", "dfs":
		return flow.FordFulkerson, nil
	case "dinic":
		return flow.Dinic, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
