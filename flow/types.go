package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Unbounded is the capacity sentinel for edges that can never be the binding
// constraint. It is never added to any flow total.
const Unbounded int64 = math.MaxInt64

// Sentinel errors for network construction and solving.
var (
	// ErrMalformedGraph is returned when a solver precondition is violated:
	// nil network, source equal to sink, or either terminal out of range.
	ErrMalformedGraph = errors.New("flow: malformed graph")

	// ErrVertexOutOfRange is returned by AddEdge for an endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrBadVertexCount is returned by NewNetwork for a negative vertex count.
	ErrBadVertexCount = errors.New("flow: vertex count must be non-negative")

	// ErrUnboundedFlow is returned when a source→sink path consists only of
	// Unbounded edges, so the maximum flow is not finite.
	ErrUnboundedFlow = errors.New("flow: unbounded source-sink path")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Solver is the common signature of every max-flow algorithm in this package.
type Solver func(g *Network, source, sink int, opts ...Option) (*Result, error)

// Option configures a solver run via functional arguments.
type Option func(*FlowOptions)

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked between augmentations for cancellation.
//   - Logger: receives augmentation records when Verbose is set.
//   - Verbose: if true, logs each augmentation at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a background context, the default
// slog logger, quiet output and no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: slog.Default(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes verbose augmentation records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *FlowOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithVerbose toggles per-augmentation logging.
func WithVerbose(verbose bool) Option {
	return func(o *FlowOptions) { o.Verbose = verbose }
}

// WithLevelRebuildInterval makes Dinic rebuild its level graph every n
// augmentations. Values ≤ 0 disable forced rebuilds.
func WithLevelRebuildInterval(n int) Option {
	return func(o *FlowOptions) {
		if n > 0 {
			o.LevelRebuildInterval = n
		}
	}
}

func buildOptions(opts []Option) FlowOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// logAugment emits one augmentation record when verbose logging is enabled.
func (o FlowOptions) logAugment(algorithm string, delta, total int64) {
	if !o.Verbose || o.Logger == nil {
		return
	}
	o.Logger.Debug("augmenting path",
		slog.String("algorithm", algorithm),
		slog.Int64("delta", delta),
		slog.Int64("total", total),
	)
}
