package flow

import "fmt"

// arc is one direction of an edge in the residual graph.
// Edge k of the input network owns arcs 2k (forward) and 2k+1 (reverse);
// pushing d units adds d to the forward flow and subtracts d from the reverse,
// so reverse flows are never positive.
type arc struct {
	to        int
	cap       int64
	flow      int64
	unbounded bool
}

// residual holds the mutable state of a single solver run.
type residual struct {
	arcs []arc
	adj  [][]int // adj[u] = arc indices leaving u
}

// newResidual builds the residual graph of g with zero flow.
// Self-loops get arcs (to keep the 2k/2k+1 pairing) but no adjacency entry.
//
// Complexity: O(V + E).
func newResidual(g *Network) *residual {
	r := &residual{
		arcs: make([]arc, 0, 2*len(g.edges)),
		adj:  make([][]int, g.v),
	}
	for _, e := range g.edges {
		fwd := len(r.arcs)
		r.arcs = append(r.arcs,
			arc{to: e.To, cap: e.Capacity, unbounded: e.Capacity == Unbounded},
			arc{to: e.From},
		)
		if e.From == e.To {
			continue
		}
		r.adj[e.From] = append(r.adj[e.From], fwd)
		r.adj[e.To] = append(r.adj[e.To], fwd+1)
	}

	return r
}

// rest returns the remaining capacity on arc a.
func (r *residual) rest(a int) int64 {
	return r.arcs[a].cap - r.arcs[a].flow
}

// push sends delta units along arc a and updates its partner.
func (r *residual) push(a int, delta int64) {
	r.arcs[a].flow += delta
	r.arcs[a^1].flow -= delta
}

// bottleneck returns the minimum remaining capacity along path (arc indices).
// A path made only of Unbounded arcs has no finite bottleneck.
func (r *residual) bottleneck(path []int) (int64, error) {
	limit := Unbounded
	bounded := false
	for _, a := range path {
		if !r.arcs[a].unbounded {
			bounded = true
		}
		if c := r.rest(a); c < limit {
			limit = c
		}
	}
	if !bounded {
		return 0, ErrUnboundedFlow
	}

	return limit, nil
}

// reachable marks every vertex reachable from source through arcs with
// positive remaining capacity: the source side of a minimum cut once no
// augmenting path is left.
func (r *residual) reachable(source int) []bool {
	seen := make([]bool, len(r.adj))
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if seen[v] || r.rest(a) <= 0 {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return seen
}

// validateTerminals enforces the solver preconditions shared by all algorithms.
func validateTerminals(g *Network, source, sink int) error {
	if g == nil {
		return fmt.Errorf("%w: nil network", ErrMalformedGraph)
	}
	if source < 0 || source >= g.v {
		return fmt.Errorf("%w: source %d out of range [0,%d)", ErrMalformedGraph, source, g.v)
	}
	if sink < 0 || sink >= g.v {
		return fmt.Errorf("%w: sink %d out of range [0,%d)", ErrMalformedGraph, sink, g.v)
	}
	if source == sink {
		return fmt.Errorf("%w: source and sink are both %d", ErrMalformedGraph, source)
	}

	return nil
}

// finish freezes the residual state into a Result.
func (r *residual) finish(source, sink int, value int64, augmentations int) *Result {
	flows := make([]int64, len(r.arcs)/2)
	for k := range flows {
		flows[k] = r.arcs[2*k].flow
	}

	return &Result{
		value:         value,
		source:        source,
		sink:          sink,
		flows:         flows,
		reachable:     r.reachable(source),
		augmentations: augmentations,
	}
}
