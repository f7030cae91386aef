package flow

// Result is the terminal state of a max-flow computation.
//
// Besides the flow value it records, for every vertex, whether the vertex is
// reachable from the source in the final residual graph. That set is the
// source side of a minimum cut, and it is the same for every maximum flow.
type Result struct {
	value         int64
	source, sink  int
	flows         []int64
	reachable     []bool
	augmentations int
}

// Value returns the total flow leaving the source.
func (r *Result) Value() int64 { return r.value }

// Source returns the source vertex used for the computation.
func (r *Result) Source() int { return r.source }

// Sink returns the sink vertex used for the computation.
func (r *Result) Sink() int { return r.sink }

// Flow returns the flow carried by the edge with the given index.
func (r *Result) Flow(edge int) int64 { return r.flows[edge] }

// InCut reports whether v lies on the source side of the minimum cut.
// Out-of-range vertices are never in the cut.
func (r *Result) InCut(v int) bool {
	if v < 0 || v >= len(r.reachable) {
		return false
	}

	return r.reachable[v]
}

// CutSet returns the source side of the minimum cut in ascending order.
func (r *Result) CutSet() []int {
	out := make([]int, 0, len(r.reachable))
	for v, ok := range r.reachable {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// Augmentations returns how many augmenting pushes the solver performed.
func (r *Result) Augmentations() int { return r.augmentations }
