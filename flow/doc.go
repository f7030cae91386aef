// Package flow implements maximum-flow / minimum-cut algorithms on small,
// integer-capacity networks addressed by dense vertex indices 0..V-1.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Memory: O(V + E) for the residual graph and DFS stack.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V + E) for the residual graph and BFS queue.
//
//   - Guarantees polynomial worst-case behavior; the default choice.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E) for levels, arc iterators and recursion state.
//
// # Capacities
//
// Capacities are int64 and all arithmetic is exact. Edges that must never be
// the binding constraint use the Unbounded sentinel; it never enters a sum,
// and a source→sink path made only of Unbounded edges is reported as
// ErrUnboundedFlow instead of overflowing.
//
// # API
//
// All solvers share the Solver signature:
//
//	func EdmondsKarp(g *Network, source, sink int, opts ...Option) (*Result, error)
//	func FordFulkerson(g *Network, source, sink int, opts ...Option) (*Result, error)
//	func Dinic(g *Network, source, sink int, opts ...Option) (*Result, error)
//
// Solvers never mutate the input Network; each run works on its own residual
// graph. The returned Result exposes the flow value, the flow on each edge,
// and InCut(v): whether v is reachable from the source in the final residual
// graph, i.e. the source side of a minimum cut.
//
// # Errors
//
//	ErrMalformedGraph   - nil network, source == sink, or a terminal out of range.
//	ErrVertexOutOfRange - AddEdge endpoint outside [0, V).
//	EdgeError           - AddEdge with a negative capacity.
//	ErrUnboundedFlow    - the maximum flow is not finite.
//	context.Canceled / context.DeadlineExceeded - if the options context ends.
package flow
