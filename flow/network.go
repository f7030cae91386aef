package flow

// Edge is a directed, capacitated edge of a Network.
type Edge struct {
	From     int
	To       int
	Capacity int64
}

// Network is a directed capacitated graph over vertices 0..V-1.
//
// Parallel edges are kept as separate edges; self-loops are stored but never
// carry flow. A Network is not safe for concurrent mutation, but solvers only
// read it, so one built Network may be solved concurrently.
type Network struct {
	v     int
	edges []Edge
	adj   [][]int // adj[u] = indices of edges leaving u
}

// NewNetwork creates an empty network with v vertices.
// Complexity: O(V).
func NewNetwork(v int) (*Network, error) {
	if v < 0 {
		return nil, ErrBadVertexCount
	}

	return &Network{v: v, adj: make([][]int, v)}, nil
}

// AddEdge appends from→to with the given capacity and returns the new edge's
// index. Use Unbounded for edges that must never saturate.
//
// Errors:
//
//	ErrVertexOutOfRange - from or to outside [0, V).
//	EdgeError           - negative capacity.
func (g *Network) AddEdge(from, to int, capacity int64) (int, error) {
	if from < 0 || from >= g.v || to < 0 || to >= g.v {
		return -1, ErrVertexOutOfRange
	}
	if capacity < 0 {
		return -1, EdgeError{From: from, To: to, Cap: capacity}
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Capacity: capacity})
	idx := len(g.edges) - 1
	g.adj[from] = append(g.adj[from], idx)

	return idx, nil
}

// V returns the number of vertices.
func (g *Network) V() int { return g.v }

// E returns the number of edges.
func (g *Network) E() int { return len(g.edges) }

// Edge returns the i-th edge in insertion order.
func (g *Network) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of all edges in insertion order.
func (g *Network) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns the indices of the edges leaving v.
func (g *Network) OutEdges(v int) []int {
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// CapacityFrom sums the capacities of all edges leaving v, skipping Unbounded
// edges and self-loops.
func (g *Network) CapacityFrom(v int) int64 {
	var total int64
	for _, idx := range g.adj[v] {
		e := g.edges[idx]
		if e.To == e.From || e.Capacity == Unbounded {
			continue
		}
		total += e.Capacity
	}

	return total
}
