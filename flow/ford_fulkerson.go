package flow

// FordFulkerson computes the maximum flow from `source` to `sink` in `g`
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - *Result : flow value, per-edge flows and min-cut reachability
//   - err     : ErrMalformedGraph, ErrUnboundedFlow, or context cancellation
//
// Steps:
//  1. Validate source and sink (O(1)).
//  2. Build the residual graph (O(V + E)).
//  3. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iterative DFS to find any path s→t with positive remaining capacity (O(E)).
//     c. If none found, break.
//     d. Push the bottleneck along the path; optionally log it.
//  4. Freeze the residual state and compute the cut (O(V + E)).
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (integral capacities guarantee termination).
//	Memory: O(V + E) for the residual graph and DFS stack.
//
// Suitable for small integral networks; for stronger guarantees,
// prefer Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(g *Network, source, sink int, opts ...Option) (*Result, error) {
	if err := validateTerminals(g, source, sink); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	res := newResidual(g)

	var maxFlow int64
	augmentations := 0
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		path := dfsAugmentingPath(res, source, sink)
		if path == nil {
			break
		}
		delta, err := res.bottleneck(path)
		if err != nil {
			return nil, err
		}
		for _, a := range path {
			res.push(a, delta)
		}
		maxFlow += delta
		augmentations++
		o.logAugment("ford-fulkerson", delta, maxFlow)
	}

	return res.finish(source, sink, maxFlow, augmentations), nil
}

// dfsAugmentingPath finds any source→sink path with positive remaining
// capacity using an explicit stack, returning its arcs in order, or nil.
func dfsAugmentingPath(r *residual, source, sink int) []int {
	via := make([]int, len(r.adj))
	visited := make([]bool, len(r.adj))
	visited[source] = true

	stack := []int{source}
	for len(stack) > 0 && !visited[sink] {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if visited[v] || r.rest(a) <= 0 {
				continue
			}
			visited[v] = true
			via[v] = a
			if v == sink {
				break
			}
			stack = append(stack, v)
		}
	}
	if !visited[sink] {
		return nil
	}

	var path []int
	for v := sink; v != source; {
		a := via[v]
		path = append(path, a)
		v = r.arcs[a^1].to
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
