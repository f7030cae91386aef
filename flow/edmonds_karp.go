package flow

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result carrying the flow value, per-edge flows and the
// min-cut source side, or an error:
//   - ErrMalformedGraph: nil network, bad terminals, source == sink.
//   - ErrUnboundedFlow:  a source→sink path of Unbounded edges only.
//   - context errors:    the options context was canceled.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *Network, source, sink int, opts ...Option) (*Result, error) {
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
		path := bfsAugmentingPath(res, source, sink)
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
		o.logAugment("edmonds-karp", delta, maxFlow)
	}

	return res.finish(source, sink, maxFlow, augmentations), nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path source→sink with
// positive remaining capacity and returns its arcs in order, or nil.
func bfsAugmentingPath(r *residual, source, sink int) []int {
	// via[v] = arc used to reach v, -1 if unvisited
	via := make([]int, len(r.adj))
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, len(r.adj))
	visited[source] = true

	queue := []int{source}
	for i := 0; i < len(queue) && !visited[sink]; i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if visited[v] || r.rest(a) <= 0 {
				continue
			}
			visited[v] = true
			via[v] = a
			queue = append(queue, v)
		}
	}
	if !visited[sink] {
		return nil
	}

	// reconstruct path backwards, then reverse
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
