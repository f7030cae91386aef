package flow

// Dinic computes the maximum flow from `source` to `sink` in `g`
// using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - *Result : flow value, per-edge flows and min-cut reachability
//   - err     : ErrMalformedGraph, ErrUnboundedFlow, or context cancellation
//
// Steps:
//  1. Validate terminals and build the residual graph (O(V + E)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//  3. Freeze the residual state and compute the cut (O(V + E)).
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for residual arcs, levels and per-vertex arc iterators.
func Dinic(g *Network, source, sink int, opts ...Option) (*Result, error) {
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

		level := buildLevels(res, source)
		if level[sink] < 0 {
			break
		}

		iter := make([]int, len(res.adj))
		for {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			pushed, err := dfsDinicPush(res, level, iter, source, sink, Unbounded, false)
			if err != nil {
				return nil, err
			}
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentations++
			o.logAugment("dinic", pushed, maxFlow)
			if o.LevelRebuildInterval > 0 && augmentations%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return res.finish(source, sink, maxFlow, augmentations), nil
}

// buildLevels returns BFS distances from source over arcs with remaining
// capacity; unreachable vertices get -1.
func buildLevels(r *residual, source int) []int {
	level := make([]int, len(r.adj))
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if level[v] < 0 && r.rest(a) > 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// dfsDinicPush recursively pushes flow along the level graph, updating the
// residual in place, and returns the amount actually sent. bounded records
// whether any arc on the current path has a finite capacity.
func dfsDinicPush(
	r *residual,
	level, iter []int,
	u, sink int,
	available int64,
	bounded bool,
) (int64, error) {
	if u == sink {
		if !bounded {
			return 0, ErrUnboundedFlow
		}
		return available, nil
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		a := r.adj[u][iter[u]]
		v := r.arcs[a].to
		capUV := r.rest(a)
		if capUV <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed, err := dfsDinicPush(r, level, iter, v, sink, send, bounded || !r.arcs[a].unbounded)
		if err != nil {
			return 0, err
		}
		if pushed > 0 {
			r.push(a, pushed)
			return pushed, nil
		}
	}

	return 0, nil
}
