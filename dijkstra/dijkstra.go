// Package dijkstra implements Dijkstra's shortest-path algorithm on directed
// graphs with non-negative integer weights.
//
// Notes on implementation choices:
//
//   - We scan every edge once up front (O(E)) to reject endpoints outside [0, N).
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries once their node is settled.
//   - Settled nodes live in a roaring bitmap keyed by the dense node index.
//   - ShortestPath stops as soon as the target is popped; Distances drains the heap.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ShortestPath computes the minimum-weight path from source to target.
//
// The returned Path lists the nodes from source to target inclusive. If the
// target cannot be reached, Path.Found is false, Path.Nodes is []Node{target}
// and Path.Length is Infinity.
//
// Preconditions and validation (in order):
//  1. g must have at least one node (ErrEmptyGraph).
//  2. source and target must be in [0, N) (ErrNodeOutOfRange).
//  3. every edge endpoint must be in [0, N) (ErrNodeOutOfRange).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g Graph, source, target Node, opts ...Option) (Path, error) {
	cfg := buildOptions(opts)
	if err := validate(g, source, target); err != nil {
		return Path{}, err
	}

	r := newRunner(g, cfg, source)
	r.process(target)

	return PathTo(r.prev, r.dist, source, target), nil
}

// Distances runs Dijkstra from source to completion and returns the tentative
// distance of every node (Infinity if unreachable) together with the
// predecessor array (NoNode for the source and for unreachable nodes).
// Use PathTo to rebuild individual paths.
func Distances(g Graph, source Node, opts ...Option) ([]Weight, []Node, error) {
	cfg := buildOptions(opts)
	if err := validate(g, source, source); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg, source)
	r.process(NoNode)

	return r.dist, r.prev, nil
}

// PathTo walks predecessor links backward from target and returns the path
// from source. A missing link before source is reached yields an unreachable
// Path holding only the target.
func PathTo(prev []Node, dist []Weight, source, target Node) Path {
	unreachable := Path{Nodes: []Node{target}, Length: Infinity}
	if int(target) >= len(prev) || int(target) >= len(dist) || dist[target] == Infinity {
		return unreachable
	}

	nodes := []Node{target}
	for at := target; at != source; {
		at = prev[at]
		if at == NoNode {
			return unreachable
		}
		nodes = append(nodes, at)
	}
	for l, r := 0, len(nodes)-1; l < r; l, r = l+1, r-1 {
		nodes[l], nodes[r] = nodes[r], nodes[l]
	}

	return Path{Nodes: nodes, Length: dist[target], Found: true}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the graph shape and both query endpoints.
func validate(g Graph, source, target Node) error {
	n := len(g)
	if n == 0 {
		return ErrEmptyGraph
	}
	if int(source) >= n {
		return fmt.Errorf("%w: source %d, order %d", ErrNodeOutOfRange, source, n)
	}
	if int(target) >= n {
		return fmt.Errorf("%w: target %d, order %d", ErrNodeOutOfRange, target, n)
	}
	for u, edges := range g {
		for _, e := range edges {
			if int(e.To) >= n {
				return fmt.Errorf("%w: edge %d→%d, order %d", ErrNodeOutOfRange, u, e.To, n)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph           // The input graph; read-only within Dijkstra.
	options Options         // Distance cap and impassable-edge threshold.
	dist    []Weight        // dist[v] = current best distance from source.
	prev    []Node          // prev[v] = predecessor on the best known path.
	settled *roaring.Bitmap // Nodes whose distance is final.
	pq      nodePQ          // Min-heap for the lazy priority queue.
}

// newRunner sets dist[v]=Infinity and prev[v]=NoNode for every v, then seeds
// the heap with the source at distance zero.
func newRunner(g Graph, cfg Options, source Node) *runner {
	n := len(g)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]Weight, n),
		prev:    make([]Node, n),
		settled: roaring.New(),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoNode
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the closest unsettled node and relaxes its
// outgoing edges. It returns once target is popped (its distance is final),
// the heap is empty, or the minimum exceeds MaxDistance. Pass NoNode to drain.
func (r *runner) process(target Node) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		if u == target {
			return
		}

		// Stale entry: u was already finalized through a shorter push.
		if !r.settled.CheckedAdd(u) {
			continue
		}

		if item.dist > r.options.MaxDistance {
			return
		}

		r.relax(u)
	}
}

// relax examines each edge outgoing from u and improves neighbor distances.
// Assumes r.dist[u] is finalized and finite.
func (r *runner) relax(u Node) {
	du := r.dist[u]
	for _, e := range r.g[u] {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// Saturate instead of wrapping around.
		if e.Weight > Infinity-1-du {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   Node
	dist Weight
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
