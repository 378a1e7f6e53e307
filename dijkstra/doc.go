// Package dijkstra provides Dijkstra's shortest-path algorithm on directed
// graphs whose nodes are dense indices in [0, N) and whose weights are
// non-negative integers.
//
// Overview:
//
//   - ShortestPath answers a single source→target query and stops as soon as
//     the target's distance is final.
//   - Distances runs to completion and returns every tentative distance plus
//     the predecessor array; PathTo rebuilds a path from that output.
//   - The frontier is a binary min-heap with lazy decrease-key: improved
//     distances are pushed again and stale entries are skipped when popped.
//
// Unreachable targets:
//
//	An unreachable target is reported through Path.Found == false. For callers
//	that only look at the numbers, Path.Length is Infinity and Path.Nodes holds
//	just the target, so a one-node path to a different node than the source
//	means "no path". Prefer Found; Infinity is a sentinel, not a real weight.
//
// Options:
//
//   - WithMaxDistance(x):      nodes farther than x are not explored.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) heap entries in the worst case under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGraph:      the graph has no nodes.
//   - ErrNodeOutOfRange:  source, target or an edge endpoint is ≥ N.
//   - ErrBadInfThreshold: raised (via panic) by WithInfEdgeThreshold(0).
//
// Thread safety:
//
//   - The graph is only read. Concurrent queries on the same Graph are safe as
//     long as nobody calls AddEdge at the same time.
package dijkstra
