package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptyGraph indicates that the graph has no nodes at all.
	ErrEmptyGraph = errors.New("dijkstra: graph has no nodes")

	// ErrNodeOutOfRange indicates that the source, the target, or an edge
	// endpoint lies outside [0, N) for a graph of N nodes.
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Node is a dense node index in [0, N).
type Node = uint32

// Weight is a non-negative edge weight or accumulated path length.
type Weight = uint64

const (
	// Infinity is the tentative distance of a node that has not been reached.
	// Callers should rely on Path.Found rather than comparing against it.
	Infinity Weight = math.MaxUint64

	// NoNode marks the absence of a predecessor.
	NoNode Node = math.MaxUint32
)

// Edge is a directed, weighted link to neighbor To.
type Edge struct {
	To     Node
	Weight Weight
}

// Graph is a directed adjacency list: g[u] holds the outgoing edges of u in
// insertion order. Parallel edges between the same pair are allowed and
// treated independently.
type Graph [][]Edge

// NewGraph returns an empty graph with n nodes and no edges.
func NewGraph(n int) Graph {
	return make(Graph, n)
}

// AddEdge appends the directed edge from→to with weight w.
// It panics if from is out of range, like any slice index would.
func (g Graph) AddEdge(from, to Node, w Weight) {
	g[from] = append(g[from], Edge{To: to, Weight: w})
}

// Order returns the number of nodes.
func (g Graph) Order() int { return len(g) }

// Path is the result of a single-pair query.
//
// When Found is false the target is unreachable: Nodes holds only the target
// and Length is Infinity.
type Path struct {
	Nodes  []Node // source..target inclusive
	Length Weight // sum of edge weights along Nodes
	Found  bool   // false if target cannot be reached from source
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	MaxDistance      Weight // Maximum distance to explore
	InfEdgeThreshold Weight // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored;
// a value of zero explores only the source.
func WithMaxDistance(max Weight) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero panics with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold Weight) Option {
	return func(o *Options) {
		if threshold == 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
