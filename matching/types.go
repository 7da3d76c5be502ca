// Package matching defines the consumed graph interface, sentinel errors,
// and functional options for the blossom matching engine.
package matching

import (
	"errors"

	"github.com/katalvlaran/lvlmatch/core"
)

// Graph is the read-only adjacency view consumed by the engine.
// *core.Graph satisfies it; any container with dense ids [0, NumNodes)
// and a stable, indexable neighbor order will do.
//
// The engine resumes per-node neighbor cursors across its main loop, so
// Neighbors must return the same sequence for the same node throughout a
// run. The slice is never mutated by the engine.
type Graph interface {
	// NumNodes returns the number of nodes n; ids are [0, n).
	NumNodes() int

	// Neighbors returns v's neighbors in a stable order, without
	// duplicates or self-loops.
	Neighbors(v core.NodeID) []core.NodeID
}

// Sentinel errors for matching construction and validation.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNilMatching indicates a nil *Matching was passed.
	ErrNilMatching = errors.New("matching: matching is nil")

	// ErrNegativeNodeCount indicates NewMatching was called with n < 0.
	ErrNegativeNodeCount = errors.New("matching: node count must be non-negative")

	// ErrSizeMismatch indicates the matching was built for a different
	// node count than the graph it is used with.
	ErrSizeMismatch = errors.New("matching: matching and graph node counts differ")

	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("matching: node id out of range")

	// ErrSelfMatched indicates mate[v] == v for some v.
	ErrSelfMatched = errors.New("matching: node matched to itself")

	// ErrAsymmetricMatching indicates mate[v] == w but mate[w] != v.
	ErrAsymmetricMatching = errors.New("matching: mate array is not symmetric")

	// ErrEdgeNotInGraph indicates a matched pair that is not an edge of
	// the graph.
	ErrEdgeNotInGraph = errors.New("matching: matched pair is not a graph edge")

	// ErrAlreadyMatched indicates Pair was called on a covered node.
	ErrAlreadyMatched = errors.New("matching: node is already matched")
)

// Options configures the Maximum entry point.
//
// Hint – optional starting matching; Maximum works on a private copy, so
// the hint is never mutated. Nil means start from the empty matching.
type Options struct {
	Hint *Matching
}

// Option represents a functional option for configuring Maximum.
type Option func(*Options)

// WithHint seeds Maximum with an existing matching. The hint must be a
// valid matching of the target graph (validated on entry) and is copied,
// never mutated.
func WithHint(h *Matching) Option {
	return func(o *Options) {
		o.Hint = h
	}
}

// DefaultOptions returns the zero configuration: no hint.
func DefaultOptions() Options {
	return Options{}
}
