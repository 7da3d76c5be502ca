// Package core declares the NodeID identifier type, the None sentinel,
// and the sentinel errors shared by the graph container.
package core

import "errors"

// NodeID identifies a node of a Graph. Valid values lie in [0, NumNodes);
// None marks the absence of a node (an exposed vertex, a missing mate).
type NodeID int

// None is the "no node" sentinel. It is never a valid index.
const None NodeID = -1

// Sentinel errors for graph construction.
var (
	// ErrNegativeNodeCount indicates NewGraph was called with n < 0.
	ErrNegativeNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates a NodeID outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrSelfLoop indicates an edge with two identical endpoints.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates an edge that is already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)
