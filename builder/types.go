// Package builder declares sentinel errors and size minima for the graph
// family constructors.
package builder

import "errors"

// Sentinel errors for builder parameters.
var (
	// ErrTooFewNodes indicates a size below the family's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes for this family")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("builder: probability must lie in [0,1]")
)

// Family minima and probability bounds (no magic numbers at call sites).
const (
	minPathNodes      = 1
	minCycleNodes     = 3
	minCompleteNodes  = 1
	minPartitionNodes = 1
	probMin           = 0.0
	probMax           = 1.0
)
