// Package dimacs declares the parsed document form and sentinel errors.
package dimacs

import (
	"errors"

	"github.com/katalvlaran/lvlmatch/core"
)

// Sentinel errors for DIMACS parsing.
var (
	// ErrMissingHeader indicates no "p edge" header before the data.
	ErrMissingHeader = errors.New("dimacs: missing 'p edge' header")

	// ErrDuplicateHeader indicates more than one "p" line.
	ErrDuplicateHeader = errors.New("dimacs: duplicate 'p' header")

	// ErrBadHeader indicates a malformed "p" line.
	ErrBadHeader = errors.New("dimacs: malformed 'p' header")

	// ErrBadEdge indicates a malformed "e" line.
	ErrBadEdge = errors.New("dimacs: malformed 'e' line")

	// ErrNodeOutOfRange indicates an endpoint outside [1, N].
	ErrNodeOutOfRange = errors.New("dimacs: node id out of range")
)

// Document is a parsed DIMACS file: the header values plus every edge,
// already translated to 0-indexed NodeIDs.
//
// DeclaredEdges is the E of the header, kept for diagnostics; len(Edges)
// is the authoritative count.
type Document struct {
	NumNodes      int
	DeclaredEdges int
	Edges         [][2]core.NodeID
}
