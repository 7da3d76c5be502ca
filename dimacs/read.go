package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmatch/core"
	"github.com/katalvlaran/lvlmatch/matching"
)

// Read parses a DIMACS-like stream into a Document.
//
// Grammar (per line, whitespace-separated):
//   - "p edge N E" — exactly one, before any edge line. N, E ≥ 0.
//   - "e v w"      — an edge, 1 ≤ v, w ≤ N.
//   - anything else is skipped.
//
// Returns ErrMissingHeader, ErrDuplicateHeader, ErrBadHeader, ErrBadEdge
// or ErrNodeOutOfRange with line context, or the underlying scan error.
// Complexity: O(lines).
func Read(r io.Reader) (*Document, error) {
	var doc *Document
	scanner := bufio.NewScanner(r)
	var lineNo int
	var fields []string
	for scanner.Scan() {
		lineNo++
		fields = strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "p":
			if doc != nil {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateHeader, lineNo)
			}
			var err error
			if doc, err = parseHeader(fields, lineNo); err != nil {
				return nil, err
			}
		case "e":
			if doc == nil {
				return nil, fmt.Errorf("%w: edge on line %d", ErrMissingHeader, lineNo)
			}
			if err := parseEdge(doc, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			// Unknown record kinds (comments included) are ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read failed: %w", err)
	}
	if doc == nil {
		return nil, ErrMissingHeader
	}

	return doc, nil
}

// parseHeader interprets a "p edge N E" line.
func parseHeader(fields []string, lineNo int) (*Document, error) {
	if len(fields) < 4 || fields[1] != "edge" {
		return nil, fmt.Errorf("%w: line %d", ErrBadHeader, lineNo)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line %d: bad node count %q", ErrBadHeader, lineNo, fields[2])
	}
	e, err := strconv.Atoi(fields[3])
	if err != nil || e < 0 {
		return nil, fmt.Errorf("%w: line %d: bad edge count %q", ErrBadHeader, lineNo, fields[3])
	}

	return &Document{
		NumNodes:      n,
		DeclaredEdges: e,
		Edges:         make([][2]core.NodeID, 0, e),
	}, nil
}

// parseEdge interprets an "e v w" line and appends the 0-indexed edge.
func parseEdge(doc *Document, fields []string, lineNo int) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: line %d", ErrBadEdge, lineNo)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: line %d: %q", ErrBadEdge, lineNo, fields[1])
	}
	w, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("%w: line %d: %q", ErrBadEdge, lineNo, fields[2])
	}
	if v < 1 || v > doc.NumNodes {
		return fmt.Errorf("%w: line %d: %d (N=%d)", ErrNodeOutOfRange, lineNo, v, doc.NumNodes)
	}
	if w < 1 || w > doc.NumNodes {
		return fmt.Errorf("%w: line %d: %d (N=%d)", ErrNodeOutOfRange, lineNo, w, doc.NumNodes)
	}
	doc.Edges = append(doc.Edges, [2]core.NodeID{core.NodeID(v - 1), core.NodeID(w - 1)})

	return nil
}

// ReadGraph parses a problem stream and builds the corresponding graph.
// Duplicate edge lines are collapsed (the core container is simple);
// self-loops are rejected with core.ErrSelfLoop.
// Complexity: O(lines + Σ deg).
func ReadGraph(r io.Reader) (*core.Graph, error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(doc.NumNodes)
	if err != nil {
		return nil, err
	}
	var e [2]core.NodeID
	for _, e = range doc.Edges {
		if g.HasEdge(e[0], e[1]) {
			continue // repeated edge lines are common in the wild
		}
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("dimacs: %w", err)
		}
	}

	return g, nil
}

// ReadMatching parses a hint stream into a matching over n nodes.
// Every edge line pairs its two endpoints; the hint's own header node
// count is not required to equal n, but every id must fit in [1, n].
// Pairing conflicts surface as matching.ErrAlreadyMatched.
// Complexity: O(lines).
func ReadMatching(r io.Reader, n int) (*matching.Matching, error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}
	m, err := matching.NewMatching(n)
	if err != nil {
		return nil, err
	}
	var e [2]core.NodeID
	for _, e = range doc.Edges {
		if err = m.Pair(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("dimacs: hint edge {%d,%d}: %w", e[0]+1, e[1]+1, err)
		}
	}

	return m, nil
}
