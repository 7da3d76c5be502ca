package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlmatch/matching"
)

// Write prints a matching over n nodes in DIMACS form: a "p edge n K"
// header (K = |m|) followed by one "e v w" line per matching edge, v < w,
// 1-indexed, ascending by v.
//
// The output is a valid input for ReadMatching, so matchings round-trip.
// Returns ErrNilMatching for a nil matching, otherwise only I/O errors.
// Complexity: O(n).
func Write(w io.Writer, n int, m *matching.Matching) error {
	if m == nil {
		return matching.ErrNilMatching
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", n, m.Size()); err != nil {
		return fmt.Errorf("dimacs: write failed: %w", err)
	}
	var e [2]int
	for _, pair := range m.Edges() {
		e[0], e[1] = int(pair[0])+1, int(pair[1])+1
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("dimacs: write failed: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: write failed: %w", err)
	}

	return nil
}
