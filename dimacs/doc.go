// Package dimacs reads and writes the DIMACS-like text format used by
// lvlmatch for graphs and matchings.
//
// Overview:
//
//	The format is line-oriented and whitespace-separated:
//
//	  p edge N E    — the problem header: N nodes, E edges declared.
//	  e v w         — one edge between 1-indexed nodes v and w.
//	  ...           — every other line is ignored (comments, blanks).
//
//	Exactly one header is expected and it must precede the first edge
//	line. The declared edge count E is recorded but not enforced — real
//	files disagree with it often enough that rejecting them helps nobody.
//
// Node ids are 1-indexed on disk and 0-indexed in memory; the translation
// happens here and nowhere else. Output uses the same format: a
// "p edge N K" header (K = matching size) followed by one "e v w" line per
// matching edge with v < w, ascending.
//
// When to use:
//
//   - Read: load a problem file into a *core.Graph (ReadGraph) or load a
//     matching hint against a known node count (ReadMatching).
//   - Write: print a computed matching in the same format (Write), so the
//     output of one run is a valid hint for another.
//
// Errors (sentinel):
//
//   - ErrMissingHeader   if an edge line precedes the header, or no header
//     exists at all.
//   - ErrDuplicateHeader if a second "p" line appears.
//   - ErrBadHeader       if a "p" line is malformed.
//   - ErrBadEdge         if an "e" line is malformed.
//   - ErrNodeOutOfRange  if an edge endpoint is outside [1, N].
//
// Complexity: reading is O(lines) with O(1) state beyond the collected
// edges; writing is O(n), one pass over the mate array.
package dimacs
