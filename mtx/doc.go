// Package mtx reads and writes graphs in the coordinate ("MatrixMarket")
// text format used by the benchmark fixtures.
//
// Layout:
//
//	%%MatrixMarket matrix coordinate real symmetric   <- optional banner
//	% any number of comment lines
//	rows cols nnz                                     <- header, rows == cols
//	u v w                                             <- nnz entries, 1-based
//
// Pattern (unweighted) files omit the weight column; every entry then
// carries weight 1. Pattern mode is selected by a banner containing the word
// "pattern" or explicitly with WithPattern.
//
// The reader:
//   - memory-maps the file (github.com/edsrzf/mmap-go) and parses in place;
//   - converts indices to 0-based;
//   - skips self-loops silently;
//   - reads exactly nnz entries and ignores anything after them.
//
// Errors fall into three classes matched with errors.Is:
//
//	ErrIO         the file could not be opened, mapped or read
//	ErrFormat     malformed header, rows != cols, missing tokens, too few entries
//	ErrValidation index outside [1, n], weight not finite or not > 0
//
// ErrNonSquare, ErrVertexRange and ErrBadWeight narrow the class further and
// wrap the class sentinel, so both checks succeed.
package mtx
