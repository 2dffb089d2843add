// Package sparse is the numeric backend used by the forest algorithms: a
// compressed-sparse-row Matrix of float64 weights, a generic sparse Vector,
// and a small set of bulk, GraphBLAS-flavoured operations over them.
//
// What it provides
//
//   - Matrix: square CSR matrix built once from (row, col, value) entries,
//     read-only afterwards. Row(i) exposes a row without copying.
//   - Vector[T]: length-n vector with an explicit structure (which indices
//     hold a value) and a fill value returned for absent indices.
//   - Executor: how bulk operations are scheduled. Sequential runs inline;
//     Parallel splits the index space into grains and runs them on an
//     errgroup with a bounded number of workers.
//   - Operations (package-level, since methods cannot be generic):
//     ReduceRows, EWiseAdd, AssignConstant, Apply, SelectVector,
//     ExtractRow, Select, ArgMin, VxM.
//
// Semantics
//
// Every operation is synchronous and all-or-nothing from the caller's point
// of view: it returns only after all grains finished, and any grain error
// (or recovered panic) is returned as the operation's error. Results never
// depend on the executor: every reduction is folded in ascending index
// order within a row, and cross-grain merges break ties by index.
//
// Masks restrict which output positions an operation may write. A Mask is
// built from any Structure (every Vector is one), optionally complemented;
// the zero Mask allows every position.
//
// Scoped handle
//
// Acquire returns a Handle owning the process's executor; Release must be
// called on every exit path (defer it). Operations run through a released
// handle's executor fail with ErrReleased.
package sparse
