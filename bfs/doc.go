// Package bfs provides a level-synchronous breadth-first search that returns
// a parent forest covering every vertex of a *graph.Graph.
//
// What
//
//   - Starts a BFS from every vertex not yet reached, in ascending order, so
//     each connected component yields one tree rooted at its lowest vertex.
//   - Returns a *forest.Tree: Parent[v] is v's predecessor in its BFS tree,
//     forest.NoParent for roots, and Weight is always 0.
//   - Supports functional hooks:
//   - OnRoot  (a new tree is started)
//   - OnLevel (a level was completed; reports its size)
//   - Honors context cancellation between levels (WithContext).
//
// How
//
//	Every level is one masked vector-matrix product over the (min, first)
//	semiring:
//
//	  next   = front · A      masked by ¬parent (unreached vertices only)
//	  parent = next           on next's structure
//	  front  = {i: i}         for i in next
//
//	Frontier values are the frontier vertices' own indices, so each newly
//	reached vertex receives its lowest-index discovering neighbour. The
//	product switches between push (walk the frontier) and pull (scan the
//	unreached rows in parallel) by frontier size; both give identical parents.
//
// Determinism
//
//	Parents depend only on the graph: the same forest is returned for any
//	executor and any worker count.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) work for push levels, O(V) per pull level.
//   - Memory: O(V) for the parent and frontier vectors.
//
// Usage
//
//	tr, err := bfs.ParentForest(g, bfs.WithExecutor(sparse.Parallel{}))
//	if err != nil {
//		// ErrGraphNil, ErrOptionViolation, context errors or sparse errors
//	}
//	depths := tr.Depths()
package bfs
