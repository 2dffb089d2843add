// Package forest defines Tree, the result every algorithm in this module
// produces, together with the extractors that build it and the checks that
// verify it.
//
// A Tree over n vertices is a parent array: Parent[v] is v's parent or -1 for
// a root. Weight is the total edge weight for spanning forests and 0 for BFS
// forests.
//
// Extractors:
//
//	FromParents       validate and wrap an explicit parent slice
//	FromParentVector  sparse parent vector; absent or self entries become roots
//	FromEdges         orient an undirected edge forest by iterative DFS
//
// Checks:
//
//	(*Tree).Validate  indices in range and no parent cycles
//	CheckSpanning     every parent link is a graph edge and each connected
//	                  component of the graph is exactly one tree
//	EdgeWeight        sum of graph weights over the parent links
//
// All walks are iterative, so deep trees (long paths with millions of
// vertices) never grow the goroutine stack.
package forest
