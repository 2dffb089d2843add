// Package graph is the read-only store behind every algorithm in this module:
// an undirected, weighted graph over dense integer vertices [0, n) with its
// symmetric adjacency held as a sparse.Matrix.
//
// What & Why:
//
//	Algorithms never mutate the input. They receive the Graph, read its
//	Adjacency and build private scratch state, so a single Graph can be
//	computed over repeatedly and shared between goroutines.
//
// Construction:
//
//	New(n, edges, opts...)  from an in-memory edge list
//	Load(path, opts...)     from a coordinate file (package mtx)
//
// Normalization:
//   - every undirected edge is stored once with U < V;
//   - duplicate pairs keep the minimum weight;
//   - the adjacency holds both directions, so it is symmetric;
//   - unweighted graphs carry weight 1 on every edge.
//
// Validation (errors match with errors.Is, including the mtx class sentinels):
//
//	ErrVertexRange  endpoint outside [0, n)
//	ErrBadWeight    weight not finite or not > 0
//	ErrSelfLoop     u == v passed to New (the file loader skips these instead)
//
// Complexity: construction is O(n + E log E); every accessor is O(1) or
// O(log deg) except Edges and Stats, which are O(E) and O(n) respectively.
package graph
