package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/bfs"
	"github.com/katalvlaran/spanforest/graph"
)

// ExampleParentForest traverses two components. Vertex 3 is reached from both
// 1 and 2 on the same level and takes the lower parent.
//
//	0 – 1 – 3     4 – 5
//	 \     /
//	   2
func ExampleParentForest() {
	g, _ := graph.New(6, []graph.Edge{
		{U: 0, V: 1, W: 1},
		{U: 0, V: 2, W: 1},
		{U: 1, V: 3, W: 1},
		{U: 2, V: 3, W: 1},
		{U: 4, V: 5, W: 1},
	})

	tr, _ := bfs.ParentForest(g)
	fmt.Println(tr.Parent)
	fmt.Println(tr.Depths())
	fmt.Println(tr.Roots())
	// Output:
	// [-1 0 0 1 -1 4]
	// [0 1 1 2 0 1]
	// [0 4]
}
