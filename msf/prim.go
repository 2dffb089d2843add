package msf

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
)

// Prim computes a minimum spanning forest by growing one tree at a time
// from every still-unvisited vertex in ascending order.
//
// Steps:
//  1. Short-circuit n <= 1 or no edges: every vertex is a root, weight 0.
//  2. For each unvisited root: mark visited, distance 0, relax its row.
//  3. Repeatedly extract the unvisited vertex with the smallest tentative
//     distance (ties: lowest index), attach it to its tentative parent,
//     add the distance to the total and relax its row.
//  4. When no unvisited vertex has a finite distance the tree is complete;
//     continue with the next root.
//
// Relaxation of vertex u runs entirely through the sparse backend:
//
//	row   = A[u, :]
//	lower = row restricted to unvisited j with row[j] < dist[j]
//	dist  = min(dist, lower)            on lower's structure
//	tent  = u                           on lower's structure
//
// Both strategies select the same vertex at every step, so they return the
// same forest.
//
// Complexity: StrategyScan O(n² + E), StrategyOrdered O((n + E) log E).
func Prim(g *graph.Graph, opts ...Option) (*forest.Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if o.Strategy != StrategyScan && o.Strategy != StrategyOrdered {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.Strategy)
	}

	// 1) Trivial inputs.
	n := g.N()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = forest.NoParent
	}
	if n <= 1 || g.M() == 0 {
		return forest.FromParents(parent, 0)
	}

	p := &primState{
		ex:      o.Executor,
		adj:     g.Adjacency(),
		visited: sparse.MustVector[bool](n),
		dist:    sparse.MustVector[float64](n),
		tent:    sparse.MustVector[int](n),
		row:     sparse.MustVector[float64](n),
		lower:   sparse.MustVector[float64](n),
	}
	p.dist.SetFill(math.Inf(1))
	if o.Strategy == StrategyOrdered {
		p.pq = &vertexPQ{}
	}

	var total float64
	for root := 0; root < n; root++ {
		if p.visited.Has(root) {
			continue
		}
		// 2) Start a new tree.
		if err := p.visit(root, 0); err != nil {
			return nil, fmt.Errorf("msf.Prim: %w", err)
		}
		if err := p.relax(root); err != nil {
			return nil, fmt.Errorf("msf.Prim: %w", err)
		}

		// 3) Grow it.
		for {
			v, d, ok, err := p.next()
			if err != nil {
				return nil, fmt.Errorf("msf.Prim: %w", err)
			}
			// 4) Component exhausted.
			if !ok {
				break
			}
			if err = p.visit(v, d); err != nil {
				return nil, fmt.Errorf("msf.Prim: %w", err)
			}
			parent[v] = p.tent.At(v)
			total += d
			if err = p.relax(v); err != nil {
				return nil, fmt.Errorf("msf.Prim: %w", err)
			}
		}
	}

	return forest.FromParents(parent, total)
}

// primState holds Prim's scratch vectors.
type primState struct {
	ex      sparse.Executor
	adj     *sparse.Matrix
	visited *sparse.Vector[bool]
	dist    *sparse.Vector[float64]
	tent    *sparse.Vector[int]
	row     *sparse.Vector[float64]
	lower   *sparse.Vector[float64]
	pq      *vertexPQ // nil for StrategyScan
}

func (p *primState) visit(v int, d float64) error {
	if err := p.visited.Set(v, true); err != nil {
		return fmt.Errorf("visit %d: %w", v, err)
	}
	if err := p.dist.Set(v, d); err != nil {
		return fmt.Errorf("visit %d: %w", v, err)
	}

	return nil
}

func (p *primState) relax(u int) error {
	if err := sparse.ExtractRow(p.row, p.adj, u); err != nil {
		return err
	}
	err := sparse.SelectVector(p.ex, p.lower, p.row, func(j int, w float64) bool {
		return !p.visited.Has(j) && w < p.dist.At(j)
	})
	if err != nil {
		return err
	}
	if p.lower.Nvals() == 0 {
		return nil
	}
	mask := sparse.StructMask(p.lower)
	if err = sparse.EWiseAdd(p.ex, p.dist, p.dist, p.lower, sparse.MinFloat, mask); err != nil {
		return err
	}
	if err = sparse.AssignConstant(p.ex, p.tent, mask, u); err != nil {
		return err
	}

	if p.pq != nil {
		idx, ws := p.lower.Read()
		for k, j := range idx {
			heap.Push(p.pq, vertexItem{dist: ws[k], v: j})
		}
	}

	return nil
}

// next returns the unvisited vertex with the smallest finite distance.
func (p *primState) next() (int, float64, bool, error) {
	if p.pq == nil {
		v, d, ok, err := sparse.ArgMin(p.ex, p.dist, sparse.ComplementMask(p.visited), lessFloat)

		return v, d, ok, err
	}

	for p.pq.Len() > 0 {
		it := heap.Pop(p.pq).(vertexItem)
		// Stale: already attached, or improved after this push.
		if p.visited.Has(it.v) || it.dist != p.dist.At(it.v) {
			continue
		}

		return it.v, it.dist, true, nil
	}

	return -1, 0, false, nil
}

func lessFloat(a, b float64) bool { return a < b }

// vertexItem is one lazily-pushed (distance, vertex) candidate.
type vertexItem struct {
	dist float64
	v    int
}

// vertexPQ implements heap.Interface for a min-heap of vertexItem ordered
// by (dist, v).
type vertexPQ []vertexItem

// Len returns the number of queued items.
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}

// Swap swaps elements at indices i and j.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an item; called by heap.Push.
func (pq *vertexPQ) Push(x any) { *pq = append(*pq, x.(vertexItem)) }

// Pop removes the last item; called by heap.Pop.
func (pq *vertexPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
