package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanforest/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New(5)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.True(t, uf.IsRoot(i))
		assert.Equal(t, 1, uf.Size(i))
	}

	empty := unionfind.New(-3)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Roots())
}

func TestUnion_AttachesSmallerUnderLarger(t *testing.T) {
	uf := unionfind.New(6)

	// equal sizes: first argument goes under the second
	r := uf.Union(0, 1)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, uf.Find(0))

	// {0,1} is larger than {2}: 2 is attached under 1 whatever the order
	r = uf.Union(1, 2)
	assert.Equal(t, 1, r)
	r = uf.Union(3, uf.Find(2))
	assert.Equal(t, 1, r)

	assert.Equal(t, 4, uf.Size(0))
	assert.Equal(t, 3, uf.Count())
	assert.True(t, uf.Connected(0, 3))
	assert.False(t, uf.Connected(0, 4))

	// union of a root with itself is a no-op
	assert.Equal(t, 4, uf.Union(4, 4))
	assert.Equal(t, 3, uf.Count())
}

func TestFind_CompressesPath(t *testing.T) {
	uf := unionfind.New(4)
	// build a chain 0 -> 1 -> 2 -> 3 only possible through equal-size unions
	uf.Union(0, 1) // {0,1} root 1
	uf.Union(2, 3) // {2,3} root 3
	uf.Union(1, 3) // {0,1,2,3} root 3, 0 is two hops away

	require.Equal(t, 3, uf.Find(0))
	// after compression every element is a direct child of the root
	for i := 0; i < 3; i++ {
		uf.Find(i)
	}
	roots := uf.Roots()
	assert.Equal(t, []int{3, 3, 3, 3}, roots)
}

func TestRandomUnions_MatchNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	uf := unionfind.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for k := 0; k < 150; k++ {
		a, b := r.Intn(n), r.Intn(n)
		ra, rb := uf.Find(a), uf.Find(b)
		uf.Union(ra, rb)
		// naive relabel
		la, lb := label[a], label[b]
		if la != lb {
			for i := range label {
				if label[i] == la {
					label[i] = lb
				}
			}
		}
	}

	distinct := map[int]struct{}{}
	for i := 0; i < n; i++ {
		distinct[label[i]] = struct{}{}
		for j := i + 1; j < n; j += 17 {
			assert.Equal(t, label[i] == label[j], uf.Connected(i, j))
		}
	}
	assert.Equal(t, len(distinct), uf.Count())
}
