package msf

import (
	"math"

	"github.com/katalvlaran/spanforest/sparse"
)

// Key orders candidate edges by weight, then by destination vertex. It is the
// value type of Boruvka's row reduction.
type Key struct {
	Weight float64
	Dest   int
}

// noKey is the identity of the KeyMin monoid.
var noKey = Key{Weight: math.Inf(1), Dest: -1}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	if k.Weight != o.Weight {
		return k.Weight < o.Weight
	}

	return k.Dest < o.Dest
}

func minKey(a, b Key) Key {
	if b.Less(a) {
		return b
	}

	return a
}

// KeyMin is the (min, +Inf) monoid over Key.
func KeyMin() sparse.Monoid[Key] {
	return sparse.Monoid[Key]{Op: minKey, Identity: noKey}
}
