// SPDX-License-Identifier: MIT

package grid

import (
	"reflect"
	"sync"

	"tailscale.com/util/deephash"
)

// hashState is the hashed snapshot of a grid: shape plus cells.
type hashState[T any] struct {
	Rows, Cols int
	Cells      []T
}

// hashers caches one deephash hasher per hashState[T] instantiation.
var hashers sync.Map // reflect.Type → func(*hashState[T]) deephash.Sum

// Hash returns a content hash of g's shape and cells. Grids that are Equal
// hash identically, which makes Hash suitable as a map key when detecting
// repeated states in a simulation.
//
// T should be plain data: deephash walks pointers and slices but hashes
// funcs and channels by identity only.
func (g *Grid[T]) Hash() deephash.Sum {
	state := hashState[T]{Rows: g.rows, Cols: g.cols, Cells: g.data}
	rt := reflect.TypeOf(state)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[hashState[T]]())
	}

	return h.(func(*hashState[T]) deephash.Sum)(&state)
}
