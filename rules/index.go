package rules

import (
	"encoding/binary"
	"slices"

	"github.com/cockroachdb/swiss"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
)

// supportIndex maps canonical itemsets to their support. An itemset's key is
// the uvarint encoding of its items' dense ids, taken in ascending item
// order, so equal sets always produce equal keys.
type supportIndex[T fptree.Item] struct {
	ids     *swiss.Map[T, uint64]
	support *swiss.Map[string, int]
	buf     []byte
}

func newSupportIndex[T fptree.Item](itemsets []fpgrowth.Itemset[T]) *supportIndex[T] {
	x := &supportIndex[T]{
		ids:     swiss.New[T, uint64](0),
		support: swiss.New[string, int](len(itemsets)),
	}
	for _, s := range itemsets {
		for _, it := range s.Items {
			if _, ok := x.ids.Get(it); !ok {
				x.ids.Put(it, uint64(x.ids.Len()))
			}
		}
		if key, ok := x.key(sortedCopy(s.Items)); ok {
			x.support.Put(key, s.Support)
		}
	}

	return x
}

// key encodes sorted items; ok is false if an item was never indexed.
func (x *supportIndex[T]) key(sorted []T) (string, bool) {
	x.buf = x.buf[:0]
	for _, it := range sorted {
		id, ok := x.ids.Get(it)
		if !ok {
			return "", false
		}
		x.buf = binary.AppendUvarint(x.buf, id)
	}

	return string(x.buf), true
}

// lookup returns the support of sorted items, 0 when unknown.
func (x *supportIndex[T]) lookup(sorted []T) int {
	key, ok := x.key(sorted)
	if !ok {
		return 0
	}
	s, _ := x.support.Get(key)

	return s
}

func sortedCopy[T fptree.Item](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)

	return slices.Compact(out)
}
