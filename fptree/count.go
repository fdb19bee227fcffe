package fptree

import (
	"slices"

	"github.com/cockroachdb/swiss"
)

// CountItems scans transactions once and returns the support of every item
// whose count reaches minSupport. Items repeated inside one transaction are
// counted once. A minSupport below 1 keeps every item that occurs.
//
// Complexity: O(N·L·log L) time, O(distinct items) space.
func CountItems[T Item](transactions []Transaction[T], minSupport int) *swiss.Map[T, int] {
	counts := swiss.New[T, int](0)
	for _, tx := range transactions {
		for _, it := range uniqueItems(tx) {
			c, _ := counts.Get(it)
			counts.Put(it, c+1)
		}
	}

	return dropInfrequent(counts, minSupport)
}

// CountPaths is CountItems over a weighted conditional pattern base: each
// item in a path contributes the path's weight.
func CountPaths[T Item](paths []Path[T], minSupport int) *swiss.Map[T, int] {
	counts := swiss.New[T, int](0)
	for _, p := range paths {
		for _, it := range uniqueItems(p.Items) {
			c, _ := counts.Get(it)
			counts.Put(it, c+p.Weight)
		}
	}

	return dropInfrequent(counts, minSupport)
}

func dropInfrequent[T Item](counts *swiss.Map[T, int], minSupport int) *swiss.Map[T, int] {
	kept := swiss.New[T, int](counts.Len())
	counts.All(func(it T, c int) bool {
		if c >= minSupport {
			kept.Put(it, c)
		}
		return true
	})

	return kept
}

// uniqueItems returns a sorted, duplicate-free copy of items.
func uniqueItems[T Item](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)

	return slices.Compact(out)
}
