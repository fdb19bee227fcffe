package fptree

import "slices"

// ConditionalBase returns the conditional pattern base of item: for every
// node on item's occurrence chain, the items on the path from the root
// (excluded) down to the node's parent, weighted by the node's count.
// Occurrences sitting directly under the root contribute no path.
//
// The result is the projection of the database on transactions containing
// item, with item itself removed.
func (t *Tree[T]) ConditionalBase(item T) []Path[T] {
	var base []Path[T]
	for id := range t.Chain(item) {
		n := t.nodes[id]
		var items []T
		for p := n.Parent; p != RootID; p = t.nodes[p].Parent {
			items = append(items, t.nodes[p].Item)
		}
		if len(items) == 0 {
			continue
		}
		slices.Reverse(items)
		base = append(base, Path[T]{Items: items, Weight: n.Count})
	}

	return base
}
