package fptree

import (
	"cmp"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// Build constructs the FP-tree of transactions: items below minSupport are
// dropped, and each transaction's remaining items are inserted with weight 1
// in insertion order. Transactions left empty by filtering are skipped.
func Build[T Item](transactions []Transaction[T], minSupport int) *Tree[T] {
	t := newTree(CountItems(transactions, minSupport))
	for _, tx := range transactions {
		t.Insert(t.Order(tx), 1)
	}

	return t
}

// BuildConditional constructs a fresh tree from a conditional pattern base.
// The header table holds exactly the items whose aggregated path weight
// reaches minSupport; every path is filtered, reordered and inserted with
// its own weight.
func BuildConditional[T Item](paths []Path[T], minSupport int) *Tree[T] {
	t := newTree(CountPaths(paths, minSupport))
	if t.Empty() {
		return t
	}
	for _, p := range paths {
		t.Insert(t.Order(p.Items), p.Weight)
	}

	return t
}

// Order returns the items of tx known to the header table, deduplicated
// and sorted by descending support with ascending-item tie-break.
func (t *Tree[T]) Order(tx []T) []T {
	out := make([]T, 0, len(tx))
	for _, it := range tx {
		if _, ok := t.header.Get(it); ok {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, t.insertionCmp)

	return slices.Compact(out)
}

func (t *Tree[T]) insertionCmp(a, b T) int {
	if c := cmp.Compare(t.Support(b), t.Support(a)); c != 0 {
		return c
	}

	return cmp.Compare(a, b)
}

// Insert adds one ordered item sequence to the tree with the given weight,
// sharing the longest existing prefix. New nodes are appended to the tail
// of their item's occurrence chain. An empty sequence is a no-op.
//
// Every item must be present in the header table and weight must be
// positive; violating either is a programmer error and panics.
func (t *Tree[T]) Insert(ordered []T, weight int) {
	if len(ordered) == 0 {
		return
	}
	if weight <= 0 {
		panic(errors.AssertionFailedf("fptree: non-positive insertion weight %d", weight))
	}

	cur := RootID
	for _, it := range ordered {
		child, ok := t.nodes[cur].children[it]
		if !ok {
			child = t.addChild(cur, it)
		}
		t.nodes[child].Count += weight
		cur = child
	}
}

// addChild appends a zero-count node for item under parent and links it at
// the tail of item's occurrence chain.
func (t *Tree[T]) addChild(parent NodeID, item T) NodeID {
	e, ok := t.header.Get(item)
	if !ok {
		panic(errors.AssertionFailedf("fptree: item %v is not in the header table", item))
	}

	id := nextNodeID(int64(len(t.nodes)))
	t.nodes = append(t.nodes, Node[T]{Item: item, Parent: parent})

	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[T]NodeID, 1)
	}
	p.children[item] = id

	if e.Head == NoNode {
		e.Head = id
	} else {
		t.nodes[e.tail].Next = id
	}
	e.tail = id

	return id
}

// nextNodeID converts an arena length into the id of the next node. It
// panics once the arena would outgrow NodeID.
func nextNodeID(n int64) NodeID {
	if n > math.MaxInt32 {
		panic(errors.AssertionFailedf("fptree: arena exceeds %d nodes", int64(math.MaxInt32)))
	}

	return NodeID(n)
}
