package fptree

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// Tree is an FP-tree: a node arena rooted at RootID plus the header table.
//
// A Tree is built once (Build / BuildConditional) and then only read. It is
// not safe for concurrent mutation; concurrent reads of a built tree are fine.
type Tree[T Item] struct {
	nodes  []Node[T]                   // arena; nodes[RootID] is the root
	header *swiss.Map[T, *HeaderEntry] // item → support and chain ends
	order  []T                         // header items, support asc then item asc
}

// newTree returns an empty tree whose header table holds exactly the items
// of supports.
func newTree[T Item](supports *swiss.Map[T, int]) *Tree[T] {
	t := &Tree[T]{
		nodes:  make([]Node[T], 1, 1+supports.Len()),
		header: swiss.New[T, *HeaderEntry](supports.Len()),
		order:  make([]T, 0, supports.Len()),
	}
	supports.All(func(it T, s int) bool {
		t.header.Put(it, &HeaderEntry{Support: s})
		t.order = append(t.order, it)
		return true
	})
	slices.SortFunc(t.order, func(a, b T) int {
		if c := cmp.Compare(t.Support(a), t.Support(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return t
}

// Empty reports whether the header table holds no item.
func (t *Tree[T]) Empty() bool {
	return t.header.Len() == 0
}

// Len returns the number of nodes, root included.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Root returns the root node.
func (t *Tree[T]) Root() Node[T] {
	return t.nodes[RootID]
}

// Node returns a copy of the node at id. It panics if id is out of range.
func (t *Tree[T]) Node(id NodeID) Node[T] {
	return t.nodes[id]
}

// Children returns the children of id ordered by ascending item.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	kids := t.nodes[id].children
	out := make([]NodeID, 0, len(kids))
	for _, c := range kids {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b NodeID) int {
		return cmp.Compare(t.nodes[a].Item, t.nodes[b].Item)
	})

	return out
}

// Items returns the header items in mining order: ascending support, ties
// broken by ascending item.
func (t *Tree[T]) Items() []T {
	return slices.Clone(t.order)
}

// Header returns the header entry for item.
func (t *Tree[T]) Header(item T) (HeaderEntry, bool) {
	e, ok := t.header.Get(item)
	if !ok {
		return HeaderEntry{}, false
	}

	return *e, true
}

// Support returns the tree-local support of item, 0 if absent.
func (t *Tree[T]) Support(item T) int {
	if e, ok := t.header.Get(item); ok {
		return e.Support
	}

	return 0
}

// Chain yields the node ids of item's occurrence chain in creation order.
func (t *Tree[T]) Chain(item T) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		e, ok := t.header.Get(item)
		if !ok {
			return
		}
		for id := e.Head; id != NoNode; id = t.nodes[id].Next {
			if !yield(id) {
				return
			}
		}
	}
}

// Check verifies the structural invariants of the tree: every header
// support equals the sum of counts along its chain, every chain node
// carries the chain's item, and items along each path appear in insertion
// order (support descending, item ascending).
//
// Complexity: O(nodes).
func (t *Tree[T]) Check() error {
	var err error
	t.header.All(func(it T, e *HeaderEntry) bool {
		sum := 0
		for id := range t.Chain(it) {
			if n := t.nodes[id]; n.Item != it {
				err = errors.AssertionFailedf("fptree: node %d on chain of %v carries %v", id, it, n.Item)
				return false
			}
			sum += t.nodes[id].Count
		}
		if sum != e.Support {
			err = errors.AssertionFailedf("fptree: item %v support %d, chain sum %d", it, e.Support, sum)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	for id := NodeID(1); int(id) < len(t.nodes); id++ {
		n := t.nodes[id]
		if n.Parent == RootID {
			continue
		}
		if p := t.nodes[n.Parent]; t.insertionCmp(p.Item, n.Item) >= 0 {
			return errors.AssertionFailedf("fptree: node %d (%v) placed under %v", id, n.Item, p.Item)
		}
	}

	return nil
}
