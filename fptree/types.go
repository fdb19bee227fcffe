package fptree

import "cmp"

// Item is the constraint satisfied by transaction items: any totally
// ordered, hashable value (strings, runes, integers...).
type Item interface {
	cmp.Ordered
}

// Transaction is one basket of items. It is treated as a set: duplicates
// inside a single transaction are counted and inserted once.
type Transaction[T Item] []T

// NodeID is a stable index into a Tree's node arena.
type NodeID int32

const (
	// RootID is the arena index of the itemless root.
	RootID NodeID = 0

	// NoNode marks an absent link. It equals RootID: the root is never the
	// target of a child or occurrence link, so the value is unambiguous.
	NoNode NodeID = 0
)

// Node is one occurrence of an item on one root-to-leaf path.
type Node[T Item] struct {
	// Item is the node's item; the zero value for the root.
	Item T

	// Count is the number of (weighted) transactions passing through this node.
	Count int

	// Parent is the parent's index; NoNode for the root.
	Parent NodeID

	// Next links to the next node carrying the same item, in creation order.
	Next NodeID

	children map[T]NodeID
}

// HeaderEntry summarises one item within one tree.
type HeaderEntry struct {
	// Support is the item's total count among the transactions (or weighted
	// paths) this tree was built from.
	Support int

	// Head is the first node of the item's occurrence chain, NoNode if none.
	Head NodeID

	tail NodeID
}

// Path is one element of a conditional pattern base: the items leading
// (root first) to an occurrence, weighted by that occurrence's count.
type Path[T Item] struct {
	Items  []T
	Weight int
}
