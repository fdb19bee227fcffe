package fptree_test

import (
	"strings"

	"github.com/katalvlaran/lvmine/fptree"
)

// reference is the ten-basket a–j dataset used throughout the tests.
func reference() []fptree.Transaction[string] {
	lines := []string{
		"abcd", "bcd", "aefgh", "bcdegj", "bcdef",
		"afg", "aij", "abeh", "fghij", "efh",
	}
	txs := make([]fptree.Transaction[string], 0, len(lines))
	for _, l := range lines {
		txs = append(txs, strings.Split(l, ""))
	}

	return txs
}

// chainCounts lists item:count along item's occurrence chain.
func chainCounts[T fptree.Item](t *fptree.Tree[T], item T) []int {
	var out []int
	for id := range t.Chain(item) {
		out = append(out, t.Node(id).Count)
	}

	return out
}

// childItems lists the items of id's children in order.
func childItems[T fptree.Item](t *fptree.Tree[T], id fptree.NodeID) []T {
	var out []T
	for _, c := range t.Children(id) {
		out = append(out, t.Node(c).Item)
	}

	return out
}
