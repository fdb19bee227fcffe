package fptree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmine/fptree"
)

func TestBuild_Reference(t *testing.T) {
	tree := fptree.Build(reference(), 4)
	require.NoError(t, tree.Check())

	assert.False(t, tree.Empty())
	assert.Equal(t, 29, tree.Len())
	assert.Equal(t, []string{"c", "d", "g", "h", "a", "b", "e", "f"}, tree.Items())
	assert.Equal(t, []string{"a", "b", "e", "f"}, childItems(tree, fptree.RootID))

	e, ok := tree.Header("f")
	require.True(t, ok)
	assert.Equal(t, 5, e.Support)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, chainCounts(tree, "f"))
	assert.Equal(t, []int{2, 3}, chainCounts(tree, "b"))
	assert.Equal(t, []int{1, 2, 1, 1}, chainCounts(tree, "e"))

	_, ok = tree.Header("j")
	assert.False(t, ok, "j occurs twice and is filtered out")
	assert.Equal(t, 0, tree.Support("j"))
}

func TestBuild_FirstBranch(t *testing.T) {
	tree := fptree.Build(reference(), 4)

	a := tree.Children(fptree.RootID)[0]
	assert.Equal(t, "a", tree.Node(a).Item)
	assert.Equal(t, 5, tree.Node(a).Count)
	assert.Equal(t, fptree.RootID, tree.Node(a).Parent)
	assert.Equal(t, []string{"b", "e", "f"}, childItems(tree, a))

	b := tree.Children(a)[0]
	assert.Equal(t, 2, tree.Node(b).Count)
	assert.Equal(t, []string{"c", "e"}, childItems(tree, b))
}

func TestBuild_EmptyAndFilteredOut(t *testing.T) {
	empty := fptree.Build[string](nil, 1)
	assert.True(t, empty.Empty())
	assert.Equal(t, 1, empty.Len())
	assert.Empty(t, empty.Items())

	// Nothing reaches the threshold: header is empty, no node is created.
	sparse := fptree.Build([]fptree.Transaction[string]{{"x"}, {"y"}}, 2)
	assert.True(t, sparse.Empty())
	assert.Equal(t, 1, sparse.Len())
	assert.NoError(t, sparse.Check())
}

func TestOrder_SupportThenItem(t *testing.T) {
	tree := fptree.Build(reference(), 4)

	got := tree.Order([]string{"h", "g", "f", "e", "d", "c", "b", "a", "j", "a"})
	assert.Equal(t, []string{"a", "b", "e", "f", "c", "d", "g", "h"}, got)
}

func TestInsert_SharesPrefixAndChainsInCreationOrder(t *testing.T) {
	txs := []fptree.Transaction[int]{{1, 2, 3}, {1, 2}, {2, 3}, {1, 2, 3}}
	tree := fptree.Build(txs, 1)
	require.NoError(t, tree.Check())

	// Supports: 2→4, 1→3, 3→3; insertion order 2,1,3.
	assert.Equal(t, []int{1, 3, 2}, tree.Items())
	assert.Equal(t, []int{2}, childItems(tree, fptree.RootID))
	assert.Equal(t, []int{4}, chainCounts(tree, 2))
	assert.Equal(t, []int{3}, chainCounts(tree, 1))
	assert.Equal(t, []int{2, 1}, chainCounts(tree, 3))
	assert.Equal(t, 5, tree.Len())

	// Extra weighted insertion reuses the existing path.
	tree.Insert([]int{2, 1, 3}, 5)
	assert.Equal(t, []int{7, 1}, chainCounts(tree, 3))
	assert.Equal(t, 5, tree.Len())

	// Empty insertion is a no-op.
	tree.Insert(nil, 1)
	assert.Equal(t, 5, tree.Len())
}

func TestInsert_ProgrammerErrorsPanic(t *testing.T) {
	tree := fptree.Build([]fptree.Transaction[string]{{"a"}}, 1)

	assert.Panics(t, func() { tree.Insert([]string{"zz"}, 1) })
	assert.Panics(t, func() { tree.Insert([]string{"a"}, 0) })
}

func TestChain_StopsEarly(t *testing.T) {
	tree := fptree.Build(reference(), 4)

	seen := 0
	for range tree.Chain("f") {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)

	for range tree.Chain("zz") {
		t.Fatal("unknown item has no chain")
	}
}

func TestNextNodeID_Overflow(t *testing.T) {
	assert.Equal(t, fptree.NodeID(math.MaxInt32), fptree.NextNodeID(math.MaxInt32))
	assert.Panics(t, func() { fptree.NextNodeID(math.MaxInt32 + 1) })
}
