package fptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmine/fptree"
)

func TestConditionalBase_Reference(t *testing.T) {
	tree := fptree.Build(reference(), 4)

	assert.Equal(t, []fptree.Path[string]{
		{Items: []string{"a", "b", "c"}, Weight: 1},
		{Items: []string{"b", "c"}, Weight: 1},
		{Items: []string{"b", "e", "c"}, Weight: 1},
		{Items: []string{"b", "e", "f", "c"}, Weight: 1},
	}, tree.ConditionalBase("d"))

	// b occurs once under a (count 2) and once under the root (no path).
	assert.Equal(t, []fptree.Path[string]{
		{Items: []string{"a"}, Weight: 2},
	}, tree.ConditionalBase("b"))

	// a only hangs off the root.
	assert.Empty(t, tree.ConditionalBase("a"))
	assert.Empty(t, tree.ConditionalBase("unknown"))
}

func TestBuildConditional_Reference(t *testing.T) {
	tree := fptree.Build(reference(), 4)
	cond := fptree.BuildConditional(tree.ConditionalBase("d"), 4)
	require.NoError(t, cond.Check())

	assert.Equal(t, []string{"b", "c"}, cond.Items())
	assert.Equal(t, 4, cond.Support("b"))
	assert.Equal(t, 4, cond.Support("c"))
	assert.Equal(t, 3, cond.Len())
	assert.Equal(t, []string{"b"}, childItems(cond, fptree.RootID))
	assert.Equal(t, []int{4}, chainCounts(cond, "c"))
}

func TestBuildConditional_NothingSurvives(t *testing.T) {
	paths := []fptree.Path[string]{{Items: []string{"x"}, Weight: 1}}
	cond := fptree.BuildConditional(paths, 2)

	assert.True(t, cond.Empty())
	assert.Equal(t, 1, cond.Len())
}
