package fptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmine/fptree"
)

func TestCountItems_Reference(t *testing.T) {
	counts := fptree.CountItems(reference(), 4)

	got := map[string]int{}
	counts.All(func(it string, c int) bool {
		got[it] = c
		return true
	})
	assert.Equal(t, map[string]int{
		"a": 5, "b": 5, "e": 5, "f": 5,
		"c": 4, "d": 4, "g": 4, "h": 4,
	}, got)
}

func TestCountItems_DuplicatesCountedOnce(t *testing.T) {
	txs := []fptree.Transaction[int]{{1, 1, 2}, {1}}
	counts := fptree.CountItems(txs, 0)

	c, ok := counts.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, c)
	c, _ = counts.Get(2)
	assert.Equal(t, 1, c)
}

func TestCountItems_Empty(t *testing.T) {
	assert.Equal(t, 0, fptree.CountItems[string](nil, 1).Len())
}

func TestCountPaths_Weighted(t *testing.T) {
	paths := []fptree.Path[string]{
		{Items: []string{"a", "b"}, Weight: 3},
		{Items: []string{"b"}, Weight: 2},
		{Items: []string{"c"}, Weight: 1},
	}
	counts := fptree.CountPaths(paths, 2)

	assert.Equal(t, 2, counts.Len())
	a, _ := counts.Get("a")
	b, _ := counts.Get("b")
	assert.Equal(t, 3, a)
	assert.Equal(t, 5, b)
	_, ok := counts.Get("c")
	assert.False(t, ok, "c is below the threshold")
}
