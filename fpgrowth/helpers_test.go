package fpgrowth_test

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
)

const (
	// seedDet is the fixed seed for randomized property tests.
	seedDet = int64(7)

	// refMinCount is ceil(0.4 · 10) on the reference dataset.
	refMinCount = 4
)

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

// randomTransactions draws n baskets over items 0..alphabet-1; each item is
// included with probability p.
func randomTransactions(rng *rand.Rand, n, alphabet int, p float64) []fptree.Transaction[int] {
	txs := make([]fptree.Transaction[int], 0, n)
	for i := 0; i < n; i++ {
		var tx fptree.Transaction[int]
		for it := 0; it < alphabet; it++ {
			if rng.Float64() < p {
				tx = append(tx, it)
			}
		}
		rng.Shuffle(len(tx), func(a, b int) { tx[a], tx[b] = tx[b], tx[a] })
		txs = append(txs, tx)
	}

	return txs
}

// bruteForce enumerates the power set of 0..alphabet-1 and counts each
// subset's support directly.
func bruteForce(txs []fptree.Transaction[int], alphabet, minSupport int) map[string]int {
	masks := make([]uint32, len(txs))
	for i, tx := range txs {
		for _, it := range tx {
			masks[i] |= 1 << it
		}
	}

	out := map[string]int{}
	for set := uint32(1); set < 1<<alphabet; set++ {
		support := 0
		for _, m := range masks {
			if m&set == set {
				support++
			}
		}
		if support < minSupport || support == 0 {
			continue
		}
		var items []int
		for it := 0; it < alphabet; it++ {
			if set&(1<<it) != 0 {
				items = append(items, it)
			}
		}
		out[fpgrowth.FormatItems(items)] = support
	}

	return out
}

// asMap keys itemsets by their rendering.
func asMap[T fptree.Item](sets []fpgrowth.Itemset[T]) map[string]int {
	out := make(map[string]int, len(sets))
	for _, s := range sets {
		out[fpgrowth.FormatItems(s.Items)] = s.Support
	}

	return out
}

func strs[T fptree.Item](sets []fpgrowth.Itemset[T]) []string {
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		out = append(out, fmt.Sprint(s))
	}

	return out
}
