package fpgrowth

import (
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmine/fptree"
)

// miner carries the per-call mining state.
type miner[T fptree.Item] struct {
	minSupport int
	opts       Options
	stats      *Stats
}

// MineTransactions builds the FP-tree of transactions and mines it.
// An empty transaction set yields no itemsets and no error.
func MineTransactions[T fptree.Item](transactions []fptree.Transaction[T], minSupport int, opts ...Option) ([]Itemset[T], error) {
	if minSupport < 0 {
		return nil, errors.Wrapf(ErrNegativeSupport, "min support %d", minSupport)
	}
	tree := fptree.Build(transactions, minSupport)

	return Mine(tree, minSupport, opts...)
}

// Mine returns every itemset of tree whose support reaches minSupport,
// each paired with its exact support. See the package documentation for
// the output order.
func Mine[T fptree.Item](tree *fptree.Tree[T], minSupport int, opts ...Option) ([]Itemset[T], error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if minSupport < 0 {
		return nil, errors.Wrapf(ErrNegativeSupport, "min support %d", minSupport)
	}

	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}
	if err := mopts.validate(); err != nil {
		return nil, err
	}

	m := &miner[T]{minSupport: minSupport, opts: mopts, stats: mopts.Stats}
	if m.stats != nil {
		m.stats.reset()
	}
	mopts.Logger.Infof("mining %d items, %d nodes, min support %d, workers %d",
		len(tree.Items()), tree.Len(), minSupport, mopts.Workers)

	if mopts.Workers <= 1 {
		var out []Itemset[T]
		m.grow(nil, tree, &out)
		return out, nil
	}

	return m.growParallel(tree)
}

// grow emits and recursively extends prefix ∪ {item} for every header item.
func (m *miner[T]) grow(prefix []T, tree *fptree.Tree[T], out *[]Itemset[T]) {
	for _, it := range tree.Items() {
		m.extend(prefix, tree, it, out)
	}
}

// extend handles one header item: emit, project, rebuild, recurse.
// Items below minSupport are skipped, so a tree built with a lower
// threshold is mined correctly.
func (m *miner[T]) extend(prefix []T, tree *fptree.Tree[T], item T, out *[]Itemset[T]) {
	if tree.Support(item) < m.minSupport {
		return
	}
	next := append(slices.Clip(prefix), item)
	*out = append(*out, newItemset(next, tree.Support(item)))

	if m.opts.MaxSize > 0 && len(next) >= m.opts.MaxSize {
		return
	}
	base := tree.ConditionalBase(item)
	if len(base) == 0 {
		return
	}
	cond := fptree.BuildConditional(base, m.minSupport)
	if cond.Empty() {
		return
	}
	m.opts.Logger.Debugf("prefix %s: %d paths → %d items, %d nodes",
		FormatItems(next), len(base), len(cond.Items()), cond.Len())
	if m.stats != nil {
		m.stats.record(len(next), cond.Len())
	}

	m.grow(next, cond, out)
}

// growParallel runs extend for every top-level item on its own goroutine
// (bounded by Workers). Each task fills a private buffer; buffers are joined
// in header order so the result equals the sequential one.
func (m *miner[T]) growParallel(tree *fptree.Tree[T]) ([]Itemset[T], error) {
	items := tree.Items()
	bufs := make([][]Itemset[T], len(items))
	stats := make([]*Stats, len(items))

	var g errgroup.Group
	g.SetLimit(m.opts.Workers)
	for i, it := range items {
		g.Go(func() error {
			task := &miner[T]{minSupport: m.minSupport, opts: m.opts}
			if m.stats != nil {
				task.stats = newStats()
				stats[i] = task.stats
			}
			var buf []Itemset[T]
			task.extend(nil, tree, it, &buf)
			bufs[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Itemset[T]
	for i, b := range bufs {
		out = append(out, b...)
		if stats[i] != nil {
			m.stats.merge(stats[i])
		}
	}

	return out, nil
}

func newItemset[T fptree.Item](items []T, support int) Itemset[T] {
	sorted := slices.Clone(items)
	slices.Sort(sorted)

	return Itemset[T]{Items: sorted, Support: support}
}
