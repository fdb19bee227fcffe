package rules

import (
	"math/bits"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
)

// Generate returns every rule derivable from itemsets whose confidence
// reaches minConfidence. Itemsets of size < 2 produce no rule; an empty
// input produces an empty result.
func Generate[T fptree.Item](itemsets []fpgrowth.Itemset[T], minConfidence float64, opts ...Option) ([]Rule[T], error) {
	if !(minConfidence >= 0 && minConfidence <= 1) {
		return nil, errors.Wrapf(ErrConfidenceRange, "min confidence %v", minConfidence)
	}
	gopts := DefaultOptions()
	for _, fn := range opts {
		fn(&gopts)
	}
	if err := gopts.validate(); err != nil {
		return nil, err
	}

	idx := newSupportIndex(itemsets)
	var (
		out     []Rule[T]
		skipped int
	)
	for _, s := range itemsets {
		items := sortedCopy(s.Items)
		n := len(items)
		if n < 2 {
			continue
		}
		if n > maxEnumerable {
			return nil, errors.Wrapf(ErrItemsetTooLarge, "%d items", n)
		}

		full := uint64(1)<<n - 1
		for mask := uint64(1); mask < full; mask++ {
			if gopts.MaxAntecedent > 0 && bits.OnesCount64(mask) > gopts.MaxAntecedent {
				continue
			}
			ante, cons := split(items, mask)
			if len(cons) == 0 {
				continue
			}

			anteSupport := idx.lookup(ante)
			if anteSupport == 0 {
				if gopts.Strict {
					return nil, errors.AssertionFailedf("rules: antecedent %s of %s has no recorded support",
						fpgrowth.FormatItems(ante), fpgrowth.FormatItems(items))
				}
				skipped++
				continue
			}

			conf := float64(s.Support) / float64(anteSupport)
			if conf < minConfidence {
				continue
			}
			out = append(out, Rule[T]{
				Antecedent: ante,
				Consequent: cons,
				Confidence: conf,
				Support:    s.Support,
				Lift:       lift(conf, idx.lookup(cons), gopts.Transactions),
			})
		}
	}
	if skipped > 0 {
		gopts.Logger.Debugf("skipped %d candidates with unknown antecedent support", skipped)
	}
	gopts.Logger.Infof("%d rules from %d itemsets at confidence %.2f", len(out), len(itemsets), minConfidence)

	return out, nil
}

// split partitions sorted items by mask: set bits form the antecedent.
func split[T fptree.Item](items []T, mask uint64) (ante, cons []T) {
	ante = make([]T, 0, bits.OnesCount64(mask))
	cons = make([]T, 0, len(items)-cap(ante))
	for i, it := range items {
		if mask&(1<<i) != 0 {
			ante = append(ante, it)
		} else {
			cons = append(cons, it)
		}
	}

	return ante, cons
}

func lift(conf float64, consSupport, transactions int) float64 {
	if transactions <= 0 || consSupport <= 0 {
		return 0
	}

	return conf / (float64(consSupport) / float64(transactions))
}
