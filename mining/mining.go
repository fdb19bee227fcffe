package mining

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/internal/logging"
	"github.com/katalvlaran/lvmine/rules"
)

// Result is the outcome of Run.
type Result[T fptree.Item] struct {
	// Itemsets are the frequent itemsets in fpgrowth emission order.
	Itemsets []fpgrowth.Itemset[T]

	// Rules are the association rules in rules.Generate order.
	Rules []rules.Rule[T]

	// Tree is the FP-tree of the whole database, for read-only inspection.
	Tree *fptree.Tree[T]

	// Transactions is the number of input transactions.
	Transactions int

	// MinCount is the absolute support threshold that was applied.
	MinCount int

	// Stats describes the conditional trees built while mining.
	Stats *fpgrowth.Stats
}

// Option configures Run.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger routes progress and debug messages of every stage to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = logging.OrDiscard(l)
	}
}

// Run validates p, builds the FP-tree, mines it and generates rules.
//
// Rules are enumerated over every subset of each itemset, so a frequent
// itemset of more than 30 items makes Run fail with
// rules.ErrItemsetTooLarge, even when MaxAntecedent is set. Bound the
// itemsets with MaxSize to mine such data.
func Run[T fptree.Item](transactions []fptree.Transaction[T], p Params, opts ...Option) (Result[T], error) {
	o := options{logger: logging.Discard}
	for _, fn := range opts {
		fn(&o)
	}
	if err := p.Validate(); err != nil {
		return Result[T]{}, err
	}

	minCount, err := p.MinSupport.Absolute(len(transactions))
	if err != nil {
		return Result[T]{}, err
	}
	o.logger.Infof("%d transactions, min support %s → %d", len(transactions), p.MinSupport, minCount)

	tree := fptree.Build(transactions, minCount)
	stats := &fpgrowth.Stats{}
	sets, err := fpgrowth.Mine(tree, minCount,
		fpgrowth.WithWorkers(p.Workers),
		fpgrowth.WithMaxSize(p.MaxSize),
		fpgrowth.WithLogger(o.logger),
		fpgrowth.WithStats(stats),
	)
	if err != nil {
		return Result[T]{}, markInvalid(err, fpgrowth.ErrNegativeSupport, fpgrowth.ErrBadOption)
	}
	o.logger.Infof("%d itemsets; %s", len(sets), stats)

	rs, err := rules.Generate(sets, p.MinConfidence,
		rules.WithTransactions(len(transactions)),
		rules.WithMaxAntecedent(p.MaxAntecedent),
		rules.WithLogger(o.logger),
	)
	if err != nil {
		return Result[T]{}, markInvalid(err, rules.ErrConfidenceRange, rules.ErrBadOption)
	}

	return Result[T]{
		Itemsets:     sets,
		Rules:        rs,
		Tree:         tree,
		Transactions: len(transactions),
		MinCount:     minCount,
		Stats:        stats,
	}, nil
}

// markInvalid tags parameter errors raised by the stages with
// ErrInvalidParameter; other errors pass through unchanged.
func markInvalid(err error, params ...error) error {
	for _, p := range params {
		if errors.Is(err, p) {
			return errors.Mark(err, ErrInvalidParameter)
		}
	}

	return err
}
