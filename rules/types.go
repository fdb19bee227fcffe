package rules

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/internal/logging"
)

// maxEnumerable bounds the itemset size whose subsets are enumerated.
const maxEnumerable = 30

var (
	// ErrConfidenceRange is returned when minConfidence is NaN or outside [0,1].
	ErrConfidenceRange = errors.New("rules: minimum confidence outside [0,1]")

	// ErrBadOption reports an option value outside its domain.
	ErrBadOption = errors.New("rules: invalid option")

	// ErrItemsetTooLarge is returned for itemsets whose 2^n subsets cannot be
	// enumerated.
	ErrItemsetTooLarge = errors.New("rules: itemset too large for rule enumeration")
)

// Rule is an association rule Antecedent ⇒ Consequent.
// Antecedent and Consequent are disjoint, sorted, and their union is the
// originating itemset.
type Rule[T fptree.Item] struct {
	Antecedent []T
	Consequent []T

	// Confidence is support(itemset) / support(Antecedent), in [0,1].
	Confidence float64

	// Support is the absolute support of the originating itemset.
	Support int

	// Lift is Confidence divided by the relative support of Consequent.
	// It is 0 unless WithTransactions was given and Consequent's support
	// is known.
	Lift float64
}

// String renders the rule as "{b,c} => {d} (conf 1.00)".
func (r Rule[T]) String() string {
	return fmt.Sprintf("%s => %s (conf %.2f)",
		fpgrowth.FormatItems(r.Antecedent), fpgrowth.FormatItems(r.Consequent), r.Confidence)
}

// Option configures Generate.
type Option func(*Options)

// Options holds the rule generator configuration.
type Options struct {
	// Strict turns a missing antecedent support into an error.
	Strict bool

	// Transactions is the database size used to compute Lift; 0 disables it.
	Transactions int

	// MaxAntecedent caps the antecedent size; 0 means unlimited.
	MaxAntecedent int

	// Logger receives debug traces; defaults to logging.Discard.
	Logger logging.Logger
}

// DefaultOptions returns lenient, lift-less, unlimited options.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard}
}

// WithStrict reports missing antecedent supports as assertion failures
// instead of skipping the candidate.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithTransactions enables Lift using n as the number of transactions.
func WithTransactions(n int) Option {
	return func(o *Options) { o.Transactions = n }
}

// WithMaxAntecedent limits antecedents to at most k items.
func WithMaxAntecedent(k int) Option {
	return func(o *Options) { o.MaxAntecedent = k }
}

// WithLogger installs l for debug tracing. A nil logger is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) validate() error {
	if o.Transactions < 0 {
		return errors.Wrapf(ErrBadOption, "transactions %d", o.Transactions)
	}
	if o.MaxAntecedent < 0 {
		return errors.Wrapf(ErrBadOption, "max antecedent %d", o.MaxAntecedent)
	}

	return nil
}
