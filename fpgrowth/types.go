package fpgrowth

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/internal/logging"
)

var (
	// ErrNilTree is returned when Mine receives a nil tree.
	ErrNilTree = errors.New("fpgrowth: tree is nil")

	// ErrNegativeSupport is returned for an absolute minimum support below 0.
	ErrNegativeSupport = errors.New("fpgrowth: negative minimum support")

	// ErrBadOption reports an option value outside its domain.
	ErrBadOption = errors.New("fpgrowth: invalid option")
)

// Itemset is one frequent itemset and its absolute support.
type Itemset[T fptree.Item] struct {
	// Items are sorted ascending and unique.
	Items []T

	// Support is the number of transactions containing every item.
	Support int
}

// Fraction returns Support relative to n transactions (0 when n <= 0).
func (s Itemset[T]) Fraction(n int) float64 {
	if n <= 0 {
		return 0
	}

	return float64(s.Support) / float64(n)
}

// String renders the itemset as "{a,b}:4".
func (s Itemset[T]) String() string {
	return FormatItems(s.Items) + ":" + fmt.Sprint(s.Support)
}

// FormatItems renders items as "{a,b,c}".
func FormatItems[T fptree.Item](items []T) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, it)
	}
	b.WriteByte('}')

	return b.String()
}

// Option configures Mine.
type Option func(*Options)

// Options holds the miner configuration.
type Options struct {
	// Workers bounds the goroutines used for the top-level items.
	// Values <= 1 run sequentially (default).
	Workers int

	// MaxSize stops prefix extension at this many items; 0 means unlimited.
	MaxSize int

	// Logger receives debug traces; defaults to logging.Discard.
	Logger logging.Logger

	// Stats, when non-nil, is reset and filled by Mine.
	Stats *Stats
}

// DefaultOptions returns sequential, unlimited, silent mining options.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		MaxSize: 0,
		Logger:  logging.Discard,
	}
}

// WithWorkers enables top-level fan-out over at most n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxSize limits emitted itemsets to at most k items.
func WithMaxSize(k int) Option {
	return func(o *Options) {
		o.MaxSize = k
	}
}

// WithLogger installs l for debug tracing. A nil logger is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes Mine record conditional tree statistics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

func (o Options) validate() error {
	if o.Workers < 0 {
		return errors.Wrapf(ErrBadOption, "workers %d", o.Workers)
	}
	if o.MaxSize < 0 {
		return errors.Wrapf(ErrBadOption, "max size %d", o.MaxSize)
	}

	return nil
}
