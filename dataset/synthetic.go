package dataset

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"

	"github.com/katalvlaran/lvmine/fptree"
)

// Synthetic defaults.
const (
	defaultSeed       int64 = 1
	defaultVocabulary       = 20
	defaultBasketSize       = 6
	zipfSkew                = 1.3

	// wordAttempts bounds faker draws per vocabulary slot before falling back
	// to numbered words (faker's word list is finite).
	wordAttempts = 50
)

// ErrBadSynthetic reports an invalid Synthetic argument.
var ErrBadSynthetic = errors.New("dataset: invalid synthetic parameters")

// SyntheticOption configures Synthetic.
type SyntheticOption func(*synthConfig)

type synthConfig struct {
	seed       int64
	vocabulary int
	basketSize int
	words      []string
}

// WithSeed fixes the sampling seed; 0 selects the default seed.
func WithSeed(seed int64) SyntheticOption {
	return func(c *synthConfig) { c.seed = seed }
}

// WithVocabulary sets the number of distinct items.
func WithVocabulary(n int) SyntheticOption {
	return func(c *synthConfig) { c.vocabulary = n }
}

// WithBasketSize sets the maximum number of items per basket.
func WithBasketSize(n int) SyntheticOption {
	return func(c *synthConfig) { c.basketSize = n }
}

// WithWords uses words as the vocabulary instead of generating one.
func WithWords(words []string) SyntheticOption {
	return func(c *synthConfig) { c.words = slices.Clone(words) }
}

// Synthetic returns n random baskets. Item popularity follows a Zipf law so
// that a few items (and their combinations) are frequent. Basket shapes are
// reproducible for a given seed; the vocabulary itself comes from faker
// unless WithWords is given.
func Synthetic(n int, opts ...SyntheticOption) ([]fptree.Transaction[string], error) {
	cfg := synthConfig{
		seed:       defaultSeed,
		vocabulary: defaultVocabulary,
		basketSize: defaultBasketSize,
	}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = defaultSeed
	}
	if n < 0 || cfg.basketSize < 1 || (cfg.words == nil && cfg.vocabulary < 1) {
		return nil, errors.Wrapf(ErrBadSynthetic, "n=%d vocabulary=%d basket=%d", n, cfg.vocabulary, cfg.basketSize)
	}

	words := cfg.words
	if words == nil {
		words = vocabulary(cfg.vocabulary)
	}
	if len(words) == 0 {
		return nil, errors.Wrap(ErrBadSynthetic, "empty vocabulary")
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	zipf := rand.NewZipf(rng, zipfSkew, 1, uint64(len(words)-1))
	txs := make([]fptree.Transaction[string], 0, n)
	for i := 0; i < n; i++ {
		size := 1 + rng.Intn(cfg.basketSize)
		tx := make(fptree.Transaction[string], 0, size)
		for j := 0; j < size; j++ {
			tx = append(tx, words[zipf.Uint64()])
		}
		slices.Sort(tx)
		txs = append(txs, slices.Compact(tx))
	}

	return txs, nil
}

// vocabulary draws n distinct words from faker.
func vocabulary(n int) []string {
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := ""
		for attempt := 0; attempt < wordAttempts; attempt++ {
			cand := faker.Word()
			if _, dup := seen[cand]; !dup && cand != "" {
				w = cand
				break
			}
		}
		if w == "" {
			w = fmt.Sprintf("item%d", len(words))
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	return words
}
