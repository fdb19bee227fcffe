package mining

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidParameter reports a support or confidence threshold (or a
// tuning knob) outside its domain.
var ErrInvalidParameter = errors.New("mining: invalid parameter")

// fractionSlack absorbs floating-point noise in f·n before rounding up,
// so that Fraction(0.7) over 10 transactions means 7, not 8. It is relative
// to n, as the noise grows with the product.
const fractionSlack = 1e-9

// Threshold is a minimum support, either absolute or relative to the number
// of transactions.
type Threshold struct {
	count      int
	fraction   float64
	isFraction bool
}

// Count returns an absolute threshold of n transactions.
func Count(n int) Threshold {
	return Threshold{count: n}
}

// Fraction returns a threshold of f·len(transactions), rounded up.
func Fraction(f float64) Threshold {
	return Threshold{fraction: f, isFraction: true}
}

// IsFraction reports whether the threshold is relative.
func (t Threshold) IsFraction() bool {
	return t.isFraction
}

// Validate checks that a count is non-negative and a fraction lies in [0,1].
func (t Threshold) Validate() error {
	if t.isFraction {
		if !(t.fraction >= 0 && t.fraction <= 1) {
			return errors.Wrapf(ErrInvalidParameter, "support fraction %v outside [0,1]", t.fraction)
		}
		return nil
	}
	if t.count < 0 {
		return errors.Wrapf(ErrInvalidParameter, "negative support count %d", t.count)
	}

	return nil
}

// Absolute resolves the threshold against n transactions.
func (t Threshold) Absolute(n int) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if !t.isFraction {
		return t.count, nil
	}

	slack := fractionSlack * math.Max(1, float64(n))

	return int(math.Ceil(t.fraction*float64(n) - slack)), nil
}

// String renders the threshold as "4" or "40%".
func (t Threshold) String() string {
	if t.isFraction {
		return fmt.Sprintf("%.4g%%", t.fraction*100)
	}

	return fmt.Sprint(t.count)
}

// Params are the user-facing mining parameters.
type Params struct {
	// MinSupport is the frequent-itemset threshold.
	MinSupport Threshold

	// MinConfidence is the rule threshold, in [0,1].
	MinConfidence float64

	// Workers > 1 enables parallel mining of the top-level items.
	Workers int

	// MaxSize caps itemset size (0 = unlimited).
	MaxSize int

	// MaxAntecedent caps rule antecedent size (0 = unlimited).
	MaxAntecedent int
}

// DefaultParams returns 40% support and 75% confidence, sequential and
// unlimited.
func DefaultParams() Params {
	return Params{
		MinSupport:    Fraction(0.4),
		MinConfidence: 0.75,
		Workers:       1,
	}
}

// Validate rejects every out-of-range value with ErrInvalidParameter.
func (p Params) Validate() error {
	if err := p.MinSupport.Validate(); err != nil {
		return err
	}
	if !(p.MinConfidence >= 0 && p.MinConfidence <= 1) {
		return errors.Wrapf(ErrInvalidParameter, "confidence %v outside [0,1]", p.MinConfidence)
	}
	if p.Workers < 0 {
		return errors.Wrapf(ErrInvalidParameter, "negative workers %d", p.Workers)
	}
	if p.MaxSize < 0 {
		return errors.Wrapf(ErrInvalidParameter, "negative max size %d", p.MaxSize)
	}
	if p.MaxAntecedent < 0 {
		return errors.Wrapf(ErrInvalidParameter, "negative max antecedent %d", p.MaxAntecedent)
	}

	return nil
}
