package rules_test

import (
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/rules"
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

func mineReference(t *testing.T) []fpgrowth.Itemset[string] {
	t.Helper()
	sets, err := fpgrowth.MineTransactions(reference(), 4)
	require.NoError(t, err)

	return sets
}

func TestGenerate_Reference(t *testing.T) {
	got, err := rules.Generate(mineReference(t), 0.75)
	require.NoError(t, err)

	var rendered []string
	for _, r := range got {
		rendered = append(rendered, r.String())
	}
	assert.Equal(t, []string{
		"{b} => {c} (conf 0.80)",
		"{c} => {b} (conf 1.00)",
		"{b} => {d} (conf 0.80)",
		"{d} => {b} (conf 1.00)",
		"{c} => {d} (conf 1.00)",
		"{d} => {c} (conf 1.00)",
		"{b} => {c,d} (conf 0.80)",
		"{c} => {b,d} (conf 1.00)",
		"{b,c} => {d} (conf 1.00)",
		"{d} => {b,c} (conf 1.00)",
		"{b,d} => {c} (conf 1.00)",
		"{c,d} => {b} (conf 1.00)",
	}, rendered)
}

func TestGenerate_WorkedRule(t *testing.T) {
	got, err := rules.Generate(mineReference(t), 0.75, rules.WithTransactions(10))
	require.NoError(t, err)

	var found bool
	for _, r := range got {
		if fpgrowth.FormatItems(r.Antecedent) == "{b,c}" && fpgrowth.FormatItems(r.Consequent) == "{d}" {
			found = true
			assert.Equal(t, 1.0, r.Confidence)
			assert.Equal(t, 4, r.Support)
			assert.InDelta(t, 2.5, r.Lift, 1e-9)
		}
	}
	assert.True(t, found, "{b,c} => {d} must be generated")
}

func TestGenerate_ConfidenceIsExactRatio(t *testing.T) {
	sets := mineReference(t)
	support := map[string]int{}
	for _, s := range sets {
		support[fpgrowth.FormatItems(s.Items)] = s.Support
	}

	got, err := rules.Generate(sets, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Confidence, 0.0)
		assert.LessOrEqual(t, r.Confidence, 1.0)

		whole := append(append([]string{}, r.Antecedent...), r.Consequent...)
		assert.Len(t, whole, len(r.Antecedent)+len(r.Consequent))
		ante := support[fpgrowth.FormatItems(r.Antecedent)]
		require.NotZero(t, ante)
		assert.LessOrEqual(t, math.Abs(r.Confidence-float64(r.Support)/float64(ante)), 1e-9)
	}
}

func TestGenerate_EmptyAndSingletons(t *testing.T) {
	got, err := rules.Generate[string](nil, 0.5)
	require.NoError(t, err)
	assert.Empty(t, got)

	gotInt, err := rules.Generate([]fpgrowth.Itemset[int]{{Items: []int{1}, Support: 3}}, 0)
	require.NoError(t, err)
	assert.Empty(t, gotInt)
}

func TestGenerate_MissingAntecedent(t *testing.T) {
	// {x} is absent: only {y} => {x} can be evaluated.
	partial := []fpgrowth.Itemset[string]{
		{Items: []string{"y"}, Support: 4},
		{Items: []string{"x", "y"}, Support: 2},
	}

	got, err := rules.Generate(partial, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"y"}, got[0].Antecedent)
	assert.Equal(t, []string{"x"}, got[0].Consequent)
	assert.Equal(t, 0.5, got[0].Confidence)
	assert.Zero(t, got[0].Lift)

	_, err = rules.Generate(partial, 0, rules.WithStrict())
	require.Error(t, err)
	assert.True(t, errors.IsAssertionFailure(err))
}

func TestGenerate_MaxAntecedent(t *testing.T) {
	got, err := rules.Generate(mineReference(t), 0.75, rules.WithMaxAntecedent(1))
	require.NoError(t, err)

	assert.Len(t, got, 9)
	for _, r := range got {
		assert.Len(t, r.Antecedent, 1)
	}
}

func TestGenerate_UnsortedInput(t *testing.T) {
	sets := []fpgrowth.Itemset[int]{
		{Items: []int{2}, Support: 5},
		{Items: []int{1}, Support: 4},
		{Items: []int{2, 1}, Support: 4},
	}
	got, err := rules.Generate(sets, 0.9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{1}, got[0].Antecedent)
	assert.Equal(t, []int{2}, got[0].Consequent)
}

func TestGenerate_InvalidParameters(t *testing.T) {
	for _, c := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := rules.Generate[string](nil, c)
		assert.ErrorIs(t, err, rules.ErrConfidenceRange, "confidence %v", c)
	}

	_, err := rules.Generate[string](nil, 0.5, rules.WithTransactions(-1))
	assert.ErrorIs(t, err, rules.ErrBadOption)
	_, err = rules.Generate[string](nil, 0.5, rules.WithMaxAntecedent(-2))
	assert.ErrorIs(t, err, rules.ErrBadOption)
}

func TestGenerate_Idempotent(t *testing.T) {
	sets := mineReference(t)
	a, err := rules.Generate(sets, 0.5)
	require.NoError(t, err)
	b, err := rules.Generate(sets, 0.5)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_ItemsetTooLarge(t *testing.T) {
	items := make([]int, 31)
	for i := range items {
		items[i] = i
	}
	big := []fpgrowth.Itemset[int]{{Items: items, Support: 2}}

	_, err := rules.Generate(big, 0.5, rules.WithMaxAntecedent(1))
	assert.ErrorIs(t, err, rules.ErrItemsetTooLarge)

	_, err = rules.Generate(big[:0], 0.5)
	assert.NoError(t, err)
}
