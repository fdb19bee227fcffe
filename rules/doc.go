// Package rules derives association rules from mined frequent itemsets.
//
// For every itemset S of size ≥ 2 and every non-empty proper subset A of S,
// the candidate rule A ⇒ S∖A has
//
//	confidence = support(S) / support(A)
//
// and is kept when confidence ≥ minConfidence. Subsets are enumerated by
// bitmask over S's sorted items in increasing mask order, so the output is
// ordered by input itemset, then by mask. There are 2^n − 2 candidates for
// an n-item set: rule generation, not mining, is the exponential step.
//
// Antecedent supports are looked up in an index built from the input. For
// the output of fpgrowth every subset is present (anti-monotonicity); a
// missing or zero support is skipped by default, or reported as an
// assertion failure with WithStrict.
package rules
