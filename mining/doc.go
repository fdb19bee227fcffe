// Package mining is the end-to-end entry point: it validates user-facing
// parameters, converts a fractional support threshold into an absolute
// count, mines frequent itemsets with fpgrowth and derives association
// rules with rules.
//
//	res, err := mining.Run(transactions, mining.Params{
//		MinSupport:    mining.Fraction(0.4),
//		MinConfidence: 0.75,
//	})
//
// Out-of-range parameters are rejected with ErrInvalidParameter; they are
// never clamped. An empty transaction set is valid and yields an empty
// Result.
package mining
