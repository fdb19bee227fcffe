// Package display renders FP-trees, itemsets and rules for humans.
//
// Every function here is a pure consumer of already-built values: it reads
// a Tree through its accessors or formats result slices, and never feeds
// anything back into mining.
//
//   - Tree:        indented prefix tree plus header table with occurrence chains.
//   - Itemsets:    table of itemsets with absolute and relative support.
//   - Rules:       table of rules with confidence and lift.
//   - SupportPlot: ASCII chart of frequent itemsets per itemset size.
package display
