// Package fpgrowth mines every frequent itemset of an FP-tree by recursive
// divide-and-conquer over conditional trees (FP-growth).
//
// What:
//
//   - Mine(tree, minSupport, opts...): for each header item of tree, emit
//     prefix ∪ {item} with its header support, project the tree on item
//     (conditional pattern base), build a fresh conditional tree from the
//     items that stay frequent, and recurse with the extended prefix.
//   - MineTransactions(transactions, minSupport, opts...): fptree.Build + Mine.
//
// Why:
//
//   - No candidate generation: every itemset is produced exactly once, with
//     its exact support, from a suffix-extension that no other branch visits.
//
// Determinism:
//
//	Header items are visited in ascending support, ties by ascending item
//	(fptree.Tree.Items). Each emitted Itemset holds its items sorted
//	ascending. The output order is the depth-first emission order and is
//	identical whether or not WithWorkers is used.
//
// Options:
//
//   - WithWorkers(n)   fan out the top-level items over at most n goroutines.
//   - WithMaxSize(k)   do not extend itemsets beyond k items (0 = unlimited).
//   - WithLogger(l)    trace conditional tree sizes at debug level.
//
// Complexity:
//
//	Output-sensitive: proportional to the number of frequent itemsets times
//	the size of the conditional trees built for them. Recursion depth is
//	bounded by the number of distinct frequent items.
//
// Errors:
//
//   - ErrNilTree          tree is nil.
//   - ErrNegativeSupport  minSupport < 0.
//   - ErrBadOption        negative worker count or size limit.
package fpgrowth
