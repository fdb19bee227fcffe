// Package lvmine is your in-memory toolkit for frequent-pattern mining:
// build an FP-tree from market baskets, grow every frequent itemset with
// FP-growth and turn them into association rules.
//
// 🚀 What is lvmine?
//
//	A compact, deterministic library that brings together:
//		• Frequency counting with a support threshold
//		• FP-tree construction: arena nodes, header table, node-links
//		• Conditional pattern bases & conditional FP-trees
//		• Recursive FP-growth, optionally fanned out over goroutines
//		• Association rules with confidence and lift
//
// ✨ Why choose lvmine?
//
//   - Beginner-friendly – one call (mining.Run) from baskets to rules
//   - Reproducible – itemsets and rules come out in a fixed order
//   - Generic – any ordered item type (strings, ints, …)
//   - Inspectable – the tree, its header table and mining stats are exposed
//
// Everything is organized under a handful of subpackages:
//
//	fptree/      counting, FP-tree building, conditional pattern bases
//	fpgrowth/    the recursive miner, its options and stats
//	rules/       association rule generation
//	mining/      thresholds, parameters and the end-to-end Run facade
//	dataset/     transaction file loading/writing, reference & synthetic data
//	display/     tree, table and plot rendering
//	cmd/lvmine/  the command-line front end
//
// Quick ASCII example: the baskets abcd, bcd and abeh at support 2 give
//
//	Root
//	  b:3
//	    a:2
//	      c:1
//	        d:1
//	    c:1
//	      d:1
//
//	and, among others, {b,c,d}:2 and the rule {c} ⇒ {b,d} with confidence 1.00.
//
//	go install github.com/katalvlaran/lvmine/cmd/lvmine@latest
package lvmine
