// Package fptree implements the FP-tree: a compact prefix-tree encoding of a
// transaction database together with its header table and per-item
// occurrence chains.
//
// What:
//
//   - CountItems / CountPaths: one pass over the transactions (or weighted
//     paths) computing per-item support, dropping items below the threshold.
//   - Build: counts, seeds the header table, then inserts every transaction
//     after filtering infrequent items and ordering the rest by descending
//     support (ties: ascending item).
//   - BuildConditional: the same builder over a weighted conditional pattern
//     base; used by the miner at every recursion level.
//   - Tree.Insert: shared-prefix insertion with occurrence-chain maintenance.
//   - Tree.ConditionalBase: weighted prefix paths leading to every
//     occurrence of an item.
//
// Why:
//
//   - Transactions that share frequent items share tree prefixes, so the
//     tree is usually far smaller than the database it encodes.
//   - Conditional bases let the miner project the database on one item at a
//     time without rescanning the original transactions.
//
// Representation:
//
//	Nodes live in a tree-owned arena ([]Node) and refer to each other by
//	NodeID. Index 0 is the itemless root. Children are owned through the
//	per-node child map; Parent and Next are plain indices used only for
//	observation, so dropping the Tree releases everything at once. Since the
//	root is never a child nor a chain member, NodeID 0 doubles as "none" for
//	the root's parent and for the end of an occurrence chain.
//
// Ordering contract:
//
//   - Insertion order within a path: support descending, item ascending.
//   - Tree.Items (mining order): support ascending, item ascending.
//
// Complexity:
//
//   - Build:            O(N·L·log L) for N transactions of length ≤ L.
//   - Insert:           O(L) expected.
//   - ConditionalBase:  O(Σ depth of the item's occurrences).
//
// Errors:
//
//	The package works on already validated thresholds and panics only on
//	programmer errors (inserting an item unknown to the header table, or a
//	non-positive weight), using an assertion failure from cockroachdb/errors.
package fptree
