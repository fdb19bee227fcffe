package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmine/display"
	"github.com/katalvlaran/lvmine/mining"
)

type reportOptions struct {
	tree  bool
	plot  bool
	color bool
}

func report(w io.Writer, res mining.Result[string], o reportOptions) error {
	if o.tree {
		fmt.Fprintln(w, "FP-tree:")
		if err := display.Tree(w, res.Tree, display.WithColor(o.color)); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Frequent itemsets (min support %d of %d transactions): %d\n",
		res.MinCount, res.Transactions, len(res.Itemsets))
	display.Itemsets(w, res.Itemsets, res.Transactions)

	fmt.Fprintf(w, "\nAssociation rules: %d\n", len(res.Rules))
	display.Rules(w, res.Rules)

	if o.plot {
		if plot := display.SupportPlot(res.Itemsets); plot != "" {
			fmt.Fprintf(w, "\n%s\n", plot)
		}
	}

	return nil
}
