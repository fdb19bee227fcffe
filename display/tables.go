package display

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/rules"
)

// Itemsets writes one row per itemset: position, items, support and the
// support as a percentage of n transactions.
func Itemsets[T fptree.Item](w io.Writer, sets []fpgrowth.Itemset[T], n int) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Itemset", "Support", "Support %"})
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, s := range sets {
		tbl.Append([]string{
			fmt.Sprint(i + 1),
			fpgrowth.FormatItems(s.Items),
			fmt.Sprintf("%d/%d", s.Support, n),
			fmt.Sprintf("%.1f", s.Fraction(n)*100),
		})
	}
	tbl.Render()
}

// Rules writes one row per rule: position, antecedent, consequent,
// confidence percentage and lift ("-" when not computed).
func Rules[T fptree.Item](w io.Writer, rs []rules.Rule[T]) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Antecedent", "Consequent", "Confidence %", "Lift"})
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, r := range rs {
		lift := "-"
		if r.Lift > 0 {
			lift = fmt.Sprintf("%.2f", r.Lift)
		}
		tbl.Append([]string{
			fmt.Sprint(i + 1),
			fpgrowth.FormatItems(r.Antecedent),
			fpgrowth.FormatItems(r.Consequent),
			fmt.Sprintf("%.2f", r.Confidence*100),
			lift,
		})
	}
	tbl.Render()
}

// SizeHistogram counts itemsets per size; index i holds sets of size i+1.
func SizeHistogram[T fptree.Item](sets []fpgrowth.Itemset[T]) []int {
	var hist []int
	for _, s := range sets {
		for len(hist) < len(s.Items) {
			hist = append(hist, 0)
		}
		if k := len(s.Items); k > 0 {
			hist[k-1]++
		}
	}

	return hist
}

// SupportPlot returns an ASCII line chart of SizeHistogram, or "" when
// there is nothing to plot.
func SupportPlot[T fptree.Item](sets []fpgrowth.Itemset[T]) string {
	hist := SizeHistogram(sets)
	if len(hist) == 0 {
		return ""
	}
	series := make([]float64, len(hist))
	for i, c := range hist {
		series[i] = float64(c)
	}

	return asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Precision(0),
		asciigraph.Caption("frequent itemsets per size (x = size-1)"),
	)
}
