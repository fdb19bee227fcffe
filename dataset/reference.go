package dataset

import (
	"strings"

	"github.com/katalvlaran/lvmine/fptree"
)

// referenceBaskets is the ten-transaction a–j dataset. With 40% support
// (4 baskets) it yields {b,c,d}:4, {f}:5 and the rule {b,c} ⇒ {d} with
// confidence 1.
var referenceBaskets = []string{
	"abcd",
	"bcd",
	"aefgh",
	"bcdegj",
	"bcdef",
	"afg",
	"aij",
	"abeh",
	"fghij",
	"efh",
}

// Reference returns a fresh copy of the reference dataset, one
// single-letter item per element.
func Reference() []fptree.Transaction[string] {
	txs := make([]fptree.Transaction[string], 0, len(referenceBaskets))
	for _, b := range referenceBaskets {
		txs = append(txs, strings.Split(b, ""))
	}

	return txs
}
