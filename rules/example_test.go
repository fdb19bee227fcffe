package rules_test

import (
	"fmt"

	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/rules"
)

// ExampleGenerate derives rules from a hand-written support table.
func ExampleGenerate() {
	sets := []fpgrowth.Itemset[string]{
		{Items: []string{"bread"}, Support: 3},
		{Items: []string{"milk"}, Support: 3},
		{Items: []string{"bread", "milk"}, Support: 2},
	}

	rs, err := rules.Generate(sets, 0.6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range rs {
		fmt.Println(r)
	}

	// Output:
	// {bread} => {milk} (conf 0.67)
	// {milk} => {bread} (conf 0.67)
}
