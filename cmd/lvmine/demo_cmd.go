package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmine/dataset"
	"github.com/katalvlaran/lvmine/mining"
)

func demoCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &mineCmdConfig{rootCmdConfig: rootConfig, showTree: true}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Mine the built-in ten-basket reference dataset",
		Long: `Mine the built-in reference dataset (items a–j) at 40% support and
75% confidence, printing the FP-tree, the itemsets and the rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mineAndReport(cmd, dataset.Reference(), mining.DefaultParams(), config)
		},
	}
	cmd.Flags().BoolVar(&config.plot, "plot", false, "plot the number of itemsets per size")

	return cmd
}
