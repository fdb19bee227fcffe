// Command lvmine mines frequent itemsets and association rules from a
// transaction file with FP-growth.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmine/internal/logging"
)

type rootCmdConfig struct {
	verbose bool
	noColor bool
}

// logger returns the stderr logger when verbose output was requested.
func (c *rootCmdConfig) logger(w io.Writer) logging.Logger {
	if !c.verbose {
		return logging.Discard
	}

	return logging.Std(w, true)
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvmine",
		Short: "lvmine finds frequent itemsets and association rules",
		Long: `lvmine builds an FP-tree from a transaction file (one basket per line),
mines every frequent itemset with FP-growth and derives association rules.`,
		SilenceUsage: true,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&config.noColor, "no-color", false, "disable ANSI colours in tree output")
	rootCmd.AddCommand(versionCmd(), mineCmd(config), demoCmd(config), synthCmd())

	return rootCmd
}
