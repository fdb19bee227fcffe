package main

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmine/dataset"
	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/mining"
)

type mineCmdConfig struct {
	*rootCmdConfig
	configFile    string
	support       float64
	count         bool
	confidence    float64
	workers       int
	maxSize       int
	maxAntecedent int
	separator     string
	encoding      string
	lowercase     bool
	showTree      bool
	plot          bool
}

func mineCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &mineCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "mine [file]",
		Short: "Mine frequent itemsets and rules from a transaction file",
		Long: `Mine frequent itemsets and association rules from a transaction file.
Each line is one transaction; items are separated by whitespace or commas
unless --separator is given. Reads standard input when file is "-" or absent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.configFile != "" {
				fc, err := readFileConfig(config.configFile)
				if err != nil {
					return err
				}
				fc.applyTo(config, cmd.Flags())
			}
			params, err := config.params()
			if err != nil {
				return err
			}
			txs, err := config.load(cmd, args)
			if err != nil {
				return err
			}
			return mineAndReport(cmd, txs, params, config)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&config.configFile, "config", "", "YAML file with default values for the flags below")
	flags.Float64VarP(&config.support, "support", "s", 0.4, "minimum support: fraction in [0,1], or a count with --count")
	flags.BoolVar(&config.count, "count", false, "interpret --support as an absolute transaction count")
	flags.Float64VarP(&config.confidence, "confidence", "c", 0.75, "minimum rule confidence in [0,1]")
	flags.IntVarP(&config.workers, "workers", "w", 1, "goroutines mining top-level items (1 = sequential)")
	flags.IntVar(&config.maxSize, "max-size", 0, "largest itemset size to mine (0 = unlimited)")
	flags.IntVar(&config.maxAntecedent, "max-antecedent", 0, "largest rule antecedent (0 = unlimited)")
	flags.StringVar(&config.separator, "separator", "", "literal item separator (default: whitespace and commas)")
	flags.StringVar(&config.encoding, "encoding", "utf-8", "input encoding: utf-8, latin1, windows-1252, utf-16")
	flags.BoolVar(&config.lowercase, "lowercase", false, "fold items to lower case")
	flags.BoolVar(&config.showTree, "tree", false, "print the FP-tree and header table")
	flags.BoolVar(&config.plot, "plot", false, "plot the number of itemsets per size")

	return cmd
}

// params converts the flag values into validated mining parameters.
func (c *mineCmdConfig) params() (mining.Params, error) {
	p := mining.Params{
		MinSupport:    mining.Fraction(c.support),
		MinConfidence: c.confidence,
		Workers:       c.workers,
		MaxSize:       c.maxSize,
		MaxAntecedent: c.maxAntecedent,
	}
	if c.count {
		if c.support != math.Trunc(c.support) {
			return mining.Params{}, errors.Wrapf(mining.ErrInvalidParameter, "--count needs an integer support, got %v", c.support)
		}
		p.MinSupport = mining.Count(int(c.support))
	}

	return p, p.Validate()
}

func (c *mineCmdConfig) load(cmd *cobra.Command, args []string) ([]fptree.Transaction[string], error) {
	opts := []dataset.LoadOption{
		dataset.WithSeparator(c.separator),
		dataset.WithEncoding(c.encoding),
	}
	if c.lowercase {
		opts = append(opts, dataset.WithLowercase())
	}
	if len(args) == 0 || args[0] == "-" {
		return dataset.Load(cmd.InOrStdin(), opts...)
	}

	return dataset.LoadFile(args[0], opts...)
}

// mineAndReport runs the miner and prints tree, itemsets, rules and plot.
func mineAndReport(cmd *cobra.Command, txs []fptree.Transaction[string], p mining.Params, c *mineCmdConfig) error {
	res, err := mining.Run(txs, p, mining.WithLogger(c.logger(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), res, reportOptions{
		tree:  c.showTree,
		plot:  c.plot,
		color: !c.noColor,
	})
}
