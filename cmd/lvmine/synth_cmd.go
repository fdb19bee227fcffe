package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmine/dataset"
)

type synthCmdConfig struct {
	transactions int
	vocabulary   int
	basketSize   int
	seed         int64
	words        []string
	output       string
}

func synthCmd() *cobra.Command {
	config := &synthCmdConfig{}
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Print a synthetic transaction file",
		Long: `Print random market baskets, one per line, over a vocabulary of generated
words (or the --words list). The output can be piped into "lvmine mine".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []dataset.SyntheticOption{
				dataset.WithVocabulary(config.vocabulary),
				dataset.WithBasketSize(config.basketSize),
				dataset.WithSeed(config.seed),
			}
			if len(config.words) > 0 {
				opts = append(opts, dataset.WithWords(config.words))
			}
			txs, err := dataset.Synthetic(config.transactions, opts...)
			if err != nil {
				return err
			}
			if config.output != "" {
				return dataset.WriteFile(config.output, txs, " ")
			}
			return dataset.Write(cmd.OutOrStdout(), txs, " ")
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&config.transactions, "transactions", "n", 100, "number of baskets")
	flags.IntVar(&config.vocabulary, "vocabulary", 20, "number of distinct items")
	flags.IntVar(&config.basketSize, "basket-size", 6, "maximum items per basket")
	flags.Int64Var(&config.seed, "seed", 1, "sampling seed")
	flags.StringVarP(&config.output, "output", "o", "", "write to this file instead of stdout (.sz and .zst are compressed)")
	flags.StringSliceVar(&config.words, "words", nil, "fixed vocabulary; output is then fully reproducible")

	return cmd
}
