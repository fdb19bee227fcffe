package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the mine flags. Unset keys leave the flag defaults.
type fileConfig struct {
	Support       *float64 `yaml:"support"`
	Count         *bool    `yaml:"count"`
	Confidence    *float64 `yaml:"confidence"`
	Workers       *int     `yaml:"workers"`
	MaxSize       *int     `yaml:"max_size"`
	MaxAntecedent *int     `yaml:"max_antecedent"`
	Separator     *string  `yaml:"separator"`
	Encoding      *string  `yaml:"encoding"`
	Lowercase     *bool    `yaml:"lowercase"`
}

func readFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	return &fc, nil
}

// applyTo copies every key present in the file into c, unless the matching
// flag was set explicitly on the command line.
func (fc *fileConfig) applyTo(c *mineCmdConfig, flags *pflag.FlagSet) {
	override(flags, "support", fc.Support, &c.support)
	override(flags, "count", fc.Count, &c.count)
	override(flags, "confidence", fc.Confidence, &c.confidence)
	override(flags, "workers", fc.Workers, &c.workers)
	override(flags, "max-size", fc.MaxSize, &c.maxSize)
	override(flags, "max-antecedent", fc.MaxAntecedent, &c.maxAntecedent)
	override(flags, "separator", fc.Separator, &c.separator)
	override(flags, "encoding", fc.Encoding, &c.encoding)
	override(flags, "lowercase", fc.Lowercase, &c.lowercase)
}

func override[V any](flags *pflag.FlagSet, name string, v *V, dst *V) {
	if v != nil && !flags.Changed(name) {
		*dst = *v
	}
}
