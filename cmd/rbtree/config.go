package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config carries the options shared by all the commands.
type Config struct {
	// Insert with the keep-unique policy, duplicates are skipped.
	Unique bool
	// Output format, text or yaml.
	Format string
	// File to read values from in addition to the command arguments, "-"
	// reads from stdin.
	File    string
	Verbose bool
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Unique: true,
		Format: formatText,
	}
}

func (c *Config) bindFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Unique, "unique", c.Unique, "skip values equal to one already in the tree")
	flags.StringVar(&c.Format, "format", c.Format, "output format: text or yaml")
	flags.StringVarP(&c.File, "file", "f", c.File, "read whitespace separated values from a file, - for stdin")
	flags.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logs")
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	switch c.Format {
	case formatText, formatYAML:
		return nil
	default:
		return errors.Errorf("unsupported output format: %q", c.Format)
	}
}
