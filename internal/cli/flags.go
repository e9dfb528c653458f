package cli

import (
	"polyglot/internal/config"

	"github.com/spf13/cobra"
)

// Flags holds all command-line flag values
type Flags struct {
	Dir      string
	Pair     string
	Forms    string
	LogLevel string
	NoSample bool
}

// NewFlags creates a new Flags instance
func NewFlags() *Flags {
	return &Flags{}
}

// Apply overrides configuration values with the flags set on the command line
func (f *Flags) Apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("dir") {
		cfg.Dir = f.Dir
	}
	if flags.Changed("pair") {
		cfg.Pair = f.Pair
	}
	if flags.Changed("forms") {
		cfg.FormsFile = f.Forms
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if flags.Changed("no-sample") {
		cfg.SeedSample = !f.NoSample
	}
}
