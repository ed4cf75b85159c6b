// Command gaussjordan walks through row reduction and Gauss-Jordan inversion:
// it reduces the echelon example, inverts every sample matrix, then inverts a
// random square matrix drawn from a seeded source.
//
// Usage:
//
//	gaussjordan [--seed N] [--max-dim N] [--lower X] [--upper X] [--tolerance X]
//	            [--log-level debug|info|warn|error] [--log-format text|json]
//
// Matrices go to stdout; logs go to stderr.
package main

import (
	"io"
	"os"

	"github.com/katalvlaran/gaussjordan/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags into a Config and hands off to run.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:          "gaussjordan",
		Short:        "Row-echelon reduction and Gauss-Jordan inversion walkthrough",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logging.NewSlogLogger(level, cfg.LogFormat, stderr)

			return run(stdout, cfg, log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	f.IntVar(&cfg.MaxDim, "max-dim", cfg.MaxDim, "largest dimension of the random square matrix")
	f.Float64Var(&cfg.Lower, "lower", cfg.Lower, "lower bound of random entries")
	f.Float64Var(&cfg.Upper, "upper", cfg.Upper, "upper bound of random entries")
	f.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "pivot tolerance (0 means exact comparison)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")

	return cmd
}
