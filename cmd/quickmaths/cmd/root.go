// SPDX-License-Identifier: MIT

// Package cmd holds the cobra commands of the quickmaths binary.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quickmaths/internal/config"
	"github.com/katalvlaran/quickmaths/internal/logging"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	cfgFile   string
	verbose   bool
	format    string
	precision string

	cfg  *config.Config
	log  *logging.Logger
	eval evaluator
}

// NewRootCommand builds the quickmaths command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quickmaths",
		Short: "Precision-adaptive error function and normal CDF",
		Long: `quickmaths evaluates erf, erfc and the normal CDF to the last digit of
float32 or float64.

Configuration is read from an optional TOML file (--config) and from
QUICKMATHS_* environment variables; flags win over both.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every evaluation at debug level")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", config.FormatText, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.precision, "precision", config.PrecisionFloat64, "evaluation type: float32 or float64")

	root.AddCommand(
		newErfCommand(a),
		newErfcCommand(a),
		newCDFCommand(a),
		newTableCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup layers flags over the loaded configuration and builds the logger
// and evaluator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.eval = newEvaluator(cfg.Output.Precision, cfg.ToOptions())

	a.log.Debug("configuration loaded",
		zap.String("precision", cfg.Output.Precision),
		zap.String("format", cfg.Output.Format),
		zap.Int("sum_max_iters", cfg.Evaluation.SumMaxIters),
		zap.Int("fraction_max_iters", cfg.Evaluation.FractionMaxIters),
	)

	return nil
}
