// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newErfCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "erf X...",
		Short:   "Evaluate the error function",
		Example: "  quickmaths erf 0.5 1.3\n  quickmaths erf -- -2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evalEach(cmd, args, a.eval.Erf)
		},
	}
}

func newErfcCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "erfc X...",
		Short:   "Evaluate the complementary error function",
		Example: "  quickmaths erfc 2 --format json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.evalEach(cmd, args, a.eval.Erfc)
		},
	}
}

func newCDFCommand(a *app) *cobra.Command {
	var mean, std float64

	c := &cobra.Command{
		Use:     "cdf X...",
		Short:   "Evaluate the normal cumulative distribution function",
		Example: "  quickmaths cdf --mean 100 --std 15 130",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}

			rows := make([]result, 0, len(xs))
			for _, x := range xs {
				r, err := a.eval.CDF(mean, std, x)
				if err != nil {
					a.log.Warn("invalid distribution",
						zap.Float64("mean", mean), zap.Float64("std", std), zap.Error(err))
					return fmt.Errorf("cdf: %w", err)
				}
				a.logResult(r)
				rows = append(rows, r)
			}

			return a.renderResults(cmd, rows)
		},
	}
	c.Flags().Float64Var(&mean, "mean", 0, "distribution mean")
	c.Flags().Float64Var(&std, "std", 1, "distribution standard deviation (> 0)")

	return c
}

// evalEach parses args and applies fn to each.
func (a *app) evalEach(cmd *cobra.Command, args []string, fn func(float64) result) error {
	xs, err := parseFloats(args)
	if err != nil {
		return err
	}

	rows := make([]result, 0, len(xs))
	for _, x := range xs {
		r := fn(x)
		a.logResult(r)
		rows = append(rows, r)
	}

	return a.renderResults(cmd, rows)
}

func (a *app) renderResults(cmd *cobra.Command, rows []result) error {
	bits := a.eval.BitSize()

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, rows, func(r result) string {
		return fmt.Sprintf("%s(%s) = %s", r.Func, formatFloat(r.X, bits), formatFloat(r.Value, bits))
	})
}

func (a *app) logResult(r result) {
	a.log.Debug("evaluated",
		zap.String("func", r.Func),
		zap.Float64("x", r.X),
		zap.Float64("value", r.Value),
		zap.String("regime", r.Regime),
	)
}

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", s, err)
		}
		xs[i] = x
	}

	return xs, nil
}
