package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/born-ml/dualdiff/internal/forward"
	"github.com/born-ml/dualdiff/internal/parallel"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dualdiff %s\n", version)
		},
	}
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range catalogNames() {
				fmt.Fprintf(w, "%s\t%s\n", name, catalog[name].expr)
			}
			return w.Flush()
		},
	}
}

// pointOptions are the flags shared by single-point commands.
type pointOptions struct {
	fn string
	at float64
}

func (o *pointOptions) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.fn, "fn", "", "catalog function name")
	fs.Float64Var(&o.at, "at", 0, "evaluation point")
}

func (a *app) newGradCommand() *cobra.Command {
	opts := pointOptions{}

	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Print the derivative of a function at a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(opts.fn)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"fn": fn.name, "x": opts.at}).Debug("computing gradient")

			d, err := forward.Grad(fn.f, opts.at)
			if err != nil {
				return fmt.Errorf("grad %s at %g: %w", fn.name, opts.at, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gradient of %s at %g is %g\n", fn.expr, opts.at, d)
			return nil
		},
	}
	opts.bindFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("fn")
	return cmd
}

func (a *app) newEvalCommand() *cobra.Command {
	opts := pointOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the value and derivative of a function at a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(opts.fn)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"fn": fn.name, "x": opts.at}).Debug("computing value and gradient")

			v, d, err := forward.ValueAndGrad(fn.f, opts.at)
			if err != nil {
				return fmt.Errorf("eval %s at %g: %w", fn.name, opts.at, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Value of %s at %g is %g and gradient is %g\n", fn.expr, opts.at, v, d)
			return nil
		},
	}
	opts.bindFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("fn")
	return cmd
}

func (a *app) newCheckCommand() *cobra.Command {
	opts := pointOptions{}
	var tol float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare forward-mode results with a plain implementation and finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(opts.fn)
			if err != nil {
				return err
			}
			if err := forward.Check(fn.f, fn.plain, opts.at, tol); err != nil {
				a.log.WithError(err).WithField("fn", fn.name).Warn("check failed")
				return fmt.Errorf("check %s: %w", fn.name, err)
			}

			d, _ := forward.Grad(fn.f, opts.at)
			numeric := forward.NumericalGrad(fn.plain, opts.at, forward.DefaultStep)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s at %g: forward %g, finite difference %g\n", fn.expr, opts.at, d, numeric)
			return nil
		},
	}
	opts.bindFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("fn")
	cmd.Flags().Float64Var(&tol, "tol", 1e-6, "relative tolerance")
	return cmd
}

func (a *app) newTableCommand() *cobra.Command {
	var (
		name     string
		from, to float64
		steps    int
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate value and derivative of a function over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := lookup(name)
			if err != nil {
				return err
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}

			cfg := parallel.DefaultConfig()
			if workers > 0 {
				cfg.NumWorkers = workers
				cfg.Enabled = workers > 1
			}
			xs := forward.Linspace(from, to, steps)
			a.log.WithFields(logrus.Fields{
				"fn":      fn.name,
				"points":  len(xs),
				"workers": cfg.NumWorkers,
			}).Info("sweeping")

			points, err := forward.Sweep(cmd.Context(), fn.f, xs, cfg)
			if err != nil {
				return fmt.Errorf("table %s: %w", fn.name, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "x\t%s\td/dx\n", fn.expr)
			for _, p := range points {
				fmt.Fprintf(w, "%g\t%g\t%g\n", p.X, p.Value, p.Derivative)
			}
			return w.Flush()
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&name, "fn", "", "catalog function name")
	fs.Float64Var(&from, "from", -1, "range start")
	fs.Float64Var(&to, "to", 1, "range end")
	fs.IntVar(&steps, "steps", 11, "number of points")
	fs.IntVar(&workers, "workers", 0, "worker goroutines (0: one per CPU)")
	_ = cmd.MarkFlagRequired("fn")
	return cmd
}
