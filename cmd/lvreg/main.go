// SPDX-License-Identifier: MIT

// Command lvreg loads a table through DuckDB or PostgreSQL, runs backward
// stepwise OLS selection on it and prints the retained coefficients.
//
//	lvreg -query "SELECT * FROM read_csv_auto('data.csv')" -response y -intercept
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/lvreg/dataset"
	"github.com/katalvlaran/lvreg/internal/logging"
	"github.com/katalvlaran/lvreg/regression"
	"github.com/katalvlaran/lvreg/stepwise"
	"github.com/katalvlaran/lvreg/tdist"
	"go.uber.org/zap"
)

type config struct {
	driver    string
	dsn       string
	query     string
	response  string
	alpha     float64
	policy    string
	intercept bool
	exact     bool
	dev       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("lvreg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.driver, "driver", dataset.DriverDuckDB, "database driver: duckdb or postgres")
	fs.StringVar(&c.dsn, "db", "", "data source name (empty: in-memory DuckDB)")
	fs.StringVar(&c.query, "query", "", "SQL query returning predictor and response columns")
	fs.StringVar(&c.response, "response", "", "response column name")
	fs.Float64Var(&c.alpha, "alpha", regression.DefaultAlpha, "two-sided significance level")
	fs.StringVar(&c.policy, "policy", stepwise.PruneAll.String(), "pruning policy: all or worst")
	fs.BoolVar(&c.intercept, "intercept", false, "prepend a protected intercept column")
	fs.BoolVar(&c.exact, "exact", false, "use the exact Student-t distribution instead of the table")
	fs.BoolVar(&c.dev, "dev", false, "human-readable debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.query == "" || c.response == "" {
		return c, errors.New("-query and -response are required")
	}
	if c.alpha <= 0 || c.alpha >= 1 {
		return c, fmt.Errorf("-alpha %g outside (0, 1)", c.alpha)
	}

	return c, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	policy, err := stepwise.ParsePolicy(cfg.policy)
	if err != nil {
		return fmt.Errorf("-policy %q: %w", cfg.policy, err)
	}

	log, err := logging.New(cfg.dev)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dataset.Open(ctx, cfg.driver, cfg.dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var frameOpts []dataset.Option
	frameOpts = append(frameOpts, dataset.WithLogger(log))
	if cfg.intercept {
		frameOpts = append(frameOpts, dataset.WithIntercept())
	}
	frame, err := dataset.Query(ctx, db, cfg.query, cfg.response, frameOpts...)
	if err != nil {
		return err
	}

	engOpts := []regression.Option{regression.WithAlpha(cfg.alpha), regression.WithLogger(log)}
	if cfg.exact {
		engOpts = append(engOpts, regression.WithDistribution(tdist.NewExact()))
	}
	selOpts := []stepwise.Option{
		stepwise.WithEngine(regression.New(engOpts...)),
		stepwise.WithPolicy(policy),
		stepwise.WithLabels(frame.Names),
		stepwise.WithLogger(log),
	}
	if cfg.intercept {
		selOpts = append(selOpts, stepwise.WithProtected(0))
	}

	res, err := stepwise.NewSelector(selOpts...).Run(frame.X, frame.Y)
	if err != nil {
		return err
	}
	log.Info("selection finished", zap.Stringer("run_id", res.RunID), zap.Int("rounds", res.Rounds))

	return printResult(stdout, frame, res)
}

func printResult(w io.Writer, f *dataset.Frame, res *stepwise.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "response: %s\trun: %s\trounds: %d\t\n", f.Response, res.RunID, res.Rounds)
	fmt.Fprintln(tw, "term\tbeta\tstd.err\tt\tp\tlower\tupper\t")
	for _, c := range res.Coefficients {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.4f\t%.4g\t%.6g\t%.6g\t\n",
			c.Label, c.Beta, c.StdErr, c.TStatistic, c.PValue, c.Lower, c.Upper)
	}
	s := res.Summary
	fmt.Fprintf(tw, "n=%d\tdf=%d\tR²=%.4f\tadj.R²=%.4f\tF=%.4g\tσ=%.4g\t\n",
		s.Observations, s.DF, s.RSquared, s.AdjRSquared, s.FStatistic, s.ResidualStdErr)
	if len(res.Dropped) > 0 {
		fmt.Fprintf(tw, "dropped:\t%v\t\n", res.Dropped)
	}

	return tw.Flush()
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lvreg:", err)
		}
		os.Exit(1)
	}
}
