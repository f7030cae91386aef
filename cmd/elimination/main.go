// Command elimination reads division standings and reports, for every team,
// whether it is mathematically eliminated and which teams prove it.
//
//	elimination [flags] teams.txt
//
// With no file argument or "-" the standings are read from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/internal/config"
	"github.com/katalvlaran/elimination/internal/logging"
	"github.com/katalvlaran/elimination/standings"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns its exit status: 0 on success, 1 on a
// failed evaluation and 2 on bad usage or input.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("elimination", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "max-flow algorithm: edmonds-karp, ford-fulkerson or dinic")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every augmenting path at debug level")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	stats := fs.Bool("stats", false, "log solver counters when done")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: elimination [flags] [teams.txt]")
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "elimination",
		Version: appVersion,
		Output:  stderr,
	})

	solve, err := elimination.SolverByName(cfg.Algorithm)
	if err != nil {
		logging.Error(logger, "bad configuration", err)
		return 2
	}

	d, err := readDivision(fs.Arg(0), stdin)
	if err != nil {
		logging.Error(logger, "reading standings", err, logging.FieldPath, fs.Arg(0))
		return 2
	}

	reg := prometheus.NewRegistry()
	metrics, err := elimination.NewMetrics(reg)
	if err != nil {
		logging.Error(logger, "registering metrics", err)
		return 1
	}
	oracle, err := elimination.New(d,
		elimination.WithSolver(solve),
		elimination.WithLogger(logger),
		elimination.WithMetrics(metrics),
		elimination.WithFlowOptions(flow.WithLogger(logger), flow.WithVerbose(cfg.Verbose)),
	)
	if err != nil {
		logging.Error(logger, "creating oracle", err)
		return 1
	}

	start := time.Now()
	verdicts, err := oracle.EvaluateAll(ctx)
	if err != nil {
		logging.Error(logger, "evaluating division", err)
		return 1
	}
	for _, v := range verdicts {
		fmt.Fprintln(stdout, describe(v))
	}
	logging.Info(logger, "division evaluated",
		logging.FieldAlgorithm, cfg.Algorithm,
		logging.FieldCount, len(verdicts),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	if *stats {
		logStats(logger, reg)
	}

	return 0
}

func readDivision(path string, stdin io.Reader) (*standings.Division, error) {
	if path == "" || path == "-" {
		return standings.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return standings.Read(f)
}

// describe renders one verdict in the classic report format.
func describe(v elimination.Verdict) string {
	if !v.Eliminated {
		return v.Team + " is not eliminated"
	}

	return fmt.Sprintf("%s is eliminated by the subset R = { %s }", v.Team, strings.Join(v.Certificate, " "))
}

func logStats(logger *slog.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logging.Warn(logger, "gathering metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logging.Info(logger, "solver stats", attrs...)
		}
	}
}
