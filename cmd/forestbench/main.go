// Command forestbench benchmarks the spanning-forest algorithms and generates
// synthetic coordinate files.
//
// Usage:
//
//	forestbench run [flags] [graph.mtx ...]
//	forestbench gen -kind trefethen|grid|path|random -n N [-seed S] -out file.mtx
//
// Settings come from the environment and an optional .env file; flags
// override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/bench"
	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/config"
	"github.com/katalvlaran/spanforest/mtx"
	"github.com/katalvlaran/spanforest/server"
	"github.com/katalvlaran/spanforest/sparse"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "forestbench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: forestbench run|gen [flags]")
	}
	switch args[0] {
	case "run":
		return runBench(args[1:])
	case "gen":
		return runGen(args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	return cfg.Build()
}

func runBench(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	algos := fs.String("algorithms", strings.Join(cfg.Algorithms, ","), "comma-separated algorithms (default all)")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory scanned for *.mtx when no files are given")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "measured runs per pair")
	fs.IntVar(&cfg.WarmUp, "warmup", cfg.WarmUp, "discarded warm-up runs per pair")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "executor workers (0 = GOMAXPROCS)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-run compute budget")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "verify every result forest")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "CSV report path (empty disables)")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "metrics listen address (empty disables)")
	fs.BoolVar(&cfg.Postgres, "postgres", cfg.Postgres, "store results in Postgres")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	entries, err := bench.Lookup(splitNames(*algos)...)
	if err != nil {
		return err
	}
	graphs := fs.Args()
	if len(graphs) == 0 {
		if graphs, err = filepath.Glob(filepath.Join(cfg.DataDir, "*.mtx")); err != nil {
			return err
		}
		sort.Strings(graphs)
	}
	if len(graphs) == 0 {
		return fmt.Errorf("no graphs given and none found in %s", cfg.DataDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := bench.NewMetrics(reg)

	var srv *server.Server
	if cfg.MetricsAddr != "" {
		srv = server.New(cfg.MetricsAddr, reg, log)
		srv.Start()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.Warn("metrics server shutdown", zap.Error(err))
			}
		}()
	}

	var sinks []bench.Sink
	if cfg.CSVPath != "" {
		sinks = append(sinks, bench.CSVSink{Path: cfg.CSVPath})
	}
	if cfg.Postgres {
		pg, err := bench.OpenPostgres(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer pg.Close()
		sinks = append(sinks, pg)
	}

	h := sparse.Acquire(cfg.Workers)
	defer h.Release()

	r := bench.NewRunner(h, bench.Options{
		Runs:    cfg.Runs,
		WarmUp:  cfg.WarmUp,
		Timeout: cfg.Timeout,
		Verify:  cfg.Verify,
	}, log, metrics, sinks...)

	rep, err := r.Run(ctx, graphs, entries)
	if srv != nil && rep != nil {
		srv.SetReport(rep)
	}
	if err != nil {
		return err
	}
	if n := len(rep.Failures()); n > 0 {
		return fmt.Errorf("%d of %d pairs failed", n, len(rep.Records))
	}

	return nil
}

func splitNames(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	kind := fs.String("kind", "trefethen", "trefethen|grid|path|random")
	n := fs.Int("n", 2000, "vertex count (grid: side length)")
	p := fs.Float64("p", 0.01, "edge probability for -kind random")
	seed := fs.Int64("seed", 1, "random seed")
	maxW := fs.Int("max-weight", 1, "integer weights in [1, max-weight]; 1 writes a pattern file")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cons builder.Constructor
	switch *kind {
	case "trefethen":
		cons = builder.Trefethen(*n)
	case "grid":
		cons = builder.Grid(*n, *n)
	case "path":
		cons = builder.Path(*n)
	case "random":
		cons = builder.RandomSparse(*n, *p)
	default:
		return fmt.Errorf("unknown kind %q", *kind)
	}
	if *maxW < 1 {
		return fmt.Errorf("max-weight=%d < 1", *maxW)
	}
	opts := []builder.BuilderOption{builder.WithSeed(*seed), builder.WithIntWeight(1, *maxW)}

	nv, edges, err := builder.BuildEdges(opts, cons)
	if err != nil {
		return err
	}
	entries := make([]mtx.Entry, len(edges))
	for i, e := range edges {
		entries[i] = mtx.Entry{Row: e.U, Col: e.V, Val: e.W}
	}

	if *out == "" {
		return mtx.Write(os.Stdout, nv, entries, *maxW > 1)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err = mtx.Write(f, nv, entries, *maxW > 1); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
