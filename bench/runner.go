package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/algorithm"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/msf"
	"github.com/katalvlaran/spanforest/sparse"
)

// Sentinel errors reported in Record.Err.
var (
	// ErrTimeout is returned when a run exceeds the per-run budget.
	ErrTimeout = errors.New("bench: run timed out")

	// ErrVerify is returned when a result forest fails verification.
	ErrVerify = errors.New("bench: verification failed")

	// ErrCanceled is returned when the session context ends during a run.
	ErrCanceled = errors.New("bench: run canceled")
)

var tracer = otel.Tracer("github.com/katalvlaran/spanforest/bench")

// Options configures a Runner.
type Options struct {
	Runs    int           // measured runs, >= 1
	WarmUp  int           // discarded runs, >= 0
	Timeout time.Duration // per-run compute budget; 0 disables
	Verify  bool
}

// Runner executes benchmark sessions.
type Runner struct {
	opts    Options
	ex      sparse.Executor
	workers int
	log     *zap.Logger
	metrics *Metrics
	sinks   []Sink
}

// NewRunner returns a Runner whose algorithms share the handle's executor.
// A nil logger or metrics disables that concern.
func NewRunner(h *sparse.Handle, opts Options, log *zap.Logger, m *Metrics, sinks ...Sink) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	if opts.Runs < 1 {
		opts.Runs = 1
	}
	if opts.WarmUp < 0 {
		opts.WarmUp = 0
	}

	return &Runner{
		opts:    opts,
		ex:      h.Executor(),
		workers: h.Workers(),
		log:     log,
		metrics: m,
		sinks:   sinks,
	}
}

// Run benchmarks every entry on every graph file, then hands the report to
// each sink. Per-pair failures are recorded, not returned; the error covers
// cancellation of ctx and sink failures.
func (r *Runner) Run(ctx context.Context, graphs []string, entries []Entry) (*Report, error) {
	rep := &Report{
		ID:      uuid.New(),
		Started: time.Now(),
		Runs:    r.opts.Runs,
		WarmUp:  r.opts.WarmUp,
		Workers: r.workers,
	}
	log := r.log.With(zap.String("session", rep.ID.String()))
	log.Info("bench session started",
		zap.Int("graphs", len(graphs)),
		zap.Int("algorithms", len(entries)),
		zap.Int("runs", r.opts.Runs),
		zap.Int("warmup", r.opts.WarmUp),
		zap.Int("workers", r.workers),
	)

	for _, path := range graphs {
		var ref *verifier
		if r.opts.Verify {
			ref = newVerifier(path)
		}
		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			rec := r.pair(ctx, log, path, e, ref)
			rep.Records = append(rep.Records, rec)
		}
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	rep.Finished = time.Now()

	var errs []error
	for _, s := range r.sinks {
		if err := s.Write(ctx, rep); err != nil {
			errs = append(errs, err)
		}
	}
	log.Info("bench session finished",
		zap.Duration("elapsed", rep.Finished.Sub(rep.Started)),
		zap.Int("failures", len(rep.Failures())),
	)

	return rep, errors.Join(errs...)
}

// GraphName is the report label of a graph file: its base name without
// extension.
func GraphName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// pair runs warm-up and measured runs of one algorithm on one graph.
func (r *Runner) pair(ctx context.Context, log *zap.Logger, path string, e Entry, ref *verifier) Record {
	rec := Record{Algorithm: e.Name, Graph: GraphName(path)}
	ctx, span := tracer.Start(ctx, "bench.pair", trace.WithAttributes(
		attribute.String("algorithm", e.Name),
		attribute.String("graph", rec.Graph),
	))
	defer span.End()

	fail := func(reason string, err error) Record {
		rec.Err = err
		r.metrics.failures.WithLabelValues(e.Name, reason).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		log.Warn("bench pair failed",
			zap.String("algorithm", e.Name),
			zap.String("graph", rec.Graph),
			zap.String("reason", reason),
			zap.Error(err),
		)

		return rec
	}

	total := r.opts.WarmUp + r.opts.Runs
	for run := 0; run < total; run++ {
		// Each run gets its own context and executor. Canceling it after
		// the run stops a timed-out Compute at its next bulk operation.
		runCtx, stop := context.WithCancel(ctx)
		a := e.New(runCtx, sparse.Bind(runCtx, r.ex))
		if err := r.load(ctx, a, path, e.Name, rec.Graph); err != nil {
			stop()

			return fail("load", err)
		}
		d, err := r.compute(runCtx, a, run)
		stop()
		if err != nil {
			reason := "compute"
			switch {
			case errors.Is(err, ErrTimeout):
				reason = "timeout"
			case errors.Is(err, ErrCanceled):
				reason = "canceled"
			}

			return fail(reason, err)
		}
		if run < r.opts.WarmUp {
			continue
		}
		rec.Seconds = append(rec.Seconds, d.Seconds())
		r.metrics.compute.WithLabelValues(e.Name, rec.Graph).Observe(d.Seconds())

		// Verify only the last run; all runs compute the same forest.
		if run != total-1 {
			continue
		}
		tr, err := a.Result()
		if err != nil {
			return fail("result", err)
		}
		rec.Weight, rec.Trees = tr.Weight, len(tr.Roots())
		r.metrics.weight.WithLabelValues(e.Name, rec.Graph).Set(tr.Weight)
		if ref != nil {
			if err = ref.check(a, e.Kind, tr); err != nil {
				return fail("verify", err)
			}
		}
	}

	log.Info("bench pair done",
		zap.String("algorithm", e.Name),
		zap.String("graph", rec.Graph),
		zap.Float64s("seconds", rec.Seconds),
		zap.Float64("weight", rec.Weight),
		zap.Int("trees", rec.Trees),
	)

	return rec
}

func (r *Runner) load(ctx context.Context, a algorithm.Algorithm, path, name, graphName string) error {
	_, span := tracer.Start(ctx, "bench.load", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	start := time.Now()
	if err := a.LoadGraph(path); err != nil {
		span.RecordError(err)

		return err
	}
	r.metrics.load.WithLabelValues(name, graphName).Observe(time.Since(start).Seconds())

	return nil
}

// compute races a.Compute against the per-run timeout and the run context.
// A Compute that loses the race is abandoned; it stops at its next bulk
// operation once the caller cancels the run context.
func (r *Runner) compute(runCtx context.Context, a algorithm.Algorithm, run int) (time.Duration, error) {
	ctx, span := tracer.Start(runCtx, "bench.compute", trace.WithAttributes(attribute.Int("run", run)))
	defer span.End()
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	type outcome struct {
		d   time.Duration
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		d, err := a.Compute()
		done <- outcome{d, err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			span.RecordError(o.err)
		}

		return o.d, o.err
	case <-ctx.Done():
		var err error
		if cause := runCtx.Err(); cause != nil {
			err = fmt.Errorf("%w: %w", ErrCanceled, cause)
		} else {
			err = fmt.Errorf("%w after %s: %v", ErrTimeout, r.opts.Timeout, ctx.Err())
		}
		span.RecordError(err)

		return 0, err
	}
}

// verifier lazily loads the graph and the Kruskal reference for one file.
type verifier struct {
	path    string
	loaded  bool
	err     error
	g       *graph.Graph
	msfCost float64
}

func newVerifier(path string) *verifier { return &verifier{path: path} }

func (v *verifier) init() error {
	if v.loaded {
		return v.err
	}
	v.loaded = true
	g, err := graph.Load(v.path)
	if err != nil {
		v.err = err

		return err
	}
	ref, err := msf.Kruskal(g)
	if err != nil {
		v.err = err

		return err
	}
	v.g, v.msfCost = g, ref.Weight

	return nil
}

// check validates tr against the graph a computed it on.
func (v *verifier) check(a algorithm.Algorithm, kind Kind, tr *forest.Tree) error {
	g := graphOf(a)
	if g == nil {
		if err := v.init(); err != nil {
			return fmt.Errorf("%w: reference: %v", ErrVerify, err)
		}
		g = v.g
	}
	if err := forest.CheckSpanning(tr, g); err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}

	switch kind {
	case KindMSF:
		if err := v.init(); err != nil {
			return fmt.Errorf("%w: reference: %v", ErrVerify, err)
		}
		if !closeTo(tr.Weight, v.msfCost) {
			return fmt.Errorf("%w: weight %g, reference %g", ErrVerify, tr.Weight, v.msfCost)
		}
	case KindBFS:
		if tr.Weight != 0 {
			return fmt.Errorf("%w: BFS forest weight %g", ErrVerify, tr.Weight)
		}
		if err := checkDepths(tr, g); err != nil {
			return fmt.Errorf("%w: %v", ErrVerify, err)
		}
	}

	return nil
}

// checkDepths compares every vertex's tree depth with its BFS distance from
// the root of its tree. tr must already span g.
func checkDepths(tr *forest.Tree, g *graph.Graph) error {
	depth := tr.Depths()
	dist := make([]int, g.N())
	for v := range dist {
		dist[v] = -1
	}
	queue := make([]int, 0, g.N())
	for _, root := range tr.Roots() {
		dist[root] = 0
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if dist[v] < 0 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
			}
		}
	}
	for v, d := range dist {
		if d != depth[v] {
			return fmt.Errorf("vertex %d: depth %d, BFS distance %d", v, depth[v], d)
		}
	}

	return nil
}

// graphOf returns the graph an algorithm loaded, if it exposes it.
func graphOf(a algorithm.Algorithm) *graph.Graph {
	if s, ok := a.(interface{ Graph() *graph.Graph }); ok {
		return s.Graph()
	}

	return nil
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
