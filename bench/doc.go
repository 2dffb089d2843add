// Package bench runs spanning-forest algorithms over coordinate files and
// reports per-run compute times.
//
// For every (algorithm, graph) pair the Runner creates a fresh algorithm
// instance per run, loads the graph, performs WarmUp discarded runs and Runs
// measured runs. Each run has its own context and an executor bound to it
// (sparse.Bind). Compute races a per-run timeout; a run that exceeds it is
// abandoned, its context is canceled so its next bulk operation fails, and
// the pair is reported as failed. Optional verification checks every result
// forest against the loaded graph and, for MSF algorithms, against the
// Kruskal reference weight. BFS forests must also give every vertex its BFS
// distance as depth.
//
// Observability:
//
//   - zap:        one structured log line per pair and per failure.
//   - prometheus: compute/load histograms and failure counters, registered
//     on a caller-supplied Registerer.
//   - otel:       a span per pair with load and compute child spans.
//
// Reports go to any number of Sinks: CSVSink writes "Algorithm,Graph,1..N"
// rows, PostgresSink inserts one row per measured run.
package bench
