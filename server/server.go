// Package server exposes benchmark metrics and the latest report over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/bench"
)

// Server serves:
//
//	GET /healthz                   liveness
//	GET /metrics                   Prometheus exposition of reg
//	GET /report                    latest report as JSON
//	GET /report/{algorithm}        records of one algorithm
type Server struct {
	srv    *http.Server
	router *mux.Router
	log    *zap.Logger

	mu  sync.RWMutex
	rep *bench.Report
}

// New builds the router; call Start to listen on addr.
func New(addr string, reg *prometheus.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{router: mux.NewRouter(), log: log}

	s.router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})).Methods("GET")
	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	s.router.HandleFunc("/report", s.report).Methods("GET")
	s.router.HandleFunc("/report/{algorithm}", s.report).Methods("GET")

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// SetReport publishes rep on /report.
func (s *Server) SetReport(rep *bench.Report) {
	s.mu.Lock()
	s.rep = rep
	s.mu.Unlock()
}

// Start listens in the background. Errors other than a clean shutdown are
// logged.
func (s *Server) Start() {
	go func() {
		s.log.Info("metrics server starting", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops the server gracefully within ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("metrics server shutting down")

	return s.srv.Shutdown(ctx)
}

// recordDTO is the JSON form of bench.Record.
type recordDTO struct {
	Algorithm string    `json:"algorithm"`
	Graph     string    `json:"graph"`
	Seconds   []float64 `json:"seconds"`
	Weight    float64   `json:"weight"`
	Trees     int       `json:"trees"`
	Error     *string   `json:"error,omitempty"`
}

// reportDTO is the JSON form of bench.Report.
type reportDTO struct {
	ID       string      `json:"id"`
	Started  time.Time   `json:"started"`
	Finished time.Time   `json:"finished"`
	Runs     int         `json:"runs"`
	WarmUp   int         `json:"warmup"`
	Workers  int         `json:"workers"`
	Records  []recordDTO `json:"records"`
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	rep := s.rep
	s.mu.RUnlock()
	if rep == nil {
		http.Error(w, "no report yet", http.StatusNotFound)

		return
	}

	algo := mux.Vars(r)["algorithm"]
	out := reportDTO{
		ID:       rep.ID.String(),
		Started:  rep.Started,
		Finished: rep.Finished,
		Runs:     rep.Runs,
		WarmUp:   rep.WarmUp,
		Workers:  rep.Workers,
		Records:  []recordDTO{},
	}
	for _, rec := range rep.Records {
		if algo != "" && rec.Algorithm != algo {
			continue
		}
		dto := recordDTO{
			Algorithm: rec.Algorithm,
			Graph:     rec.Graph,
			Seconds:   rec.Seconds,
			Weight:    rec.Weight,
			Trees:     rec.Trees,
		}
		if rec.Err != nil {
			msg := rec.Err.Error()
			dto.Error = &msg
		}
		out.Records = append(out.Records, dto)
	}
	if algo != "" && len(out.Records) == 0 {
		http.Error(w, "unknown algorithm", http.StatusNotFound)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.log.Warn("encode report", zap.Error(err))
	}
}
