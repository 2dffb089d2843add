package bench

import (
	"time"

	"github.com/google/uuid"
)

// Record is the outcome of one (algorithm, graph) pair.
type Record struct {
	Algorithm string
	Graph     string
	Seconds   []float64 // measured runs, in order
	Weight    float64   // forest weight of the last run
	Trees     int       // forest root count of the last run
	Err       error     // first failure; Seconds holds the runs before it
}

// Failed reports whether the pair did not complete every run.
func (r Record) Failed() bool { return r.Err != nil }

// Report is the outcome of one Runner.Run call.
type Report struct {
	ID       uuid.UUID
	Started  time.Time
	Runs     int
	WarmUp   int
	Workers  int
	Records  []Record
	Finished time.Time
}

// Failures returns the failed records.
func (r *Report) Failures() []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Failed() {
			out = append(out, rec)
		}
	}

	return out
}
