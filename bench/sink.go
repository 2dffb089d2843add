package bench

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq" // postgres driver

	"go.uber.org/multierr"
)

// Sink receives a finished report.
type Sink interface {
	Write(ctx context.Context, rep *Report) error
}

// CSVSink writes one row per (algorithm, graph) pair:
//
//	Algorithm,Graph,1,2,...,Runs
//
// Failed pairs keep their completed runs and leave the remaining cells empty.
type CSVSink struct {
	Path string
}

// Write implements Sink. The file is replaced.
func (s CSVSink) Write(_ context.Context, rep *Report) (err error) {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	w := csv.NewWriter(f)
	header := make([]string, 0, rep.Runs+2)
	header = append(header, "Algorithm", "Graph")
	for i := 1; i <= rep.Runs; i++ {
		header = append(header, strconv.Itoa(i))
	}
	if err = w.Write(header); err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}
	for _, rec := range rep.Records {
		row := make([]string, len(header))
		row[0], row[1] = rec.Algorithm, rec.Graph
		for i, sec := range rec.Seconds {
			row[2+i] = strconv.FormatFloat(sec, 'f', -1, 64)
		}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("bench: csv: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("bench: csv: %w", err)
	}

	return nil
}

// PostgresSink stores one row per measured run.
type PostgresSink struct {
	DB *sql.DB
}

// OpenPostgres connects with lib/pq and ensures the schema exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSink, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("bench: postgres: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, multierr.Append(fmt.Errorf("bench: postgres: %w", err), db.Close())
	}
	s := &PostgresSink{DB: db}
	if err = s.InitSchema(ctx); err != nil {
		return nil, multierr.Append(err, db.Close())
	}

	return s, nil
}

// InitSchema creates the results table if it does not exist.
func (s *PostgresSink) InitSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS forest_runs (
            id SERIAL PRIMARY KEY,
            session UUID NOT NULL,
            algorithm VARCHAR(64) NOT NULL,
            graph VARCHAR(255) NOT NULL,
            run INTEGER NOT NULL,
            seconds DOUBLE PRECISION NOT NULL,
            weight DOUBLE PRECISION NOT NULL,
            workers INTEGER NOT NULL,
            failed BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )
    `)
	if err != nil {
		return fmt.Errorf("bench: postgres schema: %w", err)
	}

	return nil
}

// Write implements Sink inside one transaction.
func (s *PostgresSink) Write(ctx context.Context, rep *Report) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bench: postgres: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO forest_runs (session, algorithm, graph, run, seconds, weight, workers, failed)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `)
	if err != nil {
		return fmt.Errorf("bench: postgres: %w", err)
	}
	defer stmt.Close()

	for _, rec := range rep.Records {
		for i, sec := range rec.Seconds {
			_, err = stmt.ExecContext(ctx, rep.ID.String(), rec.Algorithm, rec.Graph, i+1, sec, rec.Weight, rep.Workers, rec.Failed())
			if err != nil {
				return fmt.Errorf("bench: postgres insert %s/%s: %w", rec.Algorithm, rec.Graph, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("bench: postgres commit: %w", err)
	}

	return nil
}

// Close closes the database handle.
func (s *PostgresSink) Close() error { return s.DB.Close() }
