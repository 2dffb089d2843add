// Package config resolves forestbench settings from the environment, an
// optional .env file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid marks an environment value that cannot be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the benchmark harness configuration.
type Config struct {
	DataDir    string        // FOREST_DATA_DIR: directory scanned for *.mtx
	Algorithms []string      // FOREST_ALGORITHMS: comma-separated registry names; empty = all
	Runs       int           // FOREST_RUNS: measured runs per (algorithm, graph)
	WarmUp     int           // FOREST_WARMUP: discarded runs before measuring
	Workers    int           // FOREST_WORKERS: executor workers; 0 = GOMAXPROCS
	Timeout    time.Duration // FOREST_TIMEOUT: per-run compute budget
	Verify     bool          // FOREST_VERIFY: check every result forest
	CSVPath    string        // FOREST_CSV: report file; empty disables
	LogLevel   string        // LOG_LEVEL

	MetricsAddr string // METRICS_ADDR: e.g. ":9100"; empty disables the server

	Postgres   bool // FOREST_POSTGRES: write results to Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads the given .env files (default ".env") if present and resolves
// every setting. Existing environment variables win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	var errs []error
	cfg := &Config{
		DataDir:     getEnv("FOREST_DATA_DIR", "testdata"),
		Algorithms:  splitList(getEnv("FOREST_ALGORITHMS", "")),
		Runs:        getInt("FOREST_RUNS", 5, &errs),
		WarmUp:      getInt("FOREST_WARMUP", 1, &errs),
		Workers:     getInt("FOREST_WORKERS", 0, &errs),
		Timeout:     getDuration("FOREST_TIMEOUT", 10*time.Minute, &errs),
		Verify:      getBool("FOREST_VERIFY", true, &errs),
		CSVPath:     getEnv("FOREST_CSV", "results.csv"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
		Postgres:    getBool("FOREST_POSTGRES", false, &errs),
		DBHost:      getEnv("DB_HOST", "postgres"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "forestbench"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges that flags may also set.
func (c *Config) Validate() error {
	switch {
	case c.Runs < 1:
		return fmt.Errorf("%w: runs=%d < 1", ErrInvalid, c.Runs)
	case c.WarmUp < 0:
		return fmt.Errorf("%w: warm-up=%d < 0", ErrInvalid, c.WarmUp)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d < 0", ErrInvalid, c.Workers)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout=%s", ErrInvalid, c.Timeout)
	}

	return nil
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// getEnv gets an environment variable or returns the default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getInt(key string, def int, errs *[]error) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, s))

		return def
	}

	return v
}

func getBool(key string, def bool, errs *[]error) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, s))

		return def
	}

	return v
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q", ErrInvalid, key, s))

		return def
	}

	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
