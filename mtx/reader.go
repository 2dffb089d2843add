// SPDX-License-Identifier: MIT
// Package mtx: coordinate-format reader.

package mtx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Entry is one 0-based coordinate triple.
type Entry struct {
	Row, Col int
	Val      float64
}

// Header is the parsed size line plus the detected value mode.
type Header struct {
	Rows, Cols, NNZ int
	Pattern         bool
}

// File is a parsed coordinate file. Entries excludes skipped self-loops, so
// len(Entries) <= NNZ.
type File struct {
	Header
	Entries   []Entry
	SelfLoops int
}

// Options controls parsing.
type Options struct {
	// Pattern forces pattern mode regardless of the banner.
	Pattern bool
	// MaxLine bounds a single line in bytes.
	MaxLine int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns weighted parsing with a 1 MiB line limit.
func DefaultOptions() Options {
	return Options{MaxLine: 1 << 20}
}

// WithPattern selects pattern (unweighted) parsing.
func WithPattern(on bool) Option {
	return func(o *Options) { o.Pattern = on }
}

// WithMaxLine sets the per-line byte limit; non-positive values are ignored.
func WithMaxLine(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxLine = n
		}
	}
}

// ReadFile memory-maps path and parses it.
func ReadFile(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	// mmap of a zero-length file fails on most platforms.
	if st.Size() == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrFormat, path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrIO, path, err)
	}
	defer m.Unmap()

	file, err := Read(bytes.NewReader(m), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Read parses coordinate text from r.
func Read(r io.Reader, opts ...Option) (*File, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), o.MaxLine)

	p := parser{pattern: o.Pattern}
	for sc.Scan() {
		p.line++
		done, err := p.feed(sc.Text())
		if err != nil {
			return nil, err
		}
		if done {
			return p.file(), nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	// Input ended early.
	if !p.haveHeader {
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	if p.read < p.hdr.NNZ {
		return nil, fmt.Errorf("%w: expected %d entries, found %d", ErrFormat, p.hdr.NNZ, p.read)
	}

	return p.file(), nil
}

// parser is the line-at-a-time state machine behind Read.
type parser struct {
	line       int
	pattern    bool
	haveHeader bool
	hdr        Header
	read       int
	selfLoops  int
	entries    []Entry
}

// feed consumes one line and reports whether all nnz entries were read.
func (p *parser) feed(raw string) (bool, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return false, nil
	}
	if line[0] == '%' {
		if strings.HasPrefix(line, "%%MatrixMarket") && strings.Contains(strings.ToLower(line), "pattern") {
			p.pattern = true
		}

		return false, nil
	}

	fields := strings.Fields(line)
	if !p.haveHeader {
		if err := p.header(fields); err != nil {
			return false, err
		}

		return p.hdr.NNZ == 0, nil
	}
	if err := p.entry(fields); err != nil {
		return false, err
	}

	return p.read == p.hdr.NNZ, nil
}

func (p *parser) header(fields []string) error {
	if len(fields) < 3 {
		return lineErrorf(p.line, ErrFormat, "header needs rows cols nnz, got %d fields", len(fields))
	}
	var dims [3]int
	for k := range dims {
		v, err := strconv.Atoi(fields[k])
		if err != nil || v < 0 {
			return lineErrorf(p.line, ErrFormat, "bad header field %q", fields[k])
		}
		dims[k] = v
	}
	if dims[0] != dims[1] {
		return lineErrorf(p.line, ErrNonSquare, "%d x %d", dims[0], dims[1])
	}
	p.hdr = Header{Rows: dims[0], Cols: dims[1], NNZ: dims[2], Pattern: p.pattern}
	p.haveHeader = true
	p.entries = make([]Entry, 0, min(dims[2], 1<<24))

	return nil
}

func (p *parser) entry(fields []string) error {
	need := 3
	if p.pattern {
		need = 2
	}
	if len(fields) < need {
		return lineErrorf(p.line, ErrFormat, "entry needs %d fields, got %d", need, len(fields))
	}

	u, err1 := strconv.Atoi(fields[0])
	v, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return lineErrorf(p.line, ErrFormat, "bad index in %q", strings.Join(fields, " "))
	}
	n := p.hdr.Rows
	if u < 1 || u > n || v < 1 || v > n {
		return lineErrorf(p.line, ErrVertexRange, "(%d, %d) with n=%d", u, v, n)
	}

	w := 1.0
	if !p.pattern {
		w, err1 = strconv.ParseFloat(fields[2], 64)
		if err1 != nil {
			return lineErrorf(p.line, ErrFormat, "bad weight %q", fields[2])
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return lineErrorf(p.line, ErrBadWeight, "%v", w)
		}
	}

	p.read++
	if u == v {
		p.selfLoops++

		return nil
	}
	p.entries = append(p.entries, Entry{Row: u - 1, Col: v - 1, Val: w})

	return nil
}

func (p *parser) file() *File {
	return &File{Header: p.hdr, Entries: p.entries, SelfLoops: p.selfLoops}
}
