// SPDX-License-Identifier: MIT
// Package mtx: coordinate-format writer.

package mtx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write emits n and entries in coordinate format with a banner line.
// Entries are 0-based and written 1-based in the order given; with
// weighted == false the weight column is omitted and the banner says
// "pattern".
func Write(w io.Writer, n int, entries []Entry, weighted bool) error {
	if n < 0 {
		return fmt.Errorf("%w: negative dimension %d", ErrValidation, n)
	}
	bw := bufio.NewWriter(w)

	field := "real"
	if !weighted {
		field = "pattern"
	}
	fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate %s symmetric\n", field)
	fmt.Fprintf(bw, "%d %d %d\n", n, n, len(entries))

	buf := make([]byte, 0, 64)
	for _, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return fmt.Errorf("%w: (%d, %d) with n=%d", ErrVertexRange, e.Row, e.Col, n)
		}
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(e.Row+1), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.Col+1), 10)
		if weighted {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, e.Val, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
