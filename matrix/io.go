// SPDX-License-Identifier: MIT
// Package matrix: plain-text row-major input/output.
//
// Format:
//   - whitespace-separated base-10 integers, row-major;
//   - '#' starts a comment running to end of line;
//   - exactly n*n values.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Read parses a row-major matrix of order n from r.
// If n <= 0 the order is inferred from the value count, which must then be a
// perfect square.
// Errors: ErrParse for malformed tokens, ErrDimensionMismatch for a wrong
// value count, plus any ValidateUndirected sentinel.
// Complexity: O(n²).
func Read(r io.Reader, n int) (*Adjacency, error) {
	var values []int64
	if n > 0 {
		if err := checkOrder(n); err != nil {
			return nil, fmt.Errorf("Read(%d): %w", n, err)
		}
		values = make([]int64, 0, n*n)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		for _, tok := range strings.Fields(text) {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %q: %w", line, tok, ErrParse)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	if n <= 0 {
		n = int(math.Sqrt(float64(len(values))))
		if n == 0 || n*n != len(values) {
			return nil, fmt.Errorf("Read: %d values is not a square count: %w", len(values), ErrDimensionMismatch)
		}
	}

	return NewAdjacency(n, values)
}

// Write serialises a as one row per line, values separated by single spaces.
// Output produced by Write is accepted by Read.
// Complexity: O(n²).
func Write(w io.Writer, a *Adjacency) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = 0; j < a.n; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(strconv.FormatInt(a.data[i*a.n+j], 10))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
