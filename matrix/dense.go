// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone/Fill: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with the method tag and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float64 matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j), or ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set writes v at (i, j), or returns ErrOutOfRange.
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Fill writes v into every element.
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf}
}

// String renders one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(d.data[i*d.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
