// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates a distance and next-hop matrix of different order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph without cities, which has no matrix form.
	ErrEmptyGraph = errors.New("matrix: graph has no cities")

	// ErrUnknownCity indicates that a referenced city is not in the matrix index.
	ErrUnknownCity = errors.New("matrix: unknown city id")
)
