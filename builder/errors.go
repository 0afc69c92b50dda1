// SPDX-License-Identifier: MIT
// Package: citypath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Option constructors (WithX...) panic on meaningless inputs; Build and
//     Synthetic never panic.

package builder

import "errors"

// ErrUnknownEndpoint indicates a Config route whose endpoint is not a Config
// city. It is always returned together with core.ErrUnknownCity.
var ErrUnknownEndpoint = errors.New("builder: route endpoint not in config")

// ErrTooFewCities indicates a synthetic grid with fewer than two cities.
var ErrTooFewCities = errors.New("builder: grid too small")

// ErrOutOfBounds indicates a synthetic grid that would leave the valid
// latitude/longitude range.
var ErrOutOfBounds = errors.New("builder: grid exceeds coordinate range")
