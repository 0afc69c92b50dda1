// Package textio reads and writes city networks and query reports as
// plain, whitespace-separated text.
//
// Formats:
//
//	cities:  <name> <lat> <lon> [population]
//	routes:  <from> <to> <distance> <time> [mode]
//	network: "# cities" section of city rows, then "# routes" section of
//	         route rows (mode always written).
//
// Blank lines and lines starting with '#' are ignored. Loaders never fail
// on bad rows: malformed rows and rows the graph rejects are skipped and
// counted in LoadStats. Only errors of the underlying reader are returned.
package textio

import (
	"errors"
	"log/slog"
)

// ErrMalformedRow indicates a row with too few fields or a field that does
// not parse as a number or transport mode.
var ErrMalformedRow = errors.New("textio: malformed row")

// LoadStats counts what a loader did with its input rows.
type LoadStats struct {
	Added     int // rows turned into cities or routes
	Malformed int // rows that failed to parse
	Rejected  int // parsed rows the graph refused (unknown endpoint, bad coordinate, ...)
	Ignored   int // input items not meant to become cities (used by osmimport)
}

// Skipped returns the number of rows that were dropped because of a defect.
func (s LoadStats) Skipped() int { return s.Malformed + s.Rejected }

// Add accumulates o into s.
func (s *LoadStats) Add(o LoadStats) {
	s.Added += o.Added
	s.Malformed += o.Malformed
	s.Rejected += o.Rejected
	s.Ignored += o.Ignored
}

// Options configures the loaders.
type Options struct {
	// Logger receives one Debug record per skipped row. Nil disables logging.
	Logger *slog.Logger
}

// Option represents a functional option for the loaders.
type Option func(*Options)

// WithLogger logs skipped rows to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with logging disabled.
func DefaultOptions() Options {
	return Options{}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// skip logs a dropped row when a logger is configured.
func (o Options) skip(line int, text string, err error) {
	if o.Logger != nil {
		o.Logger.Debug("row skipped", "line", line, "row", text, "err", err)
	}
}
