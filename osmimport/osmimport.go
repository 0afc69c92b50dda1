// Package osmimport turns OpenStreetMap place nodes into cities.
//
// Only nodes are read. A node becomes a city when its "place" tag is one of
// the configured kinds (city and town by default) and it carries a "name".
// Whitespace inside names is replaced by '-', since city IDs are
// whitespace-free tokens.
package osmimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/textio"
)

// Options configures LoadCities.
type Options struct {
	// Places lists the accepted values of the "place" tag.
	Places []string

	// Logger receives one Debug record per rejected node. Nil disables logging.
	Logger *slog.Logger
}

// Option represents a functional option for LoadCities.
type Option func(*Options)

// WithPlaces replaces the accepted place kinds. An empty list keeps the default.
func WithPlaces(kinds ...string) Option {
	return func(o *Options) {
		if len(kinds) > 0 {
			o.Places = append([]string(nil), kinds...)
		}
	}
}

// WithLogger logs rejected nodes to l at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions accepts place=city and place=town.
func DefaultOptions() Options {
	return Options{Places: []string{"city", "town"}}
}

// LoadCities scans OSM XML from r and adds matching place nodes to g.
//
// Counting:
//   - Added: nodes stored as cities.
//   - Ignored: ways, relations and nodes that are not accepted places.
//   - Malformed: accepted places whose name is empty after cleanup.
//   - Rejected: nodes the graph refused (coordinates out of range).
//
// Only decoder errors are returned, together with the counts so far.
func LoadCities(ctx context.Context, r io.Reader, g *core.Graph, opts ...Option) (textio.LoadStats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	accept := make(map[string]bool, len(o.Places))
	for _, p := range o.Places {
		accept[p] = true
	}

	var st textio.LoadStats
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok || !accept[n.Tags.Find("place")] {
			st.Ignored++
			continue
		}

		c := core.City{
			ID:         CityID(n.Tags.Find("name")),
			Lat:        n.Lat,
			Lon:        n.Lon,
			Population: population(n.Tags.Find("population")),
		}
		if c.ID == "" {
			st.Malformed++
			o.debug("unnamed place", n.ID)
			continue
		}
		if err := g.AddCity(c); err != nil {
			st.Rejected++
			o.debug(err.Error(), n.ID)
			continue
		}
		st.Added++
	}
	if err := scanner.Err(); err != nil {
		return st, fmt.Errorf("osmimport: %w", err)
	}

	return st, nil
}

// CityID converts an OSM name into a city ID: surrounding whitespace is
// trimmed and inner whitespace runs become a single '-'.
func CityID(name string) string {
	return strings.Join(strings.FieldsFunc(name, unicode.IsSpace), "-")
}

// population parses the "population" tag, tolerating thousands separators.
// Anything unparsable yields 0.
func population(v string) int {
	v = strings.NewReplacer(",", "", " ", "", "_", "").Replace(v)
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

func (o Options) debug(msg string, id osm.NodeID) {
	if o.Logger != nil {
		o.Logger.Debug("osm node skipped", "reason", msg, "node", int64(id))
	}
}
