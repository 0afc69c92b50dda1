package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citypath/core"
)

// ParseCityRow parses "<name> <lat> <lon> [population]".
// Extra fields after population are ignored.
func ParseCityRow(line string) (core.City, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return core.City{}, fmt.Errorf("%w: want at least 3 fields, got %d", ErrMalformedRow, len(f))
	}
	lat, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return core.City{}, fmt.Errorf("%w: latitude %q", ErrMalformedRow, f[1])
	}
	lon, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return core.City{}, fmt.Errorf("%w: longitude %q", ErrMalformedRow, f[2])
	}
	c := core.City{ID: f[0], Lat: lat, Lon: lon}
	if len(f) > 3 {
		if c.Population, err = strconv.Atoi(f[3]); err != nil {
			return core.City{}, fmt.Errorf("%w: population %q", ErrMalformedRow, f[3])
		}
	}

	return c, nil
}

// ParseRouteRow parses "<from> <to> <distance> <time> [mode]".
func ParseRouteRow(line string) (core.Route, error) {
	f := strings.Fields(line)
	if len(f) < 4 {
		return core.Route{}, fmt.Errorf("%w: want at least 4 fields, got %d", ErrMalformedRow, len(f))
	}
	dist, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return core.Route{}, fmt.Errorf("%w: distance %q", ErrMalformedRow, f[2])
	}
	hours, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return core.Route{}, fmt.Errorf("%w: time %q", ErrMalformedRow, f[3])
	}
	r := core.Route{From: f[0], To: f[1], Distance: dist, Time: hours}
	if len(f) > 4 {
		if r.Mode, err = core.ParseMode(f[4]); err != nil {
			return core.Route{}, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
	}

	return r, nil
}

// LoadCities adds every city row of r to g.
// Re-adding an existing name replaces its coordinates and keeps its routes.
func LoadCities(r io.Reader, g *core.Graph, opts ...Option) (LoadStats, error) {
	o := buildOptions(opts)
	return scan(r, func(st *LoadStats, line int, text string) {
		addCity(g, o, st, line, text)
	})
}

// LoadRoutes adds every route row of r to g. Rows naming a city that is not
// in g are counted as Rejected.
func LoadRoutes(r io.Reader, g *core.Graph, opts ...Option) (LoadStats, error) {
	o := buildOptions(opts)
	return scan(r, func(st *LoadStats, line int, text string) {
		addRoute(g, o, st, line, text)
	})
}

func addCity(g *core.Graph, o Options, st *LoadStats, line int, text string) {
	c, err := ParseCityRow(text)
	if err != nil {
		st.Malformed++
		o.skip(line, text, err)
		return
	}
	if err = g.AddCity(c); err != nil {
		st.Rejected++
		o.skip(line, text, err)
		return
	}
	st.Added++
}

func addRoute(g *core.Graph, o Options, st *LoadStats, line int, text string) {
	rt, err := ParseRouteRow(text)
	if err != nil {
		st.Malformed++
		o.skip(line, text, err)
		return
	}
	if err = g.AddRoute(rt); err != nil {
		st.Rejected++
		o.skip(line, text, err)
		return
	}
	st.Added++
}

// scan feeds every non-blank, non-comment line to row, with its 1-based
// line number.
func scan(r io.Reader, row func(st *LoadStats, line int, text string)) (LoadStats, error) {
	var st LoadStats
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row(&st, n, text)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("textio: read: %w", err)
	}

	return st, nil
}
