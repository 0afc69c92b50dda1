package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citypath/core"
)

// Section headers of the network format.
const (
	CitiesHeader = "# cities"
	RoutesHeader = "# routes"
)

// WriteNetwork dumps g: cities in insertion order, then every route once
// (From < To). Floats use the shortest representation that parses back to
// the same value, so ReadNetwork reproduces g exactly.
func WriteNetwork(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, CitiesHeader)
	for _, c := range g.CityList() {
		fmt.Fprintf(bw, "%s %s %s %d\n", c.ID, ftoa(c.Lat), ftoa(c.Lon), c.Population)
	}
	fmt.Fprintln(bw, RoutesHeader)
	for _, r := range g.Routes() {
		fmt.Fprintf(bw, "%s %s %s %s %s\n", r.From, r.To, ftoa(r.Distance), ftoa(r.Time), r.Mode)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write network: %w", err)
	}

	return nil
}

// ReadNetwork loads a WriteNetwork dump into g. Rows before any header are
// read as cities. A route row must come after the rows of both its cities.
func ReadNetwork(r io.Reader, g *core.Graph, opts ...Option) (LoadStats, error) {
	o := buildOptions(opts)

	var st LoadStats
	routes := false
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case strings.EqualFold(text, CitiesHeader):
			routes = false
			continue
		case strings.EqualFold(text, RoutesHeader):
			routes = true
			continue
		case strings.HasPrefix(text, "#"):
			continue
		}
		if routes {
			addRoute(g, o, &st, n, text)
		} else {
			addCity(g, o, &st, n, text)
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("textio: read network: %w", err)
	}

	return st, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
