// Command citypath finds routes between cities with six shortest-path
// algorithms, compares them, analyzes the network and serves it over HTTP.
//
// Usage:
//
//	citypath -from Mumbai -to Kolkata -algorithm all -report out.txt
//	citypath -cities cities.txt -routes routes.txt -analyze
//	citypath -serve -addr :8080
//
// Without data flags the built-in network of Indian cities is used. Flags
// override the CITYPATH_* environment variables and the .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/builder"
	"github.com/katalvlaran/citypath/config"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/httpapi"
	"github.com/katalvlaran/citypath/osmimport"
	"github.com/katalvlaran/citypath/pathfinder"
	"github.com/katalvlaran/citypath/textio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "citypath:", err)
		os.Exit(1)
	}
}

// flags holds the parsed command line.
type flags struct {
	from, to  string
	algorithm string
	report    string
	dump      string
	analyze   bool
	serve     bool
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("citypath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f flags
	fs.StringVar(&f.from, "from", "", "source city")
	fs.StringVar(&f.to, "to", "", "destination city")
	fs.StringVar(&f.algorithm, "algorithm", "all", "algorithm name (dijkstra, bellman-ford, floyd-warshall, astar, bfs, dfs) or all")
	fs.StringVar(&f.report, "report", "", "write the comparison report to this file")
	fs.StringVar(&f.dump, "dump", "", "write the network to this file")
	fs.BoolVar(&f.analyze, "analyze", false, "print network statistics")
	fs.BoolVar(&f.serve, "serve", false, "serve the HTTP API")
	fs.StringVar(&cfg.CitiesFile, "cities", cfg.CitiesFile, "cities file")
	fs.StringVar(&cfg.RoutesFile, "routes", cfg.RoutesFile, "routes file")
	fs.StringVar(&cfg.NetworkFile, "network", cfg.NetworkFile, "network dump to load")
	fs.StringVar(&cfg.OSMFile, "osm", cfg.OSMFile, "OpenStreetMap XML with place nodes")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	if err = fs.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	g, err := loadNetwork(ctx, cfg, logger)
	if err != nil {
		return err
	}
	st := g.Stats()
	logger.Info("network loaded", "cities", st.CityCount, "routes", st.RouteCount, "isolated", st.Isolated)

	if f.dump != "" {
		if err = writeFile(f.dump, func(w io.Writer) error { return textio.WriteNetwork(w, g) }); err != nil {
			return err
		}
		logger.Info("network written", "path", f.dump)
	}

	if f.analyze {
		printAnalysis(stdout, analysis.NewAnalyzer(g))
	}
	if f.from != "" || f.to != "" {
		if err = query(stdout, g, f, logger); err != nil {
			return err
		}
	}
	if f.serve {
		srv := httpapi.New(g, httpapi.WithLogger(logger), httpapi.WithCORSOrigins(cfg.CORSOrigins...))
		if err = srv.ListenAndServe(ctx, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return nil
}

// loadNetwork builds the graph from the configured sources, or the seed
// network when none is configured. Sources are applied in the order
// network dump, OSM, cities, routes, so later files can add routes
// between cities from earlier ones.
func loadNetwork(ctx context.Context, cfg config.Config, logger *slog.Logger) (*core.Graph, error) {
	if !cfg.HasFiles() {
		return builder.Default()
	}

	g := core.NewGraph()
	topt := textio.WithLogger(logger)
	steps := []struct {
		path string
		load func(io.Reader) (textio.LoadStats, error)
	}{
		{cfg.NetworkFile, func(r io.Reader) (textio.LoadStats, error) { return textio.ReadNetwork(r, g, topt) }},
		{cfg.OSMFile, func(r io.Reader) (textio.LoadStats, error) {
			return osmimport.LoadCities(ctx, r, g, osmimport.WithLogger(logger))
		}},
		{cfg.CitiesFile, func(r io.Reader) (textio.LoadStats, error) { return textio.LoadCities(r, g, topt) }},
		{cfg.RoutesFile, func(r io.Reader) (textio.LoadStats, error) { return textio.LoadRoutes(r, g, topt) }},
	}
	for _, step := range steps {
		if step.path == "" {
			continue
		}
		st, err := readFile(step.path, step.load)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded", "path", step.path, "added", st.Added, "skipped", st.Skipped(), "ignored", st.Ignored)
	}

	return g, nil
}

// query runs the selected algorithms and prints, and optionally saves, the report.
func query(stdout io.Writer, g *core.Graph, f flags, logger *slog.Logger) error {
	if f.from == "" || f.to == "" {
		return errors.New("both -from and -to are required")
	}

	var opts []analysis.Option
	if f.algorithm != "all" {
		k, err := pathfinder.ParseKind(f.algorithm)
		if err != nil {
			return err
		}
		opts = append(opts, analysis.WithKinds(k))
	}
	cmp := analysis.NewAnalyzer(g, opts...).Compare(f.from, f.to)
	if err := textio.WriteComparison(stdout, cmp); err != nil {
		return err
	}
	if f.report != "" {
		if err := writeFile(f.report, func(w io.Writer) error { return textio.WriteReport(w, cmp.Results()...) }); err != nil {
			return err
		}
		logger.Info("report written", "path", f.report)
	}

	return nil
}

func printAnalysis(w io.Writer, a *analysis.Analyzer) {
	st := a.AnalyzeNetwork()
	fmt.Fprintln(w, "Graph Analysis:")
	fmt.Fprintf(w, "Cities: %d\n", st.Cities)
	fmt.Fprintf(w, "Routes: %d\n", st.Routes)
	fmt.Fprintf(w, "Total connections: %d\n", st.Connections)
	fmt.Fprintf(w, "Average connections per city: %.2f\n", st.AvgConnections)
	fmt.Fprintf(w, "Most connected city: %s (%d connections)\n", st.MostConnected, st.MaxDegree)

	comps := a.ConnectedComponents()
	fmt.Fprintf(w, "Connected components: %d\n", len(comps))
	for i, c := range comps {
		fmt.Fprintf(w, "  Component %d: %s\n", i+1, strings.Join(c, ", "))
	}
	avg, pairs := a.AveragePathLength()
	fmt.Fprintf(w, "Average shortest path length: %.2f km over %d pairs\n", avg, pairs)
	bb := a.Backbone()
	fmt.Fprintf(w, "Backbone: %d routes, %.2f km\n\n", len(bb.Routes), bb.Distance)
}

func readFile(path string, load func(io.Reader) (textio.LoadStats, error)) (textio.LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return textio.LoadStats{}, err
	}
	defer file.Close()

	return load(file)
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
