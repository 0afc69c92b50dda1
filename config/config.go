// Package config reads the settings of the citypath binaries from the
// environment, after loading an optional .env file.
//
// Keys:
//
//	CITYPATH_CITIES        cities file (textio format)
//	CITYPATH_ROUTES        routes file (textio format)
//	CITYPATH_NETWORK       network dump (textio format)
//	CITYPATH_OSM           OpenStreetMap XML file with place nodes
//	CITYPATH_ADDR          HTTP listen address, default ":8080"
//	CITYPATH_LOG_LEVEL     debug, info, warn or error, default "info"
//	CITYPATH_CORS_ORIGINS  comma-separated allowed origins, default "*"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	KeyCities      = "CITYPATH_CITIES"
	KeyRoutes      = "CITYPATH_ROUTES"
	KeyNetwork     = "CITYPATH_NETWORK"
	KeyOSM         = "CITYPATH_OSM"
	KeyAddr        = "CITYPATH_ADDR"
	KeyLogLevel    = "CITYPATH_LOG_LEVEL"
	KeyCORSOrigins = "CITYPATH_CORS_ORIGINS"
)

// DefaultAddr is the listen address used when CITYPATH_ADDR is unset.
const DefaultAddr = ":8080"

// ErrBadValue indicates an environment value that cannot be parsed.
var ErrBadValue = errors.New("config: bad value")

// Config holds the settings of one run. Empty data paths mean "use the
// seed network".
type Config struct {
	CitiesFile  string
	RoutesFile  string
	NetworkFile string
	OSMFile     string
	Addr        string
	LogLevel    slog.Level
	CORSOrigins []string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		LogLevel:    slog.LevelInfo,
		CORSOrigins: []string{"*"},
	}
}

// Load reads the given .env files (".env" when none are named), then the
// process environment. Variables already set in the environment win over
// the files. A missing default .env is not an error; a missing named file is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which reports the value of a key
// and whether it is set. Unset and blank keys keep their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg.CitiesFile = get(KeyCities)
	cfg.RoutesFile = get(KeyRoutes)
	cfg.NetworkFile = get(KeyNetwork)
	cfg.OSMFile = get(KeyOSM)
	if v := get(KeyAddr); v != "" {
		cfg.Addr = v
	}
	if v := get(KeyLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrBadValue, KeyLogLevel, v)
		}
	}
	if v := get(KeyCORSOrigins); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	return cfg, nil
}

// HasFiles reports whether any data source other than the seed is configured.
func (c Config) HasFiles() bool {
	return c.CitiesFile != "" || c.RoutesFile != "" || c.NetworkFile != "" || c.OSMFile != ""
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}
