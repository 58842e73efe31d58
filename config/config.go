// Package config reads Iron Throne's runtime configuration from the
// environment: no file format and no flags are defined by the core
// engine, so the root binary configures itself entirely from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lightninglabs/ironthrone/solver"
)

const (
	// envCatalogPath names the JSON catalog file to load at startup.
	envCatalogPath = "IRONTHRONE_CATALOG_PATH"

	// envWatchCatalog, if "true", enables hot-reloading the catalog file
	// on changes.
	envWatchCatalog = "IRONTHRONE_WATCH_CATALOG"

	// envSteps overrides the solver's annealing step count.
	envSteps = "IRONTHRONE_STEPS"
)

// Config holds everything the root binary needs to build an Engine.
type Config struct {
	// CatalogPath is the path to the JSON catalog file.
	CatalogPath string

	// WatchCatalog enables fsnotify-based hot-reloading of CatalogPath.
	WatchCatalog bool

	// Steps is the solver's annealing step count.
	Steps int
}

// FromEnv builds a Config from environment variables, applying
// solver.DefaultSteps when IRONTHRONE_STEPS is unset. IRONTHRONE_CATALOG_PATH
// is required.
func FromEnv() (*Config, error) {
	path := os.Getenv(envCatalogPath)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set", envCatalogPath)
	}

	steps := solver.DefaultSteps
	if raw := os.Getenv(envSteps); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q: %w", envSteps, raw, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%s: must be positive, got %d", envSteps, n)
		}
		steps = n
	}

	return &Config{
		CatalogPath:  path,
		WatchCatalog: os.Getenv(envWatchCatalog) == "true",
		Steps:        steps,
	}, nil
}
