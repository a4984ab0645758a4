package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `studydeck init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog reads the configured catalog, falling back to the built-in one.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Catalog %q: %d modules, %d resources\n", c.Name, len(c.Modules), len(c.Resources))
	}
	return c, nil
}
