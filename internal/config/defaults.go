package config

import (
	"path/filepath"
	"time"
)

// DefaultExcludes are glob patterns skipped when scanning the materials directory.
var DefaultExcludes = []string{
	".git/**",
	"drafts/**",
	"*.tmp",
	"~$*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		DataDir:        ".studydeck",
		MaterialsDir:   "materials",
		CatalogFile:    "catalog.yml",
		OpenDelayMS:    100,
		SessionIdleMin: 240,
		Include:        []string{"**/*.pdf"},
		Exclude:        append([]string(nil), DefaultExcludes...),
	}
}

// DatabasePath is where the completion database lives.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "studydeck.db")
}

// OpenDelay is the deferral applied to cross-page open requests.
func (c *Config) OpenDelay() time.Duration {
	return time.Duration(c.OpenDelayMS) * time.Millisecond
}

// SessionIdle is how long an untouched browser session is kept in memory.
func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMin) * time.Minute
}
