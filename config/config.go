// Package config builds the process configuration from the environment,
// once, at startup. The core packages never read ambient state; they get
// paths through this object.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the resolved directories and serving port.
type Config struct {
	NotesDir      string
	AggregatesDir string
	Port          string
}

// Load reads an optional .env file and the TAGFOLD_* variables, applying
// defaults, and validates that the notes directory exists. The aggregates
// directory is created on demand by the engine and is not checked here.
func Load(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	cfg := &Config{
		NotesDir:      getenv("TAGFOLD_NOTES_DIR", "./notes"),
		AggregatesDir: os.Getenv("TAGFOLD_AGGREGATES_DIR"),
		Port:          getenv("TAGFOLD_PORT", "8080"),
	}
	if cfg.AggregatesDir == "" {
		cfg.AggregatesDir = filepath.Join(cfg.NotesDir, "aggregates")
	}

	info, err := os.Stat(cfg.NotesDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("notes directory does not exist: %s", cfg.NotesDir)
	}
	if err != nil {
		return nil, fmt.Errorf("stat notes directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("notes path is not a directory: %s", cfg.NotesDir)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
