package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads environment variables from .env/.env.local files.
// It attempts each supported filename in order and stops at the first
// successfully parsed file. Existing process environment variables are
// not overwritten.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", "path", envPath)
			return
		}
	}
}

// applyEnvOverrides applies MODDOCS_* environment variables on top of the
// file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MODDOCS_DOCS_ROOT"); v != "" {
		cfg.DocsRoot = v
	}
	if v := os.Getenv("MODDOCS_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv("MODDOCS_NATS_URL"); v != "" {
		cfg.Notify.URL = v
	}
}
