package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DocsRoot is the directory holding the component reference pages.
	DocsRoot string `yaml:"docs_root"`
	// Catalog is the path to the component catalog file.
	Catalog string `yaml:"catalog"`

	Watch   WatchConfig   `yaml:"watch,omitempty"`
	Notify  NotifyConfig  `yaml:"notify,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
	Git     GitConfig     `yaml:"git,omitempty"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a filesystem event before re-running.
	Debounce string `yaml:"debounce,omitempty"`
	// Interval, when set, schedules an unconditional full run on top of
	// filesystem-triggered runs (e.g. "30m").
	Interval string `yaml:"interval,omitempty"`
	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// NotifyConfig configures run-report publishing.
type NotifyConfig struct {
	URL     string `yaml:"url,omitempty"` // NATS server URL; empty disables publishing
	Subject string `yaml:"subject,omitempty"`
}

// HistoryConfig configures the run history store.
type HistoryConfig struct {
	Path     string `yaml:"path,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// GitConfig configures commit behavior for --commit.
type GitConfig struct {
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
}

// Default returns a configuration populated with defaults.
func Default() *Config {
	return &Config{
		DocsRoot: "docs/api/processors",
		Catalog:  "catalog.yaml",
		Watch: WatchConfig{
			Debounce: "2s",
		},
		Notify: NotifyConfig{
			Subject: "moddocs.runs",
		},
		History: HistoryConfig{
			Path: ".moddocs/history.db",
		},
		Git: GitConfig{
			AuthorName:  "moddocs",
			AuthorEmail: "moddocs@localhost",
		},
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Watch.Interval = "30m"

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Load reads configuration from the given YAML file, applies environment
// overrides, fills defaults, and validates the result.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, but falls back to defaults (plus environment
// overrides) when the config file does not exist. Commands use this so that a
// bare working directory with only a catalog still works.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		loadEnvFiles()
		cfg := Default()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.DocsRoot == "" {
		c.DocsRoot = def.DocsRoot
	}
	if c.Catalog == "" {
		c.Catalog = def.Catalog
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = def.Watch.Debounce
	}
	if c.Notify.Subject == "" {
		c.Notify.Subject = def.Notify.Subject
	}
	if c.History.Path == "" {
		c.History.Path = def.History.Path
	}
	if c.Git.AuthorName == "" {
		c.Git.AuthorName = def.Git.AuthorName
	}
	if c.Git.AuthorEmail == "" {
		c.Git.AuthorEmail = def.Git.AuthorEmail
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.DocsRoot == "" {
		return fmt.Errorf("docs_root must not be empty")
	}
	if c.Catalog == "" {
		return fmt.Errorf("catalog must not be empty")
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	if _, err := c.IntervalDuration(); err != nil {
		return err
	}
	return nil
}

// DebounceDuration parses the watch debounce period.
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	return d, nil
}

// IntervalDuration parses the optional periodic run interval. Zero means
// no periodic runs.
func (c *Config) IntervalDuration() (time.Duration, error) {
	if c.Watch.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.interval %q: %w", c.Watch.Interval, err)
	}
	return d, nil
}
