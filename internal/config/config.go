package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// KnownFeeds lists every feed the site publishes, in the order pages load them.
var KnownFeeds = []string{
	"news", "players", "teams", "schedule", "results",
	"media", "leadership", "partners", "roster",
}

type Feed struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "json", "rss" or "atom"
	URL  string `yaml:"url"`
}

type PageSizes struct {
	News     int `yaml:"news"`
	Media    int `yaml:"media"`
	HomeNews int `yaml:"home_news"`
}

type LogConfig struct {
	Path       string `yaml:"path,omitempty"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type Config struct {
	Data              string    `yaml:"data"`
	Assets            string    `yaml:"assets"`
	Site              string    `yaml:"site"`
	Timeout           string    `yaml:"timeout"`
	SearchDebounce    string    `yaml:"search_debounce"`
	CountdownInterval string    `yaml:"countdown_interval"`
	PageSizes         PageSizes `yaml:"page_sizes"`
	Feeds             []Feed    `yaml:"feeds"`
	Log               LogConfig `yaml:"log"`
}

// RemoteData reports whether Data is an http(s) base URL rather than a directory.
func (c *Config) RemoteData() bool {
	u, err := url.Parse(c.Data)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func (c *Config) TimeoutDuration() time.Duration {
	return durationOr(c.Timeout, 15*time.Second)
}

func (c *Config) SearchDebounceDuration() time.Duration {
	return durationOr(c.SearchDebounce, 200*time.Millisecond)
}

func (c *Config) CountdownIntervalDuration() time.Duration {
	return durationOr(c.CountdownInterval, time.Minute)
}

func durationOr(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// NewsPageSize returns the news grid page size, defaulting to 9.
func (c *Config) NewsPageSize() int {
	if c.PageSizes.News <= 0 {
		return 9
	}
	return c.PageSizes.News
}

// MediaPageSize returns the media grid page size, defaulting to 12.
func (c *Config) MediaPageSize() int {
	if c.PageSizes.Media <= 0 {
		return 12
	}
	return c.PageSizes.Media
}

func (c *Config) HomeNewsPageSize() int {
	if c.PageSizes.HomeNews <= 0 {
		return 3
	}
	return c.PageSizes.HomeNews
}

// FeedOverride returns the override configured for name, if any.
func (c *Config) FeedOverride(name string) (Feed, bool) {
	for _, f := range c.Feeds {
		if f.Name == name {
			return f, true
		}
	}
	return Feed{}, false
}

func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(xdg.StateHome, "kraken", "kraken.log")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "kraken", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run; failure is non-fatal.
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	cfg.Feeds = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	mergeDefaultFeeds(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeDefaultFeeds appends default feed overrides the user file does not
// mention. User entries win over defaults with the same name.
func mergeDefaultFeeds(cfg, defaults *Config) {
	seen := make(map[string]bool, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		seen[f.Name] = true
	}
	for _, f := range defaults.Feeds {
		if !seen[f.Name] {
			cfg.Feeds = append(cfg.Feeds, f)
		}
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Data) == "" {
		return fmt.Errorf("data is required")
	}
	if strings.Contains(cfg.Data, "://") && !cfg.RemoteData() {
		return fmt.Errorf("data: url scheme must be http or https, got %q", cfg.Data)
	}
	if cfg.Site != "" {
		u, err := url.Parse(cfg.Site)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("site: must be an http or https URL, got %q", cfg.Site)
		}
	}
	if cfg.PageSizes.News < 0 || cfg.PageSizes.Media < 0 || cfg.PageSizes.HomeNews < 0 {
		return fmt.Errorf("page_sizes must not be negative")
	}

	known := make(map[string]bool, len(KnownFeeds))
	for _, name := range KnownFeeds {
		known[name] = true
	}
	validTypes := map[string]bool{"": true, "json": true, "rss": true, "atom": true}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if !known[f.Name] {
			return fmt.Errorf("feed %q: unknown feed (valid: %s)", f.Name, strings.Join(KnownFeeds, ", "))
		}
		if !validTypes[f.Type] {
			return fmt.Errorf("feed %q: unknown type %q (valid: json, rss, atom)", f.Name, f.Type)
		}
		if f.URL == "" {
			if f.Type == "rss" || f.Type == "atom" {
				return fmt.Errorf("feed %q: url is required for %s feeds", f.Name, f.Type)
			}
			continue
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.Name, u.Scheme)
		}
	}
	return nil
}
