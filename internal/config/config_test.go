package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Data == "" {
		t.Error("expected data to be set")
	}
	if cfg.PageSizes.News != 9 || cfg.PageSizes.Media != 12 || cfg.PageSizes.HomeNews != 3 {
		t.Errorf("unexpected default page sizes: %+v", cfg.PageSizes)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := &Config{SearchDebounce: "350ms", CountdownInterval: "30s", Timeout: "2s"}
	if got := cfg.SearchDebounceDuration(); got != 350*time.Millisecond {
		t.Errorf("SearchDebounceDuration() = %v, want 350ms", got)
	}
	if got := cfg.CountdownIntervalDuration(); got != 30*time.Second {
		t.Errorf("CountdownIntervalDuration() = %v, want 30s", got)
	}
	if got := cfg.TimeoutDuration(); got != 2*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 2s", got)
	}

	cfg = &Config{SearchDebounce: "soon", CountdownInterval: "-1m"}
	if got := cfg.SearchDebounceDuration(); got != 200*time.Millisecond {
		t.Errorf("expected 200ms default for invalid debounce, got %v", got)
	}
	if got := cfg.CountdownIntervalDuration(); got != time.Minute {
		t.Errorf("expected 1m default for negative interval, got %v", got)
	}
}

func TestPageSizeDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.NewsPageSize(); got != 9 {
		t.Errorf("NewsPageSize() = %d, want 9", got)
	}
	if got := cfg.MediaPageSize(); got != 12 {
		t.Errorf("MediaPageSize() = %d, want 12", got)
	}
	if got := cfg.HomeNewsPageSize(); got != 3 {
		t.Errorf("HomeNewsPageSize() = %d, want 3", got)
	}

	cfg.PageSizes = PageSizes{News: 6, Media: 4, HomeNews: 1}
	if cfg.NewsPageSize() != 6 || cfg.MediaPageSize() != 4 || cfg.HomeNewsPageSize() != 1 {
		t.Errorf("custom page sizes not honoured: %+v", cfg.PageSizes)
	}
}

func TestRemoteData(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{"data", false},
		{"/srv/site/data", false},
		{"https://kraken.example/data", true},
		{"http://localhost:8080/data", true},
	}
	for _, tt := range tests {
		cfg := &Config{Data: tt.data}
		if got := cfg.RemoteData(); got != tt.want {
			t.Errorf("RemoteData(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `data: https://kraken.example/data
page_sizes:
  news: 6
feeds:
  - name: news
    type: rss
    url: https://kraken.example/news.xml
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data != "https://kraken.example/data" {
		t.Errorf("expected data override, got %s", cfg.Data)
	}
	if cfg.NewsPageSize() != 6 {
		t.Errorf("expected news page size 6, got %d", cfg.NewsPageSize())
	}
	// Untouched fields keep their defaults
	if cfg.MediaPageSize() != 12 {
		t.Errorf("expected default media page size, got %d", cfg.MediaPageSize())
	}
	f, ok := cfg.FeedOverride("news")
	if !ok || f.Type != "rss" {
		t.Errorf("expected rss override for news, got %+v (ok=%v)", f, ok)
	}
	if _, ok := cfg.FeedOverride("media"); ok {
		t.Error("expected no override for media")
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data != "data" {
		t.Errorf("expected default data dir, got %q", cfg.Data)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written on first run: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("page_sizes: [1, 2"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestMergeDefaultFeeds(t *testing.T) {
	cfg := &Config{
		Feeds: []Feed{
			{Name: "news", Type: "rss", URL: "https://user.example/news.xml"},
		},
	}
	defaults := &Config{
		Feeds: []Feed{
			{Name: "news", Type: "atom", URL: "https://default.example/news.atom"},
			{Name: "media", Type: "json", URL: "https://default.example/media.json"},
		},
	}
	mergeDefaultFeeds(cfg, defaults)

	if len(cfg.Feeds) != 2 {
		t.Fatalf("expected 2 feeds after merge, got %d", len(cfg.Feeds))
	}
	if cfg.Feeds[0].URL != "https://user.example/news.xml" {
		t.Errorf("user override should win, got %s", cfg.Feeds[0].URL)
	}
	if cfg.Feeds[1].Name != "media" {
		t.Errorf("expected media default appended, got %s", cfg.Feeds[1].Name)
	}
}

func TestLogPath(t *testing.T) {
	cfg := &Config{Log: LogConfig{Path: "/tmp/k.log"}}
	if got := cfg.LogPath(); got != "/tmp/k.log" {
		t.Errorf("LogPath() = %q, want /tmp/k.log", got)
	}
	cfg.Log.Path = ""
	if got := cfg.LogPath(); filepath.Base(got) != "kraken.log" {
		t.Errorf("LogPath() default = %q, want .../kraken.log", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Data: "data"}, false},
		{"missing data", Config{}, true},
		{"file scheme", Config{Data: "file:///etc"}, true},
		{"site over https", Config{Data: "data", Site: "https://uiakraken.no/pages/"}, false},
		{"relative site", Config{Data: "data", Site: "pages/"}, true},
		{"negative page size", Config{Data: "data", PageSizes: PageSizes{News: -1}}, true},
		{"feed missing name", Config{Data: "data", Feeds: []Feed{{Type: "rss", URL: "https://x.example"}}}, true},
		{"unknown feed", Config{Data: "data", Feeds: []Feed{{Name: "weather"}}}, true},
		{"invalid type", Config{Data: "data", Feeds: []Feed{{Name: "news", Type: "xml"}}}, true},
		{"rss without url", Config{Data: "data", Feeds: []Feed{{Name: "news", Type: "rss"}}}, true},
		{"bad url scheme", Config{Data: "data", Feeds: []Feed{{Name: "news", Type: "rss", URL: "ftp://x.example/feed"}}}, true},
		{"rss over https", Config{Data: "data", Feeds: []Feed{{Name: "news", Type: "rss", URL: "https://x.example/feed"}}}, false},
		{"json over http", Config{Data: "data", Feeds: []Feed{{Name: "media", Type: "json", URL: "http://x.example/media.json"}}}, false},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("validate(%s) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
