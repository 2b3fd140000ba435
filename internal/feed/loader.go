package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/uiakraken/kraken/internal/config"
	"golang.org/x/sync/errgroup"
)

// Loader turns feed names into collections. It never retries; a failed load
// is reported once as a *LoadError and it is up to the page to show a fallback.
type Loader struct {
	source    Source
	client    *http.Client
	overrides map[string]config.Feed
	parser    *gofeed.Parser
	logger    *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithOverrides routes the named feeds to explicit URLs or RSS/Atom documents.
func WithOverrides(feeds []config.Feed) Option {
	return func(l *Loader) {
		for _, f := range feeds {
			l.overrides[f.Name] = f
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) { l.client = client }
}

func NewLoader(source Source, opts ...Option) *Loader {
	l := &Loader{
		source:    source,
		client:    http.DefaultClient,
		overrides: make(map[string]config.Feed),
		parser:    gofeed.NewParser(),
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(l)
	}
	l.parser.Client = l.client
	return l
}

// FromConfig builds a Loader for cfg.Data (directory or base URL) with the
// configured per-feed overrides.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Loader, error) {
	client := &http.Client{Timeout: cfg.TimeoutDuration()}

	var src Source
	if cfg.RemoteData() {
		hs, err := NewHTTPSource(client, cfg.Data)
		if err != nil {
			return nil, err
		}
		src = hs
	} else {
		src = NewDirSource(cfg.Data)
	}
	return NewLoader(src, WithHTTPClient(client), WithOverrides(cfg.Feeds), WithLogger(logger)), nil
}

// Load fetches and parses one feed. The returned collection is owned by the caller.
func (l *Loader) Load(ctx context.Context, name string) (Collection, error) {
	start := time.Now()
	coll, where, err := l.load(ctx, name)
	if err != nil {
		le := &LoadError{Feed: name, Err: err}
		var se *statusError
		if errors.As(err, &se) {
			le.StatusCode = se.code
		}
		l.logger.Warn("feed load failed", "feed", name, "source", where, "error", err)
		return nil, le
	}
	l.logger.Info("feed loaded", "feed", name, "source", where, "records", len(coll), "duration", time.Since(start))
	return coll, nil
}

func (l *Loader) load(ctx context.Context, name string) (Collection, string, error) {
	if o, ok := l.overrides[name]; ok && o.URL != "" {
		switch o.Type {
		case "rss", "atom":
			coll, err := l.loadSyndication(ctx, o)
			return coll, o.URL, err
		default:
			body, err := getURL(ctx, l.client, o.URL)
			if err != nil {
				return nil, o.URL, err
			}
			defer body.Close()
			coll, err := decode(body)
			return coll, o.URL, err
		}
	}

	where := l.source.Location(name)
	body, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, where, err
	}
	defer body.Close()
	coll, err := decode(body)
	return coll, where, err
}

func decode(r io.Reader) (Collection, error) {
	var coll Collection
	if err := json.NewDecoder(r).Decode(&coll); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if coll == nil {
		coll = Collection{}
	}
	return coll, nil
}

// LoadAll loads the named feeds concurrently and waits for all of them. If any
// feed fails the whole join fails with that feed's error and the remaining
// requests are cancelled, so dependent regions fall back together.
func (l *Loader) LoadAll(ctx context.Context, names ...string) (map[string]Collection, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Collection, len(names))
	for i, name := range names {
		g.Go(func() error {
			coll, err := l.Load(ctx, name)
			if err != nil {
				return err
			}
			results[i] = coll
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]Collection, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out, nil
}
