package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/uiakraken/kraken/internal/browser"
	"github.com/uiakraken/kraken/internal/config"
	"github.com/uiakraken/kraken/internal/dom"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/logging"
	"github.com/uiakraken/kraken/internal/pages"
	"github.com/uiakraken/kraken/internal/site"
	"github.com/uiakraken/kraken/internal/tabs"
)

type renderOpts struct {
	location string
	host     string
	out      string
	slug     string
	handle   string
	tab      string
	pages    int
}

var flagRender renderOpts

var renderPages = []string{"home", "news", "media", "matches", "teams", "board", "article", "player"}

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render a page's HTML fragments",
	Long: `Build the fragments of one site page from the feeds and write them out.

With --host the fragments are mounted into the named containers of that HTML
document and the whole document is written; otherwise each fragment is written
inside a div carrying its mount point id.

Pages: ` + strings.Join(renderPages, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: renderPages,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.Stderr(logLevel(cfg))
		loader, err := feed.FromConfig(cfg, logger)
		if err != nil {
			return fmt.Errorf("feed source: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
		defer cancel()

		opts, err := flagRender.withLocation()
		if err != nil {
			return err
		}
		page, err := buildPage(ctx, cfg, loader, logger, args[0], opts)
		if err != nil {
			return err
		}

		write := func(w io.Writer) error {
			return writePage(w, page, flagRender.host, logger)
		}
		if flagRender.out == "" {
			return write(cmd.OutOrStdout())
		}
		return writeFile(flagRender.out, write)
	},
}

// writeFile creates path and hands it to write. A failed close is reported,
// since it can lose buffered output.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return write(f)
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&flagRender.host, "host", "", "HTML document to mount the fragments into")
	f.StringVar(&flagRender.out, "out", "", "write to this file instead of stdout")
	f.StringVar(&flagRender.slug, "slug", "", "article slug")
	f.StringVar(&flagRender.handle, "handle", "", "player handle")
	f.StringVar(&flagRender.tab, "tab", "", "active tab of the teams or matches page")
	f.IntVar(&flagRender.pages, "pages", 1, "news or media pages to reveal")
	f.StringVar(&flagRender.location, "location", "", `page address such as "profile.html?handle=nyx" or "teams.html#cs2"`)
}

// withLocation fills slug, handle and tab from --location. Explicit flags win.
func (o renderOpts) withLocation() (renderOpts, error) {
	if o.location == "" {
		return o, nil
	}
	loc, err := tabs.ParseLocation(o.location)
	if err != nil {
		return o, fmt.Errorf("invalid --location: %w", err)
	}
	if o.slug == "" {
		o.slug = loc.Query("slug")
	}
	if o.handle == "" {
		o.handle = loc.Query("handle")
	}
	if o.tab == "" {
		o.tab = loc.Fragment()
	}
	return o, nil
}

// buildPage loads the feeds a page needs and renders it. Feed failures are
// rendered as placeholders; only an unknown page is an error.
func buildPage(ctx context.Context, cfg *config.Config, loader *feed.Loader, logger *slog.Logger, name string, o renderOpts) (site.Page, error) {
	s := site.New(cfg)
	q := site.Query{Pages: max(1, o.pages)}

	switch name {
	case "news":
		coll, err := loader.Load(ctx, "news")
		return s.News(coll, err, q), nil
	case "media":
		coll, err := loader.Load(ctx, "media")
		return s.Media(coll, err, q), nil
	case "matches":
		feeds, err := loader.LoadAll(ctx, "schedule", "results", "media")
		return s.MatchCenter(feeds, err, pages.MatchTabs(o.tab)), nil
	case "teams":
		coll, err := loader.Load(ctx, "teams")
		return s.Teams(coll, err, pages.TeamTabs(coll, o.tab), teamsURL(cfg)), nil
	case "board":
		coll, err := loader.Load(ctx, "leadership")
		return s.Board(coll, err), nil
	case "home":
		return s.Home(loadHome(ctx, loader), 1), nil
	case "article":
		return s.Article(lookup(ctx, loader, logger, "news", "slug", o.slug, false)), nil
	case "player":
		return s.Player(lookup(ctx, loader, logger, "players", "handle", o.handle, true)), nil
	default:
		return site.Page{}, fmt.Errorf("unknown page %q (want one of %s)", name, strings.Join(renderPages, ", "))
	}
}

// loadHome fetches the home regions concurrently. Each region keeps its own
// error; one failing feed does not cancel the others.
func loadHome(ctx context.Context, loader *feed.Loader) site.HomeFeeds {
	var f site.HomeFeeds
	var wg sync.WaitGroup
	load := func(name string, coll *feed.Collection, err *error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*coll, *err = loader.Load(ctx, name)
		}()
	}
	load("schedule", &f.Schedule, &f.ScheduleErr)
	load("roster", &f.Roster, &f.RosterErr)
	load("news", &f.News, &f.NewsErr)
	load("partners", &f.Partners, &f.PartnersErr)
	wg.Wait()
	return f
}

// lookup returns the record keyed by value, or nil when the key is blank, the
// feed fails or nothing matches. A blank key never fetches.
func lookup(ctx context.Context, loader *feed.Loader, logger *slog.Logger, name, field, value string, fold bool) feed.Record {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	coll, err := loader.Load(ctx, name)
	if err != nil {
		return nil
	}
	rec, err := feed.Lookup(name, coll, field, value, fold)
	if err != nil {
		logger.Info("record not found", "feed", name, field, value)
		return nil
	}
	return rec
}

func teamsURL(cfg *config.Config) string {
	u, err := browser.Resolve(cfg.Site, "teams.html")
	if err != nil {
		return "teams.html"
	}
	return u
}

func writePage(w io.Writer, page site.Page, host string, logger *slog.Logger) error {
	if host == "" {
		return page.Render(w)
	}
	f, err := os.Open(host)
	if err != nil {
		return fmt.Errorf("opening host: %w", err)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing host %s: %w", host, err)
	}
	if !page.Mountable(doc) {
		logger.Info("host is missing mount points, page not mounted", "host", host)
	}
	mounted := page.Mount(doc)
	logger.Debug("mounted fragments", "host", host, "ids", mounted)
	return dom.Render(w, doc)
}
