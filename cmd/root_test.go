package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"

	"github.com/uiakraken/kraken/internal/config"
	"github.com/uiakraken/kraken/internal/feed"
)

func testFeeds() fstest.MapFS {
	return fstest.MapFS{
		"news.json": {Data: []byte(`[
			{"title": "Playoffs", "slug": "playoffs", "category": "Valorant", "date": "2025-03-02", "excerpt": "We made it."},
			{"title": "Signing", "slug": "signing", "date": "2025-02-20"}
		]`)},
		"players.json":  {Data: []byte(`[{"handle": "Nyx", "name": "Nora", "game": "Valorant"}]`)},
		"teams.json":    {Data: []byte(`[{"key": "valorant", "title": "Valorant", "roster": [{"handle": "Nyx", "name": "Nora"}]}]`)},
		"schedule.json": {Data: []byte(`[]`)},
		"roster.json":   {Data: []byte(`[{"handle": "Nyx", "name": "Nora"}]`)},
		"partners.json": {Data: []byte(`[{"name": "Sponsor"}]`)},
	}
}

func testLoader() *feed.Loader {
	return feed.NewLoader(feed.NewFSSource(testFeeds()))
}

func build(t *testing.T, name string, o renderOpts) *goquery.Document {
	t.Helper()
	cfg := &config.Config{Data: "testdata", Site: "https://uiakraken.no/pages/"}
	page, err := buildPage(context.Background(), cfg, testLoader(), slog.New(slog.DiscardHandler), name, o)
	if err != nil {
		t.Fatalf("buildPage(%q): %v", name, err)
	}
	var b bytes.Buffer
	if err := page.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&b)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestBuildNews(t *testing.T) {
	doc := build(t, "news", renderOpts{pages: 1})
	if got := doc.Find("#news-grid article").Length(); got != 2 {
		t.Errorf("news cards = %d, want 2", got)
	}
	if got := strings.TrimSpace(doc.Find("#news-load-more").Text()); got != "No more articles" {
		t.Errorf("load more = %q", got)
	}
}

func TestBuildMediaUnavailable(t *testing.T) {
	doc := build(t, "media", renderOpts{})
	if !strings.Contains(doc.Find("#media-grid").Text(), "Unable to load media at this time.") {
		t.Errorf("media grid = %q", doc.Find("#media-grid").Text())
	}
}

func TestBuildMatchesJoinFails(t *testing.T) {
	// results.json is missing, so the whole match center is unavailable.
	doc := build(t, "matches", renderOpts{})
	if !strings.Contains(doc.Find("#upcoming-list").Text(), "Unable to load matches at this time.") {
		t.Errorf("upcoming = %q", doc.Find("#upcoming-list").Text())
	}
}

func TestBuildTeamsLinksSite(t *testing.T) {
	doc := build(t, "teams", renderOpts{})
	ld := doc.Find(`script[type="application/ld+json"]`).Text()
	if !strings.Contains(ld, "https://uiakraken.no/pages/teams.html#valorant") {
		t.Errorf("structured data url missing from %s", ld)
	}
}

func TestBuildHomeRegions(t *testing.T) {
	doc := build(t, "home", renderOpts{})
	if !strings.Contains(doc.Find("#roster-grid").Text(), "Nyx") {
		t.Error("roster region should render")
	}
	if doc.Find("#news-list article").Length() != 2 {
		t.Error("home news should render")
	}
}

func TestBuildArticle(t *testing.T) {
	doc := build(t, "article", renderOpts{slug: "playoffs"})
	if !strings.Contains(doc.Find("#article-content").Text(), "We made it.") {
		t.Errorf("article content = %q", doc.Find("#article-content").Text())
	}

	doc = build(t, "article", renderOpts{slug: "nope"})
	if !strings.Contains(doc.Text(), "Article not found") {
		t.Error("unknown slug should render not found")
	}
}

func TestBuildPlayerFoldsHandle(t *testing.T) {
	doc := build(t, "player", renderOpts{handle: "NYX"})
	if !strings.Contains(doc.Find("#player-hero-inner").Text(), "Nora") {
		t.Errorf("player hero = %q", doc.Find("#player-hero-inner").Text())
	}
}

func TestBuildUnknownPage(t *testing.T) {
	cfg := &config.Config{Data: "testdata"}
	_, err := buildPage(context.Background(), cfg, testLoader(), slog.New(slog.DiscardHandler), "shop", renderOpts{})
	if err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestWritePageIntoHost(t *testing.T) {
	host := filepath.Join(t.TempDir(), "news.html")
	err := os.WriteFile(host, []byte(`<html><head><title>x</title></head><body>
<select id="news-category"></select>
<div id="news-grid" aria-busy="true">Loading…</div>
<button id="news-load-more">Load more</button>
</body></html>`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Data: "testdata"}
	page, err := buildPage(context.Background(), cfg, testLoader(), slog.New(slog.DiscardHandler), "news", renderOpts{pages: 1})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := writePage(&b, page, host, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("writePage: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&b)
	if err != nil {
		t.Fatal(err)
	}
	grid := doc.Find("#news-grid")
	if grid.AttrOr("aria-busy", "") != "false" {
		t.Errorf("aria-busy = %q, want false", grid.AttrOr("aria-busy", ""))
	}
	if strings.Contains(grid.Text(), "Loading") {
		t.Error("placeholder should be replaced")
	}
	if _, ok := doc.Find("#news-load-more").Attr("disabled"); !ok {
		t.Error("exhausted load more should be disabled")
	}
}

func TestWithLocation(t *testing.T) {
	o, err := renderOpts{location: "players/profile.html?handle=Nyx"}.withLocation()
	if err != nil {
		t.Fatal(err)
	}
	if o.handle != "Nyx" {
		t.Errorf("handle = %q, want Nyx", o.handle)
	}

	o, err = renderOpts{location: "teams.html#cs2", tab: "valorant"}.withLocation()
	if err != nil {
		t.Fatal(err)
	}
	if o.tab != "valorant" {
		t.Errorf("explicit --tab should win, got %q", o.tab)
	}

	o, _ = renderOpts{location: "match-center.html#results"}.withLocation()
	if o.tab != "results" {
		t.Errorf("tab = %q, want results", o.tab)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})
	if err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<p>hi</p>" {
		t.Errorf("file = %q", data)
	}

	writeErr := errors.New("render failed")
	if err := writeFile(path, func(io.Writer) error { return writeErr }); !errors.Is(err, writeErr) {
		t.Errorf("writeFile error = %v, want %v", err, writeErr)
	}

	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.html")
	if err := writeFile(missing, func(io.Writer) error { return nil }); err == nil {
		t.Error("expected error creating a file in a missing directory")
	}
}

func TestLoadHomeKeepsRegionErrors(t *testing.T) {
	f := loadHome(context.Background(), testLoader())
	if f.RosterErr != nil || len(f.Roster) != 1 {
		t.Errorf("roster = %v, err = %v", f.Roster, f.RosterErr)
	}
	if len(f.News) != 2 {
		t.Errorf("news = %d records, want 2", len(f.News))
	}
	fsys := testFeeds()
	delete(fsys, "partners.json")
	f = loadHome(context.Background(), feed.NewLoader(feed.NewFSSource(fsys)))
	if f.PartnersErr == nil {
		t.Error("missing partners feed should set PartnersErr")
	}
	if f.ScheduleErr != nil || f.RosterErr != nil || f.NewsErr != nil {
		t.Errorf("other regions should load: %v %v %v", f.ScheduleErr, f.RosterErr, f.NewsErr)
	}
}

func TestWritePageSkipsPartialHost(t *testing.T) {
	host := filepath.Join(t.TempDir(), "board.html")
	if err := os.WriteFile(host, []byte(`<html><body><div id="board-grid">Loading</div></body></html>`), 0o644); err != nil {
		t.Fatal(err)
	}
	page, err := buildPage(context.Background(), &config.Config{Data: "testdata"}, testLoader(), slog.New(slog.DiscardHandler), "board", renderOpts{})
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := writePage(&b, page, host, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), ">Loading</div>") {
		t.Errorf("host without stakeholder-grid should be left untouched:\n%s", b.String())
	}
}

func TestFirstArg(t *testing.T) {
	if firstArg(nil) != "" {
		t.Error("no args should give a blank key")
	}
	if firstArg([]string{"nyx"}) != "nyx" {
		t.Error("first arg not returned")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "kraken dev") {
		t.Errorf("version output = %q", out.String())
	}
}
