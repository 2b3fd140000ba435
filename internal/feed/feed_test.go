package feed

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uiakraken/kraken/internal/config"
)

const newsJSON = `[
  {"title": "Kraken qualify for playoffs", "slug": "playoffs", "category": "Valorant", "date": "2025-03-02T18:00:00Z"},
  {"title": "New signing", "slug": "signing", "date": "2025-02-20", "tags": ["roster", "news"], "stats": {"acs": 245.5, "kd": 1}}
]`

func fixtures() fstest.MapFS {
	return fstest.MapFS{
		"news.json":     {Data: []byte(newsJSON)},
		"schedule.json": {Data: []byte(`[{"title": "Kraken vs Owls", "datetime": "2030-01-01T18:00:00Z"}]`)},
		"results.json":  {Data: []byte(`[]`)},
		"broken.json":   {Data: []byte(`{"title": "not a list"}`)},
	}
}

func TestLoadFromFS(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))

	coll, err := l.Load(context.Background(), "news")
	require.NoError(t, err)
	require.Len(t, coll, 2)
	assert.Equal(t, "Kraken qualify for playoffs", coll[0].String("title"))
	assert.Equal(t, []string{"roster", "news"}, coll[1].Strings("tags"))
	assert.Equal(t, "245.5", coll[1].Map("stats").String("acs"))
	assert.Equal(t, "1", coll[1].Map("stats").String("kd"))
}

func TestLoadEmptyFeed(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))
	coll, err := l.Load(context.Background(), "results")
	require.NoError(t, err)
	assert.NotNil(t, coll)
	assert.Empty(t, coll)
}

func TestLoadMissingFeed(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))
	_, err := l.Load(context.Background(), "media")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "media", le.Feed)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformedJSON(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))
	_, err := l.Load(context.Background(), "broken")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Error(), "parsing json")
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/news.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(newsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.Client(), srv.URL+"/data")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/data/news.json", src.Location("news"))

	l := NewLoader(src, WithHTTPClient(srv.Client()))
	coll, err := l.Load(context.Background(), "news")
	require.NoError(t, err)
	assert.Len(t, coll, 2)

	_, err = l.Load(context.Background(), "media")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, http.StatusNotFound, le.StatusCode)
}

func TestLoadAllJoinsFeeds(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))
	got, err := l.LoadAll(context.Background(), "news", "schedule", "results")
	require.NoError(t, err)
	assert.Len(t, got["news"], 2)
	assert.Len(t, got["schedule"], 1)
	assert.Empty(t, got["results"])
}

func TestLoadAllFailsTogether(t *testing.T) {
	var served atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served.Add(1)
		if strings.HasSuffix(r.URL.Path, "/media.json") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.Client(), srv.URL)
	require.NoError(t, err)
	l := NewLoader(src, WithHTTPClient(srv.Client()))

	got, err := l.LoadAll(context.Background(), "schedule", "results", "media")
	require.Error(t, err)
	assert.Nil(t, got)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "media", le.Feed)
	assert.Equal(t, http.StatusInternalServerError, le.StatusCode)
}

func TestLoadCancelledContext(t *testing.T) {
	l := NewLoader(NewFSSource(fixtures()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.Load(ctx, "news")
	assert.ErrorIs(t, err, context.Canceled)
}

const rssDoc = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Kraken</title>
<item>
  <title>Spring Split Recap!</title>
  <link>https://kraken.example/news/recap</link>
  <description>&lt;p&gt;A   long &lt;b&gt;season&lt;/b&gt;&lt;/p&gt;</description>
  <category>League</category>
  <pubDate>Mon, 03 Mar 2025 10:00:00 +0000</pubDate>
</item>
</channel></rss>`

func TestSyndicationOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssDoc))
	}))
	defer srv.Close()

	l := NewLoader(NewFSSource(fixtures()),
		WithHTTPClient(srv.Client()),
		WithOverrides([]config.Feed{{Name: "news", Type: "rss", URL: srv.URL + "/rss.xml"}}),
	)
	coll, err := l.Load(context.Background(), "news")
	require.NoError(t, err)
	require.Len(t, coll, 1)

	rec := coll[0]
	assert.Equal(t, "Spring Split Recap!", rec.String("title"))
	assert.Equal(t, "spring-split-recap", rec.String("slug"))
	assert.Equal(t, "A long season", rec.String("excerpt"))
	assert.Equal(t, "League", rec.String("category"))
	ts, ok := rec.Time("date")
	require.True(t, ok)
	assert.True(t, ts.Equal(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)))
}

func TestLookup(t *testing.T) {
	coll := Collection{
		{"handle": "Nyx", "name": "Nina"},
		{"handle": "Blitz", "name": "Ben"},
	}

	rec, err := Lookup("players", coll, "handle", "nyx", true)
	require.NoError(t, err)
	assert.Equal(t, "Nina", rec.String("name"))

	_, err = Lookup("players", coll, "handle", "nyx", false)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nyx", nf.Value)

	_, err = Lookup("players", coll, "handle", "  ", true)
	require.ErrorAs(t, err, &nf)
}

func TestWhere(t *testing.T) {
	coll := Collection{
		{"name": "A", "type": "board"},
		{"name": "B", "type": "stakeholder"},
		{"name": "C", "type": "board"},
	}
	got := Where(coll, "type", "board")
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[1].String("name"))
}
