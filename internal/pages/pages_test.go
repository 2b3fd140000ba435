package pages

import (
	"testing"
	"time"

	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/listing"
)

func TestReadingTime(t *testing.T) {
	words := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "word"
		}
		return out
	}
	tests := []struct {
		name  string
		paras []string
		want  string
	}{
		{"empty", nil, "1 min read"},
		{"short", []string{"a few words"}, "1 min read"},
		{"rounds down", words(299), "1 min read"},
		{"rounds up", words(300), "2 min read"},
		{"long", words(1000), "5 min read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.paras); got != tt.want {
				t.Errorf("ReadingTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParagraphsFallsBackToExcerpt(t *testing.T) {
	got := Paragraphs(feed.Record{"excerpt": "Short."})
	if len(got) != 1 || got[0] != "Short." {
		t.Errorf("Paragraphs() = %v", got)
	}
	got = Paragraphs(feed.Record{"excerpt": "x", "body": []any{"One.", "Two."}})
	if len(got) != 2 || got[0] != "One." {
		t.Errorf("Paragraphs() = %v", got)
	}
}

func TestNewsSpecDefaultsCategory(t *testing.T) {
	coll := feed.Collection{
		{"title": "Patch notes", "date": "2025-01-02"},
		{"title": "Roster update", "category": "Team", "date": "2025-01-03"},
	}
	spec := NewsSpec(9)

	got := listing.Apply(coll, spec, listing.FilterState{}.With("category", "News"))
	if len(got) != 1 || got[0].String("title") != "Patch notes" {
		t.Errorf("category News = %v", got)
	}

	got = listing.Apply(coll, spec, listing.FilterState{Search: "  NEWS "})
	if len(got) != 1 {
		t.Errorf("search on default category matched %d records", len(got))
	}

	got = listing.Apply(coll, spec, listing.FilterState{})
	if got[0].String("title") != "Roster update" {
		t.Errorf("expected newest first, got %q", got[0].String("title"))
	}
}

func TestMediaSpecDims(t *testing.T) {
	coll := feed.Collection{
		{"title": "Clutch", "platform": "YouTube", "game": "Valorant"},
		{"title": "Stream", "platform": "Twitch", "game": "Valorant"},
		{"title": "Ace", "platform": "YouTube", "game": "CS2"},
	}
	state := listing.FilterState{}.With("platform", "YouTube").With("game", "Valorant")
	got := listing.Apply(coll, MediaSpec(12), state)
	if len(got) != 1 || got[0].String("title") != "Clutch" {
		t.Errorf("Apply() = %v", got)
	}
	if opts := listing.Options(coll, MediaSpec(12), "platform"); len(opts) != 2 || opts[0] != "Twitch" {
		t.Errorf("Options() = %v", opts)
	}
}

func TestMatchesPartition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	schedule := feed.Collection{
		{"title": "Later", "datetime": "2025-06-10T18:00:00"},
		{"title": "Past", "datetime": "2025-05-10T18:00:00"},
		{"title": "Soon", "datetime": "2025-06-02T18:00:00"},
	}
	results := feed.Collection{
		{"title": "Old", "datetime": "2025-04-01T18:00:00"},
		{"title": "Recent", "datetime": "2025-05-20T18:00:00"},
	}
	s := Matches(schedule, results, now)
	if s.Next.String("title") != "Soon" {
		t.Errorf("Next = %v", s.Next)
	}
	if len(s.Upcoming) != 2 {
		t.Errorf("Upcoming = %d records", len(s.Upcoming))
	}
	if s.Results[0].String("title") != "Recent" {
		t.Errorf("Results[0] = %v", s.Results[0])
	}

	empty := Matches(feed.Collection{{"datetime": "2020-01-01"}}, nil, now)
	if empty.Next != nil {
		t.Error("expected no next match")
	}
}

func TestLines(t *testing.T) {
	result := feed.Record{
		"result": "Loss",
		"maps": []any{
			map[string]any{"name": "Ascent", "score": "13-9"},
			map[string]any{"name": "Bind", "score": "11-13"},
		},
	}
	if got, want := MapsLine(result), "Maps: Ascent (13-9) • Bind (11-13)"; got != want {
		t.Errorf("MapsLine() = %q, want %q", got, want)
	}
	if Won(result) {
		t.Error("Loss reported as win")
	}
	if got := MapsLine(feed.Record{}); got != "" {
		t.Errorf("MapsLine() without maps = %q", got)
	}
	if got, want := MediaMeta(feed.Record{"duration": "12:01"}), "12:01"; got != want {
		t.Errorf("MediaMeta() = %q, want %q", got, want)
	}
	if got, want := StaffLine(feed.Record{"title": "Coach", "name": "Ola"}), "Coach: Ola"; got != want {
		t.Errorf("StaffLine() = %q, want %q", got, want)
	}
	if got, want := PlayerMeta(feed.Record{"role": "Duelist"}), "Esports • Duelist"; got != want {
		t.Errorf("PlayerMeta() = %q, want %q", got, want)
	}
}

func TestStatsAndSocials(t *testing.T) {
	p := feed.Record{
		"stats":   map[string]any{"kd": 1.21, "acs": "245"},
		"socials": map[string]any{"twitch": "https://twitch.tv/x", "twitter": ""},
	}
	stats := Stats(p)
	if len(stats) != 2 || stats[0].Label != "ACS" || stats[1].Value != "1.21" {
		t.Errorf("Stats() = %v", stats)
	}
	socials := Socials(p, "twitter", "twitch", "youtube")
	if len(socials) != 1 || socials[0].Label != "Twitch" {
		t.Errorf("Socials() = %v", socials)
	}
}

func TestLeadership(t *testing.T) {
	board, stake := Leadership(feed.Collection{
		{"name": "A", "type": "board"},
		{"name": "B", "type": "stakeholder"},
		{"name": "C", "type": "advisor"},
	})
	if len(board) != 1 || len(stake) != 1 {
		t.Errorf("board=%d stakeholders=%d", len(board), len(stake))
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(`Kraken <em>win</em> &amp; advance<script>x()</script>`)
	if got != "Kraken win & advance" {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestTabSets(t *testing.T) {
	if got := MatchTabs("#vods").ActiveKey(); got != "vods" {
		t.Errorf("MatchTabs(#vods) active = %q", got)
	}
	teams := TeamTabs(feed.Collection{{"key": "valorant"}, {"key": "cs2"}}, "")
	if got := teams.ActiveKey(); got != "valorant" {
		t.Errorf("TeamTabs active = %q", got)
	}
}
