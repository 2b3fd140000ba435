// Package pages holds what the terminal UI and the fragment renderer agree on:
// the list pipeline of each feed, labels and display formatting.
package pages

import (
	"fmt"
	"html"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/listing"
	"github.com/uiakraken/kraken/internal/tabs"
)

var strict = bluemonday.StrictPolicy()

const (
	DefaultCategory = "News"

	NewsExhausted     = "No more articles"
	MediaExhausted    = "No more media"
	HomeNewsExhausted = "No more news"

	NoNews     = "No articles match your filters."
	NoMedia    = "No media match your filters."
	NoUpcoming = "No upcoming matches."
	NoResults  = "No recent results yet."
	NoVods     = "No VODs available yet."

	NoNextMatch     = "No upcoming matches"
	NoNextMatchHint = "Check back soon for new fixtures."

	LeadershipUnavailable = "Unable to load leadership information."
)

// Unavailable is the region placeholder shown when a feed fails to load.
func Unavailable(what string) string {
	return fmt.Sprintf("Unable to load %s at this time.", what)
}

// NewsSpec filters news by category (blank categories count as "News") and
// search over title, excerpt and category, newest first.
func NewsSpec(pageSize int) listing.Spec[feed.Record] {
	category := listing.FieldOr("category", DefaultCategory)
	return listing.Spec[feed.Record]{
		Dims: map[string]func(feed.Record) string{"category": category},
		SearchText: func(r feed.Record) []string {
			return []string{r.String("title"), r.String("excerpt"), category(r)}
		},
		Less:     listing.ByTimeDesc("date"),
		PageSize: pageSize,
	}
}

// MediaSpec filters media by platform and game and searches title, game and
// platform, newest first.
func MediaSpec(pageSize int) listing.Spec[feed.Record] {
	return listing.Spec[feed.Record]{
		Dims: map[string]func(feed.Record) string{
			"platform": listing.Field("platform"),
			"game":     listing.Field("game"),
		},
		SearchText: listing.Fields("title", "game", "platform"),
		Less:       listing.ByTimeDesc("date"),
		PageSize:   pageSize,
	}
}

// HomeNewsSpec pages the home page news list in feed order.
func HomeNewsSpec(pageSize int) listing.Spec[feed.Record] {
	return listing.Spec[feed.Record]{PageSize: pageSize}
}

// Date formats a record date as "Jan 2, 2006", or "" when it is missing.
func Date(r feed.Record, field string) string {
	t, ok := r.Time(field)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// MatchTime formats a fixture time as "Mon, Jan 2, 15:04".
func MatchTime(r feed.Record) string {
	t, ok := r.Time("datetime")
	if !ok {
		return r.String("datetime")
	}
	return t.Format("Mon, Jan 2, 15:04")
}

// Join joins the non-blank parts with a bullet.
func Join(parts ...string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " • ")
}

// Badges are the game, league and stage of a fixture.
func Badges(m feed.Record) []string {
	var out []string
	for _, k := range []string{"game", "league", "stage"} {
		if v := m.String(k); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MapsLine lists the maps of a result as "Maps: Ascent (13-9) • Bind (11-13)".
func MapsLine(m feed.Record) string {
	maps := m.Records("maps")
	if len(maps) == 0 {
		return ""
	}
	parts := make([]string, len(maps))
	for i, mp := range maps {
		parts[i] = fmt.Sprintf("%s (%s)", mp.String("name"), mp.String("score"))
	}
	return "Maps: " + strings.Join(parts, " • ")
}

// Won reports whether a result was a win; every other outcome renders as a loss.
func Won(m feed.Record) bool { return m.String("result") == "Win" }

// MediaMeta is the "type • duration" line of a media card.
func MediaMeta(r feed.Record) string {
	return Join(r.String("type"), r.String("duration"))
}

// StaffLine renders a staff member as "Coach: Name".
func StaffLine(s feed.Record) string {
	return fmt.Sprintf("%s: %s", s.String("title"), s.String("name"))
}

// Paragraphs returns the article body, falling back to the excerpt as a single
// paragraph when the body is not a list.
func Paragraphs(article feed.Record) []string {
	if _, ok := article["body"].([]any); ok {
		return article.Strings("body")
	}
	return []string{article.String("excerpt")}
}

// ReadingTime estimates reading time at 200 words per minute, never less than
// one minute.
func ReadingTime(paragraphs []string) string {
	words := len(strings.Fields(strings.Join(paragraphs, " ")))
	minutes := max(1, int(math.Round(float64(words)/200)))
	return fmt.Sprintf("%d min read", minutes)
}

// PlayerMeta is the "game • role • country" line of a player profile.
func PlayerMeta(p feed.Record) string {
	return Join(p.StringOr("game", "Esports"), p.String("role"), p.String("country"))
}

// Social is one outbound profile link.
type Social struct {
	Label string
	URL   string
}

// Socials returns the known social links of a record in display order.
func Socials(r feed.Record, keys ...string) []Social {
	labels := map[string]string{
		"twitter":  "Twitter",
		"twitch":   "Twitch",
		"youtube":  "YouTube",
		"linkedin": "LinkedIn",
		"website":  "Website",
	}
	m := r.Map("socials")
	var out []Social
	for _, k := range keys {
		if u := m.String(k); u != "" {
			out = append(out, Social{Label: labels[k], URL: u})
		}
	}
	return out
}

// Stat is one label/value pair of a player's stats block.
type Stat struct {
	Label string
	Value string
}

// Stats returns the player's stats with upper-cased labels, sorted by label so
// output is stable.
func Stats(p feed.Record) []Stat {
	m := p.Map("stats")
	out := make([]Stat, 0, len(m))
	for k := range m {
		out = append(out, Stat{Label: strings.ToUpper(k), Value: m.String(k)})
	}
	slices.SortFunc(out, func(a, b Stat) int { return strings.Compare(a.Label, b.Label) })
	return out
}

// Schedule partitions fixtures and results around now.
type Schedule struct {
	Next     feed.Record // nil when nothing is upcoming
	Upcoming feed.Collection
	Results  feed.Collection
}

func Matches(schedule, results feed.Collection, now time.Time) Schedule {
	s := Schedule{
		Upcoming: listing.Upcoming(schedule, "datetime", now),
		Results:  listing.Latest(results, "datetime"),
	}
	if len(s.Upcoming) > 0 {
		s.Next = s.Upcoming[0]
	}
	return s
}

// Leadership splits the leadership feed into board members and stakeholders.
func Leadership(coll feed.Collection) (board, stakeholders feed.Collection) {
	return feed.Where(coll, "type", "board"), feed.Where(coll, "type", "stakeholder")
}

var matchTabs = []tabs.Tab{
	{Key: "upcoming", Title: "Upcoming"},
	{Key: "results", Title: "Results"},
	{Key: "vods", Title: "VODs"},
}

// MatchTabs returns the match center tab set, starting on fragment if it
// names a tab.
func MatchTabs(fragment string) *tabs.Set {
	return tabs.New(matchTabs, fragment)
}

// TeamTabs builds one tab per team of the teams feed.
func TeamTabs(coll feed.Collection, fragment string) *tabs.Set {
	ts := make([]tabs.Tab, 0, len(coll))
	for _, t := range coll {
		ts = append(ts, tabs.Tab{Key: t.String("key"), Title: t.String("title")})
	}
	return tabs.New(ts, fragment)
}

// PlainText strips markup from a body paragraph for terminal display.
func PlainText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
