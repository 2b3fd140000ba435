package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uiakraken/kraken/internal/config"
	"github.com/uiakraken/kraken/internal/countdown"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/listing"
	"github.com/uiakraken/kraken/internal/pages"
	"github.com/uiakraken/kraken/internal/tabs"
	"github.com/uiakraken/kraken/internal/task"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHelp
)

type page int

const (
	pageHome page = iota
	pageNews
	pageMedia
	pageMatches
	pageTeams
	pageBoard
	pageArticle
	pagePlayer
)

var pageNames = map[string]page{
	"":        pageHome,
	"home":    pageHome,
	"news":    pageNews,
	"media":   pageMedia,
	"matches": pageMatches,
	"teams":   pageTeams,
	"board":   pageBoard,
	"article": pageArticle,
	"player":  pagePlayer,
}

var pageTitles = map[page]string{
	pageNews:    "News",
	pageMedia:   "Media",
	pageMatches: "Match Center",
	pageTeams:   "Teams",
	pageBoard:   "Board & Stakeholders",
	pageArticle: "Article",
	pagePlayer:  "Player",
}

type App struct {
	cfg    *config.Config
	loader *feed.Loader
	logger *slog.Logger
	now    func() time.Time

	page  page
	back  page
	mode  mode
	focus focusPane
	// gen identifies the current page view; it changes on every navigation.
	gen int

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	filterBar   filterBar
	debouncer   *task.Debouncer

	// State
	loading       bool
	err           error // sticky status line error, cleared on the next key
	loadErr       error // the page's feed failed to load
	cursor        int
	previewScroll int
	currentDate   string
	tabKey        string

	// News and media
	list  *listing.Controller[feed.Record]
	items []feed.Record

	// Match center
	schedule pages.Schedule
	vods     feed.Collection
	tabs     *tabs.Set
	loc      *tabs.Location
	timer    *countdown.Timer
	left     countdown.State

	// Teams and board
	teams        feed.Collection
	board        feed.Collection
	stakeholders feed.Collection

	// Article and player
	detail   feed.Record
	notFound bool

	initCmd tea.Cmd
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg    *config.Config
	Loader *feed.Loader
	Logger *slog.Logger
	// Page is the page to open: home, news, media, matches, teams, board,
	// article or player.
	Page   string
	Slug   string
	Handle string
	// Tab selects the initial tab of the teams or match center page.
	Tab string
	Now func() time.Time
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		cfg:         opts.Cfg,
		loader:      opts.Loader,
		logger:      logger,
		now:         now,
		searchInput: ti,
		spinner:     sp,
		debouncer:   task.NewDebouncer(opts.Cfg.SearchDebounceDuration()),
		currentDate: now().Format("Jan 2"),
		tabKey:      opts.Tab,
	}
	a.initCmd = a.start(opts)
	return a
}

// start opens the initial page named by opts.
func (a *App) start(opts RunOpts) tea.Cmd {
	p, ok := pageNames[strings.ToLower(opts.Page)]
	if !ok {
		p = pageHome
	}
	switch p {
	case pageArticle:
		return a.openArticle(opts.Slug, pageNews)
	case pagePlayer:
		return a.openPlayer(opts.Handle, pageTeams)
	default:
		return a.open(p)
	}
}

func (a *App) Init() tea.Cmd {
	return a.initCmd
}

// leave tears down the current page view: timers stop and pending searches
// are dropped.
func (a *App) leave() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.debouncer.Cancel()
	a.searchInput.SetValue("")
	a.searchInput.Blur()
	a.mode = modeNormal
	a.focus = focusList
	a.gen++
	a.loading = false
	a.loadErr = nil
	a.cursor = 0
	a.previewScroll = 0
}

func (a *App) startLoad(cmd tea.Cmd) tea.Cmd {
	a.loading = true
	return tea.Batch(cmd, a.spinner.Tick)
}

// open mounts a top-level page and starts loading its feeds.
func (a *App) open(p page) tea.Cmd {
	a.leave()
	a.page = p
	switch p {
	case pageNews:
		a.list = listing.NewController(pages.NewsSpec(a.cfg.NewsPageSize()))
		a.items = nil
		a.filterBar = newFilterBar("category")
		return a.startLoad(a.loadFeedCmd("news"))
	case pageMedia:
		a.list = listing.NewController(pages.MediaSpec(a.cfg.MediaPageSize()))
		a.items = nil
		a.filterBar = newFilterBar("platform", "game")
		return a.startLoad(a.loadFeedCmd("media"))
	case pageMatches:
		a.tabs = pages.MatchTabs(a.tabKey)
		a.loc = pageLocation("match-center.html", a.tabs)
		return a.startLoad(a.loadMatchesCmd())
	case pageTeams:
		a.tabs = nil
		a.loc = pageLocation("teams.html", nil)
		return a.startLoad(a.loadFeedCmd("teams"))
	case pageBoard:
		return a.startLoad(a.loadFeedCmd("leadership"))
	}
	return nil
}

// openArticle shows one article. A blank slug is not found without loading anything.
func (a *App) openArticle(slug string, back page) tea.Cmd {
	a.leave()
	a.page, a.back = pageArticle, back
	a.detail, a.notFound = nil, false
	if strings.TrimSpace(slug) == "" {
		a.notFound = true
		return nil
	}
	return a.startLoad(a.loadDetailCmd("news", "slug", slug, false))
}

// openPlayer shows a player profile; handles match case-insensitively.
func (a *App) openPlayer(handle string, back page) tea.Cmd {
	a.leave()
	a.page, a.back = pagePlayer, back
	a.detail, a.notFound = nil, false
	if strings.TrimSpace(handle) == "" {
		a.notFound = true
		return nil
	}
	return a.startLoad(a.loadDetailCmd("players", "handle", handle, true))
}

// goBack leaves a detail page. The listing it came from is still mounted and
// is shown again without reloading.
func (a *App) goBack() tea.Cmd {
	switch {
	case a.back == pageNews && a.list != nil,
		a.back == pageTeams && a.teams != nil:
		a.leave()
		a.page = a.back
		if a.page == pageNews {
			// The list is still filtered; keep the term visible.
			a.searchInput.SetValue(a.list.State().Search)
		}
		return nil
	default:
		return a.open(a.back)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case feedLoadedMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			a.loadErr = msg.err
			return a, nil
		}
		a.applyFeed(msg.coll)
		return a, nil

	case matchesLoadedMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			a.loadErr = msg.err
			return a, nil
		}
		return a, a.applyMatches(msg.feeds)

	case detailLoadedMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.loading = false
		a.detail = msg.rec
		if msg.err != nil {
			a.notFound = true
			var nf *feed.NotFoundError
			if !errors.As(msg.err, &nf) {
				a.err = msg.err
			}
		}
		return a, nil

	case searchSettledMsg:
		if msg.gen != a.gen || a.list == nil {
			return a, nil
		}
		a.applyFilter()
		return a, nil

	case countdownMsg:
		if msg.timer != a.timer {
			return a, nil
		}
		a.left = msg.state
		if msg.state.Elapsed {
			a.logger.Info("countdown finished", "match", a.schedule.Next.String("title"))
			return a, nil
		}
		return a, countdownCmd(a.timer)

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) applyFeed(coll feed.Collection) {
	switch a.page {
	case pageNews, pageMedia:
		p := a.list.Reset(coll)
		a.items = p.Items
		for _, d := range a.filterBar.dims {
			a.filterBar.setOptions(d.name, a.list.Options(d.name))
		}
	case pageTeams:
		a.teams = coll
		a.tabs = pages.TeamTabs(coll, a.tabKey)
		a.loc.Sync(a.tabs)
	case pageBoard:
		a.board, a.stakeholders = pages.Leadership(coll)
	}
}

func (a *App) applyMatches(feeds map[string]feed.Collection) tea.Cmd {
	a.schedule = pages.Matches(feeds["schedule"], feeds["results"], a.now())
	a.vods = feeds["media"]
	if a.schedule.Next == nil {
		return nil
	}
	target, _ := a.schedule.Next.Time("datetime")
	a.timer = countdown.Start(target, a.cfg.CountdownIntervalDuration(), a.now)
	a.left = a.timer.State()
	if !a.timer.Running() {
		return nil
	}
	return countdownCmd(a.timer)
}

// applyFilter re-runs the pipeline with the filter bar and search box; the
// list starts over from its first page.
func (a *App) applyFilter() {
	state := a.filterBar.state(a.searchInput.Value())
	if state.Equal(a.list.State()) {
		return
	}
	p := a.list.SetFilter(state)
	a.items = p.Items
	a.cursor = 0
	a.previewScroll = 0
}

func (a *App) loadMore() {
	if a.list == nil || a.list.Exhausted() {
		return
	}
	a.items = append(a.items, a.list.LoadMore().Items...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	switch a.page {
	case pageHome:
		return a.handleHomeKey(msg)
	case pageNews, pageMedia:
		return a.handleListKey(msg)
	case pageMatches:
		return a.handleMatchesKey(msg)
	case pageTeams:
		return a.handleTeamsKey(msg)
	default:
		return a.handleReaderKey(msg)
	}
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, item := range homeMenu {
		if msg.String() == item.key {
			return a, a.open(item.page)
		}
	}
	return a, nil
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.items)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "m":
		a.loadMore()
		return a, nil
	case "o":
		if rec := a.selected(); rec != nil {
			return a, openBrowserCmd(a.cfg.Site, rec.String("url"))
		}
		return a, nil
	case "enter":
		rec := a.selected()
		if rec == nil {
			return a, nil
		}
		if a.page == pageNews && rec.String("slug") != "" {
			return a, a.openArticle(rec.String("slug"), pageNews)
		}
		return a, openBrowserCmd(a.cfg.Site, rec.String("url"))
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		return a, nil
	case "r":
		if !a.loading {
			return a, a.open(a.page)
		}
		return a, nil
	case "h", "esc":
		return a, a.open(pageHome)
	}
	return a, nil
}

func (a *App) selected() feed.Record {
	if a.cursor < len(a.items) {
		return a.items[a.cursor]
	}
	return nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.debouncer.Cancel()
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.applyFilter()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.debouncer.Cancel()
		a.searchInput.Blur()
		a.applyFilter()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-filter on actual value changes, not cursor moves etc.
	if a.searchInput.Value() == before {
		return a, cmd
	}
	return a, tea.Batch(cmd, debounceCmd(a.debouncer.Trigger(), a.gen))
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		a.filterBar.move(-1)
		return a, nil
	case "right", "l":
		a.filterBar.move(1)
		return a, nil
	case " ", "enter":
		a.filterBar.cycleCurrent()
		a.applyFilter()
		return a, nil
	}
	return a, nil
}

func (a *App) handleMatchesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if a.tabs.Move(key) {
		a.tabChanged()
		return a, nil
	}
	switch key {
	case "1", "2", "3":
		i := int(key[0] - '1')
		if i < a.tabs.Len() && a.tabs.Select(a.tabs.Tabs()[i].Key) {
			a.tabChanged()
		}
		return a, nil
	case "j", "down":
		entries, _ := a.matchEntries()
		if a.cursor < len(entries)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "o", "enter":
		entries, _ := a.matchEntries()
		if a.cursor < len(entries) {
			return a, openBrowserCmd(a.cfg.Site, entries[a.cursor].link)
		}
		return a, nil
	case "r":
		if !a.loading {
			return a, a.open(pageMatches)
		}
		return a, nil
	case "esc", "backspace":
		return a, a.open(pageHome)
	}
	return a, nil
}

// tabChanged keeps the location fragment on the active tab, so a reload or
// a return from a player profile reopens the same tab.
func (a *App) tabChanged() {
	a.cursor = 0
	a.tabKey = a.tabs.ActiveKey()
	a.loc.Sync(a.tabs)
}

func pageLocation(path string, set *tabs.Set) *tabs.Location {
	loc, _ := tabs.ParseLocation(path)
	if set != nil {
		loc.Sync(set)
	}
	return loc
}

func (a *App) handleTeamsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if a.tabs != nil && a.tabs.Move(key) {
		a.tabChanged()
		return a, nil
	}
	switch key {
	case "j", "down":
		if a.cursor < len(a.rosterEntries())-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "enter":
		roster := a.rosterEntries()
		if a.cursor < len(roster) {
			return a, a.openPlayer(roster[a.cursor].link, pageTeams)
		}
		return a, nil
	case "r":
		if !a.loading {
			return a, a.open(pageTeams)
		}
		return a, nil
	case "esc", "backspace":
		return a, a.open(pageHome)
	}
	return a, nil
}

// handleReaderKey drives the board and detail pages, which only scroll.
func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		a.previewScroll++
		return a, nil
	case "k", "up":
		if a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "o":
		if a.page == pageArticle && a.detail != nil {
			return a, openBrowserCmd(a.cfg.Site, a.detail.String("url"))
		}
		return a, nil
	case "esc", "backspace":
		if a.page == pageBoard {
			return a, a.open(pageHome)
		}
		return a, a.goBack()
	}
	return a, nil
}

func (a *App) withBottomBar(content string, left, hints string) string {
	bar := renderStatusBar(left, hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  kraken")
	}

	if a.mode == modeHelp {
		return a.withBottomBar(a.renderHelp(), "", "? close  q quit")
	}

	if a.page == pageHome {
		return a.withBottomBar(renderHomeScreen(a.width, a.height), "", "1-5 open  ? help  q quit")
	}

	// Header
	headerLeft := headerStyle.Render("kraken · " + pageTitles[a.page])
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	bodyHeight := a.height - 3
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body, left, hints string
	switch a.page {
	case pageNews, pageMedia:
		return a.renderListPage(header)
	case pageMatches:
		body = a.renderMatches(a.width, bodyHeight)
		left = " " + a.loc.String()
		hints = "←/→ tabs  j/k move  o open  r reload  esc home"
	case pageTeams:
		body = a.renderTeams(a.width, bodyHeight)
		left = " " + a.loc.String()
		hints = "←/→ tabs  j/k move  enter profile  esc home"
	case pageBoard:
		body = a.renderBoard(a.width, bodyHeight)
		left = fmt.Sprintf(" %d board · %d stakeholders", len(a.board), len(a.stakeholders))
		hints = "j/k scroll  esc home"
	case pageArticle:
		body = a.renderArticle(a.width, bodyHeight)
		hints = "j/k scroll  o open  esc back"
	case pagePlayer:
		body = a.renderPlayer(a.width, bodyHeight)
		hints = "j/k scroll  esc back"
	}
	if a.loading {
		left = " " + a.spinner.View() + " loading..."
	}
	if a.err != nil {
		left = " " + errorStyle.Render(a.err.Error())
	}
	return a.withBottomBar(lipgloss.JoinVertical(lipgloss.Left, header, "", body), left, hints)
}

func (a *App) renderListPage(header string) string {
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.35)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	filter := a.filterBar.render(a.width)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}

	what, noun, empty, exhausted := "news", "articles", pages.NoNews, pages.NewsExhausted
	toItem := newsItem
	if a.page == pageMedia {
		what, noun, empty, exhausted = "media", "media", pages.NoMedia, pages.MediaExhausted
		toItem = mediaItem
	}

	var footer string
	switch {
	case a.loadErr != nil:
		empty = pages.Unavailable(what)
	case a.loading:
		empty = a.spinner.View() + " Loading " + noun + "..."
	default:
		footer = listing.LoadMoreLabel(a.list.Exhausted(), exhausted)
		if !a.list.Exhausted() {
			footer = "m  " + footer
		}
	}

	items := make([]listItem, len(a.items))
	for i, r := range a.items {
		items[i] = toItem(r)
	}

	innerListW := listWidth - 4 // border + padding
	listContent := renderList(items, a.cursor, contentHeight, innerListW, empty, footer)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), a.page, innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	var left string
	switch {
	case a.err != nil:
		left = " " + errorStyle.Render(a.err.Error())
	case a.loading:
		left = " " + a.spinner.View() + " loading..."
	case a.loadErr == nil:
		left = listStatus(len(a.items), a.list.Total(), noun, a.filterBar.activeLabel(), "")
	}

	hints := "/ search  f filter  m more  o open  ? help  q quit"
	switch a.mode {
	case modeSearch:
		hints = "enter apply  esc clear"
	case modeFilter:
		hints = "←/→ move  space cycle  esc done"
	}

	return a.withBottomBar(lipgloss.JoinVertical(lipgloss.Left, header, filter, content), left, hints)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("kraken")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through lists\n" +
		"  tab           Switch focus between list and preview\n" +
		"  ←/→           Switch tabs on match center and teams\n" +
		"  esc           Back\n\n" +
		dim.Render("Actions") + "\n" +
		"  enter         Read article or open player profile\n" +
		"  o             Open link in browser\n" +
		"  m             Load more\n" +
		"  r             Reload feeds\n" +
		"  /             Search\n" +
		"  f             Filter mode\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between filters\n" +
		"  space/enter   Cycle value\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	app.leave()
	return err
}
