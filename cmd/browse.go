package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports"
	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/config"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"ui"},
	Short:   "Browse topics interactively",
	Long: `Launch a full-screen browser for the topic catalog.

The browser provides:
- Category tabs (all, structural, exterior, interior)
- Live search suggestions while typing
- A detail view with collapsible sections and the full guide

Keyboard Shortcuts:
  Navigation:
    ↑/k  ↓/j    Move up / down
    ←/h  →/l    Previous / next category (also tab, shift+tab, 1-4)
    g / G       Jump to top / bottom

  Actions:
    Enter / o   Open topic detail
    /           Search (Enter runs the search, ↑/↓ pick a suggestion)

  Detail view:
    ↑/↓         Move between sections
    Enter/space Expand or collapse section
    m           Toggle full guide
    y           Copy guide link
    Esc / x     Close (or click outside the panel)

  General:
    ?           Show help
    q           Quit
    Ctrl+C      Force quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(getContext())
	defer cancel()

	renderer, err := newDetailRenderer(0)
	if err != nil {
		return err
	}

	m := newBrowseModel(ctx, browseDeps{
		catalog:   topicCatalog,
		list:      listService,
		search:    searchService,
		details:   detailService,
		renderer:  renderer,
		clipboard: systemClipboard,
	}, appConfig)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	watchDone := make(chan struct{})
	if appConfig.WatchConfig {
		w := config.NewWatcher(configPath, func(cfg *config.Config) {
			p.Send(configReloadedMsg{cfg: cfg})
		})
		w.OnError = func(err error) {
			logger.Warn("config reload failed", zap.Error(err))
		}
		go func() {
			defer close(watchDone)
			if err := w.Run(ctx); err != nil {
				logger.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	} else {
		close(watchDone)
	}

	_, runErr := p.Run()
	cancel()
	<-watchDone

	if runErr != nil {
		return fmt.Errorf("error running browser: %w", runErr)
	}
	return nil
}

// Browser view modes
type viewMode int

const (
	modeList viewMode = iota
	modeSearch
	modeDetail
	modeHelp
)

// browseDeps are the services the browser talks to
type browseDeps struct {
	catalog   ports.Catalog
	list      *services.ListService
	search    *services.SearchService
	details   *services.DetailService
	renderer  ports.DetailRenderer
	clipboard ports.Clipboard
}

// Detail panel state
type detailPanel struct {
	accordion    ui.Accordion
	viewport     viewport.Model
	rendered     string
	showMarkdown bool
}

// Browser model
type browseModel struct {
	ctx     context.Context
	deps    browseDeps
	session *services.Session

	filters   []string       // Tab order, "all" first
	topics    []domain.Topic // Topics of the active filter
	cursor    int
	offset    int
	mode      viewMode
	prevMode  viewMode // Mode to restore when help closes
	width     int
	height    int
	ready     bool
	help      help.Model
	keys      keyMap
	siteBase  string
	detail    detailPanel
	notifyFor time.Duration
	debounce  time.Duration

	// Search
	searchInput    textinput.Model
	suggestions    []domain.Topic
	suggestVisible bool
	suggestCursor  int // -1 when no suggestion is selected

	// Status
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Open     key.Binding
	Search   key.Binding
	Toggle   key.Binding
	Markdown key.Binding
	CopyLink key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Open, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.NextTab, k.PrevTab, k.Open, k.Search},
		{k.Toggle, k.Markdown, k.CopyLink, k.Close},
		{k.Help, k.Quit},
	}
}

var browseKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/tab", "next category"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←", "previous category"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
	Markdown: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "full guide"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "x"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func newBrowseModel(ctx context.Context, deps browseDeps, cfg *config.Config) browseModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = "Search topics..."
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	m := browseModel{
		ctx:           ctx,
		deps:          deps,
		session:       services.NewSession(deps.details, cfg.DefaultFilter),
		filters:       domain.Filters(),
		mode:          modeList,
		help:          help.New(),
		keys:          browseKeys,
		searchInput:   ti,
		suggestCursor: -1,
		detail: detailPanel{
			viewport: vp,
		},
	}
	m.applyConfig(cfg)
	m.reloadTopics()

	return m
}

// applyConfig takes over the settings that may change while running
func (m *browseModel) applyConfig(cfg *config.Config) {
	m.notifyFor = time.Duration(cfg.NotificationSeconds) * time.Second
	m.debounce = time.Duration(cfg.SuggestDebounceMS) * time.Millisecond
	m.siteBase = cfg.SiteBaseURL
	ui.SetTheme(cfg.ColorTheme)
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		m.detail.viewport.Width = m.modalWidth() - 4
		vpHeight := msg.Height - 14
		if vpHeight < 5 {
			vpHeight = 5
		}
		m.detail.viewport.Height = vpHeight
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeHelp:
			return m.updateHelp(msg)
		case modeList:
			return m.updateList(msg)
		}

	case tea.MouseMsg:
		if m.mode == modeDetail &&
			msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft &&
			!m.insideModal(msg.X, msg.Y) {
			m.closeDetail()
		}
		return m, nil

	case suggestRequestMsg:
		// A newer keystroke arrived while waiting
		if !m.session.IsLatestSuggest(msg.seq) {
			return m, nil
		}
		return m, m.suggestCmd(msg.seq, msg.query)

	case suggestMsg:
		m.applySuggestions(msg)
		return m, nil

	case detailRenderedMsg:
		current := m.session.Current()
		if current != nil && current.Name == msg.name {
			m.detail.rendered = msg.content
			m.detail.viewport.SetContent(msg.content)
			m.detail.viewport.GotoTop()
		}
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		m.deps.search = services.NewSearchService(m.deps.catalog, services.SearchOptions{
			SuggestMinChars: msg.cfg.SuggestMinChars,
			SuggestLimit:    msg.cfg.SuggestLimit,
		})
		return m, m.notify("Configuration reloaded", ui.StyleSuccess)

	case statusMsg:
		return m, m.notify(msg.message, msg.style)

	case clearMessageMsg:
		if !time.Now().Before(m.messageExpiry) {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.topics)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.topics) > 0 {
			m.cursor = len(m.topics) - 1
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.NextTab):
		m.shiftFilter(1)

	case key.Matches(msg, m.keys.PrevTab):
		m.shiftFilter(-1)

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		idx := int(msg.Runes[0] - '1')
		if idx < len(m.filters) {
			m.setFilter(m.filters[idx])
		}

	case key.Matches(msg, m.keys.Open):
		if len(m.topics) > 0 {
			return m, m.openDetail(m.topics[m.cursor].Name)
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.prevMode = modeList
		m.mode = modeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyEsc:
		if m.suggestVisible {
			m.dropSuggestions()
			return m, nil
		}
		m.mode = modeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.dropSuggestions()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.suggestVisible && m.suggestCursor >= 0 && m.suggestCursor < len(m.suggestions) {
			name := m.suggestions[m.suggestCursor].Name
			return m, m.openDetail(name)
		}
		return m, m.performSearch()

	// Only arrow keys navigate in search mode, letters go to the input
	case msg.Type == tea.KeyUp:
		if m.suggestVisible && m.suggestCursor >= 0 {
			m.suggestCursor--
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.suggestVisible && m.suggestCursor < len(m.suggestions)-1 {
			m.suggestCursor++
		}
		return m, nil

	default:
		oldQuery := m.searchInput.Value()
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() == oldQuery {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.requestSuggestions())
	}
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Markdown):
		m.detail.showMarkdown = !m.detail.showMarkdown
		return m, nil

	case key.Matches(msg, m.keys.CopyLink):
		if d := m.session.Current(); d != nil {
			return m, m.copyLink(d.Link)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.prevMode = modeDetail
		m.mode = modeHelp
		return m, nil
	}

	if m.detail.showMarkdown {
		var cmd tea.Cmd
		m.detail.viewport, cmd = m.detail.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.detail.accordion.Up()
	case key.Matches(msg, m.keys.Down):
		m.detail.accordion.Down()
	case key.Matches(msg, m.keys.Toggle):
		m.detail.accordion.Toggle(m.detail.accordion.Cursor)
	}
	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = m.prevMode
	}
	return m, nil
}

// Filters

func (m *browseModel) filterIndex() int {
	for i, f := range m.filters {
		if f == m.session.Filter() {
			return i
		}
	}
	return -1
}

func (m *browseModel) shiftFilter(delta int) {
	idx := m.filterIndex()
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(m.filters)) % len(m.filters)
	}
	m.setFilter(m.filters[idx])
}

func (m *browseModel) setFilter(filter string) {
	m.session.SetFilter(filter)
	m.cursor = 0
	m.offset = 0
	m.reloadTopics()
}

func (m *browseModel) reloadTopics() {
	resp, err := m.deps.list.Execute(m.ctx, services.ListRequest{Filter: m.session.Filter()})
	if err != nil {
		m.topics = nil
		m.setMessage("Failed to load topics: "+err.Error(), ui.StyleError)
		return
	}
	m.topics = resp.Topics

	if m.cursor >= len(m.topics) {
		m.cursor = len(m.topics) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

func (m *browseModel) listHeight() int {
	h := m.height - 14
	if h < 3 {
		h = 3
	}
	return h
}

func (m *browseModel) adjustViewport() {
	listHeight := m.listHeight()

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// Search

// performSearch runs the full search. The first match opens; no match
// shows the no-results notification; an empty query does nothing.
func (m *browseModel) performSearch() tea.Cmd {
	resp, err := m.deps.search.Search(m.ctx, services.SearchRequest{Query: m.searchInput.Value()})
	if err != nil {
		return m.notify("Search failed: "+err.Error(), ui.StyleError)
	}

	switch resp.Status {
	case services.SearchNoQuery:
		return nil
	case services.SearchNoResults:
		return m.notify(services.NoResultsMessage, ui.StyleError)
	}

	return m.openDetail(resp.First().Name)
}

// requestSuggestions records a keystroke and schedules its suggestions
func (m *browseModel) requestSuggestions() tea.Cmd {
	seq := m.session.NextSuggestSeq()
	query := m.searchInput.Value()

	if m.debounce <= 0 {
		return m.suggestCmd(seq, query)
	}
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return suggestRequestMsg{seq: seq, query: query}
	})
}

func (m browseModel) suggestCmd(seq uint64, query string) tea.Cmd {
	search := m.deps.search
	ctx := m.ctx
	return func() tea.Msg {
		resp, err := search.Suggest(ctx, services.SuggestRequest{Query: query, Seq: seq})
		if err != nil {
			return suggestMsg{resp: &services.SuggestResponse{Seq: seq, Query: query}}
		}
		return suggestMsg{resp: resp}
	}
}

// applySuggestions shows the result unless a newer keystroke superseded it
func (m *browseModel) applySuggestions(msg suggestMsg) {
	if msg.resp == nil || !m.session.IsLatestSuggest(msg.resp.Seq) {
		return
	}
	m.suggestions = msg.resp.Topics
	m.suggestVisible = msg.resp.Visible
	m.suggestCursor = -1
}

// dropSuggestions hides the list and discards results still in flight
func (m *browseModel) dropSuggestions() {
	m.session.NextSuggestSeq()
	m.hideSuggestions()
}

func (m *browseModel) hideSuggestions() {
	m.suggestions = nil
	m.suggestVisible = false
	m.suggestCursor = -1
}

// Detail

func (m *browseModel) openDetail(name string) tea.Cmd {
	opened, err := m.session.Open(m.ctx, name)
	if err != nil {
		return m.notify("Failed to open topic: "+err.Error(), ui.StyleError)
	}
	if !opened {
		return nil
	}

	m.dropSuggestions()

	d := m.session.Current()
	items := make([]ui.AccordionItem, 0, len(d.Sections))
	for _, s := range d.Sections {
		items = append(items, ui.AccordionItem{Title: s.Title, Body: s.Body})
	}

	m.mode = modeDetail
	m.searchInput.Blur()
	m.detail.accordion = ui.NewAccordion(items)
	m.detail.showMarkdown = false
	m.detail.rendered = ""
	m.detail.viewport.SetContent("")

	logger.Debug("detail opened", zap.String("topic", d.Name))

	return m.renderDetailCmd(*d)
}

func (m *browseModel) closeDetail() {
	m.session.Close()
	m.mode = modeList
	m.searchInput.SetValue("")
	m.dropSuggestions()
}

func (m browseModel) renderDetailCmd(d domain.Detail) tea.Cmd {
	renderer := m.deps.renderer
	if renderer == nil {
		return nil
	}
	return func() tea.Msg {
		content, err := renderer.Render(d)
		if err != nil {
			content = fmt.Sprintf("Error rendering guide: %v", err)
		}
		return detailRenderedMsg{name: d.Name, content: content}
	}
}

func (m browseModel) copyLink(link string) tea.Cmd {
	cb := m.deps.clipboard
	url := link
	if m.siteBase != "" {
		url = strings.TrimRight(m.siteBase, "/") + "/" + strings.TrimLeft(link, "/")
	}
	return func() tea.Msg {
		if cb == nil {
			return statusMsg{message: "Clipboard unavailable", style: ui.StyleWarning}
		}
		if err := cb.WriteAll(url); err != nil {
			return statusMsg{message: "Could not copy link: " + err.Error(), style: ui.StyleError}
		}
		return statusMsg{message: "Copied: " + url, style: ui.StyleSuccess}
	}
}

// Notifications

func (m *browseModel) setMessage(message string, style lipgloss.Style) {
	m.message = message
	m.messageStyle = style
	m.messageExpiry = time.Now().Add(m.notifyFor)
}

// notify shows a transient message and schedules its removal
func (m *browseModel) notify(message string, style lipgloss.Style) tea.Cmd {
	m.setMessage(message, style)
	return tea.Tick(m.notifyFor, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// Views

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	switch m.mode {
	case modeHelp:
		return m.viewHelp()
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n")
	if m.suggestVisible {
		s.WriteString(m.renderSuggestions())
	}
	s.WriteString("\n")
	s.WriteString(m.renderTopicList())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	title := titleStyle.Render(ui.IconHouse + " Home Building Guide")
	stats := statsStyle.Render(fmt.Sprintf("%d topics", len(m.topics)))

	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", spacer), stats)
}

func (m browseModel) renderTabs() string {
	active := m.session.Filter()
	tabs := make([]string, 0, len(m.filters))
	for i, f := range m.filters {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(f[:1])+f[1:])
		if f == active {
			tabs = append(tabs, ui.StyleTabActive.Render(label))
		} else {
			tabs = append(tabs, ui.StyleTab.Render(label))
		}
	}
	return " " + strings.Join(tabs, " ")
}

func (m browseModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == modeSearch {
		borderColor = ui.ColorPrimary
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)

	var prompt string
	if m.mode == modeSearch {
		prompt = ui.StylePrimary.Render(ui.IconSearch + " ")
	} else {
		prompt = ui.StyleMuted.Render(ui.IconSearch + " ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != modeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}

	return searchStyle.Render(content)
}

func (m browseModel) renderSuggestions() string {
	var s strings.Builder
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))

	for i, t := range m.suggestions {
		cursor := "   "
		if i == m.suggestCursor {
			cursor = ui.StylePrimary.Render(" ▶ ")
		}
		s.WriteString(cursor)
		s.WriteString(renderHighlight(t.Name, query))
		s.WriteString("  ")
		s.WriteString(ui.StyleMuted.Render(ui.Truncate(t.Description, 50)))
		s.WriteString("\n")
	}
	return s.String()
}

func (m browseModel) renderTopicList() string {
	var s strings.Builder

	if len(m.topics) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 4)
		s.WriteString(emptyStyle.Render("No topics in this category."))
		s.WriteString("\n")
		return s.String()
	}

	start := m.offset
	end := m.offset + m.listHeight()
	if end > len(m.topics) {
		end = len(m.topics)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderTopicItem(m.topics[i], i == m.cursor))
	}

	return s.String()
}

func (m browseModel) renderTopicItem(t domain.Topic, selected bool) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)
	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		nameStyle = ui.StylePrimary
	}

	descWidth := m.width - 32
	if descWidth < 20 {
		descWidth = 20
	}

	return fmt.Sprintf("%s%s %s  %s\n",
		cursor,
		padRight(nameStyle.Render(t.Name), 12),
		padRight(ui.FormatCategory(string(t.Category)), 12),
		ui.StyleMuted.Render(ui.Truncate(t.Description, descWidth)),
	)
}

func (m browseModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return footerStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		statusLine,
		m.help.View(m.keys),
	))
}

func (m browseModel) modalWidth() int {
	w := m.width - 8
	if w > 90 {
		w = 90
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m browseModel) renderModal() string {
	d := m.session.Current()
	if d == nil {
		return ""
	}

	width := m.modalWidth()
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(0, 1).
		Width(width)

	var s strings.Builder
	s.WriteString(ui.StyleHeader.Render(ui.IconHouse + " " + d.Name))
	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render(d.Icon))
	s.WriteString("\n\n")

	if m.detail.showMarkdown {
		if m.detail.rendered == "" {
			s.WriteString(ui.StyleSubtle.Render("Rendering guide..."))
		} else {
			s.WriteString(m.detail.viewport.View())
		}
	} else {
		s.WriteString(m.detail.accordion.View(width - 4))
	}
	s.WriteString("\n")

	s.WriteString(ui.StyleAccent.Render(domain.CallToAction + " →"))
	s.WriteString(" ")
	s.WriteString(ui.StyleMuted.Render(d.Link))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleMuted.Render("[↑↓] Move  [enter] Toggle  [m] Full guide  [y] Copy link  [esc] Close"))

	return boxStyle.Render(s.String())
}

func (m browseModel) viewDetail() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detailBlock())
}

// detailBlock is the panel with the active notification joined below it
func (m browseModel) detailBlock() string {
	box := m.renderModal()
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		box = lipgloss.JoinVertical(lipgloss.Center, box, m.messageStyle.Render(m.message))
	}
	return box
}

// insideModal reports whether a screen cell lies on the detail panel.
// The panel is the top of the centered block that viewDetail places.
func (m browseModel) insideModal(x, y int) bool {
	blockW, blockH := lipgloss.Size(m.detailBlock())
	boxW, boxH := lipgloss.Size(m.renderModal())

	left := max(m.width-blockW, 0)/2 + (blockW-boxW)/2
	top := max(m.height-blockH, 0) / 2
	return x >= left && x < left+boxW && y >= top && y < top+boxH
}

func (m browseModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	s.WriteString(titleStyle.Render("Home Building Guide - Keyboard Shortcuts"))
	s.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(h.View(m.keys)))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return"))
	s.WriteString("\n")

	return s.String()
}

func padRight(s string, width int) string {
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

// Messages

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

type suggestRequestMsg struct {
	seq   uint64
	query string
}

type suggestMsg struct {
	resp *services.SuggestResponse
}

type detailRenderedMsg struct {
	name    string
	content string
}

type configReloadedMsg struct {
	cfg *config.Config
}
