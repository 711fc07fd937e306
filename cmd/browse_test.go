package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/kamal-hamza/hb-cli/internal/adapters/catalog"
	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/internal/core/ports/mocks"
	"github.com/kamal-hamza/hb-cli/internal/core/services"
	"github.com/kamal-hamza/hb-cli/pkg/config"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

func newTestBrowseModel(t *testing.T, cfg *config.Config) (browseModel, *mocks.MockClipboard) {
	t.Helper()

	c := catalog.NewStaticCatalog()
	cb := mocks.NewMockClipboard()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	deps := browseDeps{
		catalog: c,
		list:    services.NewListService(c),
		search: services.NewSearchService(c, services.SearchOptions{
			SuggestMinChars: cfg.SuggestMinChars,
			SuggestLimit:    cfg.SuggestLimit,
		}),
		details:   services.NewDetailService(c),
		renderer:  mocks.NewMockRenderer(),
		clipboard: cb,
	}
	m := newBrowseModel(context.Background(), deps, cfg)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, cb
}

func update(t *testing.T, m browseModel, msg tea.Msg) browseModel {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(browseModel)
}

func updateCmd(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	return nm.(browseModel), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeQuery(t *testing.T, m browseModel, query string) browseModel {
	t.Helper()
	for _, r := range query {
		m = update(t, m, keyRunes(string(r)))
	}
	return m
}

// fetchSuggestions requests suggestions for the current input and applies the result
func fetchSuggestions(t *testing.T, m browseModel) browseModel {
	t.Helper()
	cmd := m.requestSuggestions()
	if cmd == nil {
		t.Fatal("expected a suggestion command")
	}
	return update(t, m, cmd())
}

func names(topics []domain.Topic) []string {
	var out []string
	for _, t := range topics {
		out = append(out, t.Name)
	}
	return out
}

func TestBrowseModel_Init(t *testing.T) {
	c := catalog.NewStaticCatalog()
	m := newBrowseModel(context.Background(), browseDeps{
		catalog: c,
		list:    services.NewListService(c),
		search:  services.NewSearchService(c, services.SearchOptions{}),
		details: services.NewDetailService(c),
	}, nil)

	if m.mode != modeList {
		t.Errorf("expected list mode, got %v", m.mode)
	}
	if m.session.Filter() != domain.FilterAll {
		t.Errorf("expected filter %q, got %q", domain.FilterAll, m.session.Filter())
	}
	if len(m.topics) != 12 {
		t.Errorf("expected 12 topics, got %d", len(m.topics))
	}
	if m.session.State() != domain.DetailClosed {
		t.Error("detail should start closed")
	}
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("view should wait for the window size")
	}
}

func TestBrowseModel_View(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	view := m.View()
	for _, want := range []string{"Home Building Guide", "12 topics", "Foundation", "Ceilings", "Press / to search"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q", want)
		}
	}
}

func TestBrowseModel_FilterTabs(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("l"))
	if m.session.Filter() != "structural" {
		t.Fatalf("expected structural, got %q", m.session.Filter())
	}
	if diff := cmp.Diff([]string{"Foundation", "Floors", "Walls", "Ceilings"}, names(m.topics)); diff != "" {
		t.Errorf("structural topics mismatch (-want +got):\n%s", diff)
	}

	m = update(t, m, keyRunes("3"))
	if m.session.Filter() != "exterior" {
		t.Fatalf("expected exterior, got %q", m.session.Filter())
	}
	if diff := cmp.Diff([]string{"Roof", "Windows", "Doors", "Garage"}, names(m.topics)); diff != "" {
		t.Errorf("exterior topics mismatch (-want +got):\n%s", diff)
	}

	// Wraps around in both directions
	m = update(t, m, keyRunes("1"))
	m = update(t, m, keyRunes("h"))
	if m.session.Filter() != "interior" {
		t.Errorf("expected wrap to interior, got %q", m.session.Filter())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.session.Filter() != domain.FilterAll {
		t.Errorf("expected wrap to all, got %q", m.session.Filter())
	}
	if len(m.topics) != 12 {
		t.Errorf("expected 12 topics, got %d", len(m.topics))
	}
}

func TestBrowseModel_UnknownFilter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultFilter = "garden"
	m, _ := newTestBrowseModel(t, cfg)

	if len(m.topics) != 0 {
		t.Errorf("unknown filter should show nothing, got %d topics", len(m.topics))
	}
	if !strings.Contains(m.View(), "No topics in this category.") {
		t.Error("expected empty list notice")
	}

	// Enter on an empty list does nothing
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeList {
		t.Error("enter on empty list should not leave list mode")
	}

	// Next tab starts over from the first filter
	m = update(t, m, keyRunes("l"))
	if m.session.Filter() != domain.FilterAll {
		t.Errorf("expected all, got %q", m.session.Filter())
	}
}

func TestBrowseModel_Navigation(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.cursor)
	}

	m = update(t, m, keyRunes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("expected cursor 2, got %d", m.cursor)
	}

	m = update(t, m, keyRunes("G"))
	if m.cursor != 11 {
		t.Errorf("expected cursor 11, got %d", m.cursor)
	}
	m = update(t, m, keyRunes("j"))
	if m.cursor != 11 {
		t.Errorf("cursor should stop at the last topic, got %d", m.cursor)
	}

	m = update(t, m, keyRunes("g"))
	if m.cursor != 0 || m.offset != 0 {
		t.Errorf("expected top, got cursor %d offset %d", m.cursor, m.offset)
	}
}

func TestBrowseModel_OpenAndCloseDetail(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("j"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeDetail {
		t.Fatalf("expected detail mode, got %v", m.mode)
	}
	if m.session.State() != domain.DetailOpen {
		t.Fatal("expected detail open")
	}
	if got := m.session.Current().Name; got != "Floors" {
		t.Errorf("expected Floors, got %q", got)
	}
	if cmd == nil {
		t.Fatal("expected render command")
	}

	m = update(t, m, cmd())
	if !strings.HasPrefix(m.detail.rendered, "# Floors") {
		t.Errorf("unexpected rendered guide: %q", m.detail.rendered)
	}

	view := m.View()
	for _, want := range []string{"Floors", "Overview", "Key Considerations", "Pro Tip", domain.CallToAction, "sections/floors/index.html"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Errorf("expected list mode after close, got %v", m.mode)
	}
	if m.session.State() != domain.DetailClosed || m.session.Current() != nil {
		t.Error("expected detail closed")
	}
}

func TestBrowseModel_ReopenReplacesDetail(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	kitchenCmd := m.openDetail("Kitchen")
	bathroomCmd := m.openDetail("Bathroom")

	if m.session.State() != domain.DetailOpen {
		t.Fatal("expected detail open")
	}
	if got := m.session.Current().Name; got != "Bathroom" {
		t.Fatalf("expected Bathroom, got %q", got)
	}

	// A late render of the replaced topic is ignored
	m = update(t, m, bathroomCmd())
	m = update(t, m, kitchenCmd())
	if !strings.HasPrefix(m.detail.rendered, "# Bathroom") {
		t.Errorf("stale render replaced current guide: %q", m.detail.rendered)
	}

	// One close returns to the list
	m = update(t, m, keyRunes("x"))
	if m.session.State() != domain.DetailClosed {
		t.Error("a single close should close the detail")
	}
}

func TestBrowseModel_OpenUnknownIsNoop(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	if cmd := m.openDetail("Attic"); cmd != nil {
		t.Error("unknown topic should not produce a command")
	}
	if m.mode != modeList || m.session.State() != domain.DetailClosed {
		t.Error("unknown topic should leave the view unchanged")
	}
	if m.message != "" {
		t.Errorf("unknown topic should not notify, got %q", m.message)
	}
}

func TestBrowseModel_SearchOpensFirstMatch(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	if m.mode != modeSearch {
		t.Fatalf("expected search mode, got %v", m.mode)
	}
	m = typeQuery(t, m, "EXTERIOR")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeDetail {
		t.Fatalf("expected detail mode, got %v", m.mode)
	}
	if got := m.session.Current().Name; got != "Roof" {
		t.Errorf("expected Roof, got %q", got)
	}
}

func TestBrowseModel_SearchNoResults(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "skyscraper")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeSearch {
		t.Errorf("expected to stay in search mode, got %v", m.mode)
	}
	if m.message != services.NoResultsMessage {
		t.Errorf("expected no-results message, got %q", m.message)
	}
	if cmd == nil {
		t.Error("expected a command clearing the message")
	}
	if !strings.Contains(m.View(), services.NoResultsMessage) {
		t.Error("no-results message should be visible")
	}
}

func TestBrowseModel_SearchEmptyQuery(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "   ")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("empty query should do nothing")
	}
	if m.mode != modeSearch || m.message != "" {
		t.Errorf("empty query should leave the view unchanged, mode %v message %q", m.mode, m.message)
	}
}

func TestBrowseModel_Suggestions(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "b")
	m = fetchSuggestions(t, m)
	if m.suggestVisible {
		t.Error("single character should hide suggestions")
	}

	m = typeQuery(t, m, "a")
	m = fetchSuggestions(t, m)
	if !m.suggestVisible {
		t.Fatal("expected suggestions for 'ba'")
	}
	if diff := cmp.Diff([]string{"Foundation", "Bathroom"}, names(m.suggestions)); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "Bathroom design") {
		t.Error("suggestion descriptions should be shown")
	}

	// Select the second suggestion
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.suggestCursor != 1 {
		t.Fatalf("expected suggestion cursor 1, got %d", m.suggestCursor)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeDetail || m.session.Current().Name != "Bathroom" {
		t.Error("selecting a suggestion should open its detail")
	}
	if m.suggestVisible {
		t.Error("suggestions should hide after selection")
	}
}

func TestBrowseModel_SuggestionsLimit(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "in")
	m = fetchSuggestions(t, m)

	if len(m.suggestions) != services.DefaultSuggestLimit {
		t.Errorf("expected %d suggestions, got %d", services.DefaultSuggestLimit, len(m.suggestions))
	}
}

func TestBrowseModel_StaleSuggestionsDropped(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m.searchInput.SetValue("ba")
	first := m.requestSuggestions()
	m.searchInput.SetValue("bat")
	second := m.requestSuggestions()

	m = update(t, m, second())
	m = update(t, m, first())

	if diff := cmp.Diff([]string{"Bathroom"}, names(m.suggestions)); diff != "" {
		t.Errorf("stale result replaced the latest (-want +got):\n%s", diff)
	}
}

func TestBrowseModel_DebouncedSuggestions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SuggestDebounceMS = 5
	m, _ := newTestBrowseModel(t, cfg)

	m = update(t, m, keyRunes("/"))
	m.searchInput.SetValue("ba")
	first := m.requestSuggestions()
	m.searchInput.SetValue("bath")
	second := m.requestSuggestions()

	// The superseded keystroke never reaches the catalog
	m, cmd := updateCmd(t, m, first())
	if cmd != nil {
		t.Error("superseded request should be dropped")
	}

	m, cmd = updateCmd(t, m, second())
	if cmd == nil {
		t.Fatal("latest request should compute suggestions")
	}
	m = update(t, m, cmd())
	if diff := cmp.Diff([]string{"Bathroom"}, names(m.suggestions)); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowseModel_SearchEscape(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "ba")
	m = fetchSuggestions(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.suggestVisible || m.mode != modeSearch {
		t.Error("first escape should only hide suggestions")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList {
		t.Errorf("second escape should leave search, got %v", m.mode)
	}
	if m.searchInput.Value() != "" {
		t.Errorf("search input should be cleared, got %q", m.searchInput.Value())
	}
}

func TestBrowseModel_Accordion(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)
	m.openDetail("Kitchen")

	if m.detail.accordion.Expanded != 0 {
		t.Fatalf("first section should start expanded, got %d", m.detail.accordion.Expanded)
	}

	m = update(t, m, keyRunes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.detail.accordion.Expanded != 1 {
		t.Errorf("expected section 1 expanded, got %d", m.detail.accordion.Expanded)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.detail.accordion.Expanded != -1 {
		t.Errorf("toggling the expanded section should collapse it, got %d", m.detail.accordion.Expanded)
	}
	if m.mode != modeDetail {
		t.Error("toggling should keep the detail open")
	}
}

func TestBrowseModel_MarkdownToggle(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)
	cmd := m.openDetail("Garage")

	m = update(t, m, keyRunes("m"))
	if !m.detail.showMarkdown {
		t.Fatal("expected full guide view")
	}
	if !strings.Contains(m.View(), "Rendering guide") {
		t.Error("expected placeholder until the guide is rendered")
	}

	m = update(t, m, cmd())
	if !strings.Contains(m.View(), "Garage construction") {
		t.Error("expected rendered guide in the viewport")
	}

	m = update(t, m, keyRunes("m"))
	if m.detail.showMarkdown {
		t.Error("expected accordion view")
	}
}

func TestBrowseModel_ClickOutsideCloses(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)
	m.openDetail("Roof")

	// Inside the centered panel
	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.State() != domain.DetailOpen {
		t.Fatal("click inside the panel should keep it open")
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.State() != domain.DetailClosed || m.mode != modeList {
		t.Error("click outside the panel should close it")
	}
}

func TestBrowseModel_CopyLink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SiteBaseURL = "https://example.com"
	m, cb := newTestBrowseModel(t, cfg)
	m.openDetail("Living Room")

	m, cmd := updateCmd(t, m, keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m = update(t, m, cmd())

	want := "https://example.com/sections/living-room/index.html"
	if cb.Content() != want {
		t.Errorf("clipboard = %q, want %q", cb.Content(), want)
	}
	if m.message != "Copied: "+want {
		t.Errorf("unexpected message %q", m.message)
	}
}

func TestBrowseModel_MessageExpiry(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m.notify("hello", ui.StyleInfo)
	m = update(t, m, clearMessageMsg{})
	if m.message != "hello" {
		t.Error("message should survive an early clear")
	}

	m.messageExpiry = time.Now().Add(-time.Second)
	m = update(t, m, clearMessageMsg{})
	if m.message != "" {
		t.Errorf("expired message should clear, got %q", m.message)
	}
}

func TestBrowseModel_ConfigReload(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	cfg := config.DefaultConfig()
	cfg.SuggestLimit = 1
	m = update(t, m, configReloadedMsg{cfg: cfg})
	if m.message != "Configuration reloaded" {
		t.Errorf("expected reload notification, got %q", m.message)
	}

	m = update(t, m, keyRunes("/"))
	m = typeQuery(t, m, "ba")
	m = fetchSuggestions(t, m)
	if diff := cmp.Diff([]string{"Foundation"}, names(m.suggestions)); diff != "" {
		t.Errorf("reloaded limit not applied (-want +got):\n%s", diff)
	}
}

func TestBrowseModel_Help(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("?"))
	if m.mode != modeHelp {
		t.Fatalf("expected help mode, got %v", m.mode)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help view")
	}

	m = update(t, m, keyRunes("?"))
	if m.mode != modeList {
		t.Errorf("expected to return to list, got %v", m.mode)
	}
}

func TestBrowseModel_PendingSuggestionsDroppedAfterSearch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SuggestDebounceMS = 5
	m, _ := newTestBrowseModel(t, cfg)

	m = update(t, m, keyRunes("/"))
	m.searchInput.SetValue("kit")
	pending := m.requestSuggestions()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeDetail || m.session.Current().Name != "Kitchen" {
		t.Fatal("enter should open the first match")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m, cmd := updateCmd(t, m, pending())
	if cmd != nil {
		t.Error("request from before the search should be dropped")
	}
	if m.suggestVisible || len(m.suggestions) != 0 {
		t.Errorf("closed view should show no suggestions, got %v", names(m.suggestions))
	}
}

func TestBrowseModel_InFlightSuggestionsDroppedOnClose(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m.searchInput.SetValue("ba")
	inFlight := m.requestSuggestions()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, keyRunes("x"))
	if m.mode != modeList {
		t.Fatalf("expected list mode, got %v", m.mode)
	}

	m = update(t, m, inFlight())
	if m.suggestVisible {
		t.Errorf("stale suggestions shown under an empty search box: %v", names(m.suggestions))
	}
}

func TestBrowseModel_EscapeDropsPendingSuggestions(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)

	m = update(t, m, keyRunes("/"))
	m.searchInput.SetValue("ba")
	m = fetchSuggestions(t, m)
	inFlight := m.requestSuggestions()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, inFlight())
	if m.suggestVisible {
		t.Error("suggestions hidden with escape should not come back")
	}
}

func TestBrowseModel_ClickOnPanelBorderWithNotification(t *testing.T) {
	m, _ := newTestBrowseModel(t, nil)
	m.openDetail("Roof")
	m.notify("Copied: sections/roof/index.html", ui.StyleSuccess)

	_, blockH := lipgloss.Size(m.detailBlock())
	top := (m.height - blockH) / 2

	m = update(t, m, tea.MouseMsg{X: m.width / 2, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.State() != domain.DetailOpen {
		t.Fatal("click on the panel's top border should keep it open")
	}

	m = update(t, m, tea.MouseMsg{X: m.width / 2, Y: top - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.session.State() != domain.DetailClosed {
		t.Error("click just above the panel should close it")
	}
}
