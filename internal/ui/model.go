package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shopfilter/internal/catalog"
	"github.com/five82/shopfilter/internal/controller"
	"github.com/five82/shopfilter/internal/filters"
	"github.com/five82/shopfilter/internal/location"
	"github.com/five82/shopfilter/internal/prefs"
	"github.com/five82/shopfilter/internal/state"
)

// Section is one foldable filter group.
type Section int

const (
	SectionCategories Section = iota
	SectionPrice
	SectionColor
	SectionSize
	sectionCount
)

// Key is the identifier persisted in prefs.
func (s Section) Key() string {
	switch s {
	case SectionCategories:
		return "categories"
	case SectionPrice:
		return "price"
	case SectionColor:
		return "color"
	case SectionSize:
		return "size"
	default:
		return ""
	}
}

// Title is the section heading.
func (s Section) Title() string {
	switch s {
	case SectionCategories:
		return "Product Categories"
	case SectionPrice:
		return "Filter by Price"
	case SectionColor:
		return "Filter by Color"
	case SectionSize:
		return "Filter by Size"
	default:
		return ""
	}
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *controller.Controller
	History    *location.History
	Loader     *catalog.Loader
	Store      *state.Store
	Logger     *slog.Logger
	LogPath    string
	ThemeName  string
	PrefsPath  string
	Collapsed  []string // Section keys folded at start
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx        context.Context
	controller *controller.Controller
	history    *location.History
	loader     *catalog.Loader
	logger     *slog.Logger
	logPath    string
	prefsPath  string
	keys       keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	focus     Section
	cursor    [sectionCount]int
	collapsed [sectionCount]bool

	// Category list
	categories catalog.List
	showAll    bool
	spinner    spinner.Model

	// Price control draft; committed with Select
	draftMin int
	draftMax int

	// URL bar
	urlInput   textinput.Model
	editingURL bool

	// Shared context consumer
	published   state.Snapshot
	updates     <-chan state.Snapshot
	unsubscribe func()

	// Overlays
	showHelp     bool
	showActivity bool
	activity     viewport.Model

	status    string
	statusErr bool
}

// New creates a new Bubble Tea model. It subscribes to the store, so callers
// should Close the final model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = controller.New(controller.Options{Port: opts.History, Store: opts.Store, Logger: logger})
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "url> "
	input.Placeholder = "?category=Shoes&size=M"
	input.CharLimit = 2048

	m := Model{
		ctx:        ctx,
		controller: ctrl,
		history:    opts.History,
		loader:     opts.Loader,
		logger:     logger,
		logPath:    opts.LogPath,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		categories: catalog.List{Status: catalog.StatusLoading},
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		urlInput:   input,
		activity:   viewport.New(0, 0),
	}
	for s := Section(0); s < sectionCount; s++ {
		m.collapsed[s] = prefs.Prefs{Collapsed: opts.Collapsed}.IsCollapsed(s.Key())
	}
	if opts.Store != nil {
		m.published = opts.Store.Snapshot()
		m.updates, m.unsubscribe = opts.Store.Subscribe()
	}
	m.syncFromCriteria()
	return m
}

// Close releases the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		loadCategoriesCmd(m.ctx, m.loader),
	}
	if m.updates != nil {
		cmds = append(cmds, waitForPublishCmd(m.updates))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeActivity()
		return m, nil

	case spinner.TickMsg:
		if !m.categories.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case categoriesMsg:
		m.categories = catalog.List(msg)
		m.syncCategoryCursor()
		return m, nil

	case publishedMsg:
		m.published = state.Snapshot(msg)
		return m, waitForPublishCmd(m.updates)

	case subscriptionClosedMsg:
		m.updates = nil
		return m, nil

	case activityMsg:
		m.setActivity(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// itemCount is the number of cursor positions in s.
func (m Model) itemCount(s Section) int {
	switch s {
	case SectionCategories:
		if m.categories.Loading() {
			return 0
		}
		n := len(m.categories.Visible(m.showAll))
		if m.categories.HasMore() {
			n++
		}
		return n
	case SectionPrice:
		return 1
	case SectionColor:
		return len(filters.Colors)
	case SectionSize:
		return len(filters.Sizes)
	default:
		return 0
	}
}

// syncFromCriteria points the cursors and the price draft at the controller's
// current values, e.g. after an import.
func (m *Model) syncFromCriteria() {
	c := m.controller.Criteria()
	m.draftMin = c.PriceMin
	m.draftMax = c.PriceMax
	for i, color := range filters.Colors {
		if color.Code == c.Color {
			m.cursor[SectionColor] = i
		}
	}
	for i, size := range filters.Sizes {
		if size == c.Size {
			m.cursor[SectionSize] = i
		}
	}
	m.syncCategoryCursor()
}

func (m *Model) syncCategoryCursor() {
	selected := m.controller.Criteria().Category
	for i, option := range m.categories.Visible(m.showAll) {
		if option.Name == selected {
			m.cursor[SectionCategories] = i
			return
		}
	}
	m.clampCursor(SectionCategories)
}

func (m *Model) clampCursor(s Section) {
	n := m.itemCount(s)
	switch {
	case n == 0:
		m.cursor[s] = 0
	case m.cursor[s] >= n:
		m.cursor[s] = n - 1
	case m.cursor[s] < 0:
		m.cursor[s] = 0
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name}
	for s := Section(0); s < sectionCount; s++ {
		if m.collapsed[s] {
			p.Collapsed = append(p.Collapsed, s.Key())
		}
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}
