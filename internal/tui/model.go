package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/lofi-tui/internal/preview"
	"github.com/glabrego/lofi-tui/internal/title"
	"github.com/glabrego/lofi-tui/internal/tui/actions"
	"github.com/glabrego/lofi-tui/internal/tui/state"
	tuitheme "github.com/glabrego/lofi-tui/internal/tui/theme"
	"github.com/glabrego/lofi-tui/internal/tui/view"
	"github.com/glabrego/lofi-tui/internal/youtube"
)

const (
	defaultPollInterval = 50 * time.Millisecond
	windowTitle         = "lofi girl"
)

type Options struct {
	// Loader renders thumbnails; nil disables the preview image.
	Loader       actions.PreviewLoader
	Player       actions.Player
	PollInterval time.Duration
	Logger       *slog.Logger
}

type entryText struct {
	name        string
	description string
}

type Model struct {
	browser  state.Browser
	mode     state.Mode
	text     []entryText
	pipeline *preview.Pipeline
	loader   actions.PreviewLoader
	player   actions.Player
	keys     KeyMap
	theme    tuitheme.Theme
	poll     time.Duration
	logger   *slog.Logger

	width      int
	height     int
	layout     view.Layout
	status     string
	statusWarn bool
	quitting   bool
}

func NewModel(streams []youtube.Stream, opts Options) Model {
	text := make([]entryText, len(streams))
	for i, s := range streams {
		name, desc := title.Parse(s.Title)
		text[i] = entryText{name: name, description: desc}
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		browser:  state.NewBrowser(streams),
		mode:     state.ModeBrowsing,
		text:     text,
		pipeline: preview.NewPipeline(),
		loader:   opts.Loader,
		player:   opts.Player,
		keys:     DefaultKeyMap,
		theme:    tuitheme.Default(),
		poll:     poll,
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(windowTitle), actions.TickCmd(m.poll))
}

// Update handles one event. Every event is followed by a staleness check
// that may start a thumbnail load.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}
	case actions.TickMsg:
		cmd = actions.TickCmd(m.poll)
	case actions.PreviewLoadedMsg:
		m.pipeline.Complete(msg.Request, msg.Image)
		m.logger.Debug("preview loaded", "stream", msg.Image.StreamID, "duration", msg.Duration)
	case actions.PreviewFailedMsg:
		m.pipeline.Fail(msg.Request)
		m.logger.Debug("preview failed", "stream", msg.StreamID, "error", msg.Err)
	case actions.PlayStartedMsg:
		m.status = msg.Status
		m.statusWarn = false
	case actions.PlayErrorMsg:
		m.status = "Could not start player: " + msg.Err.Error()
		m.statusWarn = true
		m.logger.Warn("player failed", "stream", msg.StreamID, "error", msg.Err)
	}
	return m, tea.Batch(cmd, m.ensurePreviewCmd())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.layout = view.ComputeLayout(width, height)
	m.pipeline.Resize(m.layout.ThumbCols, m.layout.ThumbRows)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, nil
	}
	switch m.mode {
	case state.ModeFilterEditing:
		return m.handleFilterKey(msg), nil
	case state.ModeBrowsing:
		return m.handleBrowseKey(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.browser.ClearQuery()
		m.mode = state.ModeBrowsing
	case key.Matches(msg, m.keys.Confirm):
		m.mode = state.ModeBrowsing
	case key.Matches(msg, m.keys.Delete):
		m.browser.TrimQuery()
	case msg.Type == tea.KeySpace:
		m.browser.AppendQuery(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.browser.AppendQuery(r)
		}
	}
	return m
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Back):
		if m.browser.Query() == "" {
			m.quitting = true
		} else {
			m.browser.ClearQuery()
		}
	case key.Matches(msg, m.keys.Filter):
		m.mode = state.ModeFilterEditing
	case key.Matches(msg, m.keys.Down):
		m.browser.Next()
	case key.Matches(msg, m.keys.Up):
		m.browser.Previous()
	case key.Matches(msg, m.keys.Play):
		return m.playCurrent()
	}
	return m, nil
}

func (m Model) playCurrent() (Model, tea.Cmd) {
	index, ok := m.browser.CurrentCatalogIndex()
	if !ok || m.player == nil {
		return m, nil
	}
	stream := m.browser.Stream(index)
	m.status = "Starting " + m.text[index].name + "..."
	m.statusWarn = false
	return m, actions.PlayCmd(m.player, stream.ID, m.text[index].name)
}

// ensurePreviewCmd starts a thumbnail load when the cached preview does not
// match the selection and no load is outstanding.
func (m *Model) ensurePreviewCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	index, ok := m.browser.CurrentCatalogIndex()
	if !ok || !m.pipeline.NeedsRefresh(index, ok) {
		return nil
	}
	req, started := m.pipeline.Begin(index)
	if !started {
		return nil
	}
	return actions.LoadPreviewCmd(m.loader, req, m.browser.Stream(index).ID)
}

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := m.layout

	visible := m.browser.Visible()
	names := make([]string, len(visible))
	for i, idx := range visible {
		names[i] = m.text[idx].name
	}
	selected, hasSelection := m.browser.Selected()
	list := view.RenderList(view.ListPane{
		Names:        names,
		Selected:     selected,
		HasSelection: hasSelection,
		Query:        m.browser.Query(),
		Width:        l.ListWidth,
		Height:       l.BodyHeight,
	}, m.theme)

	pane := view.PreviewPane{
		Disabled: m.loader == nil,
		Width:    l.PreviewWidth,
		Height:   l.BodyHeight,
	}
	if index, ok := m.browser.CurrentCatalogIndex(); ok {
		pane.HasStream = true
		pane.Name = m.text[index].name
		pane.Description = m.text[index].description
		if img, cached := m.pipeline.Image(); cached {
			pane.Image = img.Rendered
		}
	}
	previewPane := view.RenderPreview(pane, m.theme)

	var keys help.KeyMap = browseHelp(m.keys)
	if m.mode == state.ModeFilterEditing {
		keys = filterHelp(m.keys)
	}

	rows := []string{view.Header(m.width, m.theme)}
	rows = append(rows, joinColumns(list, previewPane, l.BodyHeight))
	rows = append(rows, view.Footer(keys, m.status, m.statusWarn, m.width, m.theme))
	screen := strings.Join(rows, "\n")

	if m.mode == state.ModeFilterEditing {
		screen = view.OverlayFilter(screen, m.browser.Query(), m.width, m.height, m.theme)
	}
	return screen
}

// joinColumns places two panes of equal height side by side.
func joinColumns(left, right string, height int) string {
	if height <= 0 {
		return ""
	}
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	out := make([]string, height)
	for i := range out {
		if i < len(leftLines) {
			out[i] = leftLines[i]
		}
		if i < len(rightLines) {
			out[i] += rightLines[i]
		}
	}
	return strings.Join(out, "\n")
}
