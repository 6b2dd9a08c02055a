package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-textgame/internal/asset"
	"github.com/vovakirdan/tui-textgame/internal/blink"
	"github.com/vovakirdan/tui-textgame/internal/core"
	"github.com/vovakirdan/tui-textgame/internal/game"
	"github.com/vovakirdan/tui-textgame/internal/marquee"
	"github.com/vovakirdan/tui-textgame/internal/storage"
	"github.com/vovakirdan/tui-textgame/internal/story"
)

// Options configures a game Model.
type Options struct {
	Levels story.Catalog
	Assets *asset.Store
	Store  *storage.Store // Optional run journal
	Config core.RuntimeConfig
	Player string // Recorded with finished runs; empty for local play
}

// mount is one instance of the game screen: a fresh session plus the
// animations running on it. Unmounting stops both tickers.
type mount struct {
	ctrl     *game.Controller
	marquee  *marquee.Marquee
	level    int // Level index the marquee was mounted for
	cursor   *blink.Cursor
	blinker  *Ticker
	frames   *Ticker
	focus    int
	recorded bool
}

func newMount(levels story.Catalog, cfg core.RuntimeConfig) *mount {
	ctrl := game.NewController(levels)
	g := &mount{
		ctrl:    ctrl,
		cursor:  blink.New(cfg.BlinkTransition),
		blinker: NewTicker(cfg.BlinkPeriod),
		frames:  NewTicker(cfg.FrameInterval()),
	}
	g.cursor.Set(ctrl.Session().CursorVisible)
	g.mountMarquee(cfg)
	return g
}

// mountMarquee creates the description marquee for the current level.
func (g *mount) mountMarquee(cfg core.RuntimeConfig) {
	s := g.ctrl.Session()
	g.level = s.LevelIndex
	lvl, ok := g.ctrl.Levels().Level(s.LevelIndex)
	if !ok {
		g.marquee = nil
		return
	}
	g.marquee = marquee.New(lvl.Description, marquee.FontFootnote, cfg.MarqueeDuration)
}

func (g *mount) start() tea.Cmd {
	return tea.Batch(g.blinker.Start(), g.frames.Start())
}

func (g *mount) stop() {
	g.blinker.Stop()
	g.frames.Stop()
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	levels story.Catalog
	assets *asset.Store
	store  *storage.Store
	config core.RuntimeConfig
	player string

	screen *core.Screen
	layout Layout
	keys   KeyMap
	help   help.Model

	game     *mount
	quitting bool
}

// NewModel creates a new Bubble Tea model with a freshly mounted screen.
func NewModel(opts Options) Model {
	if opts.Assets == nil {
		opts.Assets = asset.MustLoad()
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator

	m := Model{
		levels: opts.Levels,
		assets: opts.Assets,
		store:  opts.Store,
		config: opts.Config,
		player: opts.Player,
		screen: core.NewScreen(opts.Config.ScreenW, playHeight(opts.Config.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   h,
		game:   newMount(opts.Levels, opts.Config),
	}
	m.help.Width = opts.Config.ScreenW
	m.relayout()
	return m
}

// playHeight is the screen height left after the help line.
func playHeight(screenH int) int {
	return core.Max(screenH-1, 0)
}

// Init starts the mounted screen's tickers.
func (m Model) Init() tea.Cmd {
	return m.game.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction applies one input action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.game.stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionOption1:
		m.choose(story.ChoiceFirst)
	case core.ActionOption2:
		m.choose(story.ChoiceSecond)
	case core.ActionFocusLeft:
		m.game.focus = 0
	case core.ActionFocusRight:
		m.game.focus = 1
	case core.ActionConfirm:
		m.choose(story.Choice(m.game.focus))

	case core.ActionRestart:
		if !m.game.ctrl.Finished() {
			return m, nil
		}
		m.game.stop()
		m.game = newMount(m.levels, m.config)
		m.keys.SetFinished(false)
		m.relayout()
		return m, m.game.start()

	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse treats a left click on an option panel as a tap on it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.ctrl.Finished() {
		return m, nil
	}
	if idx, ok := m.layout.OptionAt(msg.X, msg.Y); ok {
		m.game.focus = idx
		m.choose(story.Choice(idx))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// handleTick routes a tick to whichever ticker of the current mount owns
// it. Ticks from a stopped or replaced mount are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if ok, next := m.game.blinker.Handle(msg); ok {
		m.game.cursor.Set(m.game.ctrl.Blink())
		return m, next
	}
	if ok, next := m.game.frames.Handle(msg); ok {
		dt := m.game.frames.Interval()
		if m.game.marquee != nil {
			m.game.marquee.Advance(dt)
		}
		m.game.cursor.Advance(dt)
		return m, next
	}
	return m, nil
}

// choose taps an option and remounts the marquee for the next level.
func (m *Model) choose(c story.Choice) {
	if !m.game.ctrl.Choose(c) {
		return
	}
	m.game.focus = 0
	m.game.mountMarquee(m.config)
	m.relayout()

	if m.game.ctrl.Finished() {
		m.keys.SetFinished(true)
		m.recordRun()
	}
}

// relayout recomputes the layout and runs a layout pass on the marquee.
// Only the first pass of a marquee measures and starts it.
func (m *Model) relayout() {
	m.layout = ComputeLayout(m.screen.Width(), m.screen.Height(), m.config.PanelW, m.config.PanelH)
	if m.game.marquee != nil && !m.layout.TooSmall {
		m.game.marquee.Layout(m.layout.Marquee.W)
	}
}

// recordRun journals the finished session once.
func (m *Model) recordRun() {
	if m.store == nil || m.game.recorded {
		return
	}
	s := m.game.ctrl.Session()
	//nolint:errcheck // Best-effort save, the ending screen shows regardless
	m.store.SaveRun(storage.Run{
		SessionID: s.ID,
		Player:    m.player,
		Score:     s.Score,
		Ending:    string(s.Ending(m.levels.Len())),
		Choices:   JoinChoices(s.Choices),
	})
	m.game.recorded = true
}

// JoinChoices formats choices as comma-separated option labels.
func JoinChoices(choices []story.Choice) string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.String()
	}
	return strings.Join(labels, ",")
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".textgame", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("textgame_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the current state into the screen buffer.
func (m Model) draw() {
	drawView(m.screen, frame{
		layout:  m.layout,
		view:    m.game.ctrl.View(),
		marquee: m.game.marquee,
		cursor:  m.game.cursor,
		assets:  m.assets,
		focus:   m.game.focus,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns a snapshot of the mounted session.
func (m Model) Session() game.Session {
	return m.game.ctrl.Session()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for one local play session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
