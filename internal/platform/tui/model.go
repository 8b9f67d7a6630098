package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/razor-flap/internal/audio"
	"github.com/vovakirdan/razor-flap/internal/clock"
	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
	"github.com/vovakirdan/razor-flap/internal/games/flap"
	"github.com/vovakirdan/razor-flap/internal/registry"
	"github.com/vovakirdan/razor-flap/internal/settings"
	"github.com/vovakirdan/razor-flap/internal/storage"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayScoreboard
	overlaySettings
)

// Options configures a game Model.
type Options struct {
	Config  config.FlapConfig
	Runtime core.RuntimeConfig

	// Store records runs and feeds the scoreboard. Nil disables both.
	Store *storage.Store
	// KV backs settings. Defaults to Store, then to memory.
	KV settings.KV
	// Best overrides the best score store built on KV.
	Best flap.BestScoreStore
	// Audio plays sound. Nil means silent.
	Audio *audio.Player

	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// PlayerName overrides the stored name when set.
	PlayerName string
}

// Model is the Bubble Tea model of the game screen.
type Model struct {
	session  *flap.Session
	smoother *clock.Smoother
	screen   *core.Screen
	palette  Palette
	theme    registry.Theme
	keys     *KeyMapper
	help     help.Model
	name     textinput.Model

	frame    core.InputFrame
	rs       flap.RenderState
	lastTick time.Time

	overlay    overlay
	scoreboard ScoreboardModel
	panel      SettingsPanel

	settings settings.Settings
	kv       settings.KV
	store    *storage.Store
	audio    *audio.Player
	results  *ResultWriter
	logger   *log.Logger

	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
}

// NewModel creates the game model. Close must be called when the program
// ends so queued runs reach the store.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	kv := opts.KV
	if kv == nil {
		if opts.Store != nil {
			kv = opts.Store
		} else {
			kv = settings.NewMemoryKV()
		}
	}
	st, err := settings.Load(kv)
	if err != nil {
		logger.Warn("load settings failed, using defaults", "err", err)
	}
	if opts.PlayerName != "" {
		st.PlayerName = settings.NormalizeName(opts.PlayerName)
	}

	best := opts.Best
	if best == nil {
		best = settings.NewBestStore(kv)
	}

	hooks := flap.Hooks{Best: best, Logger: logger}
	if opts.Audio != nil {
		opts.Audio.Apply(st)
		hooks.Audio = opts.Audio
	}

	var results *ResultWriter
	if opts.Store != nil {
		results = NewResultWriter(opts.Store, logger, nil)
		hooks.Results = results
	}

	session := flap.NewSession(opts.Config, hooks,
		flap.WithSeed(cfg.Seed),
		flap.WithPlayerName(st.PlayerName),
	)

	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "anonymous"
	ti.CharLimit = settings.MaxPlayerName

	m := Model{
		session:  session,
		smoother: clock.NewSmoother(opts.Config.Clock),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		palette:  NewPalette(opts.Renderer),
		keys:     NewKeyMapper(),
		help:     help.New(),
		name:     ti,
		frame:    core.NewInputFrame(),
		settings: st,
		kv:       kv,
		store:    opts.Store,
		audio:    opts.Audio,
		results:  results,
		logger:   logger,
		config:   cfg,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.theme = m.loadTheme(st.Theme)
	m.rs = session.Snapshot()
	return m
}

func (m Model) loadTheme(id string) registry.Theme {
	t, err := registry.Get(id)
	if err == nil {
		return t
	}
	m.logger.Warn("unknown theme, using default", "theme", id)
	t, err = registry.Get(settings.DefaultTheme)
	if err != nil {
		m.logger.Error("default theme missing", "err", err)
	}
	return t
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		if m.name.Focused() {
			return m.handleNameKey(msg)
		}
		switch m.overlay {
		case overlayScoreboard:
			return m.updateScoreboard(msg)
		case overlaySettings:
			return m.updateSettings(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay == overlayNone && !m.name.Focused() {
			return m.handleMouse(msg)
		}
	}

	return m, nil
}

// handleTick feeds queued input and a smoothed delta to the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var raw time.Duration
	if !m.lastTick.IsZero() {
		raw = now.Sub(m.lastTick)
	}
	m.lastTick = now
	dt := m.smoother.Next(raw)

	for range m.frame.Count(core.ActionActivate) {
		m.session.Activate()
	}
	m.frame.Clear()

	m.rs = m.session.Advance(float64(dt) / float64(time.Millisecond))
	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	// the bottom line is reserved for help and the name input
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.name.Width = max(msg.Width-len(m.name.Prompt)-2, 1)
	if m.overlay == overlayScoreboard {
		m.scoreboard.Resize(msg.Width, msg.Height)
	}
	return m
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	menu := m.session.State() == flap.StateReady || m.session.State() == flap.StateGameOver

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionActivate:
		m.frame.Set(core.ActionActivate)
	case core.ActionScoreboard:
		if menu {
			m.openScoreboard()
		}
	case core.ActionSettings:
		if menu {
			m.openSettings()
		}
	case core.ActionToggleMute:
		m.settings.Muted = !m.settings.Muted
		m.applySettings()
		m.click()
	case core.ActionCycleTheme:
		m.settings.Theme = registry.Next(m.settings.Theme)
		m.applySettings()
		m.click()
	case core.ActionEditName:
		if menu {
			cmd := m.focusName()
			return m, cmd
		}
	}
	return m, nil
}

// handleMouse maps a left press from screen cells to the playfield.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	field := m.session.Config().Playfield
	vp := flap.FitViewport(m.screen.Width(), m.screen.Height(), field.Width, field.Height)
	x, y, ok := vp.ScreenToLogical(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch m.session.Click(x, y) {
	case flap.ButtonLeaderboard:
		m.openScoreboard()
	case flap.ButtonSettings:
		m.openSettings()
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.settings.PlayerName = settings.NormalizeName(m.name.Value())
		m.session.SetPlayerName(m.settings.PlayerName)
		m.applySettings()
		m.name.Blur()
		m.logger.Debug("player name set", "name", m.settings.PlayerName)
		return m, nil
	case tea.KeyEsc:
		m.name.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *Model) focusName() tea.Cmd {
	m.name.SetValue(m.settings.PlayerName)
	m.name.CursorEnd()
	return m.name.Focus()
}

func (m *Model) openScoreboard() {
	var src RunSource
	if m.store != nil {
		src = m.store
	}
	m.scoreboard = NewScoreboardModel(src, m.width, m.height)
	m.overlay = overlayScoreboard
}

func (m *Model) openSettings() {
	m.panel = NewSettingsPanel(m.settings)
	m.overlay = overlaySettings
}

func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.overlay = overlayNone
		m.click()
	}
	return m, cmd
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	var res PanelResult
	m.panel, res = m.panel.Update(msg)
	switch res {
	case PanelChanged:
		m.settings = m.panel.Settings()
		m.applySettings()
		m.click()
	case PanelEditName:
		m.overlay = overlayNone
		cmd := m.focusName()
		return m, cmd
	case PanelClosed:
		m.overlay = overlayNone
		m.click()
	}
	return m, nil
}

// applySettings pushes the current settings to audio and the theme, then
// persists them. A failed save keeps the change for this run only.
func (m *Model) applySettings() {
	m.settings = m.settings.Normalize()
	if m.audio != nil {
		m.audio.Apply(m.settings)
	}
	if m.settings.Theme != m.theme.ID {
		m.theme = m.loadTheme(m.settings.Theme)
	}
	if err := settings.Save(m.kv, m.settings); err != nil {
		m.logger.Warn("save settings failed", "err", err)
	}
}

func (m Model) click() {
	if m.audio != nil {
		m.audio.PlayUIClickSound()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.overlay {
	case overlayScoreboard:
		return m.scoreboard.View()
	case overlaySettings:
		return m.panel.View(m.width, max(m.height-1, 1)) + "\n" + m.help.View(m.panel.Keys())
	}

	flap.Render(m.rs, m.theme, m.screen)
	return m.palette.Render(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.name.Focused() {
		return m.name.View()
	}
	return m.help.View(m.keys.Keys())
}

// Settings returns the current settings.
func (m Model) Settings() settings.Settings {
	return m.settings
}

// Session returns the game session.
func (m Model) Session() *flap.Session {
	return m.session
}

// Close flushes pending runs to the store.
func (m Model) Close() {
	if m.results != nil {
		m.results.Close()
	}
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses hit the on-screen buttons
	)

	_, err := p.Run()
	return err
}
