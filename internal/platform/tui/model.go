package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options configures the collaborators of a game Model.
// Every field is optional.
type Options struct {
	Store      *storage.Store // Run journal; nil disables recording
	Audio      audio.Player   // nil plays nothing
	Logger     *log.Logger    // nil discards
	HoldDelay  time.Duration  // See HeldKeys
	HoldRepeat time.Duration
	AllowBack  bool // Enables the back-to-menu key (SSH sessions)
}

// configured is implemented by games that expose the config of the current run.
type configured interface {
	Config() config.DodgeConfig
}

// statusStyle renders the help line under the playfield.
var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	audio     audio.Player
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	edges     core.InputFrame // Edge-triggered actions pressed since the last tick
	recorder  *replay.Recorder
	gameState core.GameState
	runSaved  bool   // Whether the current run has been journaled
	lastRunID string // ID of the most recently journaled run
	musicOn   bool
	quitting  bool
	back      bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.NewSilent(false)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:   opts.Store,
		audio:   opts.Audio,
		logger:  opts.Logger,
		config:  cfg,
		keys:    keys,
		help:    h,
		held:    NewHeldKeys(opts.HoldDelay, opts.HoldRepeat),
		edges:   core.NewInputFrame(),
		musicOn: opts.Audio.MusicOn(),
		now:     time.Now,
	}
	m.startRun()
	return m
}

// playfieldHeight leaves the last terminal row for the status line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// startRun resets the game and begins a new recording.
func (m *Model) startRun() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.recorder = nil

	if m.store == nil {
		return
	}
	c, ok := m.game.(configured)
	if !ok {
		return
	}
	rec, err := replay.NewRecorder(m.game.ID(), m.config, c.Config())
	if err != nil {
		m.logger.Warn("run will not be recorded", "err", err)
		return
	}
	m.recorder = rec
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)
}

// finishRun journals the current run once. Best effort; the game continues
// regardless of storage errors.
func (m *Model) finishRun() {
	if m.runSaved || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	m.runSaved = true

	id, err := m.store.SaveRun(m.recorder.Run(m.gameState.Score))
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "id", id, "score", m.gameState.Score, "ticks", m.recorder.Len())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.finishRun()
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight, core.ActionStop:
		m.held.Press(action, m.now())

	case core.ActionPause, core.ActionRestart:
		m.edges.Set(action)

	case core.ActionMusic:
		m.musicOn = m.audio.ToggleMusic()
		m.logger.Debug("music toggled", "on", m.musicOn)

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun()
			m.back = true
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is independent of the terminal, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}

	// Restart journals the old run and starts fresh with a new seed
	if m.edges.Has(core.ActionRestart) {
		m.finishRun()
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		m.held.Release()
		m.edges.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.GameOver {
		frame := m.edges.Clone()
		m.held.Apply(&frame, now)
		if m.recorder != nil {
			m.recorder.Record(frame)
		}

		result := m.game.Step(frame)
		m.gameState = result.State
		m.handleEvents(result.Events)

		if m.gameState.GameOver {
			m.finishRun()
		}
	}

	m.edges.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents maps game events to sound and logging.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventPowerUpSpawned:
			m.audio.PowerUpTone()
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
			continue
		}
		m.logger.Debug("game event", "event", e.Type, "count", e.Count, "score", m.gameState.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// statusLine shows key help, the music state and the last saved run.
func (m Model) statusLine() string {
	var parts []string
	parts = append(parts, m.help.View(m.keys))
	if m.musicOn {
		parts = append(parts, "♪")
	}
	if m.lastRunID != "" {
		parts = append(parts, "saved "+m.lastRunID[:min(8, len(m.lastRunID))])
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

// GameState returns the state after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently journaled run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a single game and blocks until the
// player quits. Returns the ID of the last journaled run.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (string, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.LastRunID(), nil
	}
	return "", nil
}
