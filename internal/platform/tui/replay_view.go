package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// maxReplaySpeed caps how many recorded frames play per tick.
const maxReplaySpeed = 16

// ReplayKeyMap defines the key bindings for watching a replay.
type ReplayKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayModel plays a recorded run back on screen.
type ReplayModel struct {
	run      *storage.Run
	player   *replay.Player
	screen   *core.Screen
	keys     ReplayKeyMap
	help     help.Model
	speed    int // Recorded frames per tick
	paused   bool
	finished bool
	quitting bool
}

// NewReplayModel prepares playback of run.
func NewReplayModel(run *storage.Run, width, height int) (ReplayModel, error) {
	player, err := replay.NewPlayer(run, width, playfieldHeight(height))
	if err != nil {
		return ReplayModel{}, err
	}

	h := help.New()
	h.Width = width

	return ReplayModel{
		run:    run,
		player: player,
		screen: core.NewScreen(width, playfieldHeight(height)),
		keys:   DefaultReplayKeyMap(),
		help:   h,
		speed:  1,
	}, nil
}

// Init starts the tick loop at the run's recorded rate.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.run.TickRate)
}

// Update handles messages for playback.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.speed = min(m.speed*2, maxReplaySpeed)
		case key.Matches(msg, m.keys.Slower):
			m.speed = max(m.speed/2, 1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused && !m.finished {
			for i := 0; i < m.speed && !m.player.Done(); i++ {
				m.player.Step()
			}
			m.finished = m.player.Done()
		}
		return m, tickCmd(m.run.TickRate)
	}
	return m, nil
}

// View renders the game followed by a playback status line.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	m.player.Game().Render(m.screen)

	done, total := m.player.Progress()
	state := fmt.Sprintf("x%d", m.speed)
	switch {
	case m.finished:
		state = "END"
	case m.paused:
		state = "PAUSED"
	}
	status := fmt.Sprintf("REPLAY %s  %d/%d  %s  ", m.run.ID[:min(8, len(m.run.ID))], done, total, state)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status+m.help.View(m.keys))
}

// Finished reports whether every recorded frame has been played.
func (m ReplayModel) Finished() bool {
	return m.finished
}

// RunReplay plays run back in the terminal until the user quits.
func RunReplay(run *storage.Run, width, height int) error {
	model, err := NewReplayModel(run, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
