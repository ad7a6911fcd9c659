package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mouse-dash/internal/core"
	"github.com/vovakirdan/mouse-dash/internal/games/dash"
)

// holdDuration is how long a pressed movement key counts as held.
// Terminals deliver no key-release events, so each press sustains its
// direction for this window; key auto-repeat keeps refreshing it.
const holdDuration = 200 * time.Millisecond

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game   *dash.Game
	mapper *KeyMapper
	screen *core.Screen
	config core.RuntimeConfig

	// Per-direction expiry deadlines for the held-key emulation.
	holdUp, holdDown, holdLeft, holdRight time.Time

	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dash.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		mapper: NewKeyMapper(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input. Movement keys refresh hold
// deadlines; everything else maps to a discrete action dispatched
// synchronously against the game's state machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// While playing, arrows steer; elsewhere they are menu navigation.
	inRun := !m.game.State().InMenu && !m.game.State().GameOver
	if dir, ok := m.mapper.MapDirection(msg); ok && inRun {
		deadline := time.Now().Add(holdDuration)
		switch {
		case dir.Up:
			m.holdUp = deadline
		case dir.Down:
			m.holdDown = deadline
		case dir.Left:
			m.holdLeft = deadline
		case dir.Right:
			m.holdRight = deadline
		}
		return m, nil
	}

	if action := m.mapper.MapAction(msg); action != core.ActionNone {
		m.game.HandleAction(action)
		if m.game.QuitRequested() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// fixed world units, so resizing only changes the render surface.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the
// previous tick. The game clamps oversized steps itself.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.game.Step(dt, m.heldDirections(now))

	return m, tickCmd(m.config.TickRate)
}

// heldDirections snapshots the directions whose hold windows are open.
func (m Model) heldDirections(now time.Time) core.DirectionSet {
	return core.DirectionSet{
		Up:    now.Before(m.holdUp),
		Down:  now.Before(m.holdDown),
		Left:  now.Before(m.holdLeft),
		Right: now.Before(m.holdRight),
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".mousedash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *dash.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
