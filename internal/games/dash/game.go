// Package dash implements Mouse Dash: steer the mouse to collect cheese,
// dodge bouncing cats, and beat the clock. The package is pure simulation;
// all terminal concerns live in the platform layer.
package dash

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mouse-dash/internal/assets"
	"github.com/vovakirdan/mouse-dash/internal/config"
	"github.com/vovakirdan/mouse-dash/internal/core"
)

// maxStepDt caps a single simulation step so a stalled terminal does not
// tunnel entities through each other when ticks resume.
const maxStepDt = 0.05

// Screen is the top-level game state machine node.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreStore is the persistence port the game needs. The sqlite store
// satisfies it; tests use in-memory fakes.
type ScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveScore(gameID string, score int) (int64, error)
}

// configPath is set by the CLI before games are created.
var configPath string

// SetConfigPath overrides the config search path for all subsequent Reset
// calls. An empty string restores the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// Game holds the full state of one Mouse Dash session, menu included.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	screen        Screen
	difficultyIdx int
	quitRequested bool

	player  *Player
	items   []*Item
	hazards []*Hazard

	score      int
	lives      int
	timeLeft   float64
	combo      int
	comboTimer float64

	particles  []Particle
	floaters   []FloatingText
	shakeTimer float64
	timeAccum  float64

	highScore    int
	newHighScore bool

	scores ScoreStore
	assets *assets.Assets
	logger *log.Logger
}

// New creates an unstarted game. Call Reset before stepping.
func New() *Game {
	return &Game{logger: log.Default()}
}

// ID returns the stable identifier used for score persistence.
func (g *Game) ID() string { return "dash" }

// Title returns the human-readable game name.
func (g *Game) Title() string { return "Mouse Dash!" }

// AttachScores injects the score persistence port. Optional; without it
// the game runs with a zero high score and never saves.
func (g *Game) AttachScores(s ScoreStore) {
	g.scores = s
}

// AttachAssets injects sprite art loaded from disk. Optional; the
// renderer falls back to single-rune glyphs.
func (g *Game) AttachAssets(a *assets.Assets) {
	g.assets = a
}

// Reset loads configuration, seeds the rng and returns the game to the
// menu. A seed of 0 in the runtime config means non-deterministic.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	g.cfg = cfg
	g.runtime = rt

	seed := rt.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.highScore = 0
	if g.scores != nil {
		if hs, err := g.scores.HighScore(g.ID()); err != nil {
			g.logger.Warn("high score unavailable", "err", err)
		} else {
			g.highScore = hs
		}
	}

	g.difficultyIdx = g.cfg.ClampPresetIndex(1)
	g.quitRequested = false
	g.newHighScore = false
	g.toMenu()
}

// toMenu clears all run state and shows the menu. The difficulty cursor
// and loaded high score survive.
func (g *Game) toMenu() {
	g.screen = ScreenMenu
	g.player = nil
	g.items = nil
	g.hazards = nil
	g.particles = nil
	g.floaters = nil
	g.shakeTimer = 0
	g.score = 0
	g.combo = 0
	g.comboTimer = 0
	g.lives = 0
	g.timeLeft = 0
}

// startRun begins a fresh run with the selected difficulty.
// Hazards spawn before items so item placement can keep clear of them.
func (g *Game) startRun() {
	d := g.cfg.PresetByIndex(g.difficultyIdx)
	board := g.cfg.Board

	g.score = 0
	g.combo = 0
	g.comboTimer = 0
	g.lives = d.Lives
	g.timeLeft = d.Time
	g.newHighScore = false

	g.particles = nil
	g.floaters = nil
	g.shakeTimer = 0

	center := core.V(board.Width/2, (board.Height+board.HUDBand)/2)
	g.player = NewPlayer(center, g.cfg.Player)

	g.items = nil
	g.hazards = nil
	g.spawnHazards(d.Hazards, d.HazardSpeed)
	g.spawnItems(d.Items)

	g.screen = ScreenPlaying
}

// enterGameOver ends the run, comparing and persisting the high score.
// Persistence failures are logged and the run result still stands.
func (g *Game) enterGameOver() {
	g.screen = ScreenGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHighScore = true
		if g.scores != nil {
			if _, err := g.scores.SaveScore(g.ID(), g.score); err != nil {
				g.logger.Warn("score save failed", "err", err)
			}
		}
	}
}

// Step advances the simulation by dt seconds with the given held
// directions. Only the playing screen simulates; every other screen is
// frozen. dt is clamped to keep collision checks sound after stalls.
func (g *Game) Step(dt float64, held core.DirectionSet) core.StepResult {
	dt = math.Min(dt, maxStepDt)
	g.timeAccum += dt

	if g.screen != ScreenPlaying {
		if g.screen == ScreenGameOver || g.screen == ScreenPaused {
			g.updateEffects(dt)
		}
		return g.result()
	}

	g.timeLeft -= dt
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.enterGameOver()
		return g.result()
	}

	if g.comboTimer > 0 {
		g.comboTimer -= dt
		if g.comboTimer <= 0 {
			g.comboTimer = 0
			g.combo = 0
		}
	}

	frames := 0
	if g.assets != nil {
		frames = g.assets.FrameCount()
	}
	g.player.Update(held, dt, g.cfg.Board, frames)
	for _, h := range g.hazards {
		h.Update(dt, g.cfg.Board)
	}
	for _, it := range g.items {
		it.Wobble += dt * 4
	}

	g.handleCollisions()
	g.updateEffects(dt)

	if g.screen == ScreenPlaying && g.lives <= 0 {
		g.enterGameOver()
	}
	return g.result()
}

// handleCollisions runs the collect pass then the damage pass.
// Items are removed by index so two overlapping items both count.
// At most one hazard damages the player per step.
func (g *Game) handleCollisions() {
	kept := g.items[:0]
	for _, it := range g.items {
		if g.player.Pos.Distance(it.Pos) <= g.player.Radius+it.Radius {
			g.collect(it)
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept

	if len(g.items) == 0 {
		d := g.cfg.PresetByIndex(g.difficultyIdx)
		g.spawnItems(d.Items)
	}

	if !g.player.CanTakeHit() {
		return
	}
	for _, h := range g.hazards {
		if g.player.Pos.Distance(h.Pos) <= g.player.Radius+h.Half() {
			g.lives--
			g.player.MarkHit()
			h.NudgeAwayFrom(g.rng, g.player.Pos, g.cfg.Hazards.NudgeDistance)
			g.spawnHitEffect(g.player.Pos)
			break
		}
	}
}

// collect scores one item and extends the combo streak.
func (g *Game) collect(it *Item) {
	g.combo++
	bonus := core.Min(g.cfg.Combo.BonusCap, (g.combo-1)*g.cfg.Combo.BonusStep)
	points := g.cfg.Combo.BasePoints + bonus
	g.score += points
	g.comboTimer = g.cfg.Combo.Window
	g.spawnCollectEffect(it.Pos, points, g.combo)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State reports the coarse game state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.screen == ScreenGameOver,
		Paused:   g.screen == ScreenPaused,
		InMenu:   g.screen == ScreenMenu,
	}
}

// QuitRequested reports whether the player asked to leave the program
// (q on the menu screen). The platform checks this after every action.
func (g *Game) QuitRequested() bool {
	return g.quitRequested
}
