package dash

import "github.com/vovakirdan/mouse-dash/internal/core"

// Snapshot captures the observable game state for determinism testing.
// Cosmetic state (particles, trail, animation) is summarized by counts
// only, never by exact contents.
type Snapshot struct {
	Screen       string
	Difficulty   int
	Score        int
	Lives        int
	TimeLeft     float64
	Combo        int
	ComboTimer   float64
	Items        int
	Hazards      int
	PlayerPos    core.Vec2
	HighScore    int
	NewHighScore bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var pos core.Vec2
	if g.player != nil {
		pos = g.player.Pos
	}
	return Snapshot{
		Screen:       g.screen.String(),
		Difficulty:   g.difficultyIdx,
		Score:        g.score,
		Lives:        g.lives,
		TimeLeft:     g.timeLeft,
		Combo:        g.combo,
		ComboTimer:   g.comboTimer,
		Items:        len(g.items),
		Hazards:      len(g.hazards),
		PlayerPos:    pos,
		HighScore:    g.highScore,
		NewHighScore: g.newHighScore,
	}
}
