package dash

import (
	"github.com/vovakirdan/mouse-dash/internal/config"
	"github.com/vovakirdan/mouse-dash/internal/core"
)

// frameInterval is the seconds between player animation frames while moving.
const frameInterval = 0.08

// Player is the player-controlled mouse.
// Trail, LastMove, AnimTime and AnimIndex are cosmetic only: no gameplay
// rule or invariant may depend on them.
type Player struct {
	Pos         core.Vec2
	Radius      float64
	HitCooldown float64 // Seconds of invulnerability remaining

	LastMove  core.Vec2   // Facing direction for sprite mirroring
	Trail     []core.Vec2 // Bounded position history, oldest first
	AnimTime  float64
	AnimIndex int

	cfg config.PlayerConfig
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos core.Vec2, cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:      pos,
		Radius:   cfg.Radius,
		LastMove: core.V(1, 0),
		Trail:    make([]core.Vec2, 0, cfg.TrailLength),
		cfg:      cfg,
	}
}

// Update integrates movement from the held-key snapshot, clamps the player
// into the play area (respecting the HUD band at the top), winds down the
// hit cooldown and advances the cosmetic trail and animation phase.
func (p *Player) Update(held core.DirectionSet, dt float64, board config.BoardConfig, frameCount int) {
	dir := held.Vector()
	if dir.LenSq() > 0 {
		p.LastMove = dir
	}

	p.Pos = p.Pos.Add(dir.Scale(p.cfg.Speed * dt))
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, board.Width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius+board.HUDBand, board.Height-p.Radius)

	if p.HitCooldown > 0 {
		p.HitCooldown = p.HitCooldown - dt
		if p.HitCooldown < 0 {
			p.HitCooldown = 0
		}
	}

	p.Trail = append(p.Trail, p.Pos)
	if len(p.Trail) > p.cfg.TrailLength {
		p.Trail = p.Trail[1:]
	}

	// Animation only runs while moving; it snaps back to the idle frame
	// when the player stops.
	if dir.LenSq() > 0 {
		p.AnimTime += dt
		if p.AnimTime >= frameInterval {
			p.AnimTime = 0
			if frameCount > 0 {
				p.AnimIndex = (p.AnimIndex + 1) % frameCount
			} else {
				p.AnimIndex++
			}
		}
	} else {
		p.AnimTime = 0
		p.AnimIndex = 0
	}
}

// CanTakeHit reports whether hazard contact may damage the player.
func (p *Player) CanTakeHit() bool {
	return p.HitCooldown <= 0
}

// MarkHit starts the post-hit invulnerability window.
// Side effect only; the player does not move.
func (p *Player) MarkHit() {
	p.HitCooldown = p.cfg.InvulnTime
}
