package dash

import (
	"math/rand"

	"github.com/vovakirdan/mouse-dash/internal/config"
	"github.com/vovakirdan/mouse-dash/internal/core"
)

// Hazard is a bouncing cat with a square footprint. Hazards are created at
// run start and live for the whole run.
type Hazard struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64 // Full side of the square footprint
}

// NewHazard creates a hazard with a random direction and a speed drawn
// uniformly from the difficulty's range.
func NewHazard(rng *rand.Rand, pos core.Vec2, speed config.SpeedRange, size float64) *Hazard {
	return &Hazard{
		Pos:  pos,
		Vel:  randomVelocity(rng, speed),
		Size: size,
	}
}

// randomVelocity draws a random unit direction, rejecting near-zero
// samples to avoid degenerate stalls, and scales it to a uniform speed.
func randomVelocity(rng *rand.Rand, speed config.SpeedRange) core.Vec2 {
	for {
		v := core.V(rng.Float64()*2-1, rng.Float64()*2-1)
		if v.LenSq() > 0.1 {
			mag := speed.Min + rng.Float64()*(speed.Max-speed.Min)
			return v.Normalize().Scale(mag)
		}
	}
}

// Half returns the effective collision radius: half the square side.
// The circle-vs-square approximation is deliberately loose on the corners.
func (h *Hazard) Half() float64 {
	return h.Size / 2
}

// Update integrates position and reflects off the play-area walls.
// Each axis bounces independently, so a corner contact flips both
// components in the same frame. Reflection never changes speed magnitude.
func (h *Hazard) Update(dt float64, board config.BoardConfig) {
	h.Pos = h.Pos.Add(h.Vel.Scale(dt))

	half := h.Half()
	bounced := false
	if h.Pos.X < half || h.Pos.X > board.Width-half {
		h.Vel.X = -h.Vel.X
		bounced = true
	}
	if h.Pos.Y < half+board.HUDBand || h.Pos.Y > board.Height-half {
		h.Vel.Y = -h.Vel.Y
		bounced = true
	}
	if bounced {
		h.Pos.X = core.ClampF(h.Pos.X, half, board.Width-half)
		h.Pos.Y = core.ClampF(h.Pos.Y, half+board.HUDBand, board.Height-half)
	}
}

// NudgeAwayFrom displaces the hazard a fixed distance directly away from
// the given point, so it does not linger overlapping the player and
// restart damage the moment invulnerability ends. A hazard coincident
// with the point moves in a random direction.
func (h *Hazard) NudgeAwayFrom(rng *rand.Rand, point core.Vec2, dist float64) {
	dir := h.Pos.Sub(point)
	if dir.LenSq() == 0 {
		dir = core.V(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	h.Pos = h.Pos.Add(dir.Normalize().Scale(dist))
}
