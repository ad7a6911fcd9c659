package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mouse-dash/internal/core"
)

// Particle is a burst fragment spawned on collects and hits. Particles are
// pure decoration: they never feed back into collisions or scoring.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // Remaining lifetime in seconds
	Total float64 // Initial lifetime, kept for fade-out rendering
	Color core.Color
}

// FloatingText is a short label ("+12", "Combo x4") that rises from the
// point it was spawned and fades away.
type FloatingText struct {
	Pos   core.Vec2
	Text  string
	Color core.Color
	Life  float64
}

func (g *Game) spawnCollectEffect(pos core.Vec2, points, combo int) {
	fx := g.cfg.Effects
	for i := 0; i < fx.CollectParticles; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := fx.CollectSpeedMin + g.rng.Float64()*(fx.CollectSpeedMax-fx.CollectSpeedMin)
		g.particles = append(g.particles, Particle{
			Pos:   pos,
			Vel:   core.V(math.Cos(angle), math.Sin(angle)).Scale(speed),
			Life:  fx.CollectLifetime,
			Total: fx.CollectLifetime,
			Color: core.ColorGold,
		})
	}
	g.floaters = append(g.floaters, FloatingText{
		Pos:   pos,
		Text:  fmt.Sprintf("+%d", points),
		Color: core.ColorBrightYellow,
		Life:  fx.FloaterLifetime,
	})
	if combo >= 2 {
		g.floaters = append(g.floaters, FloatingText{
			Pos:   pos.Add(core.V(0, -18)),
			Text:  fmt.Sprintf("Combo x%d", combo),
			Color: core.ColorCyan,
			Life:  fx.FloaterLifetime,
		})
	}
}

func (g *Game) spawnHitEffect(pos core.Vec2) {
	fx := g.cfg.Effects
	for i := 0; i < fx.HitParticles; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := fx.HitSpeedMin + g.rng.Float64()*(fx.HitSpeedMax-fx.HitSpeedMin)
		g.particles = append(g.particles, Particle{
			Pos:   pos,
			Vel:   core.V(math.Cos(angle), math.Sin(angle)).Scale(speed),
			Life:  fx.HitLifetime,
			Total: fx.HitLifetime,
			Color: core.ColorBrightRed,
		})
	}
	g.shakeTimer = fx.ShakeTime
}

// updateEffects ages particles and floaters, dropping expired ones in
// place so the slices never hold dead entries between frames.
func (g *Game) updateEffects(dt float64) {
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	g.particles = alive

	keep := g.floaters[:0]
	for _, f := range g.floaters {
		f.Life -= dt
		if f.Life <= 0 {
			continue
		}
		f.Pos.Y -= g.cfg.Effects.FloaterRise * dt
		keep = append(keep, f)
	}
	g.floaters = keep

	if g.shakeTimer > 0 {
		g.shakeTimer = math.Max(0, g.shakeTimer-dt)
	}
}

// ShakeOffset returns the current camera shake displacement in world
// units. The offset is derived from elapsed time rather than the run's
// rng so that rendering can be called any number of times without
// perturbing the simulation.
func (g *Game) ShakeOffset() core.Vec2 {
	if g.shakeTimer <= 0 {
		return core.Vec2{}
	}
	s := g.cfg.Effects.ShakeStrength
	return core.V(
		math.Sin(g.timeAccum*97.3)*s,
		math.Cos(g.timeAccum*73.7)*s,
	)
}
