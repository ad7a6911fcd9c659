package dash

import (
	"github.com/vovakirdan/mouse-dash/internal/config"
	"github.com/vovakirdan/mouse-dash/internal/core"
)

// spawnItems places count items by rejection sampling. A candidate is
// accepted when it keeps clear of the player, existing items and hazards.
// The attempt budget is ItemAttemptsPer per requested item; running out
// leaves fewer items on the board rather than blocking.
func (g *Game) spawnItems(count int) {
	sp := g.cfg.Spawn
	board := g.cfg.Board
	r := g.cfg.Items.Radius

	attempts := sp.ItemAttemptsPer * count
	for len(g.items) < count && attempts > 0 {
		attempts--
		pos := core.V(
			sp.ItemMargin+g.rng.Float64()*(board.Width-2*sp.ItemMargin),
			sp.ItemTopMargin+g.rng.Float64()*(board.Height-sp.ItemTopMargin-sp.ItemMargin),
		)
		if pos.Distance(g.player.Pos) < sp.ItemMinPlayerDist {
			continue
		}
		if !g.itemClearOfItems(pos, r, sp.ItemPadding) {
			continue
		}
		if !g.itemClearOfHazards(pos, r, sp.ItemHazardPadding) {
			continue
		}
		g.items = append(g.items, &Item{
			Pos:    pos,
			Radius: r,
			Wobble: g.rng.Float64() * 6.28,
		})
	}
}

func (g *Game) itemClearOfItems(pos core.Vec2, r, padding float64) bool {
	for _, it := range g.items {
		if pos.Distance(it.Pos) < r+it.Radius+padding {
			return false
		}
	}
	return true
}

func (g *Game) itemClearOfHazards(pos core.Vec2, r, padding float64) bool {
	for _, h := range g.hazards {
		if pos.Distance(h.Pos) < h.Size+r+padding {
			return false
		}
	}
	return true
}

// spawnHazards places count hazards, keeping them away from the player's
// start position and from each other so a run never opens with an
// unavoidable hit. Budget is HazardAttemptsPer per requested hazard.
func (g *Game) spawnHazards(count int, speed config.SpeedRange) {
	sp := g.cfg.Spawn
	board := g.cfg.Board
	size := g.cfg.Hazards.Size

	attempts := sp.HazardAttemptsPer * count
	for len(g.hazards) < count && attempts > 0 {
		attempts--
		pos := core.V(
			sp.HazardMargin+g.rng.Float64()*(board.Width-2*sp.HazardMargin),
			sp.HazardTopMargin+g.rng.Float64()*(board.Height-sp.HazardTopMargin-sp.HazardMargin),
		)
		if pos.Distance(g.player.Pos) < sp.HazardMinPlayerDist {
			continue
		}
		if !g.hazardClearOfHazards(pos, sp.HazardMinHazardDist) {
			continue
		}
		g.hazards = append(g.hazards, NewHazard(g.rng, pos, speed, size))
	}
}

func (g *Game) hazardClearOfHazards(pos core.Vec2, minDist float64) bool {
	for _, h := range g.hazards {
		if pos.Distance(h.Pos) < minDist {
			return false
		}
	}
	return true
}
