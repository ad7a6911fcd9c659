package dash

import "github.com/vovakirdan/mouse-dash/internal/core"

// Item is a collectible. Immutable after spawning except for removal,
// which happens by index identity in the collision pass.
type Item struct {
	Pos    core.Vec2
	Radius float64

	// Wobble is a random phase offset for the cosmetic bobbing animation.
	Wobble float64
}
