// Package config provides YAML-based game configuration loading and the
// ordered difficulty preset list for Mouse Dash.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Board        BoardConfig  `yaml:"board"`
	Player       PlayerConfig `yaml:"player"`
	Items        ItemConfig   `yaml:"items"`
	Hazards      HazardConfig `yaml:"hazards"`
	Combo        ComboConfig  `yaml:"combo"`
	Spawn        SpawnConfig  `yaml:"spawn"`
	Effects      EffectConfig `yaml:"effects"`
	Difficulties []Difficulty `yaml:"difficulties"`
}

// BoardConfig defines the play area in world units.
// The HUD band is reserved at the top; entities never enter it.
type BoardConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	HUDBand float64 `yaml:"hud_band"`
}

// PlayerConfig defines player movement and damage parameters.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`        // World units per second
	Radius      float64 `yaml:"radius"`       // Collision radius
	InvulnTime  float64 `yaml:"invuln_time"`  // Seconds of post-hit invulnerability
	TrailLength int     `yaml:"trail_length"` // Cosmetic trail ring buffer size
}

// ItemConfig defines collectible item parameters.
type ItemConfig struct {
	Radius float64 `yaml:"radius"`
}

// HazardConfig defines hazard parameters. Speed ranges come from the
// selected difficulty; Size is the full side of the square footprint.
type HazardConfig struct {
	Size          float64 `yaml:"size"`
	NudgeDistance float64 `yaml:"nudge_distance"` // Displacement after damaging the player
}

// ComboConfig defines the combo scoring rules.
// Bonus for combo n is min(BonusCap, (n-1)*BonusStep) on top of BasePoints.
type ComboConfig struct {
	Window     float64 `yaml:"window"` // Seconds the streak stays alive
	BasePoints int     `yaml:"base_points"`
	BonusStep  int     `yaml:"bonus_step"`
	BonusCap   int     `yaml:"bonus_cap"`
}

// SpawnConfig defines rejection-sampling placement parameters.
// Attempt caps are multipliers of the target count; hitting the cap leaves
// fewer entities than requested, which is an accepted degraded outcome.
type SpawnConfig struct {
	ItemMargin        float64 `yaml:"item_margin"`     // Side/bottom margin for item candidates
	ItemTopMargin     float64 `yaml:"item_top_margin"` // Top margin (below the HUD band)
	ItemMinPlayerDist float64 `yaml:"item_min_player_dist"`
	ItemPadding       float64 `yaml:"item_padding"`        // Extra gap between items
	ItemHazardPadding float64 `yaml:"item_hazard_padding"` // Extra gap from hazards
	ItemAttemptsPer   int     `yaml:"item_attempts_per"`

	HazardMargin        float64 `yaml:"hazard_margin"`
	HazardTopMargin     float64 `yaml:"hazard_top_margin"`
	HazardMinPlayerDist float64 `yaml:"hazard_min_player_dist"`
	HazardMinHazardDist float64 `yaml:"hazard_min_hazard_dist"`
	HazardAttemptsPer   int     `yaml:"hazard_attempts_per"`
}

// EffectConfig defines cosmetic effect parameters. Nothing here may
// influence gameplay outcomes.
type EffectConfig struct {
	ShakeTime     float64 `yaml:"shake_time"`
	ShakeStrength float64 `yaml:"shake_strength"`

	CollectParticles int     `yaml:"collect_particles"`
	CollectSpeedMin  float64 `yaml:"collect_speed_min"`
	CollectSpeedMax  float64 `yaml:"collect_speed_max"`
	CollectLifetime  float64 `yaml:"collect_lifetime"`

	HitParticles int     `yaml:"hit_particles"`
	HitSpeedMin  float64 `yaml:"hit_speed_min"`
	HitSpeedMax  float64 `yaml:"hit_speed_max"`
	HitLifetime  float64 `yaml:"hit_lifetime"`

	FloaterLifetime float64 `yaml:"floater_lifetime"`
	FloaterRise     float64 `yaml:"floater_rise"` // World units per second upward
}

// Difficulty is one named preset from the ordered list.
type Difficulty struct {
	Name        string     `yaml:"name"`
	Lives       int        `yaml:"lives"`
	Time        float64    `yaml:"time"` // Run duration in seconds
	Hazards     int        `yaml:"hazards"`
	Items       int        `yaml:"items"`
	HazardSpeed SpeedRange `yaml:"hazard_speed"`
}

// SpeedRange is a uniform speed interval for hazard spawning.
type SpeedRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PresetByIndex returns the difficulty at the given index, clamping the
// index into range. The list is never empty after loading.
func (c Config) PresetByIndex(i int) Difficulty {
	if len(c.Difficulties) == 0 {
		return DefaultConfig().Difficulties[1]
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.Difficulties) {
		i = len(c.Difficulties) - 1
	}
	return c.Difficulties[i]
}

// ClampPresetIndex clamps an index into the difficulty list range.
func (c Config) ClampPresetIndex(i int) int {
	if len(c.Difficulties) == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= len(c.Difficulties) {
		return len(c.Difficulties) - 1
	}
	return i
}

// CyclePresetIndex moves the index by delta with wraparound, for menu
// navigation.
func (c Config) CyclePresetIndex(i, delta int) int {
	n := len(c.Difficulties)
	if n == 0 {
		return 0
	}
	i = (i + delta) % n
	if i < 0 {
		i += n
	}
	return i
}
