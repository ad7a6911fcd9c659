package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultConfig returns the default game configuration.
// The values mirror the embedded defaults/dash.yaml and act as the last
// fallback if the embedded YAML somehow fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:   900,
			Height:  600,
			HUDBand: 40,
		},
		Player: PlayerConfig{
			Speed:       280,
			Radius:      18,
			InvulnTime:  1.0,
			TrailLength: 12,
		},
		Items: ItemConfig{
			Radius: 10,
		},
		Hazards: HazardConfig{
			Size:          24,
			NudgeDistance: 18,
		},
		Combo: ComboConfig{
			Window:     1.25,
			BasePoints: 10,
			BonusStep:  2,
			BonusCap:   14,
		},
		Spawn: SpawnConfig{
			ItemMargin:        40,
			ItemTopMargin:     80,
			ItemMinPlayerDist: 80,
			ItemPadding:       8,
			ItemHazardPadding: 12,
			ItemAttemptsPer:   20,

			HazardMargin:        60,
			HazardTopMargin:     100,
			HazardMinPlayerDist: 120,
			HazardMinHazardDist: 60,
			HazardAttemptsPer:   25,
		},
		Effects: EffectConfig{
			ShakeTime:     0.25,
			ShakeStrength: 10,

			CollectParticles: 12,
			CollectSpeedMin:  80,
			CollectSpeedMax:  160,
			CollectLifetime:  0.4,

			HitParticles: 18,
			HitSpeedMin:  120,
			HitSpeedMax:  220,
			HitLifetime:  0.5,

			FloaterLifetime: 1.0,
			FloaterRise:     30,
		},
		Difficulties: []Difficulty{
			{
				Name: "Easy", Lives: 5, Time: 60, Hazards: 3, Items: 8,
				HazardSpeed: SpeedRange{Min: 120, Max: 170},
			},
			{
				Name: "Normal", Lives: 4, Time: 50, Hazards: 4, Items: 10,
				HazardSpeed: SpeedRange{Min: 150, Max: 210},
			},
			{
				Name: "Hard", Lives: 3, Time: 40, Hazards: 10, Items: 12,
				HazardSpeed: SpeedRange{Min: 190, Max: 260},
			},
		},
	}
}
