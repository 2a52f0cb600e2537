package config

import (
	_ "embed"
)

//go:embed defaults/neondodge.yaml
var defaultNeonYAML []byte

// Spawn categories and orb kinds as they appear in weight tables.
const (
	CategoryObstacle = "obstacle"
	CategoryOrb      = "orb"
	CategoryDrone    = "drone"

	OrbKindScore  = "score"
	OrbKindShield = "shield"
	OrbKindBoost  = "boost"
)

// DefaultNeonConfig returns the built-in configuration.
// It mirrors defaults/neondodge.yaml and is used when the embedded file cannot be parsed.
func DefaultNeonConfig() NeonConfig {
	return NeonConfig{
		Playfield: Playfield{
			Width:  480,
			Height: 640,
		},
		Player: PlayerConfig{
			Width:              38,
			Height:             58,
			Speed:              5.2,
			VerticalSpeed:      4.4,
			BoostSpeed:         7.5,
			BoostVerticalBonus: 1.4,
			MarginX:            12,
			MarginTop:          40,
			MarginBottom:       16,
			StartOffset:        24,
		},
		Entities: EntityConfig{
			SpawnMargin:     40,
			OrbSize:         16,
			OrbSpeed:        Range{Min: 2.4, Max: 3.8},
			ObstacleWidth:   Range{Min: 24, Max: 40},
			ObstacleHeight:  Range{Min: 60, Max: 90},
			ObstacleSpeed:   Range{Min: 3, Max: 5.4},
			ObstacleMargin:  10,
			DroneSize:       28,
			DroneSpeed:      Range{Min: 3.2, Max: 4.8},
			DroneAmplitude:  Range{Min: 35, Max: 80},
			DroneFrequency:  Range{Min: 0.8, Max: 1.4},
			DroneAngularVel: 0.004,
			DroneMargin:     20,
		},
		Zapper: ZapperConfig{
			Thickness:  18,
			GapWidth:   Range{Min: 110, Max: 180},
			Speed:      Range{Min: 2.8, Max: 4.4},
			EdgeMargin: 40,
		},
		Spawn: SpawnConfig{
			Categories: map[string]float64{
				CategoryObstacle: 45,
				CategoryOrb:      35,
				CategoryDrone:    20,
			},
			Orbs: map[string]float64{
				OrbKindScore:  65,
				OrbKindShield: 20,
				OrbKindBoost:  15,
			},
		},
		Timing: TimingConfig{
			BaseSpawnIntervalMs:  1000,
			MinSpawnIntervalMs:   420,
			BaseHazardIntervalMs: 2800,
			MinHazardIntervalMs:  1600,
			ReferenceFrameMs:     16.67,
		},
		Difficulty: DifficultyConfig{
			Enabled:            true,
			Initial:            0,
			RampPerMs:          0.00045,
			SpawnIntervalStep:  140,
			HazardIntervalStep: 70,
			EntitySpeedScale:   0.05,
			HazardSpeedScale:   0.04,
		},
		Run: RunConfig{
			Lives:                3,
			MaxMultiplier:        4,
			ComboWindow:          3,
			BoostDuration:        3.5,
			ShieldDuration:       4.5,
			InvulnerableDuration: 0.9,
			FlashDuration:        0.35,
		},
		Scoring: ScoringConfig{
			ScoreOrbPoints:  10,
			BoostOrbPoints:  6,
			ShieldOrbPoints: 4,
			ScoreOrbCombo:   0.25,
			BoostOrbCombo:   0.15,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNeonYAML
}
