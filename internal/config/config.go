// Package config provides YAML/TOML game configuration loading and
// difficulty ramp calculations for Neon Dodge.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Range is an inclusive [Min, Max] interval sampled uniformly by the spawner.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// NeonConfig contains all tunables for a run.
// Distances are playfield units, speeds are units per reference frame,
// intervals are milliseconds and durations are seconds.
type NeonConfig struct {
	Playfield  Playfield        `yaml:"playfield" toml:"playfield"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Entities   EntityConfig     `yaml:"entities" toml:"entities"`
	Zapper     ZapperConfig     `yaml:"zapper" toml:"zapper"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Run        RunConfig        `yaml:"run" toml:"run"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
}

// Playfield is the simulated area. Origin is the top-left corner.
type Playfield struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player's hitbox, speeds and movement margins.
type PlayerConfig struct {
	Width              float64 `yaml:"width" toml:"width"`
	Height             float64 `yaml:"height" toml:"height"`
	Speed              float64 `yaml:"speed" toml:"speed"`
	VerticalSpeed      float64 `yaml:"vertical_speed" toml:"vertical_speed"`
	BoostSpeed         float64 `yaml:"boost_speed" toml:"boost_speed"`
	BoostVerticalBonus float64 `yaml:"boost_vertical_bonus" toml:"boost_vertical_bonus"`
	MarginX            float64 `yaml:"margin_x" toml:"margin_x"`
	MarginTop          float64 `yaml:"margin_top" toml:"margin_top"`
	MarginBottom       float64 `yaml:"margin_bottom" toml:"margin_bottom"`
	StartOffset        float64 `yaml:"start_offset" toml:"start_offset"` // gap between player and bottom edge at reset
}

// EntityConfig defines sizes and speed ranges for falling entities.
type EntityConfig struct {
	SpawnMargin     float64 `yaml:"spawn_margin" toml:"spawn_margin"`
	OrbSize         float64 `yaml:"orb_size" toml:"orb_size"`
	OrbSpeed        Range   `yaml:"orb_speed" toml:"orb_speed"`
	ObstacleWidth   Range   `yaml:"obstacle_width" toml:"obstacle_width"`
	ObstacleHeight  Range   `yaml:"obstacle_height" toml:"obstacle_height"`
	ObstacleSpeed   Range   `yaml:"obstacle_speed" toml:"obstacle_speed"`
	ObstacleMargin  float64 `yaml:"obstacle_margin" toml:"obstacle_margin"`
	DroneSize       float64 `yaml:"drone_size" toml:"drone_size"`
	DroneSpeed      Range   `yaml:"drone_speed" toml:"drone_speed"`
	DroneAmplitude  Range   `yaml:"drone_amplitude" toml:"drone_amplitude"`
	DroneFrequency  Range   `yaml:"drone_frequency" toml:"drone_frequency"`
	DroneAngularVel float64 `yaml:"drone_angular_velocity" toml:"drone_angular_velocity"` // radians per ms at frequency 1
	DroneMargin     float64 `yaml:"drone_margin" toml:"drone_margin"`
}

// ZapperConfig defines the full-width hazard bar.
type ZapperConfig struct {
	Thickness  float64 `yaml:"thickness" toml:"thickness"`
	GapWidth   Range   `yaml:"gap_width" toml:"gap_width"`
	Speed      Range   `yaml:"speed" toml:"speed"`
	EdgeMargin float64 `yaml:"edge_margin" toml:"edge_margin"`
}

// SpawnConfig holds the weighted choice tables used on each spawn roll.
type SpawnConfig struct {
	Categories map[string]float64 `yaml:"categories" toml:"categories"` // obstacle, orb, drone
	Orbs       map[string]float64 `yaml:"orbs" toml:"orbs"`             // score, shield, boost
}

// TimingConfig defines spawn cadence and the frame normalization reference.
type TimingConfig struct {
	BaseSpawnIntervalMs  float64 `yaml:"base_spawn_interval_ms" toml:"base_spawn_interval_ms"`
	MinSpawnIntervalMs   float64 `yaml:"min_spawn_interval_ms" toml:"min_spawn_interval_ms"`
	BaseHazardIntervalMs float64 `yaml:"base_hazard_interval_ms" toml:"base_hazard_interval_ms"`
	MinHazardIntervalMs  float64 `yaml:"min_hazard_interval_ms" toml:"min_hazard_interval_ms"`
	ReferenceFrameMs     float64 `yaml:"reference_frame_ms" toml:"reference_frame_ms"`
}

// DifficultyConfig defines the difficulty ramp.
type DifficultyConfig struct {
	Enabled            bool    `yaml:"enabled" toml:"enabled"`
	Initial            float64 `yaml:"initial" toml:"initial"`
	RampPerMs          float64 `yaml:"ramp_per_ms" toml:"ramp_per_ms"`
	SpawnIntervalStep  float64 `yaml:"spawn_interval_step" toml:"spawn_interval_step"`   // ms removed per difficulty point
	HazardIntervalStep float64 `yaml:"hazard_interval_step" toml:"hazard_interval_step"` // ms removed per difficulty point
	EntitySpeedScale   float64 `yaml:"entity_speed_scale" toml:"entity_speed_scale"`
	HazardSpeedScale   float64 `yaml:"hazard_speed_scale" toml:"hazard_speed_scale"`
}

// RunConfig defines lives, effect durations and the combo multiplier.
type RunConfig struct {
	Lives                int     `yaml:"lives" toml:"lives"`
	MaxMultiplier        float64 `yaml:"max_multiplier" toml:"max_multiplier"`
	ComboWindow          float64 `yaml:"combo_window" toml:"combo_window"`
	BoostDuration        float64 `yaml:"boost_duration" toml:"boost_duration"`
	ShieldDuration       float64 `yaml:"shield_duration" toml:"shield_duration"`
	InvulnerableDuration float64 `yaml:"invulnerable_duration" toml:"invulnerable_duration"`
	FlashDuration        float64 `yaml:"flash_duration" toml:"flash_duration"`
}

// ScoringConfig defines orb values and multiplier gains.
type ScoringConfig struct {
	ScoreOrbPoints  float64 `yaml:"score_orb_points" toml:"score_orb_points"`
	BoostOrbPoints  float64 `yaml:"boost_orb_points" toml:"boost_orb_points"`
	ShieldOrbPoints float64 `yaml:"shield_orb_points" toml:"shield_orb_points"`
	ScoreOrbCombo   float64 `yaml:"score_orb_combo" toml:"score_orb_combo"`
	BoostOrbCombo   float64 `yaml:"boost_orb_combo" toml:"boost_orb_combo"`
}

// Validate reports every problem found in the configuration.
func (c NeonConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, r Range) {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("%s: min %v exceeds max %v", name, r.Min, r.Max))
		}
	}
	weights := func(name string, table map[string]float64, known ...string) {
		total := 0.0
		for k, w := range table {
			if !slices.Contains(known, k) {
				errs = append(errs, fmt.Errorf("%s.%s: unknown entry (want one of %v)", name, k, known))
				continue
			}
			if w < 0 {
				errs = append(errs, fmt.Errorf("%s.%s: negative weight %v", name, k, w))
			}
			total += w
		}
		if total <= 0 {
			errs = append(errs, fmt.Errorf("%s: weight table is empty", name))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("entities.orb_size", c.Entities.OrbSize)
	positive("entities.drone_size", c.Entities.DroneSize)
	positive("zapper.thickness", c.Zapper.Thickness)
	positive("timing.reference_frame_ms", c.Timing.ReferenceFrameMs)
	positive("timing.min_spawn_interval_ms", c.Timing.MinSpawnIntervalMs)
	positive("timing.min_hazard_interval_ms", c.Timing.MinHazardIntervalMs)

	ordered("entities.orb_speed", c.Entities.OrbSpeed)
	ordered("entities.obstacle_width", c.Entities.ObstacleWidth)
	ordered("entities.obstacle_height", c.Entities.ObstacleHeight)
	ordered("entities.obstacle_speed", c.Entities.ObstacleSpeed)
	ordered("entities.drone_speed", c.Entities.DroneSpeed)
	ordered("entities.drone_amplitude", c.Entities.DroneAmplitude)
	ordered("entities.drone_frequency", c.Entities.DroneFrequency)
	ordered("zapper.gap_width", c.Zapper.GapWidth)
	ordered("zapper.speed", c.Zapper.Speed)

	weights("spawn.categories", c.Spawn.Categories, CategoryObstacle, CategoryOrb, CategoryDrone)
	weights("spawn.orbs", c.Spawn.Orbs, OrbKindScore, OrbKindShield, OrbKindBoost)

	if c.Playfield.Width < c.Player.Width+2*c.Player.MarginX {
		errs = append(errs, errors.New("playfield is narrower than the player plus margins"))
	}
	if c.Zapper.GapWidth.Max+2*c.Zapper.EdgeMargin > c.Playfield.Width {
		errs = append(errs, errors.New("zapper gap plus edge margins does not fit the playfield"))
	}
	if c.Run.Lives < 1 {
		errs = append(errs, fmt.Errorf("run.lives must be at least 1, got %d", c.Run.Lives))
	}
	if c.Run.MaxMultiplier < 1 {
		errs = append(errs, fmt.Errorf("run.max_multiplier must be at least 1, got %v", c.Run.MaxMultiplier))
	}
	if c.Timing.BaseSpawnIntervalMs < c.Timing.MinSpawnIntervalMs {
		errs = append(errs, errors.New("timing.base_spawn_interval_ms is below the minimum"))
	}
	if c.Timing.BaseHazardIntervalMs < c.Timing.MinHazardIntervalMs {
		errs = append(errs, errors.New("timing.base_hazard_interval_ms is below the minimum"))
	}
	if c.Difficulty.Initial < 0 || c.Difficulty.RampPerMs < 0 {
		errs = append(errs, errors.New("difficulty must not ramp below zero"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialDifficultyForPreset returns the starting difficulty for a preset.
// One difficulty point is roughly 37 seconds of play at the default ramp.
func InitialDifficultyForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 1.5
	case DifficultyHard:
		return 4.0
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *NeonConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Initial = InitialDifficultyForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Run.ShieldDuration *= 1.5
	case DifficultyHard:
		cfg.Run.InvulnerableDuration *= 0.75
	}
}
