package config

import "math"

// Ramp derives spawn cadence and speed scaling from a difficulty value.
// Values are recomputed from the current difficulty on every call and never cached.
type Ramp struct {
	timing TimingConfig
	cfg    DifficultyConfig
}

// NewRamp creates a ramp for the given timing and difficulty settings.
func NewRamp(timing TimingConfig, cfg DifficultyConfig) Ramp {
	return Ramp{timing: timing, cfg: cfg}
}

// Enabled reports whether difficulty grows over time.
func (r Ramp) Enabled() bool {
	return r.cfg.Enabled && r.cfg.RampPerMs > 0
}

// Initial returns the difficulty a run starts at.
func (r Ramp) Initial() float64 {
	return math.Max(0, r.cfg.Initial)
}

// Advance returns the difficulty after deltaMs of play.
// Difficulty never decreases.
func (r Ramp) Advance(difficulty, deltaMs float64) float64 {
	if !r.Enabled() || deltaMs <= 0 {
		return difficulty
	}
	return difficulty + deltaMs*r.cfg.RampPerMs
}

// SpawnInterval returns the milliseconds between spawn rolls, floored at the minimum.
func (r Ramp) SpawnInterval(difficulty float64) float64 {
	return math.Max(r.timing.MinSpawnIntervalMs, r.timing.BaseSpawnIntervalMs-difficulty*r.cfg.SpawnIntervalStep)
}

// HazardInterval returns the milliseconds between zapper spawns, floored at the minimum.
func (r Ramp) HazardInterval(difficulty float64) float64 {
	return math.Max(r.timing.MinHazardIntervalMs, r.timing.BaseHazardIntervalMs-difficulty*r.cfg.HazardIntervalStep)
}

// EntitySpeedScale returns the speed multiplier for orbs, obstacles and drones.
func (r Ramp) EntitySpeedScale(difficulty float64) float64 {
	return 1 + difficulty*r.cfg.EntitySpeedScale
}

// HazardSpeedScale returns the speed multiplier for zappers.
func (r Ramp) HazardSpeedScale(difficulty float64) float64 {
	return 1 + difficulty*r.cfg.HazardSpeedScale
}
