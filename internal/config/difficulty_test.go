package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultRamp() Ramp {
	cfg := DefaultNeonConfig()
	return NewRamp(cfg.Timing, cfg.Difficulty)
}

func TestRampAdvance(t *testing.T) {
	r := defaultRamp()

	assert.InDelta(t, 0.45, r.Advance(0, 1000), 1e-12)
	assert.Equal(t, 2.0, r.Advance(2, 0))
	assert.Equal(t, 2.0, r.Advance(2, -50), "negative deltas never lower difficulty")
}

func TestRampDisabledHoldsDifficulty(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Difficulty.Enabled = false
	r := NewRamp(cfg.Timing, cfg.Difficulty)

	assert.False(t, r.Enabled())
	assert.Equal(t, 1.0, r.Advance(1, 60_000))
}

func TestRampIntervals(t *testing.T) {
	r := defaultRamp()

	tests := []struct {
		difficulty float64
		spawn      float64
		hazard     float64
	}{
		{0, 1000, 2800},
		{1, 860, 2730},
		{4, 440, 2520},
		{10, 420, 2100},
		{100, 420, 1600},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.spawn, r.SpawnInterval(tc.difficulty), 1e-9, "spawn interval at %v", tc.difficulty)
		assert.InDelta(t, tc.hazard, r.HazardInterval(tc.difficulty), 1e-9, "hazard interval at %v", tc.difficulty)
	}
}

func TestRampSpeedScales(t *testing.T) {
	r := defaultRamp()

	assert.Equal(t, 1.0, r.EntitySpeedScale(0))
	assert.InDelta(t, 1.5, r.EntitySpeedScale(10), 1e-12)
	assert.InDelta(t, 1.4, r.HazardSpeedScale(10), 1e-12)
}
