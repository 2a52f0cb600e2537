package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMatchesBuiltinDefaults(t *testing.T) {
	assert.Equal(t, DefaultNeonConfig(), Embedded())
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, DefaultNeonConfig().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Playfield.Width = 0
	cfg.Entities.OrbSpeed = Range{Min: 5, Max: 1}
	cfg.Spawn.Orbs = map[string]float64{}
	cfg.Run.Lives = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playfield.width")
	assert.Contains(t, err.Error(), "entities.orb_speed")
	assert.Contains(t, err.Error(), "spawn.orbs")
	assert.Contains(t, err.Error(), "run.lives")
}

func TestDecodeYAMLPartialOverride(t *testing.T) {
	data := []byte(`
run:
  lives: 5
spawn:
  categories:
    orb: 1
`)
	cfg, err := Decode(data, "yaml")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Run.Lives)
	assert.Equal(t, 4.0, cfg.Run.MaxMultiplier, "untouched fields keep defaults")
	assert.Equal(t, map[string]float64{"orb": 1}, cfg.Spawn.Categories, "weight tables are replaced, not merged")
	assert.Equal(t, DefaultNeonConfig().Spawn.Orbs, cfg.Spawn.Orbs)
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
[playfield]
width = 600.0

[zapper.gap_width]
min = 120.0
max = 150.0
`)
	cfg, err := Decode(data, "toml")
	require.NoError(t, err)

	assert.Equal(t, 600.0, cfg.Playfield.Width)
	assert.Equal(t, 640.0, cfg.Playfield.Height)
	assert.Equal(t, Range{Min: 120, Max: 150}, cfg.Zapper.GapWidth)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte("{}"), "json")
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("run:\n  lives: 2\n"), 0o600))

	cfg, source, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, source)
	assert.Equal(t, 2, cfg.Run.Lives)

	tomlPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[run]\nlives = 4\n"), 0o600))

	cfg, _, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Run.Lives)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("run: [unclosed"), 0o600))
	_, _, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("run:\n  lives: 0\n"), 0o600))
	_, _, err = Load(invalid)
	assert.ErrorContains(t, err, "run.lives")
}

func TestMarshalRoundTripsThroughDecode(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Run.Lives = 7

	data, err := Marshal(cfg)
	require.NoError(t, err)

	decoded, err := Decode(data, "yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantEnabled  bool
		wantInitial  float64
		shieldFactor float64
	}{
		{DifficultyEasy, true, 0, 1.5},
		{DifficultyNormal, true, 1.5, 1},
		{DifficultyHard, true, 4, 1},
		{DifficultyFixed, false, 0, 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultNeonConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.wantEnabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tc.wantInitial, cfg.Difficulty.Initial)
			assert.InDelta(t, 4.5*tc.shieldFactor, cfg.Run.ShieldDuration, 1e-9)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestValidateRejectsUnknownWeightEntries(t *testing.T) {
	cfg := DefaultNeonConfig()
	cfg.Spawn.Categories = map[string]float64{"orb": 1, "meteor": 2}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn.categories.meteor")
}
