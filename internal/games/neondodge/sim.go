// Package neondodge implements the Neon Dodge arcade simulation loop.
// The player steers a ship through falling obstacles, drones and zappers
// while collecting score, boost and shield orbs.
//
// The simulation never renders and never blocks. A host calls Tick once per
// frame with a timestamp and the set of held keys, and draws the returned
// Snapshot however it likes.
package neondodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
)

// rules bundles everything a tick step needs besides the run state itself.
type rules struct {
	cfg        config.NeonConfig
	ramp       config.Ramp
	rng        *rand.Rand
	categories weightedTable[category]
	orbKinds   weightedTable[OrbKind]
}

// Sim owns one run and advances it a tick at a time.
// A Sim is not safe for concurrent use.
type Sim struct {
	rules
	seed  int64
	state RunState
}

// New creates a simulation in its starting state.
// cfg is expected to be valid (see config.NeonConfig.Validate).
func New(cfg config.NeonConfig, seed int64) *Sim {
	s := &Sim{
		rules: rules{
			cfg:        cfg,
			ramp:       config.NewRamp(cfg.Timing, cfg.Difficulty),
			categories: categoryTable(cfg.Spawn.Categories),
			orbKinds:   orbTable(cfg.Spawn.Orbs),
		},
		seed: seed,
	}
	s.Reset()
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.NeonConfig {
	return s.cfg
}

// Seed returns the seed used by Reset.
func (s *Sim) Seed() int64 {
	return s.seed
}

// SetSeed changes the seed for the next Reset.
func (s *Sim) SetSeed(seed int64) {
	s.seed = seed
}

// Reset reinitializes the run and re-seeds the random source,
// so two resets in a row produce identical runs.
func (s *Sim) Reset() Snapshot {
	s.rng = rand.New(rand.NewSource(s.seed)) //#nosec G404 -- gameplay randomness
	s.state = newRunState(s.cfg, s.ramp)
	return s.Snapshot()
}

// Restart starts a fresh run after game over. While the run is still going
// it does nothing. The random source keeps its position, so consecutive
// runs differ.
func (s *Sim) Restart() Snapshot {
	if s.state.Phase != PhaseGameOver {
		return s.Snapshot()
	}
	s.state = newRunState(s.cfg, s.ramp)
	return s.Snapshot()
}

// Result summarizes the run so far for the scoreboard.
func (s *Sim) Result() core.RunResult {
	st := &s.state
	return core.RunResult{
		Score:          st.Score,
		DurationMs:     int64(st.Stats.ElapsedMs),
		PeakMultiplier: st.Stats.PeakMultiplier,
		OrbsCollected:  st.Stats.OrbsCollected(),
		HitsTaken:      st.Stats.HitsTaken,
		Difficulty:     st.Difficulty,
		Seed:           s.seed,
	}
}

// GameOver reports whether the run has ended.
func (s *Sim) GameOver() bool {
	return s.state.Phase == PhaseGameOver
}

// Tick advances the run to nowMs using the held keys and returns the new snapshot.
//
// The first tick after a reset anchors the clock and advances nothing.
// Timestamps that are not finite or that go backwards count as zero
// advancement. Once the run is over the state is frozen until Restart.
func (s *Sim) Tick(nowMs float64, keys core.KeySet) Snapshot {
	st := &s.state
	st.Events = st.Events[:0]
	if st.Phase == PhaseGameOver {
		return s.Snapshot()
	}

	now, delta := s.advanceClock(st, nowMs)
	st.Tick++

	s.processInput(st, delta, keys)
	s.spawnEntities(st, now)
	s.spawnHazard(st, now)
	s.advanceEntities(st, delta)
	s.resolveCollisions(st)
	s.decayTimers(st, delta)

	return s.Snapshot()
}

// advanceClock returns the effective timestamp and the elapsed milliseconds.
func (s *Sim) advanceClock(st *RunState, nowMs float64) (now, delta float64) {
	if math.IsNaN(nowMs) || math.IsInf(nowMs, 0) {
		if !st.started {
			return 0, 0
		}
		return st.LastFrameMs, 0
	}
	if !st.started {
		st.started = true
		st.LastFrameMs = nowMs
		st.LastSpawnMs = nowMs
		st.LastHazardMs = nowMs
		return nowMs, 0
	}
	if nowMs <= st.LastFrameMs {
		return st.LastFrameMs, 0
	}
	delta = nowMs - st.LastFrameMs
	st.LastFrameMs = nowMs
	return nowMs, delta
}

// frameScale converts elapsed milliseconds to reference frames.
func (r *rules) frameScale(delta float64) float64 {
	return delta / r.cfg.Timing.ReferenceFrameMs
}
