package neondodge

import (
	"github.com/vovakirdan/neon-dodge/internal/config"
)

// Phase is the run-level state machine: Running -> GameOver -> (restart) -> Running.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns "running" or "gameover".
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameover"
	}
	return "running"
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Timers holds the decaying effect counters, in seconds. All are >= 0.
type Timers struct {
	Combo        float64
	Boost        float64
	Shield       float64
	Invulnerable float64
	Flash        float64
}

// RunStats summarizes a run for scoreboards and logs.
type RunStats struct {
	ScoreOrbs       int     `yaml:"score_orbs"`
	BoostOrbs       int     `yaml:"boost_orbs"`
	ShieldOrbs      int     `yaml:"shield_orbs"`
	HitsTaken       int     `yaml:"hits_taken"`
	ShieldsAbsorbed int     `yaml:"shields_absorbed"`
	HitsIgnored     int     `yaml:"hits_ignored"`
	PeakMultiplier  float64 `yaml:"peak_multiplier"`
	ElapsedMs       float64 `yaml:"elapsed_ms"`
}

// OrbsCollected returns the total number of orbs picked up.
func (s RunStats) OrbsCollected() int {
	return s.ScoreOrbs + s.BoostOrbs + s.ShieldOrbs
}

// RunState is the complete mutable state of one run.
// It is owned by a Sim and threaded explicitly through every tick step.
type RunState struct {
	Phase  Phase
	Player Player

	Orbs      []Orb
	Obstacles []Obstacle
	Drones    []Drone
	Zappers   []Zapper
	Particles []Particle

	Score      int
	Lives      int
	Multiplier float64
	Timers     Timers

	Difficulty       float64
	SpawnIntervalMs  float64
	HazardIntervalMs float64

	LastSpawnMs  float64
	LastHazardMs float64
	LastFrameMs  float64
	started      bool // false until the first tick anchors the clock

	Tick   uint64
	Stats  RunStats
	Events []Event // events raised during the latest tick
}

// newRunState builds the starting state described by cfg.
func newRunState(cfg config.NeonConfig, ramp config.Ramp) RunState {
	p := cfg.Player
	difficulty := ramp.Initial()
	return RunState{
		Phase: PhaseRunning,
		Player: Player{
			X:     cfg.Playfield.Width/2 - p.Width/2,
			Y:     cfg.Playfield.Height - p.Height - p.StartOffset,
			W:     p.Width,
			H:     p.Height,
			Speed: p.Speed,
		},
		Orbs:             make([]Orb, 0, 16),
		Obstacles:        make([]Obstacle, 0, 16),
		Drones:           make([]Drone, 0, 8),
		Zappers:          make([]Zapper, 0, 4),
		Particles:        make([]Particle, 0, 128),
		Lives:            cfg.Run.Lives,
		Multiplier:       1,
		Difficulty:       difficulty,
		SpawnIntervalMs:  ramp.SpawnInterval(difficulty),
		HazardIntervalMs: ramp.HazardInterval(difficulty),
		Stats:            RunStats{PeakMultiplier: 1},
	}
}

// EventKind classifies something notable that happened during a tick.
type EventKind uint8

const (
	EventOrbCollected EventKind = iota
	EventShieldAbsorbed
	EventLifeLost
	EventHitIgnored
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventOrbCollected:
		return "orb_collected"
	case EventShieldAbsorbed:
		return "shield_absorbed"
	case EventLifeLost:
		return "life_lost"
	case EventHitIgnored:
		return "hit_ignored"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the event kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event is raised by the simulation for hosts that want feedback (HUD, logs, audio).
type Event struct {
	Kind   EventKind `yaml:"kind"`
	Orb    OrbKind   `yaml:"orb,omitempty"`
	Points int       `yaml:"points,omitempty"`
}
