package neondodge

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of the run for renderers, logs and tests.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick      uint64  `yaml:"tick"`
	ElapsedMs float64 `yaml:"elapsed_ms"`
	Phase     Phase   `yaml:"phase"`

	Player PlayerView `yaml:"player"`

	Orbs      []OrbView      `yaml:"orbs"`
	Obstacles []ObstacleView `yaml:"obstacles"`
	Drones    []DroneView    `yaml:"drones"`
	Zappers   []ZapperView   `yaml:"zappers"`
	Particles []Particle     `yaml:"-"`

	Score      int     `yaml:"score"`
	Lives      int     `yaml:"lives"`
	Multiplier float64 `yaml:"multiplier"`
	Effects    Effects `yaml:"effects"`

	Difficulty       float64 `yaml:"difficulty"`
	SpawnIntervalMs  float64 `yaml:"spawn_interval_ms"`
	HazardIntervalMs float64 `yaml:"hazard_interval_ms"`

	Stats  RunStats `yaml:"stats"`
	Events []Event  `yaml:"events,omitempty"`
}

// PlayerView is the player's rectangle and input state.
type PlayerView struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	VX      int     `yaml:"vx"`
	VY      int     `yaml:"vy"`
	Boosted bool    `yaml:"boosted"`
}

// OrbView is an orb centered on (X, Y).
type OrbView struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
	Kind OrbKind `yaml:"kind"`
}

// ObstacleView is an obstacle rectangle.
type ObstacleView struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DroneView is a drone centered on (X, Y).
type DroneView struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// ZapperView is a full-width bar with a safe gap.
type ZapperView struct {
	Y         float64 `yaml:"y"`
	Thickness float64 `yaml:"thickness"`
	GapLeft   float64 `yaml:"gap_left"`
	GapRight  float64 `yaml:"gap_right"`
}

// Effect is a timed effect and its remaining seconds.
type Effect struct {
	Active    bool    `yaml:"active"`
	Remaining float64 `yaml:"remaining"`
}

// Effects lists every timed effect.
type Effects struct {
	Combo        Effect `yaml:"combo"`
	Boost        Effect `yaml:"boost"`
	Shield       Effect `yaml:"shield"`
	Invulnerable Effect `yaml:"invulnerable"`
	Flash        Effect `yaml:"flash"`
}

// GameOver reports whether the snapshot shows a finished run.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Snapshot returns a deep copy of the current run.
func (s *Sim) Snapshot() Snapshot {
	st := &s.state
	e := s.cfg.Entities

	snap := Snapshot{
		Tick:      st.Tick,
		ElapsedMs: st.Stats.ElapsedMs,
		Phase:     st.Phase,
		Player: PlayerView{
			X:       st.Player.X,
			Y:       st.Player.Y,
			W:       st.Player.W,
			H:       st.Player.H,
			VX:      st.Player.VX,
			VY:      st.Player.VY,
			Boosted: st.Timers.Boost > 0,
		},
		Orbs:             make([]OrbView, 0, len(st.Orbs)),
		Obstacles:        make([]ObstacleView, 0, len(st.Obstacles)),
		Drones:           make([]DroneView, 0, len(st.Drones)),
		Zappers:          make([]ZapperView, 0, len(st.Zappers)),
		Particles:        slices.Clone(st.Particles),
		Score:            st.Score,
		Lives:            st.Lives,
		Multiplier:       st.Multiplier,
		Effects:          effectsOf(st.Timers),
		Difficulty:       st.Difficulty,
		SpawnIntervalMs:  st.SpawnIntervalMs,
		HazardIntervalMs: st.HazardIntervalMs,
		Stats:            st.Stats,
		Events:           slices.Clone(st.Events),
	}

	for _, o := range st.Orbs {
		snap.Orbs = append(snap.Orbs, OrbView{X: o.X, Y: o.Y, Size: e.OrbSize, Kind: o.Kind})
	}
	for _, o := range st.Obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	for _, d := range st.Drones {
		snap.Drones = append(snap.Drones, DroneView{X: d.X, Y: d.Y, Size: e.DroneSize})
	}
	for _, z := range st.Zappers {
		snap.Zappers = append(snap.Zappers, ZapperView{
			Y:         z.Y,
			Thickness: s.cfg.Zapper.Thickness,
			GapLeft:   z.GapLeft(),
			GapRight:  z.GapRight(),
		})
	}
	if snap.Particles == nil {
		snap.Particles = []Particle{}
	}

	return snap
}

func effectsOf(t Timers) Effects {
	effect := func(v float64) Effect {
		return Effect{Active: v > 0, Remaining: v}
	}
	return Effects{
		Combo:        effect(t.Combo),
		Boost:        effect(t.Boost),
		Shield:       effect(t.Shield),
		Invulnerable: effect(t.Invulnerable),
		Flash:        effect(t.Flash),
	}
}

// Hash folds the gameplay-relevant fields into a value for determinism checks.
// Particles are cosmetic and not included.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mixInt(int(s.Phase))
	mix(s.Player.X)
	mix(s.Player.Y)
	mixInt(s.Score)
	mixInt(s.Lives)
	mix(s.Multiplier)
	mix(s.Difficulty)
	for _, o := range s.Orbs {
		mix(o.X)
		mix(o.Y)
		mixInt(int(o.Kind))
	}
	for _, o := range s.Obstacles {
		mix(o.X)
		mix(o.Y)
		mix(o.W)
		mix(o.H)
	}
	for _, d := range s.Drones {
		mix(d.X)
		mix(d.Y)
	}
	for _, z := range s.Zappers {
		mix(z.Y)
		mix(z.GapLeft)
		mix(z.GapRight)
	}
	return h
}
