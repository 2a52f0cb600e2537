package neondodge

import (
	"math"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// Particle burst sizes per trigger.
const (
	burstScoreOrb  = 14
	burstBoostOrb  = 18
	burstShieldOrb = 16
	burstShieldHit = 24
	burstDroneHit  = 20
	burstZapperHit = 24
)

// resolveCollisions tests the player against every live entity.
// Orbs are always collected. Obstacle, drone and zapper hits share a single
// damage flag, so at most one life is lost per tick.
func (r *rules) resolveCollisions(st *RunState) {
	player := st.Player.Box()
	e := r.cfg.Entities

	orbs := st.Orbs[:0]
	for _, o := range st.Orbs {
		if player.Intersects(o.Box(e.OrbSize)) {
			r.collectOrb(st, o)
			continue
		}
		orbs = append(orbs, o)
	}
	st.Orbs = orbs

	damaged := false

	obstacles := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if player.Intersects(o.Box()) {
			damaged = true
			continue
		}
		obstacles = append(obstacles, o)
	}
	st.Obstacles = obstacles

	drones := st.Drones[:0]
	for _, d := range st.Drones {
		if player.Intersects(d.Box(e.DroneSize)) {
			damaged = true
			r.burst(st, d.X, d.Y, core.ColorDrone, burstDroneHit)
			continue
		}
		drones = append(drones, d)
	}
	st.Drones = drones

	center := player.CenterX()
	for _, z := range st.Zappers {
		if !player.SpansY(z.Y, z.Y+r.cfg.Zapper.Thickness) || z.InGap(center) {
			continue
		}
		damaged = true
		r.burst(st, center, z.Y, core.ColorZapper, burstZapperHit)
	}

	if damaged {
		r.applyDamage(st)
	}
}

// collectOrb applies the orb's effect and scores it at the current multiplier.
func (r *rules) collectOrb(st *RunState, o Orb) {
	sc := r.cfg.Scoring
	run := r.cfg.Run

	var points int
	switch o.Kind {
	case OrbScore:
		points = roundPoints(sc.ScoreOrbPoints * st.Multiplier)
		r.increaseCombo(st, sc.ScoreOrbCombo)
		r.burst(st, o.X, o.Y, core.ColorScoreOrb, burstScoreOrb)
		st.Stats.ScoreOrbs++
	case OrbBoost:
		points = roundPoints(sc.BoostOrbPoints * st.Multiplier)
		st.Timers.Boost = run.BoostDuration
		r.increaseCombo(st, sc.BoostOrbCombo)
		r.burst(st, o.X, o.Y, core.ColorBoostOrb, burstBoostOrb)
		st.Stats.BoostOrbs++
	case OrbShield:
		points = roundPoints(sc.ShieldOrbPoints * st.Multiplier)
		st.Timers.Shield = run.ShieldDuration
		r.burst(st, o.X, o.Y, core.ColorShield, burstShieldOrb)
		st.Stats.ShieldOrbs++
	default:
		return
	}

	st.Score += points
	st.Events = append(st.Events, Event{Kind: EventOrbCollected, Orb: o.Kind, Points: points})
}

// increaseCombo refreshes the combo window and raises the multiplier up to its cap.
func (r *rules) increaseCombo(st *RunState, amount float64) {
	st.Timers.Combo = r.cfg.Run.ComboWindow
	st.Multiplier = math.Min(r.cfg.Run.MaxMultiplier, st.Multiplier+amount)
	st.Stats.PeakMultiplier = math.Max(st.Stats.PeakMultiplier, st.Multiplier)
}

// applyDamage resolves one damaging contact.
// A shield absorbs it. An active invulnerability window ignores it without
// being extended. Otherwise a life is lost and a new window starts.
func (r *rules) applyDamage(st *RunState) {
	t := &st.Timers
	p := st.Player

	if t.Shield > 0 {
		t.Shield = 0
		r.burst(st, p.X+p.W/2, p.Y, core.ColorShield, burstShieldHit)
		st.Stats.ShieldsAbsorbed++
		st.Events = append(st.Events, Event{Kind: EventShieldAbsorbed})
		return
	}

	if t.Invulnerable > 0 {
		st.Stats.HitsIgnored++
		st.Events = append(st.Events, Event{Kind: EventHitIgnored})
		return
	}

	st.Lives = max(0, st.Lives-1)
	st.Multiplier = 1
	t.Combo = 0
	t.Flash = r.cfg.Run.FlashDuration
	t.Invulnerable = r.cfg.Run.InvulnerableDuration
	st.Stats.HitsTaken++
	st.Events = append(st.Events, Event{Kind: EventLifeLost})

	if st.Lives == 0 {
		st.Phase = PhaseGameOver
		st.Events = append(st.Events, Event{Kind: EventGameOver})
	}
}

// roundPoints rounds half away from zero.
func roundPoints(v float64) int {
	return int(math.Round(v))
}
