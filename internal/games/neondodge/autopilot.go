package neondodge

import (
	"math"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
)

// Autopilot is a deterministic input source for headless runs.
// It reads only the snapshot, so the same run always produces the same keys.
type Autopilot struct {
	lookahead float64 // how far above the player threats are considered
	clearance float64 // horizontal padding around the player's column
	deadZone  float64 // distance to a target that counts as aligned
	width     float64
}

// NewAutopilot creates an autopilot tuned for the given playfield.
func NewAutopilot(cfg config.NeonConfig) *Autopilot {
	return &Autopilot{
		lookahead: cfg.Playfield.Height / 3,
		clearance: cfg.Player.Width / 2,
		deadZone:  cfg.Player.Width / 6,
		width:     cfg.Playfield.Width,
	}
}

// Keys picks the keys to hold for the next tick.
// Priorities: line up with a nearby zapper gap, dodge a falling hazard in
// the player's column, chase the nearest orb.
func (a *Autopilot) Keys(snap Snapshot) core.KeySet {
	keys := core.NewKeySet()
	if snap.GameOver() {
		return keys
	}

	p := snap.Player
	center := p.X + p.W/2

	if z, ok := a.threateningZapper(snap); ok {
		a.steer(keys, center, (z.GapLeft+z.GapRight)/2)
		return keys
	}

	if hx, ok := a.hazardInColumn(snap); ok {
		target := hx + p.W + a.clearance*2
		if hx > center {
			target = hx - p.W - a.clearance*2
		}
		if target < p.W || target > a.width-p.W {
			// Cornered: go round the other side.
			target = 2*hx - target
		}
		a.steer(keys, center, target)
		return keys
	}

	if ox, ok := a.nearestOrb(snap); ok {
		a.steer(keys, center, ox)
	}
	return keys
}

func (a *Autopilot) steer(keys core.KeySet, from, to float64) {
	switch {
	case to < from-a.deadZone:
		keys.Press(core.KeyLeft)
	case to > from+a.deadZone:
		keys.Press(core.KeyRight)
	}
}

// threateningZapper returns the lowest zapper that has not yet passed the player.
func (a *Autopilot) threateningZapper(snap Snapshot) (ZapperView, bool) {
	p := snap.Player
	var best ZapperView
	found := false
	for _, z := range snap.Zappers {
		if z.Y > p.Y+p.H || z.Y+z.Thickness < p.Y-a.lookahead {
			continue
		}
		if !found || z.Y > best.Y {
			best, found = z, true
		}
	}
	return best, found
}

// hazardInColumn returns the center x of the closest obstacle or drone about to hit the player.
func (a *Autopilot) hazardInColumn(snap Snapshot) (float64, bool) {
	p := snap.Player
	left, right := p.X-a.clearance, p.X+p.W+a.clearance
	top := p.Y - a.lookahead

	bestY := math.Inf(-1)
	bestX := 0.0
	consider := func(x0, x1, y0, y1 float64) {
		if x1 < left || x0 > right || y1 < top || y0 > p.Y+p.H {
			return
		}
		if y1 > bestY {
			bestY, bestX = y1, (x0+x1)/2
		}
	}
	for _, o := range snap.Obstacles {
		consider(o.X, o.X+o.W, o.Y, o.Y+o.H)
	}
	for _, d := range snap.Drones {
		half := d.Size / 2
		consider(d.X-half, d.X+half, d.Y-half, d.Y+half)
	}
	return bestX, !math.IsInf(bestY, -1)
}

// nearestOrb returns the x of the lowest orb still above the player's feet.
func (a *Autopilot) nearestOrb(snap Snapshot) (float64, bool) {
	p := snap.Player
	bestY := math.Inf(-1)
	bestX := 0.0
	for _, o := range snap.Orbs {
		if o.Y > p.Y+p.H {
			continue
		}
		if o.Y > bestY {
			bestY, bestX = o.Y, o.X
		}
	}
	return bestX, !math.IsInf(bestY, -1)
}

// Autoplay drives s with the autopilot at a fixed frame step until the run
// ends or maxTicks ticks have been played, and returns the last snapshot.
// The clock starts at startMs; a non-positive frameMs uses the reference frame.
func Autoplay(s *Sim, pilot *Autopilot, startMs, frameMs float64, maxTicks int) Snapshot {
	if frameMs <= 0 {
		frameMs = s.cfg.Timing.ReferenceFrameMs
	}
	snap := s.Snapshot()
	for i := 0; i < maxTicks && !snap.GameOver(); i++ {
		snap = s.Tick(startMs+float64(i)*frameMs, pilot.Keys(snap))
	}
	return snap
}
