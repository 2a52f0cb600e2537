package neondodge

import (
	"math"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// processInput resolves the held keys to movement axes and moves the player.
func (r *rules) processInput(st *RunState, delta float64, keys core.KeySet) {
	pc := r.cfg.Player
	p := &st.Player

	p.VX = keys.Axis(core.LeftKeys, core.RightKeys)
	p.VY = keys.Axis(core.UpKeys, core.DownKeys)

	vertical := pc.VerticalSpeed
	p.Speed = pc.Speed
	if st.Timers.Boost > 0 {
		p.Speed = pc.BoostSpeed
		vertical += pc.BoostVerticalBonus
	}

	scale := r.frameScale(delta)
	width, height := r.cfg.Playfield.Width, r.cfg.Playfield.Height
	p.X = clampSpan(p.X+float64(p.VX)*p.Speed*scale, pc.MarginX, width-p.W-pc.MarginX)
	p.Y = clampSpan(p.Y+float64(p.VY)*vertical*scale, pc.MarginTop, height-p.H-pc.MarginBottom)
}

// advanceEntities moves everything that falls and drops what left the playfield.
// Slices are filtered in place.
func (r *rules) advanceEntities(st *RunState, delta float64) {
	scale := r.frameScale(delta)
	height := r.cfg.Playfield.Height
	e := r.cfg.Entities

	orbs := st.Orbs[:0]
	for _, o := range st.Orbs {
		o.Y += o.Speed * scale
		if o.Y < height+e.OrbSize {
			orbs = append(orbs, o)
		}
	}
	st.Orbs = orbs

	obstacles := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		o.Y += o.Speed * scale
		if o.Y < height+o.H {
			obstacles = append(obstacles, o)
		}
	}
	st.Obstacles = obstacles

	drones := st.Drones[:0]
	for _, d := range st.Drones {
		d.Y += d.Speed * scale
		d.Angle += delta * e.DroneAngularVel * d.Frequency
		d.X = clampSpan(d.BaseX+math.Sin(d.Angle)*d.Amplitude, e.DroneMargin, r.cfg.Playfield.Width-e.DroneMargin)
		if d.Y < height+e.DroneSize {
			drones = append(drones, d)
		}
	}
	st.Drones = drones

	zappers := st.Zappers[:0]
	for _, z := range st.Zappers {
		z.Y += z.Speed * scale
		if z.Y < height+r.cfg.Zapper.Thickness {
			zappers = append(zappers, z)
		}
	}
	st.Zappers = zappers

	r.advanceParticles(st, delta)
}

func (r *rules) advanceParticles(st *RunState, delta float64) {
	scale := r.frameScale(delta)
	seconds := delta / 1000

	particles := st.Particles[:0]
	for _, p := range st.Particles {
		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.Life -= seconds
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	st.Particles = particles
}

// burst emits count sparks at (x, y).
func (r *rules) burst(st *RunState, x, y float64, color core.Color, count int) {
	for range count {
		st.Particles = append(st.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    r.between(-1.5, 1.5),
			VY:    r.between(-2, -0.4),
			Life:  r.between(0.4, 0.9),
			Color: color,
		})
	}
}
