package neondodge

import (
	"fmt"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
)

// OrbKind identifies the effect of a collectible orb.
type OrbKind uint8

const (
	OrbNone OrbKind = iota
	OrbScore
	OrbShield
	OrbBoost
)

// String returns the orb kind name used in configs and snapshots.
func (k OrbKind) String() string {
	switch k {
	case OrbScore:
		return config.OrbKindScore
	case OrbShield:
		return config.OrbKindShield
	case OrbBoost:
		return config.OrbKindBoost
	case OrbNone:
		return "none"
	default:
		return fmt.Sprintf("orb(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name.
func (k OrbKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Player is the controllable ship. X and Y are the top-left corner.
type Player struct {
	X, Y  float64
	W, H  float64
	VX    int     // horizontal input axis: -1, 0 or 1
	VY    int     // vertical input axis: -1, 0 or 1
	Speed float64 // horizontal speed applied on the last tick
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Orb is a collectible. X and Y are its center.
type Orb struct {
	X, Y  float64
	Speed float64
	Kind  OrbKind
}

// Box returns the orb hitbox for the given orb size.
func (o Orb) Box(size float64) core.Box {
	return core.CenteredBox(o.X, o.Y, size)
}

// Obstacle is a falling block. X and Y are the top-left corner.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Box returns the obstacle hitbox.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Drone falls while swaying sinusoidally around BaseX. X and Y are its center.
type Drone struct {
	BaseX     float64
	X, Y      float64
	Speed     float64
	Angle     float64
	Amplitude float64
	Frequency float64
}

// Box returns the drone hitbox for the given drone size.
func (d Drone) Box(size float64) core.Box {
	return core.CenteredBox(d.X, d.Y, size)
}

// Zapper is a full-width hazard bar with a safe gap. Y is the top of the bar.
type Zapper struct {
	Y         float64
	Speed     float64
	GapCenter float64
	GapWidth  float64
}

// GapLeft returns the left edge of the safe gap.
func (z Zapper) GapLeft() float64 {
	return z.GapCenter - z.GapWidth/2
}

// GapRight returns the right edge of the safe gap.
func (z Zapper) GapRight() float64 {
	return z.GapCenter + z.GapWidth/2
}

// InGap reports whether x lies inside the safe gap, edges included.
func (z Zapper) InGap(x float64) bool {
	return x >= z.GapLeft() && x <= z.GapRight()
}

// Particle is a cosmetic spark. Life is the remaining lifetime in seconds.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}
