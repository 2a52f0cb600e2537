package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette entries. Renderers map them to concrete terminal colors.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorPlayer
	ColorPlayerBoost
	ColorShield
	ColorScoreOrb
	ColorBoostOrb
	ColorObstacle
	ColorDrone
	ColorZapper
	ColorFlash
	ColorHUD
	ColorDim
)

// String returns the palette entry name.
func (c Color) String() string {
	switch c {
	case ColorGrid:
		return "grid"
	case ColorPlayer:
		return "player"
	case ColorPlayerBoost:
		return "player-boost"
	case ColorShield:
		return "shield"
	case ColorScoreOrb:
		return "orb"
	case ColorBoostOrb:
		return "boost"
	case ColorObstacle:
		return "obstacle"
	case ColorDrone:
		return "drone"
	case ColorZapper:
		return "zapper"
	case ColorFlash:
		return "flash"
	case ColorHUD:
		return "hud"
	case ColorDim:
		return "dim"
	default:
		return "default"
	}
}

// MarshalText encodes the color by palette name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
