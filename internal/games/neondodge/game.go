package neondodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
)

// GameID is the identifier used by the CLI and the scoreboard.
const GameID = "neondodge"

// Visual characters for rendering
const (
	PlayerNose   = '▲'
	PlayerBody   = '█'
	ObstacleChar = '▓'
	DroneChar    = '◆'
	OrbChar      = '●'
	ZapperChar   = '═'
	ParticleChar = '·'
	LifeChar     = '♥'
)

func init() {
	registry.Register(GameID, "Neon Dodge", func(cfg config.NeonConfig) registry.Game {
		return NewGame(cfg)
	})
}

// Game adapts a Sim to the terminal platform: it owns pause state and
// scales the playfield onto the cell grid.
type Game struct {
	sim     *Sim
	runtime core.RuntimeConfig
	last    Snapshot
	paused  bool
}

// NewGame creates a game for the given configuration.
func NewGame(cfg config.NeonConfig) *Game {
	sim := New(cfg, 0)
	return &Game{sim: sim, last: sim.Snapshot()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Dodge"
}

// Reset starts a new run seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.sim.SetSeed(runtime.Seed)
	g.last = g.sim.Reset()
}

// Step advances the run unless paused.
func (g *Game) Step(nowMs float64, keys core.KeySet) core.GameState {
	if !g.paused {
		g.last = g.sim.Tick(nowMs, keys)
	}
	return g.State()
}

// Restart begins a new run after game over.
func (g *Game) Restart() {
	g.paused = false
	g.last = g.sim.Restart()
}

// SetPaused freezes or resumes the run. A finished run cannot be paused.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused && !g.last.GameOver()
}

// Last returns the snapshot produced by the most recent step.
func (g *Game) Last() Snapshot {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Lives:    g.last.Lives,
		GameOver: g.last.GameOver(),
		Paused:   g.paused,
	}
}

// Result summarizes the current run.
func (g *Game) Result() core.RunResult {
	return g.sim.Result()
}

// viewport maps playfield units onto screen cells.
type viewport struct {
	x, y   int // top-left inner cell
	w, h   int // inner size in cells
	sx, sy float64
}

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// layout fits the playfield under the HUD line, keeping its aspect ratio.
func (g *Game) layout(dst *core.Screen) viewport {
	pf := g.sim.cfg.Playfield
	innerH := max(1, dst.Height()-3)
	innerW := int(math.Round(float64(innerH) * pf.Width / pf.Height * cellAspect))
	if maxW := dst.Width() - 2; innerW > maxW {
		innerW = max(1, maxW)
	}
	return viewport{
		x:  (dst.Width()-innerW-2)/2 + 1,
		y:  2,
		w:  innerW,
		h:  innerH,
		sx: float64(innerW) / pf.Width,
		sy: float64(innerH) / pf.Height,
	}
}

func (v viewport) col(x float64) int { return v.x + int(math.Floor(x*v.sx)) }
func (v viewport) row(y float64) int { return v.y + int(math.Floor(y*v.sy)) }

// inside reports whether the cell lies within the playfield interior.
func (v viewport) inside(cx, cy int) bool {
	return cx >= v.x && cx < v.x+v.w && cy >= v.y && cy < v.y+v.h
}

func (v viewport) set(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if v.inside(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.last
	v := g.layout(dst)

	border := core.ColorGrid
	if snap.Effects.Flash.Active {
		border = core.ColorFlash
	}
	dst.DrawBox(v.x-1, v.y-1, v.w+2, v.h+2, border)

	for _, z := range snap.Zappers {
		cy := v.row(z.Y)
		left, right := v.col(z.GapLeft), v.col(z.GapRight)
		for cx := v.x; cx < v.x+v.w; cx++ {
			if cx >= left && cx <= right {
				continue
			}
			v.set(dst, cx, cy, ZapperChar, core.ColorZapper)
		}
	}

	for _, o := range snap.Obstacles {
		x0, y0 := v.col(o.X), v.row(o.Y)
		x1, y1 := v.col(o.X+o.W), v.row(o.Y+o.H)
		for cy := y0; cy <= max(y0, y1-1); cy++ {
			for cx := x0; cx <= max(x0, x1-1); cx++ {
				v.set(dst, cx, cy, ObstacleChar, core.ColorObstacle)
			}
		}
	}

	for _, d := range snap.Drones {
		v.set(dst, v.col(d.X), v.row(d.Y), DroneChar, core.ColorDrone)
	}

	for _, o := range snap.Orbs {
		v.set(dst, v.col(o.X), v.row(o.Y), OrbChar, orbColor(o.Kind))
	}

	for _, p := range snap.Particles {
		v.set(dst, v.col(p.X), v.row(p.Y), ParticleChar, p.Color)
	}

	g.drawPlayer(dst, v, snap)
	g.drawHUD(dst, snap)

	switch {
	case snap.GameOver():
		drawOverlay(dst, v, core.ColorFlash,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"R: Restart  B: Menu  Q: Quit",
		)
	case g.paused:
		drawOverlay(dst, v, core.ColorHUD,
			"PAUSED",
			"",
			"P: Resume  Q: Quit",
		)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	// Blink while invulnerable.
	if snap.Effects.Invulnerable.Active && (snap.Tick/4)%2 == 1 {
		return
	}

	color := core.ColorPlayer
	switch {
	case snap.Effects.Shield.Active:
		color = core.ColorShield
	case p.Boosted:
		color = core.ColorPlayerBoost
	}

	x0, y0 := v.col(p.X), v.row(p.Y)
	x1, y1 := max(x0, v.col(p.X+p.W)-1), max(y0, v.row(p.Y+p.H)-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r := PlayerBody
			if cy == y0 {
				r = PlayerNose
			}
			v.set(dst, cx, cy, r, color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	var sb strings.Builder
	fmt.Fprintf(&sb, " Score %d  %s  x%.2f",
		snap.Score, strings.Repeat(string(LifeChar), snap.Lives), snap.Multiplier)
	if e := snap.Effects.Boost; e.Active {
		fmt.Fprintf(&sb, "  BOOST %.1fs", e.Remaining)
	}
	if e := snap.Effects.Shield; e.Active {
		fmt.Fprintf(&sb, "  SHIELD %.1fs", e.Remaining)
	}
	dst.DrawTextColored(0, 0, sb.String(), core.ColorHUD)
}

// drawOverlay draws a bordered message box centered on the playfield.
func drawOverlay(dst *core.Screen, v viewport, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x := v.x + (v.w-boxW)/2
	y := v.y + (v.h-boxH)/2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, c)
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, y+1+i, l, c)
	}
}

func orbColor(k OrbKind) core.Color {
	switch k {
	case OrbBoost:
		return core.ColorBoostOrb
	case OrbShield:
		return core.ColorShield
	default:
		return core.ColorScoreOrb
	}
}
