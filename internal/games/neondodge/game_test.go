package neondodge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
)

func newTestGame(t *testing.T) (*Game, *core.Screen) {
	t.Helper()
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
	g := NewGame(quietConfig())
	g.Reset(rc)
	g.Step(0, nil)
	return g, core.NewScreen(rc.ScreenW, rc.ScreenH)
}

func TestGameIsRegistered(t *testing.T) {
	g, err := registry.Create(GameID, config.DefaultNeonConfig())
	require.NoError(t, err)
	assert.Equal(t, "neondodge", g.ID())
	assert.Equal(t, "Neon Dodge", g.Title())
}

func TestGameRenderHUD(t *testing.T) {
	g, screen := newTestGame(t)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Score 0")
	assert.Contains(t, hud, "♥♥♥")
	assert.Contains(t, hud, "x1.00")
	assert.Contains(t, screen.String(), string(PlayerNose))
	assert.Equal(t, '┌', screen.Get(24-1, 1), "playfield border sits under the HUD")
}

func TestGameRenderEntities(t *testing.T) {
	g, screen := newTestGame(t)
	g.sim.state.Orbs = append(g.sim.state.Orbs, Orb{X: 100, Y: 100, Kind: OrbBoost})
	g.sim.state.Drones = append(g.sim.state.Drones, Drone{BaseX: 300, X: 300, Y: 200, Frequency: 1})
	g.sim.state.Zappers = append(g.sim.state.Zappers, Zapper{Y: 300, GapCenter: 240, GapWidth: 120})
	g.Step(0, nil)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, string(OrbChar))
	assert.Contains(t, out, string(DroneChar))
	assert.Contains(t, out, string(ZapperChar))

	v := g.layout(screen)
	orb := screen.GetCell(v.col(100), v.row(100))
	assert.Equal(t, core.ColorBoostOrb, orb.Color)
	gap := screen.GetCell(v.col(240), v.row(300))
	assert.Equal(t, ' ', gap.Rune, "zapper gap is left open")
}

func TestGamePause(t *testing.T) {
	g, screen := newTestGame(t)
	tick := g.Last().Tick

	g.SetPaused(true)
	state := g.Step(1000, core.NewKeySet(core.KeyRight))
	assert.True(t, state.Paused)
	assert.Equal(t, tick, g.Last().Tick, "paused games do not advance")

	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.SetPaused(false)
	g.Step(1000+frameMs, nil)
	assert.Equal(t, tick+1, g.Last().Tick)
}

func TestGameOverFlow(t *testing.T) {
	g, screen := newTestGame(t)
	g.sim.state.Lives = 1
	g.sim.state.Obstacles = append(g.sim.state.Obstacles, obstacleOnPlayer(g.sim))

	state := g.Step(frameMs, nil)
	require.True(t, state.GameOver)
	assert.Equal(t, 0, state.Lives)

	g.SetPaused(true)
	assert.False(t, g.State().Paused, "finished runs cannot be paused")

	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")

	res := g.Result()
	assert.Equal(t, int64(12345), res.Seed)
	assert.Equal(t, 1, res.HitsTaken)

	g.Restart()
	state = g.State()
	assert.False(t, state.GameOver)
	assert.Equal(t, 3, state.Lives)
}

func TestGameRenderSmallScreen(t *testing.T) {
	g, _ := newTestGame(t)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {10, 3}, {200, 60}} {
		screen := core.NewScreen(size[0], size[1])
		assert.NotPanics(t, func() { g.Render(screen) }, "size %v", size)
	}
}

func TestHUDShowsEffects(t *testing.T) {
	g, screen := newTestGame(t)
	g.sim.state.Timers.Boost = 2
	g.sim.state.Timers.Shield = 3
	g.Step(0, nil)
	g.Render(screen)

	hud := strings.TrimSpace(screen.Row(0))
	assert.Contains(t, hud, "BOOST 2.0s")
	assert.Contains(t, hud, "SHIELD 3.0s")
}
