package neondodge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
)

func TestAutopilotKeys(t *testing.T) {
	cfg := config.DefaultNeonConfig()
	pilot := NewAutopilot(cfg)
	base := New(cfg, 1).Snapshot()
	p := base.Player // center x = 240

	tests := []struct {
		name string
		edit func(*Snapshot)
		want []core.Key
	}{
		{
			name: "idle",
			edit: func(*Snapshot) {},
			want: nil,
		},
		{
			name: "chases orb",
			edit: func(s *Snapshot) {
				s.Orbs = []OrbView{{X: 400, Y: 300, Size: 16, Kind: OrbScore}}
			},
			want: []core.Key{core.KeyRight},
		},
		{
			name: "lines up with zapper gap",
			edit: func(s *Snapshot) {
				s.Orbs = []OrbView{{X: 400, Y: 300, Size: 16, Kind: OrbScore}}
				s.Zappers = []ZapperView{{Y: p.Y - 50, Thickness: 18, GapLeft: 40, GapRight: 160}}
			},
			want: []core.Key{core.KeyLeft},
		},
		{
			name: "ignores zapper that passed",
			edit: func(s *Snapshot) {
				s.Zappers = []ZapperView{{Y: p.Y + p.H + 1, Thickness: 18, GapLeft: 40, GapRight: 160}}
			},
			want: nil,
		},
		{
			name: "sidesteps obstacle right of center",
			edit: func(s *Snapshot) {
				s.Obstacles = []ObstacleView{{X: 245, Y: p.Y - 120, W: 30, H: 70}}
			},
			want: []core.Key{core.KeyLeft},
		},
		{
			name: "sidesteps drone left of center",
			edit: func(s *Snapshot) {
				s.Drones = []DroneView{{X: 230, Y: p.Y - 60, Size: 28}}
			},
			want: []core.Key{core.KeyRight},
		},
		{
			name: "stops on game over",
			edit: func(s *Snapshot) {
				s.Phase = PhaseGameOver
				s.Orbs = []OrbView{{X: 400, Y: 300, Size: 16, Kind: OrbScore}}
			},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.edit(&snap)
			got := pilot.Keys(snap).Sorted()
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAutoplayIsDeterministic(t *testing.T) {
	cfg := config.DefaultNeonConfig()
	run := func() Snapshot {
		return Autoplay(New(cfg, 42), NewAutopilot(cfg), 0, 0, 3000)
	}

	a, b := run(), run()
	assert.Equal(t, a.Tick, b.Tick)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.LessOrEqual(t, a.Tick, uint64(3000))
}

func TestAutoplayStopsAtGameOver(t *testing.T) {
	s := New(quietConfig(), 1)
	s.state.Lives = 1
	s.state.Obstacles = append(s.state.Obstacles, obstacleOnPlayer(s))

	snap := Autoplay(s, NewAutopilot(s.Config()), 1000, 16, 100)
	assert.True(t, snap.GameOver())
	assert.Equal(t, uint64(1), snap.Tick)

	res := s.Result()
	assert.Equal(t, 1, res.HitsTaken)
	assert.Equal(t, int64(1), res.Seed)
}

func TestAutoplayZeroTicks(t *testing.T) {
	s := New(quietConfig(), 1)
	snap := Autoplay(s, NewAutopilot(s.Config()), 0, 16, 0)
	assert.Equal(t, uint64(0), snap.Tick)
}
