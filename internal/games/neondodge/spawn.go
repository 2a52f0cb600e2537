package neondodge

import (
	"math"

	"github.com/vovakirdan/neon-dodge/internal/config"
)

// category is the outcome of a spawn roll.
type category uint8

const (
	categoryObstacle category = iota
	categoryOrb
	categoryDrone
)

// weightedTable resolves one uniform draw in [0, 1) against cumulative weights.
// Entry order is fixed so a seeded generator always yields the same sequence.
type weightedTable[T any] struct {
	items      []T
	cumulative []float64
	total      float64
}

func newWeightedTable[T any](items []T, weights []float64) weightedTable[T] {
	t := weightedTable[T]{}
	for i, item := range items {
		w := weights[i]
		if w <= 0 {
			continue
		}
		t.total += w
		t.items = append(t.items, item)
		t.cumulative = append(t.cumulative, t.total)
	}
	return t
}

// pick maps a draw r in [0, 1) to an entry.
func (t weightedTable[T]) pick(r float64) T {
	target := r * t.total
	for i, c := range t.cumulative {
		if target < c {
			return t.items[i]
		}
	}
	return t.items[len(t.items)-1]
}

func categoryTable(weights map[string]float64) weightedTable[category] {
	return newWeightedTable(
		[]category{categoryObstacle, categoryOrb, categoryDrone},
		[]float64{
			weights[config.CategoryObstacle],
			weights[config.CategoryOrb],
			weights[config.CategoryDrone],
		},
	)
}

func orbTable(weights map[string]float64) weightedTable[OrbKind] {
	return newWeightedTable(
		[]OrbKind{OrbScore, OrbShield, OrbBoost},
		[]float64{
			weights[config.OrbKindScore],
			weights[config.OrbKindShield],
			weights[config.OrbKindBoost],
		},
	)
}

// spawnEntities rolls for a new obstacle, orb or drone once the spawn interval has elapsed.
func (r *rules) spawnEntities(st *RunState, now float64) {
	if now-st.LastSpawnMs < st.SpawnIntervalMs {
		return
	}
	st.LastSpawnMs = now

	e := r.cfg.Entities
	width := r.cfg.Playfield.Width
	speedScale := r.ramp.EntitySpeedScale(st.Difficulty)
	x := r.between(e.SpawnMargin, width-e.SpawnMargin)

	switch r.categories.pick(r.rng.Float64()) {
	case categoryObstacle:
		w := r.sample(e.ObstacleWidth)
		h := r.sample(e.ObstacleHeight)
		st.Obstacles = append(st.Obstacles, Obstacle{
			X:     clampSpan(x-w/2, e.ObstacleMargin, width-w-e.ObstacleMargin),
			Y:     -h,
			W:     w,
			H:     h,
			Speed: r.sample(e.ObstacleSpeed) * speedScale,
		})

	case categoryOrb:
		kind := r.orbKinds.pick(r.rng.Float64())
		st.Orbs = append(st.Orbs, Orb{
			X:     x,
			Y:     -e.OrbSize,
			Speed: r.sample(e.OrbSpeed) * speedScale,
			Kind:  kind,
		})

	case categoryDrone:
		st.Drones = append(st.Drones, Drone{
			BaseX:     x,
			X:         x,
			Y:         -e.DroneSize,
			Speed:     r.sample(e.DroneSpeed) * speedScale,
			Amplitude: r.sample(e.DroneAmplitude),
			Angle:     r.rng.Float64() * 2 * math.Pi,
			Frequency: r.sample(e.DroneFrequency),
		})
	}
}

// spawnHazard drops a zapper once the hazard interval has elapsed.
func (r *rules) spawnHazard(st *RunState, now float64) {
	if now-st.LastHazardMs < st.HazardIntervalMs {
		return
	}
	st.LastHazardMs = now

	z := r.cfg.Zapper
	width := r.cfg.Playfield.Width
	gapWidth := r.sample(z.GapWidth)
	gapCenter := r.between(gapWidth/2+z.EdgeMargin, width-gapWidth/2-z.EdgeMargin)

	st.Zappers = append(st.Zappers, Zapper{
		Y:         -z.Thickness,
		Speed:     r.sample(z.Speed) * r.ramp.HazardSpeedScale(st.Difficulty),
		GapCenter: gapCenter,
		GapWidth:  gapWidth,
	})
}

// between draws uniformly from [lo, hi).
func (r *rules) between(lo, hi float64) float64 {
	return r.rng.Float64()*(hi-lo) + lo
}

func (r *rules) sample(rg config.Range) float64 {
	return r.between(rg.Min, rg.Max)
}

// clampSpan clamps v to [lo, hi], preferring lo when the span is inverted.
func clampSpan(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
