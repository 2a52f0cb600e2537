package neondodge

import "math"

// decayTimers counts every effect timer down by the elapsed time and ramps difficulty.
// The multiplier drops back to 1 when the combo window runs out.
func (r *rules) decayTimers(st *RunState, delta float64) {
	seconds := delta / 1000
	t := &st.Timers

	t.Boost = decay(t.Boost, seconds)
	t.Shield = decay(t.Shield, seconds)
	t.Invulnerable = decay(t.Invulnerable, seconds)
	t.Flash = decay(t.Flash, seconds)

	if t.Combo > 0 {
		t.Combo = decay(t.Combo, seconds)
		if t.Combo == 0 {
			st.Multiplier = 1
		}
	}

	st.Difficulty = r.ramp.Advance(st.Difficulty, delta)
	st.SpawnIntervalMs = r.ramp.SpawnInterval(st.Difficulty)
	st.HazardIntervalMs = r.ramp.HazardInterval(st.Difficulty)
	st.Stats.ElapsedMs += delta
}

func decay(v, by float64) float64 {
	return math.Max(0, v-by)
}
