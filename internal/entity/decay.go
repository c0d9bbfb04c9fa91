package entity

import (
	"time"

	"aurelia/internal/signal"
)

// DecayFactor pulls every fast scalar toward its baseline once per
// accepted entry, before the new signal lands. Repeated small entries
// therefore converge toward baseline instead of accumulating.
const DecayFactor = 0.92

// ApplyDecay moves presence and inner state one step toward baseline.
func ApplyDecay(st *State) {
	p := &st.Presence
	p.Awareness = decayToward(p.Awareness, BaseAwareness)
	p.Tension = decayToward(p.Tension, BaseTension)
	p.Entropy = decayToward(p.Entropy, BaseEntropy)
	p.Curiosity = decayToward(p.Curiosity, BaseCuriosity)

	in := &st.InnerState
	in.Trust = decayToward(in.Trust, BaseTrust)
	in.Fear = decayToward(in.Fear, BaseFear)
	in.Stability = decayToward(in.Stability, BaseStability)
	in.Curiosity = decayToward(in.Curiosity, BaseInnerCuriosity)
}

func decayToward(value, baseline float64) float64 {
	return clamp01(baseline + (value-baseline)*DecayFactor)
}

// ApplyEntry runs the per-entry update order: decay, memory aggregation,
// signal deltas, mood. Daily bookkeeping and the event log are the
// caller's steps. Zero signals must be filtered out before this point.
func ApplyEntry(st *State, sig signal.Signal, now time.Time) {
	ApplyDecay(st)
	updateMemory(st, sig, now)
	applyDeltas(st, sig)
	st.Presence.Mood = ClassifyMood(st.Presence, st.InnerState)
	st.Touch(now)
}

// applyDeltas adds the intensity-scaled signal contribution to presence
// and inner state. Every write clamps.
func applyDeltas(st *State, sig signal.Signal) {
	i := sig.Intensity
	pos := sig.Sentiment
	if pos < 0 {
		pos = 0
	}
	neg := -sig.Sentiment
	if neg < 0 {
		neg = 0
	}
	th := sig.Themes
	instability := clamp01(0.7*th.Conflict + 0.3*th.Curiosity - 0.5*th.Stability)

	p := &st.Presence
	p.Tension = clamp01(p.Tension + i*(0.25*th.Conflict+0.2*neg))
	p.Entropy = clamp01(p.Entropy + i*0.25*instability)
	p.Curiosity = clamp01(p.Curiosity + i*0.3*th.Curiosity)
	p.Awareness = clamp01(p.Awareness + i*0.15)

	in := &st.InnerState
	in.Fear = clamp01(in.Fear + i*0.25*neg)
	in.Trust = clamp01(in.Trust + i*0.25*pos)
	in.Stability = clamp01(in.Stability + i*0.2*(th.Stability-th.Conflict))
	in.Curiosity = clamp01(in.Curiosity + i*0.3*th.Curiosity)
}
