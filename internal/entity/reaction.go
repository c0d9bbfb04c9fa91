package entity

import (
	"math/rand"
	"time"
)

// Reaction names the evaluator's outcome tiers.
type Reaction string

const (
	ReactionNone   Reaction = ""
	ReactionNotice Reaction = "notice"
	ReactionMicro  Reaction = "micro"
	ReactionShift  Reaction = "shift"
)

// Per-tier gate probabilities. Each crossed threshold rolls its own
// independent gate; three separate draws, deliberately not one.
const (
	noticeChance = 0.25
	microChance  = 0.08
	shiftChance  = 0.02
)

// Pressure is the scalar the reaction gates compare against.
func (st *State) Pressure() float64 {
	return clamp01(0.35*st.Presence.Tension +
		0.25*st.Presence.Entropy +
		0.2*(1-st.InnerState.Trust) +
		0.2*st.Perception.PatternConfidence)
}

// EvaluateReaction rolls the tier gates from highest to lowest and
// applies the winning tier's perturbation. Flavor layer only: state
// consistency never depends on a reaction firing.
func EvaluateReaction(st *State, r *rand.Rand, now time.Time) Reaction {
	pressure := st.Pressure()

	if pressure >= st.Thresholds.Shift && r.Float64() < shiftChance {
		st.majorShift(r, now)
		return ReactionShift
	}
	if pressure >= st.Thresholds.Micro && r.Float64() < microChance {
		st.microReaction(r, now)
		return ReactionMicro
	}
	if pressure >= st.Thresholds.Notice && r.Float64() < noticeChance {
		st.notice(now)
		return ReactionNotice
	}
	return ReactionNone
}

func (st *State) notice(now time.Time) {
	st.Perception.PatternConfidence = clamp01(st.Perception.PatternConfidence + 0.02)
	st.Presence.LastNoticeAt = now
}

func (st *State) microReaction(r *rand.Rand, now time.Time) {
	st.Laws.Distortion = clamp01(st.Laws.Distortion + 0.03*(r.Float64()-0.3))
	st.Presence.LastMicroAt = now
}

func (st *State) majorShift(r *rand.Rand, now time.Time) {
	st.Laws.Distortion = clamp01(st.Laws.Distortion + 0.2*(r.Float64()*2-1))
	st.Laws.Gravity = clamp01(st.Laws.Gravity + 0.15*(r.Float64()*2-1))
	st.Laws.Clarity = clamp01(st.Laws.Clarity - 0.1*r.Float64())
	st.Conflicts.InnerOuter = clamp01(st.Conflicts.InnerOuter + 0.1)
	st.Presence.LastShiftAt = now
}
