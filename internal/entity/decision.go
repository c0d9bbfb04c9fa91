package entity

import "time"

// MaxDecisionDelta bounds how far a single decision moves any world
// parameter. Decisions nudge, they never rewrite.
const MaxDecisionDelta = 0.05

// Decision is a structured answer set: named world parameters with
// signed weights in [-1,1]. Unknown keys are ignored.
type Decision map[string]float64

// ApplyDecision moves the slow world parameters by bounded deltas. The
// text pipeline never touches these; only decisions and reactions do.
func ApplyDecision(st *State, d Decision, now time.Time) {
	for key, w := range d {
		delta := clamp11(w) * MaxDecisionDelta
		switch key {
		case "distortion":
			st.Laws.Distortion = clamp01(st.Laws.Distortion + delta)
		case "clarity":
			st.Laws.Clarity = clamp01(st.Laws.Clarity + delta)
		case "gravity":
			st.Laws.Gravity = clamp01(st.Laws.Gravity + delta)
		case "expression":
			st.Drives.Expression = clamp01(st.Drives.Expression + delta)
		case "connection":
			st.Drives.Connection = clamp01(st.Drives.Connection + delta)
		case "rest":
			st.Drives.Rest = clamp01(st.Drives.Rest + delta)
		case "patternConfidence":
			st.Perception.PatternConfidence = clamp01(st.Perception.PatternConfidence + delta)
		case "signalClarity":
			st.Perception.SignalClarity = clamp01(st.Perception.SignalClarity + delta)
		case "innerOuter":
			st.Conflicts.InnerOuter = clamp01(st.Conflicts.InnerOuter + delta)
		case "knownUnknown":
			st.Conflicts.KnownUnknown = clamp01(st.Conflicts.KnownUnknown + delta)
		case "notice":
			st.Thresholds.Notice = clamp01(st.Thresholds.Notice + delta)
		case "micro":
			st.Thresholds.Micro = clamp01(st.Thresholds.Micro + delta)
		case "shift":
			st.Thresholds.Shift = clamp01(st.Thresholds.Shift + delta)
		}
	}
	st.Presence.Mood = ClassifyMood(st.Presence, st.InnerState)
	st.Touch(now)
}
