package entity

// ClassifyMood maps presence and inner state to the surface mood.
// The rule chain is ordered; the first match wins, so high fear plus
// tension reads hostile even when curiosity is rule-3 high.
func ClassifyMood(p Presence, in InnerState) Mood {
	switch {
	case in.Fear > 0.7 && p.Tension > 0.6:
		return MoodHostile
	case p.Tension > 0.65 || p.Entropy > 0.65:
		return MoodDisturbed
	case p.Curiosity > 0.6:
		return MoodCurious
	case in.Trust > 0.65 && p.Tension < 0.3:
		return MoodCalm
	default:
		return MoodObserving
	}
}
