// Package signal turns raw journal text into the compact signal the
// entity consumes: sentiment, intensity and per-theme weighting. No
// language understanding happens here, only lexicon and theme matching.
package signal

import "strings"

// referenceTokens is the entry length at which the length factor of
// intensity saturates.
const referenceTokens = 30.0

// Signal is the extracted reading of one journal entry.
type Signal struct {
	Sentiment float64     `json:"sentiment"` // -1..1
	Intensity float64     `json:"intensity"` // 0..1
	Themes    ThemeWeight `json:"themes"`
}

// ThemeWeight holds per-theme fractions summing to 1, or all zero when
// no theme word appeared.
type ThemeWeight struct {
	Conflict  float64 `json:"conflict"`
	Stability float64 `json:"stability"`
	Curiosity float64 `json:"curiosity"`
}

// IsZero reports whether the signal carries no reading at all.
func (s Signal) IsZero() bool {
	return s.Sentiment == 0 && s.Intensity == 0 &&
		s.Themes.Conflict == 0 && s.Themes.Stability == 0 && s.Themes.Curiosity == 0
}

// Extract scores text. Empty or whitespace-only input returns the zero
// signal; callers must skip the state pipeline in that case.
func Extract(text string) Signal {
	if strings.TrimSpace(text) == "" {
		return Signal{}
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Signal{}
	}

	var (
		pos, neg       float64
		boost          float64
		conflictSum    float64
		stabilitySum   float64
		curiositySum   float64
		polarityHits   int
		themeHits      int
		negationArmed  bool
	)

	for _, raw := range tokens {
		tok := normalizeToken(raw)
		if tok == "" {
			continue
		}

		if negations[tok] {
			negationArmed = true
			continue
		}

		intensW, isIntens := lookup(intensifiers, tok)
		posW, isPos := lookup(positives, tok)
		negW, isNeg := lookup(negatives, tok)
		confW, isConf := lookup(themeConflict, tok)
		stabW, isStab := lookup(themeStability, tok)
		curW, isCur := lookup(themeCuriosity, tok)

		if isIntens {
			boost += intensW
			// Intensifiers never double as polarity words.
			isPos, isNeg = false, false
		}

		flip := false
		if negationArmed && (isIntens || isPos || isNeg || isConf || isStab || isCur) {
			// The armed flag is consumed by the next lexicon hit of any
			// kind; only polarity gets its sign flipped. Unknown tokens
			// pass through without consuming it.
			flip = isPos || isNeg
			negationArmed = false
		}

		if isPos {
			if flip {
				neg += posW
			} else {
				pos += posW
			}
			polarityHits++
		}
		if isNeg {
			if flip {
				pos += negW
			} else {
				neg += negW
			}
			polarityHits++
		}

		if isConf {
			conflictSum += confW
			themeHits++
		}
		if isStab {
			stabilitySum += stabW
			themeHits++
		}
		if isCur {
			curiositySum += curW
			themeHits++
		}
	}

	out := Signal{}

	if total := pos + neg; total > 0 {
		out.Sentiment = clamp((pos-neg)/total, -1, 1)
	}

	if themeTotal := conflictSum + stabilitySum + curiositySum; themeTotal > 0 {
		out.Themes.Conflict = conflictSum / themeTotal
		out.Themes.Stability = stabilitySum / themeTotal
		out.Themes.Curiosity = curiositySum / themeTotal
	}

	n := float64(len(tokens))
	lengthFactor := clamp(n/referenceTokens, 0, 1)
	polarityDensity := clamp(4*float64(polarityHits)/n, 0, 1)
	themeDensity := clamp(4*float64(themeHits)/n, 0, 1)

	out.Intensity = clamp(
		0.4*lengthFactor+
			0.35*polarityDensity+
			0.35*themeDensity+
			0.25*clamp(boost, 0, 1),
		0, 1)

	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
