package entity

import (
	"time"

	"github.com/google/uuid"

	"aurelia/internal/rng"
	"aurelia/internal/signal"
)

const (
	// EpochWindow is the number of entries that crystallize into one epoch.
	EpochWindow = 7
	// MaxEpochs bounds the epoch ring; the oldest record is evicted first.
	MaxEpochs = 12
)

// midFactor reacts within days, longFactor over weeks. Both scale with
// entry intensity inside fixed bounds.
func midFactor(intensity float64) float64 {
	return clampRange(0.12*(0.55+intensity*0.45), 0.05, 0.25)
}

func longFactor(intensity float64) float64 {
	return clampRange(0.04*(0.4+intensity*0.6), 0.01, 0.12)
}

// updateMemory blends the new signal into both memory tracks, drifts
// geography after the long track moved, and feeds the epoch buffer.
func updateMemory(st *State, sig signal.Signal, now time.Time) {
	blendTrack(&st.MidMemory, sig, midFactor(sig.Intensity))
	blendTrack(&st.LongMemory, sig, longFactor(sig.Intensity))
	st.driftGeography(sig.Intensity)

	buf := &st.EpochBuffer
	buf.Count++
	buf.Conflict += sig.Themes.Conflict
	buf.Stability += sig.Themes.Stability
	buf.Curiosity += sig.Themes.Curiosity
	buf.Sentiment += sig.Sentiment

	if buf.Count >= EpochWindow {
		closeEpoch(st, now)
	}
}

func blendTrack(m *MemoryTrack, sig signal.Signal, factor float64) {
	m.Conflict = clamp01(m.Conflict + (sig.Themes.Conflict-m.Conflict)*factor)
	m.Stability = clamp01(m.Stability + (sig.Themes.Stability-m.Stability)*factor)
	m.Curiosity = clamp01(m.Curiosity + (sig.Themes.Curiosity-m.Curiosity)*factor)
	m.Sentiment = clamp11(m.Sentiment + (sig.Sentiment-m.Sentiment)*factor)
}

// closeEpoch turns the buffer means into a permanent record and resets
// the buffer.
func closeEpoch(st *State, now time.Time) {
	buf := st.EpochBuffer
	n := float64(buf.Count)
	if n == 0 {
		return
	}

	e := Epoch{
		ID:        uuid.NewString(),
		Seq:       st.EpochSeq,
		CreatedAt: now,
		Conflict:  clamp01(buf.Conflict / n),
		Stability: clamp01(buf.Stability / n),
		Curiosity: clamp01(buf.Curiosity / n),
		Sentiment: clamp11(buf.Sentiment / n),
	}
	e.SeedA, e.SeedB = epochSeeds(e)

	st.EpochSeq++
	st.Epochs = append(st.Epochs, e)
	if len(st.Epochs) > MaxEpochs {
		st.Epochs = st.Epochs[len(st.Epochs)-MaxEpochs:]
	}
	st.EpochBuffer = EpochBuffer{}
}

// epochSeeds derives the two visual seeds from the record itself, so a
// blob whose seeds went missing in a migration gets the same values
// backfilled.
func epochSeeds(e Epoch) (float64, float64) {
	base := float64(e.CreatedAt.Unix())*1e-5 +
		3.13*e.Conflict +
		5.71*e.Stability +
		2.97*e.Curiosity +
		1.41*e.Sentiment +
		float64(e.Seq)*0.77
	return rng.Hash01(base), rng.Hash01(base + 1.234)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
