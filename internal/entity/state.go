package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is stamped into meta on creation and bumped on layout
// changes so rehydration can tell old blobs apart.
const SchemaVersion = 3

// Baseline constants the decay engine pulls every tracked scalar toward.
const (
	BaseAwareness = 0.5
	BaseTension   = 0.2
	BaseEntropy   = 0.3
	BaseCuriosity = 0.5

	BaseTrust          = 0.5
	BaseFear           = 0.2
	BaseStability      = 0.5
	BaseInnerCuriosity = 0.5
)

// New creates a fresh entity for a user id. planetSeed overrides the
// identity seed when set; an empty userID gets a random token so the
// identity is still stable for the life of the blob.
func New(userID, planetSeed string, now time.Time) *State {
	seed := planetSeed
	if seed == "" {
		seed = userID
	}
	if seed == "" {
		seed = uuid.NewString()
	}

	st := &State{
		Meta: Meta{
			ID:            uuid.NewString(),
			Version:       SchemaVersion,
			CreatedAt:     now,
			LastUpdatedAt: now,
			UserID:        userID,
		},
		Presence: Presence{
			Awareness: BaseAwareness,
			Tension:   BaseTension,
			Entropy:   BaseEntropy,
			Curiosity: BaseCuriosity,
			Mood:      MoodObserving,
		},
		InnerState: InnerState{
			Trust:     BaseTrust,
			Fear:      BaseFear,
			Stability: BaseStability,
			Curiosity: BaseInnerCuriosity,
		},
		Laws:       Laws{Distortion: 0.2, Clarity: 0.6, Gravity: 0.5},
		Drives:     Drives{Expression: 0.5, Connection: 0.5, Rest: 0.5},
		Perception: Perception{PatternConfidence: 0.3, SignalClarity: 0.5},
		Thresholds: Thresholds{Notice: 0.45, Micro: 0.65, Shift: 0.85},
		Conflicts:  Conflicts{InnerOuter: 0.2, KnownUnknown: 0.3},
		DailyLogs:  map[string]DailyLog{},
		Identity:   DeriveIdentity(seed),
	}
	st.Geography = Geography{SeedA: st.Identity.SeedA, SeedB: st.Identity.SeedB}
	return st
}

// Rehydrate merges a persisted blob over a fresh baseline. Each section
// is decoded independently: a section that fails to decode keeps its
// baseline, it never blocks the rest. Derived fields that come back
// zero-valued are recomputed afterwards.
func Rehydrate(userID, planetSeed string, raw []byte, now time.Time) *State {
	st := New(userID, planetSeed, now)
	if len(raw) == 0 {
		return st
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return st
	}

	mergeSection(sections, "meta", &st.Meta)
	mergeSection(sections, "presence", &st.Presence)
	mergeSection(sections, "innerState", &st.InnerState)
	mergeSection(sections, "laws", &st.Laws)
	mergeSection(sections, "drives", &st.Drives)
	mergeSection(sections, "perception", &st.Perception)
	mergeSection(sections, "thresholds", &st.Thresholds)
	mergeSection(sections, "conflicts", &st.Conflicts)
	mergeSection(sections, "midMemory", &st.MidMemory)
	mergeSection(sections, "longMemory", &st.LongMemory)
	mergeSection(sections, "epochBuffer", &st.EpochBuffer)
	mergeSection(sections, "epochSeq", &st.EpochSeq)
	mergeSection(sections, "epochs", &st.Epochs)
	mergeSection(sections, "daily", &st.Daily)
	mergeSection(sections, "dailyLogs", &st.DailyLogs)
	mergeSection(sections, "dailyDraft", &st.DailyDraft)
	mergeSection(sections, "identity", &st.Identity)
	mergeSection(sections, "geography", &st.Geography)
	mergeSection(sections, "memory", &st.Memory)

	st.repair()
	return st
}

// mergeSection overlays one stored section onto its baseline value.
// The stored bytes decode into a copy first, so a malformed section
// leaves the baseline untouched.
func mergeSection[T any](sections map[string]json.RawMessage, key string, dst *T) {
	raw, ok := sections[key]
	if !ok {
		return
	}
	tmp := *dst
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return
	}
	*dst = tmp
}

// repair re-derives broken derived fields and clamps every scalar back
// into range after a merge.
func (st *State) repair() {
	if st.Meta.ID == "" {
		st.Meta.ID = uuid.NewString()
	}
	if st.Meta.Version < SchemaVersion {
		st.Meta.Version = SchemaVersion
	}

	if st.Identity.Seed == "" {
		seed := st.Meta.UserID
		if seed == "" {
			seed = uuid.NewString()
		}
		st.Identity = DeriveIdentity(seed)
	} else if st.Identity != DeriveIdentity(st.Identity.Seed) {
		// The draws are a pure function of the seed string. A blob from
		// before the draws were stored merges over a baseline derived
		// from the user id, leaving non-zero draws that belong to the
		// wrong seed; recompute whenever they disagree.
		st.Identity = DeriveIdentity(st.Identity.Seed)
	}

	if st.Geography.SeedA == 0 && st.Geography.SeedB == 0 {
		st.Geography = Geography{SeedA: st.Identity.SeedA, SeedB: st.Identity.SeedB}
	}

	if st.DailyLogs == nil {
		st.DailyLogs = map[string]DailyLog{}
	}

	for i := range st.Epochs {
		e := &st.Epochs[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.SeedA == 0 && e.SeedB == 0 {
			e.SeedA, e.SeedB = epochSeeds(*e)
		}
	}

	if st.Presence.Mood == "" {
		st.Presence.Mood = ClassifyMood(st.Presence, st.InnerState)
	}

	st.clampAll()
}

func (st *State) clampAll() {
	p := &st.Presence
	p.Awareness = clamp01(p.Awareness)
	p.Tension = clamp01(p.Tension)
	p.Entropy = clamp01(p.Entropy)
	p.Curiosity = clamp01(p.Curiosity)

	in := &st.InnerState
	in.Trust = clamp01(in.Trust)
	in.Fear = clamp01(in.Fear)
	in.Stability = clamp01(in.Stability)
	in.Curiosity = clamp01(in.Curiosity)

	st.Laws.Distortion = clamp01(st.Laws.Distortion)
	st.Laws.Clarity = clamp01(st.Laws.Clarity)
	st.Laws.Gravity = clamp01(st.Laws.Gravity)
	st.Drives.Expression = clamp01(st.Drives.Expression)
	st.Drives.Connection = clamp01(st.Drives.Connection)
	st.Drives.Rest = clamp01(st.Drives.Rest)
	st.Perception.PatternConfidence = clamp01(st.Perception.PatternConfidence)
	st.Perception.SignalClarity = clamp01(st.Perception.SignalClarity)
	st.Conflicts.InnerOuter = clamp01(st.Conflicts.InnerOuter)
	st.Conflicts.KnownUnknown = clamp01(st.Conflicts.KnownUnknown)

	clampTrack(&st.MidMemory)
	clampTrack(&st.LongMemory)

	st.Daily.Trend = clamp11(st.Daily.Trend)
	st.Daily.Imprint = clamp11(st.Daily.Imprint)
	st.Daily.LastIntensity = clamp01(st.Daily.LastIntensity)

	st.Geography.SeedA = clamp01(st.Geography.SeedA)
	st.Geography.SeedB = clamp01(st.Geography.SeedB)
}

func clampTrack(m *MemoryTrack) {
	m.Conflict = clamp01(m.Conflict)
	m.Stability = clamp01(m.Stability)
	m.Curiosity = clamp01(m.Curiosity)
	m.Sentiment = clamp11(m.Sentiment)
}

// Serialize renders the full state as the persistence blob.
func (st *State) Serialize() ([]byte, error) {
	return json.Marshal(st)
}

// Touch bumps the audit stamp.
func (st *State) Touch(now time.Time) {
	st.Meta.LastUpdatedAt = now
}
