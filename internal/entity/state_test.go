package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurelia/internal/signal"
)

func populatedState(t *testing.T) *State {
	t.Helper()
	st := New("round-trip-user", "", testNow)
	now := testNow
	for i := 0; i < 20; i++ {
		ApplyEntry(st, steadySignal(), now)
		now = now.Add(6 * time.Hour)
	}
	StageEntry(st, "dnesni zapis", signal.Extract("klid doma"), now)
	AnswerRitual(st, true, now)
	AppendEvent(st, EventJournal, map[string]any{"len": 12.0, "sentiment": 0.4}, now)
	return st
}

func TestSerializeRoundTripStable(t *testing.T) {
	st := populatedState(t)

	first, err := st.Serialize()
	require.NoError(t, err)

	st2 := Rehydrate("round-trip-user", "", first, testNow.Add(48*time.Hour))
	second, err := st2.Serialize()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRehydrateEmptyBlobGivesFreshState(t *testing.T) {
	st := Rehydrate("u1", "", nil, testNow)
	assert.Equal(t, "u1", st.Meta.UserID)
	assert.Equal(t, BaseAwareness, st.Presence.Awareness)
	assert.NotZero(t, st.Identity.SeedA)
	assert.Equal(t, st.Identity.SeedA, st.Geography.SeedA)
}

func TestRehydrateCorruptSectionKeepsRest(t *testing.T) {
	st := populatedState(t)
	blob, err := st.Serialize()
	require.NoError(t, err)

	var sections map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &sections))
	sections["presence"] = json.RawMessage(`"not an object"`)
	broken, err := json.Marshal(sections)
	require.NoError(t, err)

	got := Rehydrate("round-trip-user", "", broken, testNow)
	// Presence fell back to baseline; the rest survived.
	assert.Equal(t, BaseAwareness, got.Presence.Awareness)
	assert.Equal(t, st.LongMemory, got.LongMemory)
	assert.Equal(t, st.Daily.Trend, got.Daily.Trend)
	assert.Equal(t, st.Identity, got.Identity)
}

func TestRehydrateMissingSectionsDefaulted(t *testing.T) {
	blob := []byte(`{"meta":{"id":"m1","userId":"u1"},"longMemory":{"conflict":0.4,"stability":0.6,"curiosity":0.2,"sentiment":-0.3}}`)
	st := Rehydrate("u1", "", blob, testNow)

	assert.Equal(t, "m1", st.Meta.ID)
	assert.Equal(t, 0.4, st.LongMemory.Conflict)
	assert.Equal(t, -0.3, st.LongMemory.Sentiment)
	// Everything absent came back as baseline.
	assert.Equal(t, BaseTension, st.Presence.Tension)
	assert.NotNil(t, st.DailyLogs)
	assert.NotEmpty(t, st.Identity.Seed)
}

func TestRehydrateRederivesIdentitySeeds(t *testing.T) {
	blob := []byte(`{"identity":{"seed":"planet-9"}}`)
	st := Rehydrate("u1", "", blob, testNow)

	want := DeriveIdentity("planet-9")
	assert.Equal(t, want, st.Identity)
}

func TestRehydrateRecomputesCorruptedIdentityDraws(t *testing.T) {
	// Draws that disagree with the seed string are stale copies from
	// another record; the seed is authoritative.
	blob := []byte(`{"identity":{"seed":"planet-9","seedA":0.111,"seedB":0.222,"cloudSeed":0.333}}`)
	st := Rehydrate("u1", "", blob, testNow)

	assert.Equal(t, DeriveIdentity("planet-9"), st.Identity)
}

func TestRehydrateBackfillsEpochSeeds(t *testing.T) {
	st := New("u1", "", testNow)
	for i := 0; i < EpochWindow; i++ {
		updateMemory(st, steadySignal(), testNow)
	}
	require.Len(t, st.Epochs, 1)
	wantA, wantB := st.Epochs[0].SeedA, st.Epochs[0].SeedB

	st.Epochs[0].SeedA, st.Epochs[0].SeedB = 0, 0
	blob, err := st.Serialize()
	require.NoError(t, err)

	got := Rehydrate("u1", "", blob, testNow)
	require.Len(t, got.Epochs, 1)
	assert.Equal(t, wantA, got.Epochs[0].SeedA)
	assert.Equal(t, wantB, got.Epochs[0].SeedB)
}

func TestRehydrateClampsOutOfRangeValues(t *testing.T) {
	blob := []byte(`{"presence":{"awareness":7,"tension":-3,"entropy":0.4,"curiosity":0.5,"mood":"calm"},` +
		`"midMemory":{"conflict":2,"stability":-1,"curiosity":0.5,"sentiment":-9}}`)
	st := Rehydrate("u1", "", blob, testNow)

	assert.Equal(t, 1.0, st.Presence.Awareness)
	assert.Equal(t, 0.0, st.Presence.Tension)
	assert.Equal(t, 1.0, st.MidMemory.Conflict)
	assert.Equal(t, 0.0, st.MidMemory.Stability)
	assert.Equal(t, -1.0, st.MidMemory.Sentiment)
}

func TestIdentityImmutableAcrossRehydration(t *testing.T) {
	st := New("u1", "seed-alpha", testNow)
	blob, err := st.Serialize()
	require.NoError(t, err)

	// A different planet seed at load time must not re-roll a stored identity.
	got := Rehydrate("u1", "seed-beta", blob, testNow)
	assert.Equal(t, st.Identity, got.Identity)
}

func TestAppendEventCapped(t *testing.T) {
	st := New("u1", "", testNow)
	for i := 0; i < MaxEvents+50; i++ {
		AppendEvent(st, EventJournal, map[string]any{"n": float64(i)}, testNow)
	}
	require.Len(t, st.Memory, MaxEvents)
	assert.Equal(t, float64(50), st.Memory[0].Payload["n"])
}
