package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCarriesTwoMostRecentEpochs(t *testing.T) {
	st := New("u1", "", testNow)
	now := testNow
	for i := 0; i < EpochWindow*4; i++ {
		updateMemory(st, steadySignal(), now)
		now = now.Add(24 * time.Hour)
	}
	require.Len(t, st.Epochs, 4)

	snap := BuildSnapshot(st, now)
	require.Len(t, snap.RecentEpochs, 2)
	assert.Equal(t, st.Epochs[2].ID, snap.RecentEpochs[0].ID)
	assert.Equal(t, st.Epochs[3].ID, snap.RecentEpochs[1].ID)

	// Newer epoch fades less.
	assert.Greater(t, snap.RecentEpochs[1].Strength, snap.RecentEpochs[0].Strength)
	for _, e := range snap.RecentEpochs {
		assert.Greater(t, e.Strength, 0.0)
		assert.LessOrEqual(t, e.Strength, 1.0)
	}
}

func TestSnapshotIsDetachedCopy(t *testing.T) {
	st := New("u1", "", testNow)
	snap := BuildSnapshot(st, testNow)

	st.Presence.Tension = 0.99
	st.Geography.SeedA = 0.123

	assert.NotEqual(t, st.Presence.Tension, snap.Presence.Tension)
	assert.NotEqual(t, st.Geography.SeedA, snap.Geography.SeedA)
}

func TestSnapshotWithNoEpochs(t *testing.T) {
	st := New("u1", "", testNow)
	snap := BuildSnapshot(st, testNow)
	assert.Empty(t, snap.RecentEpochs)
	assert.Equal(t, st.Identity, snap.Identity)
}

func TestDialogueMatchesMoodAndIsStable(t *testing.T) {
	st := New("u1", "", testNow)

	for _, mood := range []Mood{MoodHostile, MoodDisturbed, MoodCurious, MoodCalm, MoodObserving} {
		st.Presence.Mood = mood
		line := Dialogue(st)
		assert.NotEmpty(t, line)
		assert.Contains(t, dialogueLines[mood], line)
		// Same state, same line.
		assert.Equal(t, line, Dialogue(st))
	}
}
