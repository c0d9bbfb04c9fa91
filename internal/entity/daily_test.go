package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurelia/internal/signal"
)

func TestRitualPendingPerDay(t *testing.T) {
	st := New("u1", "", testNow)
	require.True(t, st.RitualPending(testNow))

	AnswerRitual(st, true, testNow)
	assert.False(t, st.RitualPending(testNow))
	assert.True(t, st.RitualPending(testNow.Add(24*time.Hour)))
}

func TestStageEntryDraftUntilAnswered(t *testing.T) {
	st := New("u1", "", testNow)
	sig := signal.Extract("klid a bezpeci")

	StageEntry(st, "klid a bezpeci", sig, testNow)
	require.NotNil(t, st.DailyDraft)
	assert.Empty(t, st.DailyLogs)

	AnswerRitual(st, true, testNow)
	require.Nil(t, st.DailyDraft)
	log, ok := st.DailyLogs[DateKey(testNow)]
	require.True(t, ok)
	assert.Equal(t, "klid a bezpeci", log.Text)
	assert.Equal(t, sig, log.Signal)

	// Ritual already answered: a second entry goes straight to the log.
	StageEntry(st, "druhy zapis", signal.Extract("druhy zapis"), testNow)
	assert.Nil(t, st.DailyDraft)
	assert.Equal(t, "druhy zapis", st.DailyLogs[DateKey(testNow)].Text)
}

func TestStaleDraftSealedAsEmptyLog(t *testing.T) {
	st := New("u1", "", testNow)
	StageEntry(st, "vcerejsi zapis", signal.Extract("strach"), testNow)
	require.NotNil(t, st.DailyDraft)

	tomorrow := testNow.Add(24 * time.Hour)
	AnswerRitual(st, true, tomorrow)

	// Yesterday holds an empty log; the draft text is not carried over.
	old, ok := st.DailyLogs[DateKey(testNow)]
	require.True(t, ok)
	assert.Empty(t, old.Text)

	today, ok := st.DailyLogs[DateKey(tomorrow)]
	require.True(t, ok)
	assert.Empty(t, today.Text)
	assert.Nil(t, st.DailyDraft)
}

func TestAnswerStepScalesWithIntensity(t *testing.T) {
	low := New("u1", "", testNow)
	AnswerRitual(low, true, testNow) // no draft: fallback intensity 0.5
	assert.InDelta(t, 0.1*(0.5+0.5*0.5), low.Daily.Trend, 1e-9)
	assert.Equal(t, 0.5, low.Daily.LastIntensity)

	high := New("u2", "", testNow)
	StageEntry(high, "x", signal.Signal{Intensity: 1}, testNow)
	AnswerRitual(high, true, testNow)
	assert.InDelta(t, 0.1, high.Daily.Trend, 1e-9)
	assert.Greater(t, high.Daily.Trend, low.Daily.Trend)
}

func TestImprintCommitsAtThreshold(t *testing.T) {
	st := New("u1", "", testNow)
	stabBefore := st.LongMemory.Stability
	sentBefore := st.LongMemory.Sentiment

	now := testNow
	var imprinted bool
	var answers int
	for i := 0; i < 40 && !imprinted; i++ {
		StageEntry(st, "x", signal.Signal{Intensity: 1}, now)
		imprinted = AnswerRitual(st, true, now)
		answers++
		now = now.Add(24 * time.Hour)
	}

	require.True(t, imprinted)
	// Full-intensity yes steps are 0.1 each. Eight accumulated float64
	// steps land just short of 0.8, so the ninth commits.
	assert.Equal(t, 9, answers)

	assert.Zero(t, st.Daily.Trend)
	assert.InDelta(t, 0.12, st.Daily.Imprint, 1e-9)
	assert.False(t, st.Daily.LastImprintAt.IsZero())
	assert.Greater(t, st.LongMemory.Stability, stabBefore)
	assert.Greater(t, st.LongMemory.Sentiment, sentBefore)
}

func TestImprintNegativeDirection(t *testing.T) {
	st := New("u1", "", testNow)
	st.LongMemory.Conflict = 0.5
	sentBefore := st.LongMemory.Sentiment

	now := testNow
	var imprinted bool
	for i := 0; i < 40 && !imprinted; i++ {
		StageEntry(st, "x", signal.Signal{Intensity: 1}, now)
		imprinted = AnswerRitual(st, false, now)
		now = now.Add(24 * time.Hour)
	}

	require.True(t, imprinted)
	assert.Zero(t, st.Daily.Trend)
	assert.InDelta(t, -0.12, st.Daily.Imprint, 1e-9)
	assert.Less(t, st.LongMemory.Sentiment, sentBefore)
	assert.Greater(t, st.LongMemory.Conflict, 0.5)
}

func TestDailyLogsPrunedOldestFirst(t *testing.T) {
	st := New("u1", "", testNow)
	day := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < MaxDailyLogs+10; i++ {
		StageEntry(st, fmt.Sprintf("den %d", i), signal.Signal{Intensity: 0.5}, day)
		AnswerRitual(st, true, day)
		day = day.Add(24 * time.Hour)
	}

	require.Len(t, st.DailyLogs, MaxDailyLogs)
	_, oldestRemains := st.DailyLogs["2020-01-01"]
	assert.False(t, oldestRemains)
	_, newestRemains := st.DailyLogs[DateKey(day.Add(-24*time.Hour))]
	assert.True(t, newestRemains)
}

func TestWeeklySummaryGate(t *testing.T) {
	st := New("u1", "", testNow)
	require.True(t, st.WeeklySummaryDue(testNow))
	st.MarkWeeklySummary(testNow)
	assert.False(t, st.WeeklySummaryDue(testNow))
	assert.True(t, st.WeeklySummaryDue(testNow.Add(8*24*time.Hour)))
}
