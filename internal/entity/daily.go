package entity

import (
	"fmt"
	"sort"
	"time"

	"aurelia/internal/signal"
)

const (
	// MaxDailyLogs bounds the per-day archive; oldest date keys go first.
	MaxDailyLogs = 400
	// imprintThreshold is the |trend| level at which an imprint commits.
	imprintThreshold = 0.8
	imprintStep      = 0.12
	// fallbackIntensity is used when the day had no draft to read one from.
	fallbackIntensity = 0.5
)

// DateKey renders the local calendar day a ritual slot belongs to.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey renders the ISO week used by the weekly summary gate.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// RitualPending reports whether today's yes/no question is still owed.
func (st *State) RitualPending(now time.Time) bool {
	return st.Daily.LastQuestionDate != DateKey(now)
}

// WeeklySummaryDue reports whether the current ISO week has not been
// summarized yet.
func (st *State) WeeklySummaryDue(now time.Time) bool {
	return st.Daily.LastSummaryWeek != WeekKey(now)
}

// MarkWeeklySummary closes the weekly gate for the current week.
func (st *State) MarkWeeklySummary(now time.Time) {
	st.Daily.LastSummaryWeek = WeekKey(now)
}

// StageEntry routes an accepted journal entry into today's slot: a draft
// while the ritual is unanswered, the day's log once it is. A stale
// draft from an earlier day is sealed first.
func StageEntry(st *State, text string, sig signal.Signal, now time.Time) {
	st.sealStaleDraft(now)
	today := DateKey(now)
	cue := st.renderCue()

	if st.RitualPending(now) {
		st.DailyDraft = &DailyDraft{
			Date:      today,
			Text:      text,
			Signal:    sig,
			CreatedAt: now,
			AtEntry:   cue,
		}
		return
	}

	st.DailyLogs[today] = DailyLog{
		Date:    today,
		Text:    text,
		Signal:  sig,
		AtEntry: cue,
		AtClose: cue,
	}
	st.pruneDailyLogs()
}

// AnswerRitual applies the signed daily step, finalizes today's log and
// commits an imprint when the trend crosses the threshold. Returns true
// when an imprint committed.
func AnswerRitual(st *State, yes bool, now time.Time) bool {
	st.sealStaleDraft(now)
	today := DateKey(now)

	intensity := fallbackIntensity
	var logText string
	var logSig signal.Signal
	entryCue := st.renderCue()
	if d := st.DailyDraft; d != nil && d.Date == today {
		intensity = d.Signal.Intensity
		logText = d.Text
		logSig = d.Signal
		entryCue = d.AtEntry
	}

	step := 0.1 * (0.5 + intensity*0.5)
	if !yes {
		step = -step
	}
	st.Daily.Trend = clamp11(st.Daily.Trend + step)
	st.Daily.LastIntensity = intensity
	st.Daily.LastQuestionDate = today

	in := &st.InnerState
	p := &st.Presence
	if yes {
		in.Trust = clamp01(in.Trust + 0.03)
		in.Stability = clamp01(in.Stability + 0.03)
		in.Fear = clamp01(in.Fear - 0.02)
		p.Tension = clamp01(p.Tension - 0.02)
	} else {
		in.Fear = clamp01(in.Fear + 0.03)
		in.Trust = clamp01(in.Trust - 0.02)
		p.Entropy = clamp01(p.Entropy + 0.02)
		p.Tension = clamp01(p.Tension + 0.02)
	}

	imprinted := false
	if st.Daily.Trend >= imprintThreshold || st.Daily.Trend <= -imprintThreshold {
		st.commitImprint(now)
		imprinted = true
	}

	st.Presence.Mood = ClassifyMood(st.Presence, st.InnerState)

	st.DailyLogs[today] = DailyLog{
		Date:    today,
		Text:    logText,
		Signal:  logSig,
		AtEntry: entryCue,
		AtClose: st.renderCue(),
	}
	st.DailyDraft = nil
	st.pruneDailyLogs()
	st.Touch(now)
	return imprinted
}

// commitImprint permanently biases long memory in the trend's direction
// and resets the trend.
func (st *State) commitImprint(now time.Time) {
	sign := 1.0
	if st.Daily.Trend < 0 {
		sign = -1.0
	}

	st.Daily.Trend = 0
	st.Daily.Imprint = clamp11(st.Daily.Imprint + imprintStep*sign)
	st.Daily.LastImprintAt = now

	lm := &st.LongMemory
	lm.Stability = clamp01(lm.Stability + 0.04*sign)
	lm.Conflict = clamp01(lm.Conflict - 0.03*sign)
	lm.Sentiment = clamp11(lm.Sentiment + 0.05*sign)

	st.driftGeography(st.Daily.LastIntensity)
}

// sealStaleDraft finalizes a draft whose day rolled over: its day gets an
// empty log and today starts fresh.
func (st *State) sealStaleDraft(now time.Time) {
	d := st.DailyDraft
	if d == nil || d.Date == DateKey(now) {
		return
	}
	st.DailyLogs[d.Date] = DailyLog{Date: d.Date, AtEntry: d.AtEntry, AtClose: d.AtEntry}
	st.DailyDraft = nil
	st.pruneDailyLogs()
}

// pruneDailyLogs evicts the oldest date keys past the cap. Date keys
// sort lexicographically in chronological order.
func (st *State) pruneDailyLogs() {
	if len(st.DailyLogs) <= MaxDailyLogs {
		return
	}
	keys := make([]string, 0, len(st.DailyLogs))
	for k := range st.DailyLogs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-MaxDailyLogs] {
		delete(st.DailyLogs, k)
	}
}

// renderCue freezes the rendering-ready reading of the current moment.
func (st *State) renderCue() RenderCue {
	return RenderCue{
		Mood:      st.Presence.Mood,
		Awareness: st.Presence.Awareness,
		Tension:   st.Presence.Tension,
		Entropy:   st.Presence.Entropy,
		Curiosity: st.Presence.Curiosity,
		SeedA:     st.Geography.SeedA,
		SeedB:     st.Geography.SeedB,
	}
}
