// Package session ties one user's entity to its store and the optional
// telemetry endpoint. A Session is the single writer for its state: it
// loads, mutates through the entity engine, persists after every
// mutation and hands out value snapshots.
package session

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"aurelia/internal/entity"
	"aurelia/internal/signal"
	"aurelia/internal/storage"
	"aurelia/internal/syncer"
)

type Session struct {
	store      *storage.Storage
	sync       *syncer.Syncer
	userID     string
	planetSeed string
	st         *entity.State
	rand       *rand.Rand
	now        func() time.Time
	log        zerolog.Logger
}

type Option func(*Session)

// WithClock replaces the wall clock, for tests and replays.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand replaces the reaction evaluator's randomness source.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rand = r }
}

// WithPlanetSeed overrides the identity seed on first creation. It has
// no effect on an entity that already exists.
func WithPlanetSeed(seed string) Option {
	return func(s *Session) { s.planetSeed = seed }
}

// WithLogger attaches a logger; default is a no-op one.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Open loads the user's entity from the store, creating a fresh one when
// nothing is persisted yet.
func Open(store *storage.Storage, sync *syncer.Syncer, userID string, opts ...Option) *Session {
	s := &Session{
		store:  store,
		sync:   sync,
		userID: userID,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, _ := store.LoadEntity(userID)
	s.st = entity.Rehydrate(userID, s.planetSeed, raw, s.now())
	s.persist()
	return s
}

// SubmitJournal feeds one journal entry through the engine. Empty text
// and text the extractor finds nothing in are no-ops; the second return
// reports whether the entry landed.
func (s *Session) SubmitJournal(text string) (entity.Snapshot, bool) {
	now := s.now()
	sig := signal.Extract(text)
	if sig.IsZero() {
		return s.snapshotAt(now), false
	}

	entity.ApplyEntry(s.st, sig, now)
	entity.StageEntry(s.st, text, sig, now)
	entity.AppendEvent(s.st, entity.EventJournal, map[string]any{
		"text_len":  float64(utf8.RuneCountInString(text)),
		"sentiment": sig.Sentiment,
		"intensity": sig.Intensity,
	}, now)

	reaction := entity.EvaluateReaction(s.st, s.rand, now)
	if reaction != entity.ReactionNone {
		entity.AppendEvent(s.st, entity.EventReaction, map[string]any{
			"tier":     string(reaction),
			"pressure": s.st.Pressure(),
		}, now)
	}

	s.persist()
	s.emit(entity.EventJournal, map[string]any{
		"text_len":  float64(utf8.RuneCountInString(text)),
		"sentiment": sig.Sentiment,
		"intensity": sig.Intensity,
		"mood":      string(s.st.Presence.Mood),
		"pressure":  s.st.Pressure(),
	})
	return s.snapshotAt(now), true
}

// RitualPending reports whether today's ritual question is still open.
func (s *Session) RitualPending() bool {
	return s.st.RitualPending(s.now())
}

// AnswerRitual records the daily yes/no answer. The second return is
// true when the accumulated trend crossed into an imprint.
func (s *Session) AnswerRitual(yes bool) (entity.Snapshot, bool) {
	now := s.now()
	imprinted := entity.AnswerRitual(s.st, yes, now)

	entity.AppendEvent(s.st, entity.EventRitual, map[string]any{
		"answer": yes,
		"trend":  s.st.Daily.Trend,
	}, now)
	if imprinted {
		entity.AppendEvent(s.st, entity.EventImprint, map[string]any{
			"imprint": s.st.Daily.Imprint,
		}, now)
	}

	s.persist()
	s.emit(entity.EventRitual, map[string]any{
		"answer":    yes,
		"imprinted": imprinted,
		"mood":      string(s.st.Presence.Mood),
	})
	return s.snapshotAt(now), imprinted
}

// ApplyDecision applies a bounded external adjustment.
func (s *Session) ApplyDecision(d entity.Decision) entity.Snapshot {
	now := s.now()
	entity.ApplyDecision(s.st, d, now)
	entity.AppendEvent(s.st, entity.EventDecision, map[string]any{
		"keys": float64(len(d)),
	}, now)

	s.persist()
	s.emit(entity.EventDecision, map[string]any{
		"keys": float64(len(d)),
		"mood": string(s.st.Presence.Mood),
	})
	return s.snapshotAt(now)
}

// WeeklySummary closes the current ISO week's summary gate. The second
// return is false when this week was already summarized.
func (s *Session) WeeklySummary() (string, bool) {
	now := s.now()
	if !s.st.WeeklySummaryDue(now) {
		return "", false
	}

	week := entity.WeekKey(now)
	days := 0
	for _, l := range s.st.DailyLogs {
		if d, err := time.Parse("2006-01-02", l.Date); err == nil && entity.WeekKey(d) == week {
			days++
		}
	}
	s.st.MarkWeeklySummary(now)
	s.persist()

	return fmt.Sprintf("week %s: %d day(s) recorded, mood %s, trend %+.2f",
		week, days, s.st.Presence.Mood, s.st.Daily.Trend), true
}

// Dialogue picks a mood-appropriate line.
func (s *Session) Dialogue() string {
	return entity.Dialogue(s.st)
}

// Snapshot freezes the current state for rendering.
func (s *Session) Snapshot() entity.Snapshot {
	return s.snapshotAt(s.now())
}

// Close persists one final time. The underlying store stays open; it
// belongs to the caller.
func (s *Session) Close() {
	s.persist()
}

func (s *Session) snapshotAt(now time.Time) entity.Snapshot {
	return entity.BuildSnapshot(s.st, now)
}

// persist writes the state back to the store. A failed write is logged
// and dropped: the in-memory state stays valid and the next mutation
// retries the whole blob anyway.
func (s *Session) persist() {
	blob, err := s.st.Serialize()
	if err != nil {
		s.log.Error().Err(err).Str("user", s.userID).Msg("serialize failed")
		return
	}
	if err := s.store.SaveEntity(s.userID, blob); err != nil {
		s.log.Error().Err(err).Str("user", s.userID).Msg("persist failed")
	}
}

func (s *Session) emit(eventType string, payload map[string]any) {
	s.sync.Send(eventType, s.userID, payload)
}
