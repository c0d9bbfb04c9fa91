package entity

import (
	"time"

	"aurelia/internal/signal"
)

// Mood is the derived surface emotion. Classification rules live in mood.go.
type Mood string

const (
	MoodHostile   Mood = "hostile"
	MoodDisturbed Mood = "disturbed"
	MoodCurious   Mood = "curious"
	MoodCalm      Mood = "calm"
	MoodObserving Mood = "observing"
)

// Meta — identity and audit stamps. Created once, LastUpdatedAt bumped on
// every event.
type Meta struct {
	ID            string    `json:"id"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	UserID        string    `json:"userId"`
}

// Presence — fast-moving attributes, all 0..1, plus the derived mood and
// the reaction evaluator's timestamps (zero = never fired).
type Presence struct {
	Awareness    float64   `json:"awareness"` // 0..1
	Tension      float64   `json:"tension"`   // 0..1
	Entropy      float64   `json:"entropy"`   // 0..1
	Curiosity    float64   `json:"curiosity"` // 0..1
	Mood         Mood      `json:"mood"`
	LastNoticeAt time.Time `json:"lastNoticeAt"`
	LastMicroAt  time.Time `json:"lastMicroAt"`
	LastShiftAt  time.Time `json:"lastShiftAt"`
}

// InnerState — the second fast attribute group, updated in lockstep with
// presence but semantically the entity's inward read of itself.
type InnerState struct {
	Trust     float64 `json:"trust"`     // 0..1
	Fear      float64 `json:"fear"`      // 0..1
	Stability float64 `json:"stability"` // 0..1
	Curiosity float64 `json:"curiosity"` // 0..1
}

// Laws — slow world parameters, moved by decisions and reactions only.
type Laws struct {
	Distortion float64 `json:"distortion"` // 0..1
	Clarity    float64 `json:"clarity"`    // 0..1
	Gravity    float64 `json:"gravity"`    // 0..1
}

type Drives struct {
	Expression float64 `json:"expression"` // 0..1
	Connection float64 `json:"connection"` // 0..1
	Rest       float64 `json:"rest"`       // 0..1
}

type Perception struct {
	PatternConfidence float64 `json:"patternConfidence"` // 0..1
	SignalClarity     float64 `json:"signalClarity"`     // 0..1
}

// Thresholds — the reaction evaluator's three ascending pressure gates.
type Thresholds struct {
	Notice float64 `json:"notice"`
	Micro  float64 `json:"micro"`
	Shift  float64 `json:"shift"`
}

type Conflicts struct {
	InnerOuter   float64 `json:"innerOuter"`   // 0..1
	KnownUnknown float64 `json:"knownUnknown"` // 0..1
}

// MemoryTrack — exponential moving average over signal themes and
// sentiment. Theme components 0..1, sentiment -1..1.
type MemoryTrack struct {
	Conflict  float64 `json:"conflict"`
	Stability float64 `json:"stability"`
	Curiosity float64 `json:"curiosity"`
	Sentiment float64 `json:"sentiment"`
}

// EpochBuffer — running sums awaiting epoch closure. Reset on closure.
type EpochBuffer struct {
	Count     int     `json:"count"`
	Conflict  float64 `json:"conflict"`
	Stability float64 `json:"stability"`
	Curiosity float64 `json:"curiosity"`
	Sentiment float64 `json:"sentiment"`
}

// Epoch — a closed aggregation window, permanent until FIFO eviction.
// Seq increases monotonically across the entity's whole life, so visual
// seeds can be backfilled after eviction shifted the slice.
type Epoch struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	CreatedAt time.Time `json:"createdAt"`
	Conflict  float64   `json:"conflict"`
	Stability float64   `json:"stability"`
	Curiosity float64   `json:"curiosity"`
	Sentiment float64   `json:"sentiment"`
	SeedA     float64   `json:"seedA"`
	SeedB     float64   `json:"seedB"`
}

// Daily — the one-per-day ritual accumulator.
type Daily struct {
	LastQuestionDate string    `json:"lastQuestionDate"` // date key, empty = never answered
	Trend            float64   `json:"trend"`            // -1..1
	Imprint          float64   `json:"imprint"`          // -1..1
	LastIntensity    float64   `json:"lastIntensity"`
	LastImprintAt    time.Time `json:"lastImprintAt"`
	LastSummaryWeek  string    `json:"lastSummaryWeek"`
}

// RenderCue is a rendering-ready reading of the entity at one moment.
type RenderCue struct {
	Mood      Mood    `json:"mood"`
	Awareness float64 `json:"awareness"`
	Tension   float64 `json:"tension"`
	Entropy   float64 `json:"entropy"`
	Curiosity float64 `json:"curiosity"`
	SeedA     float64 `json:"seedA"`
	SeedB     float64 `json:"seedB"`
}

// DailyLog — the frozen record of one calendar day.
type DailyLog struct {
	Date    string        `json:"date"`
	Text    string        `json:"text"`
	Signal  signal.Signal `json:"signal"`
	AtEntry RenderCue     `json:"atEntry"`
	AtClose RenderCue     `json:"atClose"`
}

// DailyDraft — at most one journal entry waiting for today's ritual answer.
type DailyDraft struct {
	Date      string        `json:"date"`
	Text      string        `json:"text"`
	Signal    signal.Signal `json:"signal"`
	CreatedAt time.Time     `json:"createdAt"`
	AtEntry   RenderCue     `json:"atEntry"`
}

// Identity — immutable once created, derived from the seed string.
type Identity struct {
	Seed        string  `json:"seed"`
	SeedA       float64 `json:"seedA"`       // 0..1
	SeedB       float64 `json:"seedB"`       // 0..1
	PaletteBias float64 `json:"paletteBias"` // -1..1
	RingTilt    float64 `json:"ringTilt"`    // -1..1
	CloudSeed   float64 `json:"cloudSeed"`   // 0..1
}

// Geography — the slowly drifting procedural coordinates.
type Geography struct {
	SeedA float64 `json:"seedA"` // 0..1
	SeedB float64 `json:"seedB"` // 0..1
}

// Event — one entry of the append-only audit log.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// State is the entity's full attribute set. One live instance per user;
// a single writer mutates it in place, everything else sees snapshots.
type State struct {
	Meta        Meta                `json:"meta"`
	Presence    Presence            `json:"presence"`
	InnerState  InnerState          `json:"innerState"`
	Laws        Laws                `json:"laws"`
	Drives      Drives              `json:"drives"`
	Perception  Perception          `json:"perception"`
	Thresholds  Thresholds          `json:"thresholds"`
	Conflicts   Conflicts           `json:"conflicts"`
	MidMemory   MemoryTrack         `json:"midMemory"`
	LongMemory  MemoryTrack         `json:"longMemory"`
	EpochBuffer EpochBuffer         `json:"epochBuffer"`
	EpochSeq    int                 `json:"epochSeq"`
	Epochs      []Epoch             `json:"epochs"`
	Daily       Daily               `json:"daily"`
	DailyLogs   map[string]DailyLog `json:"dailyLogs"`
	DailyDraft  *DailyDraft         `json:"dailyDraft,omitempty"`
	Identity    Identity            `json:"identity"`
	Geography   Geography           `json:"geography"`
	Memory      []Event             `json:"memory"`
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clamp11(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
