package entity

import "time"

// EpochView is an epoch plus its recency-decayed strength, for consumers
// that fade old epochs out visually.
type EpochView struct {
	Epoch
	Strength float64 `json:"strength"` // 0..1, 1 = just closed
}

// Snapshot is the read-only view handed to the renderer. It is a value
// copy: the renderer can hold it across a tick without ever observing a
// half-applied mutation.
type Snapshot struct {
	Meta         Meta        `json:"meta"`
	Presence     Presence    `json:"presence"`
	InnerState   InnerState  `json:"innerState"`
	Identity     Identity    `json:"identity"`
	MidMemory    MemoryTrack `json:"midMemory"`
	LongMemory   MemoryTrack `json:"longMemory"`
	Geography    Geography   `json:"geography"`
	DailyTrend   float64     `json:"dailyTrend"`
	DailyImprint float64     `json:"dailyImprint"`
	RecentEpochs []EpochView `json:"recentEpochs"`
}

// BuildSnapshot freezes the current state. The two most recent epochs
// are included, newest last, each with a strength that halves over about
// a month.
func BuildSnapshot(st *State, now time.Time) Snapshot {
	snap := Snapshot{
		Meta:         st.Meta,
		Presence:     st.Presence,
		InnerState:   st.InnerState,
		Identity:     st.Identity,
		MidMemory:    st.MidMemory,
		LongMemory:   st.LongMemory,
		Geography:    st.Geography,
		DailyTrend:   st.Daily.Trend,
		DailyImprint: st.Daily.Imprint,
	}

	start := len(st.Epochs) - 2
	if start < 0 {
		start = 0
	}
	for _, e := range st.Epochs[start:] {
		snap.RecentEpochs = append(snap.RecentEpochs, EpochView{
			Epoch:    e,
			Strength: epochStrength(e.CreatedAt, now),
		})
	}
	return snap
}

func epochStrength(createdAt, now time.Time) float64 {
	days := now.Sub(createdAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return 1.0 / (1.0 + days/30.0)
}
