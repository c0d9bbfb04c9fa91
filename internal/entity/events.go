package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxEvents bounds the audit log; oldest entries are pruned first.
const MaxEvents = 500

// Well-known event types.
const (
	EventJournal  = "journal"
	EventRitual   = "ritual"
	EventDecision = "decision"
	EventImprint  = "imprint"
	EventReaction = "reaction"
)

// AppendEvent records a state-changing action in the audit log.
func AppendEvent(st *State, eventType string, payload map[string]any, now time.Time) Event {
	e := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: now,
	}
	st.Memory = append(st.Memory, e)
	if len(st.Memory) > MaxEvents {
		st.Memory = st.Memory[len(st.Memory)-MaxEvents:]
	}
	st.Touch(now)
	return e
}
