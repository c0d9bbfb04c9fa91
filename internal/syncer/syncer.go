// Package syncer posts redacted state summaries to the collection
// endpoint. Delivery is fire-and-forget: one attempt, no retry, failures
// are absorbed. The local store stays authoritative no matter what
// happens here.
package syncer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// event matches the collection endpoint's payload contract. user_id
// carries a salted hash, never the raw id, and payloads never contain
// journal text.
type event struct {
	UserID    string         `json:"user_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
}

type Syncer struct {
	url     string
	salt    string
	client  *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a Syncer. An empty url disables sending entirely.
func New(url, salt string, log zerolog.Logger) *Syncer {
	return &Syncer{
		url:    url,
		salt:   salt,
		client: &http.Client{Timeout: 10 * time.Second},
		// A mutation burst must not flood the endpoint; over-rate
		// events are simply dropped.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		log:     log,
	}
}

// Send queues one event for delivery and returns immediately. Safe to
// call on a nil Syncer.
func (s *Syncer) Send(eventType, userID string, payload map[string]any) {
	if s == nil || s.url == "" {
		return
	}
	if !s.limiter.Allow() {
		s.log.Debug().Str("event", eventType).Msg("sync dropped by rate limit")
		return
	}
	go func() {
		if err := s.post(eventType, userID, payload); err != nil {
			s.log.Debug().Err(err).Str("event", eventType).Msg("sync failed")
		}
	}()
}

func (s *Syncer) post(eventType, userID string, payload map[string]any) error {
	body, err := json.Marshal(event{
		UserID:    s.hashUser(userID),
		EventType: eventType,
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync http %d", resp.StatusCode)
	}
	return nil
}

func (s *Syncer) hashUser(userID string) string {
	sum := sha256.Sum256([]byte(s.salt + userID))
	return hex.EncodeToString(sum[:])
}
