// Package analytics forwards "message created" statistics events to the
// statistics collector. Delivery is best effort and fully decoupled from
// the request path: Emit only enqueues, a background worker ships.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"message-service/domain"
)

type Sink struct {
	log        *slog.Logger
	httpClient *http.Client
	collectURL string
	events     chan domain.AnalyticsEvent
}

// NewSink builds the sink. An empty collector URL turns the sink into a
// log-only emitter, which keeps local setups free of a collector.
func NewSink(log *slog.Logger, collectURL string, bufferSize int, timeout time.Duration) *Sink {
	return &Sink{
		log:        log,
		httpClient: &http.Client{Timeout: timeout},
		collectURL: collectURL,
		events:     make(chan domain.AnalyticsEvent, bufferSize),
	}
}

// Emit enqueues the event without blocking the request path. When the
// buffer is full the event is dropped and counted as a warning: the
// statistics channel never turns a posted message into an error.
func (s *Sink) Emit(_ context.Context, event domain.AnalyticsEvent) error {
	select {
	case s.events <- event:
		return nil
	default:
		s.log.Warn(fmt.Sprintf("Analytics buffer full, dropping event %s", event.ID))
		return nil
	}
}

// Run drains the queue until the context is cancelled, then flushes
// whatever is still buffered.
func (s *Sink) Run(ctx context.Context) error {
	for {
		select {
		case event := <-s.events:
			s.ship(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-s.events:
					s.ship(event)
				default:
					s.log.Debug("Analytics sink drained, stopping")
					return nil
				}
			}
		}
	}
}

func (s *Sink) ship(event domain.AnalyticsEvent) {
	if s.collectURL == "" {
		s.log.Info("Message created",
			"event_id", event.ID, "user_role", event.UserRole, "room_id", event.RoomID)
		return
	}

	raw, err := json.Marshal(event)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Dropping unmarshalable analytics event: %v", err))
		return
	}

	req, err := http.NewRequest(http.MethodPost, s.collectURL, bytes.NewReader(raw))
	if err != nil {
		s.log.Warn(fmt.Sprintf("Analytics request build failed: %v", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Statistics collector unreachable: %v", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn(fmt.Sprintf("Statistics collector returned status %d", resp.StatusCode))
	}
}
