// Package notify fans out the side effects of a successfully posted
// message: draft cleanup, live update, email, analytics.
//
// It provides best-effort fan-out: every step is attempted, failures are
// logged and contained to their own step, and no failure rolls back the
// already committed post. The messenger consolidates all triggering rules
// here so every caller gets the same semantics.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"message-service/contract"
	"message-service/domain"
	"message-service/draft"
	"message-service/observability"
)

// MessagePosted describes a successful post whose side effects are due.
type MessagePosted struct {
	RoomID string
	Actor  domain.Identity
	// FromSystemUser suppresses the live update so users are not notified
	// about system-generated echoes.
	FromSystemUser bool
	// SendEmail reflects the caller's explicit notification request.
	SendEmail bool
}

type Dispatcher struct {
	log         *slog.Logger
	drafts      *draft.Store
	live        contract.LivePublisher
	emails      contract.EmailSender
	analytics   contract.AnalyticsSink
	stats       *observability.Stats
	stepTimeout time.Duration
}

func NewDispatcher(log *slog.Logger, drafts *draft.Store, live contract.LivePublisher,
	emails contract.EmailSender, analytics contract.AnalyticsSink,
	stats *observability.Stats, stepTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		log:         log,
		drafts:      drafts,
		live:        live,
		emails:      emails,
		analytics:   analytics,
		stats:       stats,
		stepTimeout: stepTimeout,
	}
}

// MessagePosted runs the four side effects of a posted group message.
// Steps run concurrently and are all attempted before returning; the
// analytics event fires regardless of notification flags.
func (d *Dispatcher) MessagePosted(ctx context.Context, evt MessagePosted) {
	steps := []step{
		{"delete draft", func(ctx context.Context) error {
			return d.drafts.DeleteIfExists(evt.Actor.UserID, evt.RoomID)
		}},
		{"analytics", func(ctx context.Context) error {
			return d.analytics.Emit(ctx, newMessageEvent(evt.Actor, evt.RoomID))
		}},
	}
	if !evt.FromSystemUser {
		steps = append(steps, step{"live update", func(ctx context.Context) error {
			return d.live.Publish(ctx, evt.RoomID)
		}})
	}
	if evt.SendEmail {
		steps = append(steps, step{"new message email", func(ctx context.Context) error {
			return d.emails.SendNewMessageEmail(ctx, evt.RoomID)
		}})
	}
	d.run(ctx, steps)
}

// FeedbackPosted runs the side effects of a feedback-room message: the
// live update and the feedback email are unconditional here.
func (d *Dispatcher) FeedbackPosted(ctx context.Context, roomID string, actor domain.Identity) {
	d.run(ctx, []step{
		{"delete draft", func(ctx context.Context) error {
			return d.drafts.DeleteIfExists(actor.UserID, roomID)
		}},
		{"live update", func(ctx context.Context) error {
			return d.live.Publish(ctx, roomID)
		}},
		{"feedback email", func(ctx context.Context) error {
			return d.emails.SendFeedbackMessageEmail(ctx, roomID)
		}},
		{"analytics", func(ctx context.Context) error {
			return d.analytics.Emit(ctx, newMessageEvent(actor, roomID))
		}},
	})
}

// ReassignRequested emails the target consultant about a new
// reassignment request. Alias-only events have no other side effects.
func (d *Dispatcher) ReassignRequested(ctx context.Context, roomID string, consultantID uuid.UUID) {
	d.run(ctx, []step{
		{"reassign request email", func(ctx context.Context) error {
			return d.emails.SendReassignRequestEmail(ctx, roomID, consultantID)
		}},
	})
}

// ReassignDecided emails the target consultant after an update to
// CONFIRMED went through on the backend.
func (d *Dispatcher) ReassignDecided(ctx context.Context, roomID string, consultantID uuid.UUID) {
	d.run(ctx, []step{
		{"reassign decision email", func(ctx context.Context) error {
			return d.emails.SendReassignDecisionEmail(ctx, roomID, consultantID)
		}},
	})
}

type step struct {
	name string
	fn   func(ctx context.Context) error
}

// run executes the steps concurrently and waits for all of them. Each
// step gets its own timeout derived from a detached context, so the
// cancellation or expiry of one step never cancels another.
func (d *Dispatcher) run(ctx context.Context, steps []step) {
	var wg sync.WaitGroup
	for _, s := range steps {
		wg.Add(1)
		go func(s step) {
			defer wg.Done()
			stepCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.stepTimeout)
			defer cancel()

			if err := s.fn(stepCtx); err != nil {
				d.stats.IncrSideEffectFailures()
				d.log.Warn(fmt.Sprintf("Side effect %q failed: %v", s.name, err))
			}
		}(s)
	}
	wg.Wait()
}

func newMessageEvent(actor domain.Identity, roomID string) domain.AnalyticsEvent {
	return domain.AnalyticsEvent{
		ID:            uuid.New(),
		UserID:        actor.UserID,
		UserRole:      actor.Role(),
		RoomID:        roomID,
		HasAttachment: false,
		At:            time.Now().UTC(),
	}
}
