// Package messenger is the facade sequencing a post to the chat backend
// with its side effects: read-marking, draft cleanup, live update, email
// and analytics.
package messenger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"message-service/alias"
	"message-service/contract"
	"message-service/domain"
	"message-service/errors"
	"message-service/notify"
	"message-service/observability"
)

// feedbackRoomMarker must appear in a room's display name for the room
// to accept feedback messages.
const feedbackRoomMarker = "feedback"

type Messenger struct {
	log          *slog.Logger
	backend      contract.ChatBackend
	dispatcher   *notify.Dispatcher
	stats        *observability.Stats
	systemUserID string
}

func NewMessenger(log *slog.Logger, backend contract.ChatBackend,
	dispatcher *notify.Dispatcher, stats *observability.Stats, systemUserID string) *Messenger {
	return &Messenger{
		log:          log,
		backend:      backend,
		dispatcher:   dispatcher,
		stats:        stats,
		systemUserID: systemUserID,
	}
}

// PostMessage forwards the message to the chat backend and, only once
// the backend reports success, marks the room read for the system user
// and fans out the notification side effects. The room's draft is
// deleted by the fan-out, never before the post succeeds.
func (m *Messenger) PostMessage(ctx context.Context, actor domain.Identity, msg domain.ChatMessage) (domain.PostResult, error) {
	result, err := m.postToBackend(ctx, msg)
	if err != nil {
		return domain.PostResult{}, err
	}

	m.stats.IncrMessagesPosted()
	m.dispatcher.MessagePosted(ctx, notify.MessagePosted{
		RoomID:         msg.RoomID,
		Actor:          actor,
		FromSystemUser: msg.UserID == m.systemUserID,
		SendEmail:      msg.SendNotification,
	})
	return result, nil
}

// PostFeedbackMessage behaves like PostMessage for a feedback room, but
// validates the room before any backend write and always triggers the
// live update and the feedback email afterwards.
func (m *Messenger) PostFeedbackMessage(ctx context.Context, actor domain.Identity, msg domain.ChatMessage) (domain.PostResult, error) {
	info, err := m.backend.GetRoomInfo(ctx, msg.RoomID)
	if err != nil {
		m.stats.IncrBackendFailures()
		return domain.PostResult{}, fmt.Errorf("%w: room info: %v", errors.ErrBackendUnavailable, err)
	}
	if !strings.Contains(info.DisplayName, feedbackRoomMarker) {
		return domain.PostResult{}, fmt.Errorf("%w: %s", errors.ErrInvalidFeedbackRoom, msg.RoomID)
	}

	result, err := m.postToBackend(ctx, msg)
	if err != nil {
		return domain.PostResult{}, err
	}

	m.stats.IncrMessagesPosted()
	m.dispatcher.FeedbackPosted(ctx, msg.RoomID, actor)
	return result, nil
}

// PostEvent encodes an alias payload for the event type and posts it as
// an alias-only message under the system identity. A reassignment
// request additionally emails the target consultant; alias-only events
// have no draft or live-update side effects.
func (m *Messenger) PostEvent(ctx context.Context, roomID string, eventType domain.MessageType, reassignment *domain.ReassignmentInfo) (domain.PostResult, error) {
	payload := domain.AliasPayload{Type: eventType}
	if eventType == domain.TypeReassignConsultant {
		if reassignment == nil {
			return domain.PostResult{}, fmt.Errorf("%w: missing arguments", errors.ErrIncompleteReassignment)
		}
		created, err := domain.NewReassignment(reassignment.ToConsultantID,
			reassignment.ToConsultantName, reassignment.FromConsultantName, reassignment.FromAskerName)
		if err != nil {
			return domain.PostResult{}, err
		}
		payload.Reassignment = &created
	}

	result, err := m.postAliasOnly(ctx, roomID, payload)
	if err != nil {
		return domain.PostResult{}, err
	}

	m.stats.IncrEventsPosted()
	if payload.Reassignment != nil && payload.Reassignment.Status == domain.ReassignRequested {
		m.dispatcher.ReassignRequested(ctx, roomID, payload.Reassignment.ToConsultantID)
	}
	return result, nil
}

// PostVideoHintMessage posts a video call hint as an alias-only system
// message. No side effects.
func (m *Messenger) PostVideoHintMessage(ctx context.Context, roomID string, info domain.VideoCallInfo) (domain.PostResult, error) {
	result, err := m.postAliasOnly(ctx, roomID, domain.AliasPayload{
		Type:      domain.TypeVideoCall,
		VideoCall: &info,
	})
	if err != nil {
		return domain.PostResult{}, err
	}
	m.stats.IncrEventsPosted()
	return result, nil
}

// GetMessages reads a page of the room's message stream. Aliases are
// decoded into their event payloads on the way out, with display names
// back in plain form; a foreign alias simply yields no event.
func (m *Messenger) GetMessages(ctx context.Context, roomID string, offset, count int) ([]domain.RoomMessage, error) {
	stored, err := m.backend.FindMessages(ctx, roomID, offset, count)
	if err != nil {
		m.stats.IncrBackendFailures()
		return nil, fmt.Errorf("%w: list messages: %v", errors.ErrBackendUnavailable, err)
	}

	messages := make([]domain.RoomMessage, 0, len(stored))
	for _, msg := range stored {
		messages = append(messages, toRoomMessage(msg))
	}
	return messages, nil
}

// GetMessage reads a single message by id. An unknown id is a normal nil
// result.
func (m *Messenger) GetMessage(ctx context.Context, messageID string) (*domain.RoomMessage, error) {
	stored, err := m.backend.FindMessage(ctx, messageID)
	if err != nil {
		m.stats.IncrBackendFailures()
		return nil, fmt.Errorf("%w: find message: %v", errors.ErrBackendUnavailable, err)
	}
	if stored == nil {
		return nil, nil
	}
	msg := toRoomMessage(*stored)
	return &msg, nil
}

// DeleteMessage removes a message on the caller's behalf. Only the
// message's own sender may delete it; an unknown id returns false with
// no error.
func (m *Messenger) DeleteMessage(ctx context.Context, callerBackendID, messageID string) (bool, error) {
	message, err := m.backend.FindMessage(ctx, messageID)
	if err != nil {
		m.stats.IncrBackendFailures()
		return false, fmt.Errorf("%w: find message: %v", errors.ErrBackendUnavailable, err)
	}
	if message == nil {
		return false, nil
	}
	if message.SenderID != callerBackendID {
		return false, fmt.Errorf("%w: message %s", errors.ErrNotMessageCreator, messageID)
	}

	accepted, err := m.backend.DeleteMessage(ctx, message.RoomID, messageID)
	if err != nil {
		m.stats.IncrBackendFailures()
		return false, fmt.Errorf("%w: delete message: %v", errors.ErrBackendUnavailable, err)
	}
	return accepted, nil
}

// PatchEvent transitions the reassignment carried by the message's alias
// and rewrites the message on the backend. An unknown message id returns
// false with no error; side effects only fire after a successful update.
func (m *Messenger) PatchEvent(ctx context.Context, messageID string, status domain.ReassignStatus) (bool, error) {
	// REQUESTED is set at creation time only. This is a request-shape
	// error, rejected before the workflow rules run.
	if status == domain.ReassignRequested {
		return false, fmt.Errorf("%w: %s can only be set at creation", errors.ErrIllegalTransition, status)
	}

	message, err := m.backend.FindMessage(ctx, messageID)
	if err != nil {
		m.stats.IncrBackendFailures()
		return false, fmt.Errorf("%w: find message: %v", errors.ErrBackendUnavailable, err)
	}
	if message == nil {
		return false, nil
	}

	payload, ok := alias.Decode(message.Alias)
	if !ok || !payload.IsReassignment() {
		return false, fmt.Errorf("%w: message %s", errors.ErrNotAReassignment, messageID)
	}

	transitioned, err := payload.Reassignment.Transition(status)
	if err != nil {
		return false, err
	}
	payload.Reassignment = &transitioned

	updated := *message
	updated.Alias = alias.Encode(payload)
	accepted, err := m.backend.UpdateMessage(ctx, updated)
	if err != nil {
		m.stats.IncrBackendFailures()
		return false, fmt.Errorf("%w: update message: %v", errors.ErrBackendUnavailable, err)
	}

	if accepted {
		m.stats.IncrEventsPatched()
		if status == domain.ReassignConfirmed {
			m.dispatcher.ReassignDecided(ctx, updated.RoomID, transitioned.ToConsultantID)
		}
	}
	return accepted, nil
}

// postToBackend is the strictly sequential backend leg: post, then mark
// the room read for the system user. A read-marking failure is a hard
// error because unread-state drift corrupts downstream read receipts.
func (m *Messenger) postToBackend(ctx context.Context, msg domain.ChatMessage) (domain.PostResult, error) {
	result, err := m.backend.Post(ctx, msg)
	if err != nil {
		m.stats.IncrBackendFailures()
		return domain.PostResult{}, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, err)
	}

	if err = m.backend.MarkRoomRead(ctx, msg.RoomID); err != nil {
		m.stats.IncrBackendFailures()
		return domain.PostResult{}, fmt.Errorf("%w: mark room read: %v", errors.ErrBackendUnavailable, err)
	}
	return result, nil
}

func toRoomMessage(msg domain.BackendMessage) domain.RoomMessage {
	out := domain.RoomMessage{
		ID:       msg.ID,
		RoomID:   msg.RoomID,
		SenderID: msg.SenderID,
		Body:     msg.Body,
		SentAt:   msg.SentAt,
	}
	if payload, ok := alias.Decode(msg.Alias); ok {
		out.Event = &payload
	}
	return out
}

func (m *Messenger) postAliasOnly(ctx context.Context, roomID string, payload domain.AliasPayload) (domain.PostResult, error) {
	result, err := m.backend.Post(ctx, domain.ChatMessage{
		RoomID: roomID,
		UserID: m.systemUserID,
		Alias:  alias.Encode(payload),
	})
	if err != nil {
		m.stats.IncrBackendFailures()
		return domain.PostResult{}, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, err)
	}
	return result, nil
}
