// Package domain contains core concepts of the message service.
// This file defines chat messages and the identities acting on them.
// Messages are immutable request-scoped values consumed once by the messenger.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the resolved role of the acting identity, used to tag
// analytics events.
type UserRole string

const (
	RoleConsultant UserRole = "CONSULTANT"
	RoleAsker      UserRole = "ASKER"
)

// Identity is the authenticated user on whose behalf an operation runs.
type Identity struct {
	UserID   string
	Username string
	Roles    []string
}

// IsConsultant reports whether the identity carries the consultant role.
func (i Identity) IsConsultant() bool {
	for _, role := range i.Roles {
		if role == "consultant" {
			return true
		}
	}
	return false
}

// Role maps the identity to the role tag carried by analytics events.
func (i Identity) Role() UserRole {
	if i.IsConsultant() {
		return RoleConsultant
	}
	return RoleAsker
}

// ChatMessage is a request to post into a backend room.
type ChatMessage struct {
	RoomID string
	// UserID and Token are the backend credentials of the sender.
	UserID string
	Token  string
	Body   string
	// Alias carries encoded event metadata for alias-only messages.
	Alias string
	// Type is an optional message type tag, e.g. "e2e".
	Type             string
	SendNotification bool
}

// PostResult references the message the backend durably stored.
type PostResult struct {
	MessageID string
	RoomID    string
	SentAt    time.Time
}

// BackendMessage is a message fetched back from the chat backend,
// carrying its opaque alias string.
type BackendMessage struct {
	ID       string
	RoomID   string
	SenderID string
	Body     string
	Alias    string
	SentAt   time.Time
}

// RoomMessage is the read model served to callers: the opaque alias is
// decoded into its event payload, display names back in plain form.
type RoomMessage struct {
	ID       string
	RoomID   string
	SenderID string
	Body     string
	SentAt   time.Time
	// Event is nil for plain messages and for aliases from unrelated
	// senders.
	Event *AliasPayload
}

// RoomInfo is the subset of backend room metadata the messenger needs.
type RoomInfo struct {
	ID          string
	DisplayName string
}

// AnalyticsEvent is the "message created" statistics event. It is a side
// channel and never affects the reply to the caller.
type AnalyticsEvent struct {
	ID            uuid.UUID `json:"eventId"`
	UserID        string    `json:"userId"`
	UserRole      UserRole  `json:"userRole"`
	RoomID        string    `json:"rcGroupId"`
	HasAttachment bool      `json:"hasAttachment"`
	At            time.Time `json:"timestamp"`
}
