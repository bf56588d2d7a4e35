//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"message-service/domain"
)

// ChatBackend is the gateway to the external chat backend. All calls are
// synchronous and bounded by the caller's context; a failed call is
// reported once, retry policy belongs to the backend client itself.
type ChatBackend interface {
	// Post sends a message into its room and returns the stored message
	// reference. A backend reply reporting failure is an error.
	Post(ctx context.Context, msg domain.ChatMessage) (domain.PostResult, error)
	// MarkRoomRead marks the room read for the system identity.
	MarkRoomRead(ctx context.Context, roomID string) error
	// FindMessage returns nil without error when the id is unknown.
	FindMessage(ctx context.Context, messageID string) (*domain.BackendMessage, error)
	// FindMessages pages through a room's stored messages, oldest first.
	FindMessages(ctx context.Context, roomID string, offset, count int) ([]domain.BackendMessage, error)
	// UpdateMessage rewrites an existing message and reports whether the
	// backend accepted the update.
	UpdateMessage(ctx context.Context, msg domain.BackendMessage) (bool, error)
	// DeleteMessage removes a message and reports whether the backend
	// accepted the deletion.
	DeleteMessage(ctx context.Context, roomID, messageID string) (bool, error)
	GetRoomInfo(ctx context.Context, roomID string) (domain.RoomInfo, error)
}

// EmailSender triggers notification mails through the user service.
type EmailSender interface {
	SendNewMessageEmail(ctx context.Context, roomID string) error
	SendFeedbackMessageEmail(ctx context.Context, roomID string) error
	SendReassignRequestEmail(ctx context.Context, roomID string, consultantID uuid.UUID) error
	SendReassignDecisionEmail(ctx context.Context, roomID string, consultantID uuid.UUID) error
}

// LivePublisher pushes a live-update notification for a room.
type LivePublisher interface {
	Publish(ctx context.Context, roomID string) error
}

// AnalyticsSink accepts "message created" statistics events.
type AnalyticsSink interface {
	Emit(ctx context.Context, event domain.AnalyticsEvent) error
}

// DraftRecord is a persisted draft row. The body is ciphertext; the
// repository never sees a plaintext draft.
type DraftRecord struct {
	UserID     string    `json:"userId"`
	RoomID     string    `json:"roomId"`
	Ciphertext []byte    `json:"ciphertext"`
	Type       string    `json:"type,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DraftRepository persists at most one draft per (user, room) pair.
type DraftRepository interface {
	// Upsert writes the record, replacing any prior draft for the pair,
	// and reports whether a new row was created.
	Upsert(rec DraftRecord) (created bool, err error)
	// Find returns nil without error when no draft exists.
	Find(userID, roomID string) (*DraftRecord, error)
	// Delete is a no-op when no draft exists.
	Delete(userID, roomID string) error
	// List returns all stored drafts, for the inspector tooling.
	List() ([]DraftRecord, error)
}
