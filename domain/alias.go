package domain

import "github.com/google/uuid"

// MessageType tags the event a message represents. The set is closed:
// the backend may carry aliases from unrelated senders, and anything
// outside this set is treated as "no alias" by the codec.
type MessageType string

const (
	TypeVideoCall            MessageType = "video-call"
	TypeReassignConsultant   MessageType = "reassign-consultant"
	TypeFurtherSteps         MessageType = "further-steps"
	TypeFinishedConversation MessageType = "finished-conversation"
	TypeMasterKeyLost        MessageType = "master-key-lost"
)

// Known reports whether the type belongs to the closed set above.
func (t MessageType) Known() bool {
	switch t {
	case TypeVideoCall, TypeReassignConsultant, TypeFurtherSteps,
		TypeFinishedConversation, TypeMasterKeyLost:
		return true
	}
	return false
}

// ReassignStatus is the state of a consultant reassignment workflow.
type ReassignStatus string

const (
	ReassignRequested ReassignStatus = "REQUESTED"
	ReassignConfirmed ReassignStatus = "CONFIRMED"
	ReassignDenied    ReassignStatus = "DENIED"
)

// VideoCallInfo describes a video call hint posted into a room.
type VideoCallInfo struct {
	EventType     string
	InitiatorID   string
	InitiatorName string
}

// ReassignmentInfo tracks a consultant reassignment carried inside a
// message alias. Display names travel obfuscated on the wire; in memory
// they are always plain.
type ReassignmentInfo struct {
	ToConsultantID     uuid.UUID
	ToConsultantName   string
	FromConsultantName string
	FromAskerName      string
	Status             ReassignStatus
}

// AliasPayload is the closed tagged variant behind the opaque alias
// string: video-call info, reassignment info, or a plain event marker.
// Only one of the two pointers is populated at a time.
type AliasPayload struct {
	Type         MessageType
	VideoCall    *VideoCallInfo
	Reassignment *ReassignmentInfo
}

// IsA reports whether the payload is tagged with the given type.
func (p AliasPayload) IsA(t MessageType) bool {
	return p.Type == t
}

// IsReassignment reports whether the payload carries a reassignment
// workflow with a populated status. Only reassign-consultant messages
// may carry one; the codec enforces that on decode.
func (p AliasPayload) IsReassignment() bool {
	return p.Type == TypeReassignConsultant &&
		p.Reassignment != nil && p.Reassignment.Status != ""
}
