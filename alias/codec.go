// Package alias converts event metadata to and from the opaque alias
// string attached to chat backend messages. The codec boundary keeps the
// messenger and the reassignment rules free of string parsing.
package alias

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"message-service/domain"
)

// wirePayload is the JSON shape stored in the backend's alias field.
// Display names are obfuscated, the consultant id travels as a string.
type wirePayload struct {
	MessageType  domain.MessageType `json:"messageType"`
	VideoCall    *wireVideoCall     `json:"videoCallMessage,omitempty"`
	Reassignment *wireReassignment  `json:"consultantReassignment,omitempty"`
}

type wireVideoCall struct {
	EventType     string `json:"eventType"`
	InitiatorID   string `json:"initiatorRcUserId"`
	InitiatorName string `json:"initiatorUserName"`
}

type wireReassignment struct {
	ToConsultantID     string                `json:"toConsultantId"`
	ToConsultantName   string                `json:"toConsultantName"`
	FromConsultantName string                `json:"fromConsultantName"`
	FromAskerName      string                `json:"fromAskerName"`
	Status             domain.ReassignStatus `json:"status"`
}

// Encode serializes a payload deterministically. Encoding the zero
// payload yields the empty string.
func Encode(p domain.AliasPayload) string {
	if p.Type == "" {
		return ""
	}

	wire := wirePayload{MessageType: p.Type}
	if p.VideoCall != nil {
		wire.VideoCall = &wireVideoCall{
			EventType:     p.VideoCall.EventType,
			InitiatorID:   p.VideoCall.InitiatorID,
			InitiatorName: Obfuscate(p.VideoCall.InitiatorName),
		}
	}
	if p.Reassignment != nil {
		wire.Reassignment = &wireReassignment{
			ToConsultantID:     p.Reassignment.ToConsultantID.String(),
			ToConsultantName:   Obfuscate(p.Reassignment.ToConsultantName),
			FromConsultantName: Obfuscate(p.Reassignment.FromConsultantName),
			FromAskerName:      Obfuscate(p.Reassignment.FromAskerName),
			Status:             p.Reassignment.Status,
		}
	}

	// Marshal cannot fail on this closed shape.
	raw, _ := json.Marshal(wire)
	return string(raw)
}

// Decode parses an alias string. Blank input, unparseable input and
// types outside the known set all decode to "no alias" rather than an
// error: the backend may carry aliases produced by unrelated senders. A
// reassignment is only honoured when the declared type is
// reassign-consultant.
func Decode(s string) (domain.AliasPayload, bool) {
	if strings.TrimSpace(s) == "" {
		return domain.AliasPayload{}, false
	}

	var wire wirePayload
	if err := json.Unmarshal([]byte(s), &wire); err != nil || !wire.MessageType.Known() {
		return domain.AliasPayload{}, false
	}

	payload := domain.AliasPayload{Type: wire.MessageType}
	if wire.VideoCall != nil {
		payload.VideoCall = &domain.VideoCallInfo{
			EventType:     wire.VideoCall.EventType,
			InitiatorID:   wire.VideoCall.InitiatorID,
			InitiatorName: Deobfuscate(wire.VideoCall.InitiatorName),
		}
	}
	if wire.Reassignment != nil && wire.MessageType == domain.TypeReassignConsultant {
		id, err := uuid.Parse(wire.Reassignment.ToConsultantID)
		if err != nil {
			return domain.AliasPayload{}, false
		}
		payload.Reassignment = &domain.ReassignmentInfo{
			ToConsultantID:     id,
			ToConsultantName:   Deobfuscate(wire.Reassignment.ToConsultantName),
			FromConsultantName: Deobfuscate(wire.Reassignment.FromConsultantName),
			FromAskerName:      Deobfuscate(wire.Reassignment.FromAskerName),
			Status:             wire.Reassignment.Status,
		}
	}
	return payload, true
}
