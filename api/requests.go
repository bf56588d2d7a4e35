package api

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Backend credential headers accompanying user-authored posts.
const (
	headerBackendToken  = "RCToken"
	headerBackendUserID = "RCUserId"
	headerRoomID        = "RCGroupId"
)

type createMessageRequest struct {
	Message          string `json:"message" validate:"required"`
	Type             string `json:"t,omitempty"`
	SendNotification bool   `json:"sendNotification"`
}

type videoHintRequest struct {
	EventType     string `json:"eventType" validate:"required"`
	InitiatorID   string `json:"initiatorRcUserId" validate:"required"`
	InitiatorName string `json:"initiatorUserName" validate:"required"`
}

type createEventRequest struct {
	MessageType string            `json:"messageType" validate:"required,oneof=reassign-consultant further-steps finished-conversation master-key-lost"`
	Args        *reassignmentArgs `json:"args,omitempty"`
}

type reassignmentArgs struct {
	ToConsultantID     string `json:"toConsultantId" validate:"required,uuid4"`
	ToConsultantName   string `json:"toConsultantName" validate:"required"`
	FromConsultantName string `json:"fromConsultantName" validate:"required"`
	FromAskerName      string `json:"fromAskerName" validate:"required"`
}

type patchEventRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED DENIED REQUESTED"`
}

type saveDraftRequest struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"t,omitempty"`
}

type masterKeyRequest struct {
	MasterKey string `json:"masterKey" validate:"required,min=16"`
}

type messageResponse struct {
	MessageID string `json:"messageId"`
	RoomID    string `json:"roomId"`
	SentAt    string `json:"ts"`
}

type listMessagesResponse struct {
	Messages []roomMessageResponse `json:"messages"`
	Offset   int                   `json:"offset"`
	Count    int                   `json:"count"`
}

type roomMessageResponse struct {
	MessageID string         `json:"messageId"`
	RoomID    string         `json:"roomId"`
	SenderID  string         `json:"senderId"`
	Message   string         `json:"message,omitempty"`
	SentAt    string         `json:"ts,omitempty"`
	Event     *eventResponse `json:"event,omitempty"`
}

type eventResponse struct {
	MessageType        string `json:"messageType"`
	Status             string `json:"status,omitempty"`
	ToConsultantName   string `json:"toConsultantName,omitempty"`
	FromConsultantName string `json:"fromConsultantName,omitempty"`
	FromAskerName      string `json:"fromAskerName,omitempty"`
	EventType          string `json:"eventType,omitempty"`
	InitiatorName      string `json:"initiatorUserName,omitempty"`
}

type draftResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
