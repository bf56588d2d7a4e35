// Package api exposes the message orchestration over HTTP. Handlers stay
// thin: decode, validate, resolve the acting identity, delegate to the
// messenger or the draft store, map errors.
package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"message-service/auth"
	"message-service/domain"
	"message-service/draft"
	"message-service/errors"
	"message-service/messenger"
	"message-service/observability"
)

type Server struct {
	log       *slog.Logger
	messenger *messenger.Messenger
	drafts    *draft.Store
	stats     *observability.Stats
	jwtSecret []byte
}

func NewServer(log *slog.Logger, m *messenger.Messenger, drafts *draft.Store,
	stats *observability.Stats, jwtSecret []byte) *Server {
	return &Server{log: log, messenger: m, drafts: drafts, stats: stats, jwtSecret: jwtSecret}
}

// Handler wires all routes into a mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /messages", s.withIdentity(s.listMessages))
	mux.HandleFunc("GET /messages/{messageId}", s.withIdentity(s.getMessage))
	mux.HandleFunc("DELETE /messages/{messageId}", s.withIdentity(s.deleteMessage))
	mux.HandleFunc("POST /messages", s.withIdentity(s.createMessage))
	mux.HandleFunc("POST /messages/feedback", s.withIdentity(s.createFeedbackMessage))
	mux.HandleFunc("POST /messages/videohint", s.withIdentity(s.createVideoHintMessage))
	mux.HandleFunc("POST /messages/events", s.withIdentity(s.createEvent))
	mux.HandleFunc("PATCH /messages/{messageId}", s.withIdentity(s.patchEvent))
	mux.HandleFunc("POST /drafts", s.withIdentity(s.saveDraft))
	mux.HandleFunc("GET /drafts", s.withIdentity(s.findDraft))
	mux.HandleFunc("POST /admin/masterkey", s.withIdentity(s.rotateKey))
	mux.HandleFunc("GET /debug/stats", s.debugStats)
	return mux
}

type identityHandler func(w http.ResponseWriter, r *http.Request, actor domain.Identity)

// withIdentity resolves the acting identity from the bearer token before
// the handler runs.
func (s *Server) withIdentity(next identityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		actor, err := auth.ParseIdentity(raw, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r, actor)
	}
}

const defaultPageSize = 50

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	roomID := r.Header.Get(headerRoomID)
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "missing room id header")
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}
	count, ok := queryInt(w, r, "count", defaultPageSize)
	if !ok {
		return
	}

	messages, err := s.messenger.GetMessages(r.Context(), roomID, offset, count)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	resp := listMessagesResponse{Messages: []roomMessageResponse{}, Offset: offset, Count: count}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toRoomMessageResponse(msg))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMessage(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	message, err := s.messenger.GetMessage(r.Context(), r.PathValue("messageId"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if message == nil {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, toRoomMessageResponse(*message))
}

func (s *Server) deleteMessage(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	callerBackendID := r.Header.Get(headerBackendUserID)
	if callerBackendID == "" {
		writeError(w, http.StatusBadRequest, "missing backend user id header")
		return
	}

	deleted, err := s.messenger.DeleteMessage(r.Context(), callerBackendID, r.PathValue("messageId"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "message not found or deletion rejected")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createMessage(w http.ResponseWriter, r *http.Request, actor domain.Identity) {
	var req createMessageRequest
	roomID, ok := s.decodeChatRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := s.messenger.PostMessage(r.Context(), actor, domain.ChatMessage{
		RoomID:           roomID,
		UserID:           r.Header.Get(headerBackendUserID),
		Token:            r.Header.Get(headerBackendToken),
		Body:             req.Message,
		Type:             req.Type,
		SendNotification: req.SendNotification,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(result))
}

func (s *Server) createFeedbackMessage(w http.ResponseWriter, r *http.Request, actor domain.Identity) {
	var req createMessageRequest
	roomID, ok := s.decodeChatRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := s.messenger.PostFeedbackMessage(r.Context(), actor, domain.ChatMessage{
		RoomID: roomID,
		UserID: r.Header.Get(headerBackendUserID),
		Token:  r.Header.Get(headerBackendToken),
		Body:   req.Message,
		Type:   req.Type,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(result))
}

func (s *Server) createVideoHintMessage(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req videoHintRequest
	roomID, ok := s.decodeChatRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := s.messenger.PostVideoHintMessage(r.Context(), roomID, domain.VideoCallInfo{
		EventType:     req.EventType,
		InitiatorID:   req.InitiatorID,
		InitiatorName: req.InitiatorName,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(result))
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req createEventRequest
	roomID, ok := s.decodeChatRequest(w, r, &req)
	if !ok {
		return
	}

	var reassignment *domain.ReassignmentInfo
	if req.Args != nil {
		id, err := uuid.Parse(req.Args.ToConsultantID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "toConsultantId is not a uuid")
			return
		}
		reassignment = &domain.ReassignmentInfo{
			ToConsultantID:     id,
			ToConsultantName:   req.Args.ToConsultantName,
			FromConsultantName: req.Args.FromConsultantName,
			FromAskerName:      req.Args.FromAskerName,
		}
	}

	result, err := s.messenger.PostEvent(r.Context(), roomID, domain.MessageType(req.MessageType), reassignment)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(result))
}

func (s *Server) patchEvent(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req patchEventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	updated, err := s.messenger.PatchEvent(r.Context(), r.PathValue("messageId"), domain.ReassignStatus(req.Status))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "message not found or update rejected")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) saveDraft(w http.ResponseWriter, r *http.Request, actor domain.Identity) {
	var req saveDraftRequest
	roomID, ok := s.decodeChatRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := s.drafts.Save(actor.UserID, roomID, req.Message, req.Type)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if result == draft.SavedNew {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) findDraft(w http.ResponseWriter, r *http.Request, actor domain.Identity) {
	roomID := r.Header.Get(headerRoomID)
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "missing room id header")
		return
	}

	plaintext, found, err := s.drafts.Find(actor.UserID, roomID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{Message: plaintext})
}

func (s *Server) rotateKey(w http.ResponseWriter, r *http.Request, _ domain.Identity) {
	var req masterKeyRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	switch err := s.drafts.RotateKey(req.MasterKey); {
	case err == nil:
		w.WriteHeader(http.StatusAccepted)
	case stderrors.Is(err, errors.ErrSameMasterKey):
		writeError(w, http.StatusConflict, "master key unchanged")
	default:
		s.writeDomainError(w, err)
	}
}

func (s *Server) debugStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// decodeChatRequest decodes and validates the body and requires the room
// id header present on every chat-scoped route.
func (s *Server) decodeChatRequest(w http.ResponseWriter, r *http.Request, req any) (string, bool) {
	if !s.decodeBody(w, r, req) {
		return "", false
	}
	roomID := r.Header.Get(headerRoomID)
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "missing room id header")
		return "", false
	}
	return roomID, true
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed json body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}
	return true
}

// writeDomainError maps the error taxonomy onto status codes: caller
// input errors become 400, everything else is a server error.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidFeedbackRoom),
		stderrors.Is(err, errors.ErrNotAReassignment),
		stderrors.Is(err, errors.ErrIncompleteReassignment),
		stderrors.Is(err, errors.ErrIllegalTransition):
		writeError(w, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, errors.ErrNotMessageCreator):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		s.log.Error(fmt.Sprintf("Request failed: %v", err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// queryInt reads a non-negative integer query parameter, falling back to
// a default when absent.
func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s must be a non-negative integer", name))
		return 0, false
	}
	return value, true
}

func toRoomMessageResponse(msg domain.RoomMessage) roomMessageResponse {
	resp := roomMessageResponse{
		MessageID: msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Message:   msg.Body,
	}
	if !msg.SentAt.IsZero() {
		resp.SentAt = msg.SentAt.UTC().Format(time.RFC3339)
	}
	if msg.Event == nil {
		return resp
	}

	event := &eventResponse{MessageType: string(msg.Event.Type)}
	if r := msg.Event.Reassignment; r != nil {
		event.Status = string(r.Status)
		event.ToConsultantName = r.ToConsultantName
		event.FromConsultantName = r.FromConsultantName
		event.FromAskerName = r.FromAskerName
	}
	if v := msg.Event.VideoCall; v != nil {
		event.EventType = v.EventType
		event.InitiatorName = v.InitiatorName
	}
	resp.Event = event
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toMessageResponse(result domain.PostResult) messageResponse {
	return messageResponse{
		MessageID: result.MessageID,
		RoomID:    result.RoomID,
		SentAt:    result.SentAt.UTC().Format(time.RFC3339),
	}
}
