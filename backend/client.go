// Package backend is the REST client for the external chat backend. It
// consumes the backend's wire contract and nothing else; orchestration
// rules live in the messenger.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"message-service/domain"
)

// Credentials identify a backend user on the wire.
type Credentials struct {
	UserID string
	Token  string
}

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
	system     Credentials
}

// NewClient builds a backend client. The system credentials are used for
// alias-only posts, read-marking, message lookup and updates; regular
// posts carry the sender's own credentials.
func NewClient(log *slog.Logger, baseURL string, system Credentials, timeout time.Duration) *Client {
	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		system:     system,
	}
}

type sendMessageRequest struct {
	Message wireMessage `json:"message"`
}

type wireMessage struct {
	ID     string    `json:"_id,omitempty"`
	RoomID string    `json:"rid"`
	Body   string    `json:"msg,omitempty"`
	Alias  string    `json:"alias,omitempty"`
	Type   string    `json:"t,omitempty"`
	SentAt string    `json:"ts,omitempty"`
	Sender *wireUser `json:"u,omitempty"`
}

type wireUser struct {
	ID string `json:"_id"`
}

type messageResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Message *wireMessage `json:"message,omitempty"`
}

// Post sends the message into its room. A reply without success or
// without a stored message reference is an error.
func (c *Client) Post(ctx context.Context, msg domain.ChatMessage) (domain.PostResult, error) {
	creds := Credentials{UserID: msg.UserID, Token: msg.Token}
	if creds.Token == "" {
		creds = c.system
	}

	var resp messageResponse
	err := c.call(ctx, http.MethodPost, "/api/v1/chat.sendMessage", creds, sendMessageRequest{
		Message: wireMessage{RoomID: msg.RoomID, Body: msg.Body, Alias: msg.Alias, Type: msg.Type},
	}, &resp)
	if err != nil {
		return domain.PostResult{}, err
	}
	if !resp.Success || resp.Message == nil {
		return domain.PostResult{}, fmt.Errorf("backend rejected message: %s", resp.Error)
	}

	sentAt, _ := time.Parse(time.RFC3339Nano, resp.Message.SentAt)
	return domain.PostResult{
		MessageID: resp.Message.ID,
		RoomID:    resp.Message.RoomID,
		SentAt:    sentAt,
	}, nil
}

// MarkRoomRead marks the room read for the system user.
func (c *Client) MarkRoomRead(ctx context.Context, roomID string) error {
	var resp messageResponse
	err := c.call(ctx, http.MethodPost, "/api/v1/subscriptions.read", c.system,
		map[string]string{"rid": roomID}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("backend refused read marking: %s", resp.Error)
	}
	return nil
}

// FindMessage looks a message up by id. An unknown id is a normal nil
// result, not an error.
func (c *Client) FindMessage(ctx context.Context, messageID string) (*domain.BackendMessage, error) {
	var resp messageResponse
	err := c.call(ctx, http.MethodGet,
		"/api/v1/chat.getMessage?msgId="+url.QueryEscape(messageID), c.system, nil, &resp)
	if err != nil {
		var status statusError
		if asStatusError(err, &status) && (status.code == http.StatusBadRequest || status.code == http.StatusNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !resp.Success || resp.Message == nil {
		return nil, nil
	}
	return toBackendMessage(*resp.Message), nil
}

type listMessagesResponse struct {
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
	Messages []wireMessage `json:"messages"`
}

// FindMessages pages through a room's stored messages.
func (c *Client) FindMessages(ctx context.Context, roomID string, offset, count int) ([]domain.BackendMessage, error) {
	var resp listMessagesResponse
	err := c.call(ctx, http.MethodGet,
		fmt.Sprintf("/api/v1/groups.messages?roomId=%s&offset=%d&count=%d",
			url.QueryEscape(roomID), offset, count), c.system, nil, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("backend refused message listing: %s", resp.Error)
	}

	messages := make([]domain.BackendMessage, 0, len(resp.Messages))
	for _, wire := range resp.Messages {
		messages = append(messages, *toBackendMessage(wire))
	}
	return messages, nil
}

// UpdateMessage rewrites an existing message and reports whether the
// backend accepted the update.
func (c *Client) UpdateMessage(ctx context.Context, msg domain.BackendMessage) (bool, error) {
	var resp messageResponse
	err := c.call(ctx, http.MethodPost, "/api/v1/chat.update", c.system, sendMessageRequest{
		Message: wireMessage{ID: msg.ID, RoomID: msg.RoomID, Body: msg.Body, Alias: msg.Alias},
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

// DeleteMessage removes a message from its room and reports whether the
// backend accepted the deletion.
func (c *Client) DeleteMessage(ctx context.Context, roomID, messageID string) (bool, error) {
	var resp messageResponse
	err := c.call(ctx, http.MethodPost, "/api/v1/chat.delete", c.system,
		map[string]string{"roomId": roomID, "msgId": messageID}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

type roomInfoResponse struct {
	Success bool `json:"success"`
	Group   struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"group"`
}

func (c *Client) GetRoomInfo(ctx context.Context, roomID string) (domain.RoomInfo, error) {
	var resp roomInfoResponse
	err := c.call(ctx, http.MethodGet,
		"/api/v1/groups.info?roomId="+url.QueryEscape(roomID), c.system, nil, &resp)
	if err != nil {
		return domain.RoomInfo{}, err
	}
	if !resp.Success {
		return domain.RoomInfo{}, fmt.Errorf("backend has no room %s", roomID)
	}
	return domain.RoomInfo{ID: resp.Group.ID, DisplayName: resp.Group.Name}, nil
}

// statusError keeps the HTTP status around so callers can tell "not
// found" apart from a backend outage.
type statusError struct {
	code int
	body string
}

func (e statusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.code, e.body)
}

func toBackendMessage(wire wireMessage) *domain.BackendMessage {
	msg := &domain.BackendMessage{
		ID:     wire.ID,
		RoomID: wire.RoomID,
		Body:   wire.Body,
		Alias:  wire.Alias,
	}
	if wire.Sender != nil {
		msg.SenderID = wire.Sender.ID
	}
	msg.SentAt, _ = time.Parse(time.RFC3339Nano, wire.SentAt)
	return msg
}

func asStatusError(err error, target *statusError) bool {
	se, ok := err.(statusError)
	if ok {
		*target = se
	}
	return ok
}

func (c *Client) call(ctx context.Context, method, path string, creds Credentials, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", creds.UserID)
	req.Header.Set("X-Auth-Token", creds.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError{code: resp.StatusCode, body: string(raw)}
	}
	return json.Unmarshal(raw, out)
}
