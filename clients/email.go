// Package clients holds the thin REST clients for the notification
// collaborators: the user service (emails) and the live service.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// EmailClient triggers notification mails through the user service,
// which owns the templates and the recipient lookup. Failures are
// returned to the dispatcher, which logs and counts them.
type EmailClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewEmailClient(baseURL string, timeout time.Duration) *EmailClient {
	return &EmailClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *EmailClient) SendNewMessageEmail(ctx context.Context, roomID string) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/mails/messages/new",
		map[string]string{"roomId": roomID})
}

func (c *EmailClient) SendFeedbackMessageEmail(ctx context.Context, roomID string) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/mails/messages/feedback",
		map[string]string{"roomId": roomID})
}

func (c *EmailClient) SendReassignRequestEmail(ctx context.Context, roomID string, consultantID uuid.UUID) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/mails/reassignment/request",
		map[string]string{"roomId": roomID, "toConsultantId": consultantID.String()})
}

func (c *EmailClient) SendReassignDecisionEmail(ctx context.Context, roomID string, consultantID uuid.UUID) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/mails/reassignment/decision",
		map[string]string{"roomId": roomID, "toConsultantId": consultantID.String()})
}

// LiveClient asks the live service to push an update for a room over its
// user-facing socket connections.
type LiveClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewLiveClient(baseURL string, timeout time.Duration) *LiveClient {
	return &LiveClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (c *LiveClient) Publish(ctx context.Context, roomID string) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/liveevent", map[string]string{"roomId": roomID})
}

func postJSON(ctx context.Context, client *http.Client, url string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return nil
}
