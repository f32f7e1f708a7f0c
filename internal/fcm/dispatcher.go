package fcm

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public FCM HTTP v1 host.
	DefaultBaseURL = "https://fcm.googleapis.com"

	sendPath = "/v1/projects/{projectId}/messages:send"
)

// Dispatcher delivers one message to FCM on behalf of a project.
type Dispatcher interface {
	Send(ctx context.Context, projectID string, accessToken *oauth2.Token, message *messaging.Message) (*Response, error)
}

// Response is the provider's reply to a successful send, kept verbatim.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// ProviderError is returned when FCM answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       []byte
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("FCM returned non-OK status: %d, body: %s", e.StatusCode, string(e.Body))
}

// sendRequest is the FCM v1 request envelope.
type sendRequest struct {
	Message *messaging.Message `json:"message"`
}
