package fcm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"resty.dev/v3"
)

// RestDispatcher posts messages to the FCM HTTP v1 API and keeps the provider body untouched.
type RestDispatcher struct {
	client *resty.Client
}

// NewRestDispatcher creates a dispatcher for baseURL (DefaultBaseURL when empty).
// A zero timeout leaves outbound calls bounded only by the request context.
func NewRestDispatcher(baseURL string, timeout time.Duration) *RestDispatcher {
	return newRestDispatcher(baseURL, timeout, log.Logger)
}

func newRestDispatcher(baseURL string, timeout time.Duration, logger zerolog.Logger) *RestDispatcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetLogger(newRestyLogger(logger))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &RestDispatcher{client: client}
}

// Close releases the underlying HTTP client.
func (d *RestDispatcher) Close() error {
	return d.client.Close()
}

func (d *RestDispatcher) Send(ctx context.Context, projectID string, accessToken *oauth2.Token, message *messaging.Message) (*Response, error) {
	payload, err := json.Marshal(sendRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal FCM message: %w", err)
	}

	res, err := d.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken.AccessToken).
		SetPathParam("projectId", projectID).
		SetBody(payload).
		SetDoNotParseResponse(true).
		Post(sendPath)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FCM response: %w", err)
	}

	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, &ProviderError{
			StatusCode: res.StatusCode(),
			Body:       body,
		}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("FCM returned a non-JSON body with status %d", res.StatusCode())
	}

	log.Debug().Str("project_id", projectID).Int("status", res.StatusCode()).Msg("FCM message accepted")

	return &Response{
		StatusCode: res.StatusCode(),
		Body:       body,
	}, nil
}
