package notification

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katatrina/fcm-relay/internal/fcm"
)

var (
	ErrMissingFCMToken    = errors.New("missing fcmToken")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidProjectID   = errors.New("invalid project id")
)

// ValidationError means the caller's input was incomplete; nothing was sent anywhere.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AuthError means no access token could be minted from the supplied credentials.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to generate access token: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// DispatchError means FCM rejected the message or could not be reached.
// Details is the provider body when there is one, the error message otherwise.
type DispatchError struct {
	Err     error
	Details any
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to send FCM: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

func newDispatchError(err error) *DispatchError {
	var providerErr *fcm.ProviderError
	if errors.As(err, &providerErr) && len(providerErr.Body) > 0 {
		if json.Valid(providerErr.Body) {
			return &DispatchError{Err: err, Details: json.RawMessage(providerErr.Body)}
		}
		return &DispatchError{Err: err, Details: string(providerErr.Body)}
	}

	return &DispatchError{Err: err, Details: err.Error()}
}
