package notification

import (
	"fmt"
	"strings"

	"github.com/katatrina/fcm-relay/internal/validator"
)

// NormalizePrivateKey turns literal "\n" escape sequences into newlines.
// Applying it to an already normalized key is a no-op.
func NormalizePrivateKey(raw string) string {
	return strings.ReplaceAll(raw, `\n`, "\n")
}

// ValidateRequest rejects a request before any external call is made.
// fcmToken is checked first, then the credential pair, then the project id.
func ValidateRequest(req Request) error {
	if req.FCMToken == "" {
		return &ValidationError{Err: ErrMissingFCMToken}
	}

	if req.PrivateKey == "" || req.ClientEmail == "" {
		return &ValidationError{Err: ErrMissingCredentials}
	}

	if err := validator.ValidateProjectID(req.ProjectID); err != nil {
		return &ValidationError{Err: fmt.Errorf("%w: %v", ErrInvalidProjectID, err)}
	}

	return nil
}
