package token

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/oauth2"
)

// FirebaseMessagingScope is the only OAuth2 scope requested for minted access tokens.
const FirebaseMessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Credentials identifies the service account a caller wants to send as.
// They live for a single request and are never kept by a Source.
type Credentials struct {
	PrivateKey  string
	ClientEmail string
}

// Fingerprint returns a stable, non-reversible key for the credentials.
func (c Credentials) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(c.ClientEmail))
	h.Write([]byte{0})
	h.Write([]byte(c.PrivateKey))
	return hex.EncodeToString(h.Sum(nil))
}

// Source mints bearer access tokens for service-account credentials.
type Source interface {
	AccessToken(ctx context.Context, creds Credentials) (*oauth2.Token, error)
}
