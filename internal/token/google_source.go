package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2jwt "golang.org/x/oauth2/jwt"
)

var ErrEmptyAccessToken = errors.New("token endpoint returned an empty access token")

// GoogleSource exchanges a self-signed JWT assertion for an access token (RFC 7523).
type GoogleSource struct {
	tokenURL   string
	httpClient *http.Client
}

// NewGoogleSource creates a Source backed by Google's OAuth2 token endpoint.
// An empty tokenURL selects google.JWTTokenURL; a nil httpClient selects http.DefaultClient.
func NewGoogleSource(tokenURL string, httpClient *http.Client) *GoogleSource {
	if tokenURL == "" {
		tokenURL = google.JWTTokenURL
	}

	return &GoogleSource{
		tokenURL:   tokenURL,
		httpClient: httpClient,
	}
}

func (s *GoogleSource) AccessToken(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	// Fail fast on a malformed key, before any network round trip.
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(creds.PrivateKey)); err != nil {
		return nil, fmt.Errorf("failed to parse service account private key: %w", err)
	}

	conf := &oauth2jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{FirebaseMessagingScope},
		TokenURL:   s.tokenURL,
	}

	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	tok, err := conf.TokenSource(ctx).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to exchange JWT assertion: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	event := log.Debug().Str("client_email", creds.ClientEmail)
	if !tok.Expiry.IsZero() {
		event = event.Str("expires", humanize.Time(tok.Expiry))
	}
	event.Msg("google access token minted")

	return tok, nil
}
