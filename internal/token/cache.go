package token

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Cache stores minted access tokens keyed by credential fingerprint.
// Get returns a nil token and a nil error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*oauth2.Token, error)
	Set(ctx context.Context, key string, tok *oauth2.Token) error
}

// CachedSource reuses access tokens across requests that carry the same credentials.
type CachedSource struct {
	source Source
	cache  Cache
	skew   time.Duration
	now    func() time.Time
}

// NewCachedSource wraps source with cache. Tokens expiring within skew are never served from the cache.
func NewCachedSource(source Source, cache Cache, skew time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache,
		skew:   skew,
		now:    time.Now,
	}
}

func (s *CachedSource) AccessToken(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	key := creds.Fingerprint()

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		// Cache errors are not fatal.
		log.Warn().Err(err).Msg("failed to read access token cache")
	} else if s.usable(cached) {
		return cached, nil
	}

	tok, err := s.source.AccessToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	if s.usable(tok) {
		if err = s.cache.Set(ctx, key, tok); err != nil {
			log.Warn().Err(err).Msg("failed to write access token cache")
		}
	}

	return tok, nil
}

func (s *CachedSource) usable(tok *oauth2.Token) bool {
	if tok == nil || tok.AccessToken == "" || tok.Expiry.IsZero() {
		return false
	}
	return tok.Expiry.Add(-s.skew).After(s.now())
}
