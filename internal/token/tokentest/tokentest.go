// Package tokentest provides service-account keys and a stub OAuth2 token endpoint for tests.
package tokentest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

const JWTBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

var (
	keyOnce sync.Once
	key     *rsa.PrivateKey
	keyPEM  string
	keyErr  error
)

// PrivateKey returns a process-wide RSA key and its PKCS#8 PEM encoding.
func PrivateKey(t testing.TB) (*rsa.PrivateKey, string) {
	t.Helper()

	keyOnce.Do(func() {
		key, keyErr = rsa.GenerateKey(rand.Reader, 2048)
		if keyErr != nil {
			return
		}
		var der []byte
		der, keyErr = x509.MarshalPKCS8PrivateKey(key)
		if keyErr != nil {
			return
		}
		keyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	})
	if keyErr != nil {
		t.Fatalf("failed to generate private key: %v", keyErr)
	}

	return key, keyPEM
}

// EscapedPrivateKey returns the PEM key with newlines written as literal "\n",
// the way it travels in a header.
func EscapedPrivateKey(t testing.TB) string {
	_, p := PrivateKey(t)
	return strings.ReplaceAll(p, "\n", `\n`)
}

// TokenServer is a stub Google OAuth2 token endpoint.
type TokenServer struct {
	*httptest.Server

	calls      atomic.Int32
	mu         sync.Mutex
	token      string
	status     int
	onRequest  func(r *http.Request)
	assertions []string
}

func NewTokenServer(t testing.TB, accessToken string) *TokenServer {
	t.Helper()

	s := &TokenServer{token: accessToken}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *TokenServer) serve(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	s.mu.Lock()
	onRequest, status, accessToken := s.onRequest, s.status, s.token
	s.mu.Unlock()

	if onRequest != nil {
		onRequest(r)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != JWTBearerGrantType {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unsupported_grant_type"})
		return
	}

	s.mu.Lock()
	s.assertions = append(s.assertions, r.PostForm.Get("assertion"))
	s.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "Invalid JWT Signature.",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

// SetStatus makes the endpoint answer every exchange with status; 0 or 200 restores success.
func (s *TokenServer) SetStatus(status int) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// OnRequest registers fn to run for every request before it is answered.
func (s *TokenServer) OnRequest(fn func(r *http.Request)) {
	s.mu.Lock()
	s.onRequest = fn
	s.mu.Unlock()
}

// Calls reports how many requests reached the endpoint.
func (s *TokenServer) Calls() int {
	return int(s.calls.Load())
}

// Assertions returns the JWT assertions received so far.
func (s *TokenServer) Assertions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.assertions...)
}
