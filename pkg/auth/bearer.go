// Package auth implements the static bearer-token gate in front of the MCP transport.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidToken is returned when the presented credential does not match
// the configured secret.
var ErrInvalidToken = errors.New("invalid bearer token")

// Principal describes an authenticated caller. The grant is deliberately
// wide: the single static secret maps to one client with a wildcard scope
// and no expiry.
type Principal struct {
	Token    string
	ClientID string
	Scopes   []string
}

// Gate validates presented bearer tokens against a single configured secret.
type Gate struct {
	secret   []byte
	clientID string
}

// NewGate creates a gate for the given secret. The secret comes from
// configuration and is never compiled into the binary.
func NewGate(secret, clientID string) *Gate {
	return &Gate{
		secret:   []byte(secret),
		clientID: clientID,
	}
}

// Authenticate returns the principal for the presented token, or
// ErrInvalidToken. The comparison is constant-time so the secret cannot be
// probed byte by byte.
func (g *Gate) Authenticate(token string) (*Principal, error) {
	if subtle.ConstantTimeCompare([]byte(token), g.secret) != 1 {
		return nil, ErrInvalidToken
	}

	return &Principal{
		Token:    token,
		ClientID: g.clientID,
		Scopes:   []string{"*"},
	}, nil
}

// Middleware rejects requests without a matching bearer credential before
// they reach the MCP handler, so tool bodies never run for unauthenticated
// callers. Authenticated requests carry the principal in their context.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		principal, err := g.Authenticate(token)
		if err != nil {
			log.Warn("Rejected request with invalid bearer token", "remote", r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			http.Error(w, "invalid bearer token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the authenticated principal, if any.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
