package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"grocer/internal/config"
	"grocer/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// SubjectKey is the context key under which the subject of the authenticated
// bearer token is stored.
const SubjectKey CtxKey = "Subject"

// SecHandlerOptions configure bearer token verification for the v1 API.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	// When empty, authentication is disabled and all requests pass through.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens on v1 API requests.
type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	if options == nil || options.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// HandleBearerAuth verifies the given bearer token and returns a context
// carrying the token subject under SubjectKey.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	return context.WithValue(ctx, SubjectKey, claims.Subject), nil
}

// Middleware enforces bearer authentication on every request when a public key
// is configured. Without a key it passes requests through untouched.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.key == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectFromContext returns the token subject stored by HandleBearerAuth,
// or an empty string for unauthenticated requests.
func GetSubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)

	return subject
}
