// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"cartledger/internal/domain/common"
)

// FirebaseAuthClient is an alias so RouterDeps can hold the client as
// *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// context keys use a private type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var ctxKeyCaller = ctxKey{name: "caller"}

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and stores the token UID in the request context as the opaque caller
// identity. Carts record this identity as their owner; ownership checks
// compare it by value.
type AuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), common.Identity(uid))))
	})
}

// WithCaller stores the caller identity in ctx. Exposed for handler tests
// and for wiring that authenticates by other means.
func WithCaller(ctx context.Context, id common.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyCaller, id)
}

// Caller returns the authenticated caller identity, if any.
func Caller(r *http.Request) (common.Identity, bool) {
	id, ok := r.Context().Value(ctxKeyCaller).(common.Identity)
	if !ok || id.IsZero() {
		return "", false
	}
	return id, true
}
