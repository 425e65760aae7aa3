package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adarshshan/stationaryPro/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Authorizer validates a bearer credential and yields the embedded identity.
type Authorizer interface {
	Authorize(tokenString string) (auth.Identity, error)
}

// BearerAuth guards protected routes. It expects "Authorization: Bearer
// <token>" and puts the verified identity on the request context.
func BearerAuth(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}
			tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			ident, err := authorizer.Authorize(tokenString)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrServerMisconfigured):
					respondMessage(w, http.StatusInternalServerError, "Server configuration error: JWT secret not found.")
				case errors.Is(err, auth.ErrMissingCredential):
					respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				default:
					respondMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				}
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromContext(ctx context.Context) (auth.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(auth.Identity)
	return ident, ok
}
