package session

import (
	"context"
	"net/http"
	"strings"

	"JewelStore/pkg/kit"
)

type ctxKey string

const visitorKey ctxKey = "visitor"

// Visitor carries the authenticated session identity through the request
// context.
type Visitor struct {
	ID   string
	Role string
}

func VisitorFromContext(ctx context.Context) (Visitor, bool) {
	v, ok := ctx.Value(visitorKey).(Visitor)
	return v, ok
}

// RequireSession rejects requests without a valid session token and injects
// the visitor identity into the context.
func RequireSession(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.VisitorID == "" {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), visitorKey, Visitor{ID: claims.VisitorID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin additionally rejects non-admin sessions. It must run after
// RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := VisitorFromContext(r.Context())
		if !ok || v.Role != RoleAdmin {
			kit.WriteError(w, r, http.StatusForbidden, "forbidden", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
