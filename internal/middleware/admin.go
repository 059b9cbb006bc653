package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamsmith/hackops/internal/model"
)

// AdminAuth gates organizer routes behind a single static token. The
// server only ever holds the bcrypt hash of the token; the plaintext
// lives with the operator (see cmd/admin-token).
func AdminAuth(tokenHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				model.NewUnauthorizedError("admin token required").WriteJSON(w)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				model.NewForbiddenError("invalid admin token").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin reports whether the request passed admin authentication
func IsAdmin(ctx context.Context) bool {
	admin, ok := ctx.Value(AdminKey).(bool)
	return ok && admin
}

// extractBearerToken pulls the token from the Authorization header
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
