package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mbeekman/wealthtrack/internal/api/response"
	"github.com/mbeekman/wealthtrack/internal/model"
)

type sessionContextKey struct{}

// SessionVerifier verifies a session token and returns the session it carries.
type SessionVerifier interface {
	Verify(token string) (model.Session, error)
}

// RequireSession returns a middleware that rejects requests without a valid
// session token. The token is read from the Authorization header as a Bearer
// token, or from the session cookie set at login.
// Returns 401 Unauthorized if the token is missing, expired, or invalid.
func RequireSession(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if cookie, err := r.Cookie("session"); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", "")
				return
			}

			session, err := verifier.Verify(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired session", "")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireSession.
// The second return value is false when the request was not authenticated.
func SessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(model.Session)
	return session, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
