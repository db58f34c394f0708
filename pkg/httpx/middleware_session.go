package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "jwt-notes"

// Authenticator resolves a session token to the id of an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// SessionMiddleware rejects requests without a valid session and puts the
// caller's user id into the request context. The cookie is checked first,
// then an Authorization: Bearer header.
func SessionMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := sessionToken(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "Unauthorized - No token provided")
				return
			}

			userID, err := a.Authenticate(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("session rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "Unauthorized - Invalid token")
				return
			}

			ctx = WithUserID(ctx, userID)
			ctx = slogx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

// SetSessionCookie writes the session cookie. secure should be false only
// for plain-http development.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
