package auth

import (
	"context"
	"net/http"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
)

// AuthCtx is a middleware that rejects requests without a valid session
// cookie. The Principal associated with the request is added to the request
// context and can be accessed via GetPrincipalFromRequest.
func AuthCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenCookie, err := r.Cookie(config.Config.SessionCookieName)
			if err != nil {
				rejectUnauthorizedRequest(w)
				return
			}

			principal, err := repository.VerifySessionCookie(tokenCookie)
			if err != nil {
				rejectUnauthorizedRequest(w)
				return
			}

			ctxWithPrincipal := context.WithValue(r.Context(), "currentUser", principal)
			next.ServeHTTP(w, r.WithContext(ctxWithPrincipal))
		})
	}
}

// RequireAdmin is a middleware that rejects requests whose principal is not
// an administrator. Must be nested inside AuthCtx.
func RequireAdmin() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := GetPrincipalFromRequest(r)
			if err != nil || !principal.IsAdmin {
				rejectUnauthorizedRequest(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetPrincipalFromRequest returns the Principal within the request context.
// Only works with routes nested inside the AuthCtx middleware.
func GetPrincipalFromRequest(r *http.Request) (*Principal, error) {
	principal, ok := r.Context().Value("currentUser").(*Principal)
	if !ok || principal == nil {
		return nil, PrincipalMissingError
	}

	return principal, nil
}

func rejectUnauthorizedRequest(w http.ResponseWriter) {
	http.Error(w, "You must be authenticated to access this resource", http.StatusUnauthorized)
}
