package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/config"
)

func Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Post("/session", createSessionHandler)
	router.Post("/signout", signOutHandler)
	router.With(AuthCtx()).Get("/me", getMeHandler)

	return router
}

// POST: /session
func createSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cookie, err := repository.CreateSession(req.Token)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    cookie,
		MaxAge:   int(config.Config.SessionCookieExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

// POST: /signout
func signOutHandler(w http.ResponseWriter, r *http.Request) {
	tokenCookie, err := r.Cookie(config.Config.SessionCookieName)
	if err == nil {
		if principal, err := repository.VerifySessionCookie(tokenCookie); err == nil {
			_ = repository.SignOut(principal.ID)
		}
	}

	// Expire the cookie regardless of whether the session was still valid.
	http.SetCookie(w, &http.Cookie{
		Name:     config.Config.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}

// GET: /me
func getMeHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	render.JSON(w, r, principal)
}
