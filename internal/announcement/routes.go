package announcement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
)

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	router.Get("/", listAnnouncementsHandler)
	router.Get("/{announcementID}", getAnnouncementHandler)

	router.With(auth.RequireAdmin()).Post("/create", createAnnouncementHandler)
	router.With(auth.RequireAdmin()).Post("/delete/{announcementID}", deleteAnnouncementHandler)

	return router
}

// GET: /
func listAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	announcements, err := repository.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, announcements)
}

// GET: /{announcementID}
func getAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	announcementID := chi.URLParam(r, "announcementID")

	a, err := repository.Get(r.Context(), announcementID)
	if err == AnnouncementNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, a)
}

// POST: /create
func createAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAnnouncementRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := repository.Create(r.Context(), principal, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, a)
}

// POST: /delete/{announcementID}
func deleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	announcementID := chi.URLParam(r, "announcementID")
	if err := repository.Delete(r.Context(), principal, announcementID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deleted announcement " + announcementID))
}
