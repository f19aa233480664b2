package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
)

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	router.Get("/course/{courseID}", listContentHandler)
	router.Get("/{contentID}", getContentHandler)

	router.With(auth.RequireAdmin()).Post("/create", createContentHandler)
	router.With(auth.RequireAdmin()).Post("/edit/{contentID}", editContentHandler)
	router.With(auth.RequireAdmin()).Post("/updateField/{contentID}", updateContentFieldHandler)
	router.With(auth.RequireAdmin()).Post("/archive/{contentID}", archiveContentHandler)

	return router
}

// GET: /course/{courseID}
func listContentHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	units, err := repository.ListByCourse(r.Context(), courseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, units)
}

// GET: /{contentID}
func getContentHandler(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")

	c, err := repository.Get(r.Context(), contentID)
	if err == ContentNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, c)
}

// POST: /create
func createContentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateContentRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := repository.Create(r.Context(), principal, &req)
	if err == UnsupportedContentTypeError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, c)
}

// POST: /edit/{contentID}
func editContentHandler(w http.ResponseWriter, r *http.Request) {
	var req EditContentRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.ContentID = chi.URLParam(r, "contentID")

	err = repository.Edit(r.Context(), principal, &req)
	if err == ContentNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err == UnsupportedContentTypeError {
		// The stored document carries a type tag no form exists for.
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully edited content " + req.ContentID))
}

// POST: /updateField/{contentID}
func updateContentFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	contentID := chi.URLParam(r, "contentID")

	err = repository.UpdateField(r.Context(), principal, contentID, req.Field, req.Value)
	if err == InvalidFieldError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully updated content " + contentID))
}

// POST: /archive/{contentID}
func archiveContentHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	contentID := chi.URLParam(r, "contentID")
	err = repository.Archive(r.Context(), principal, contentID)
	if err == ContentNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		glog.Warningf("error archiving content %v: %v\n", contentID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully archived content " + contentID))
}
