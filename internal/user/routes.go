package user

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

	router.Get("/", listUsersHandler)
	router.Get("/{userID}", getUserHandler)

	router.With(auth.RequireAdmin()).Post("/create", createUserHandler)
	router.With(auth.RequireAdmin()).Post("/edit/{userID}", editUserHandler)
	router.With(auth.RequireAdmin()).Post("/updateField/{userID}", updateUserFieldHandler)
	router.With(auth.RequireAdmin()).Post("/removeField/{userID}", removeUserFieldHandler)
	router.With(auth.RequireAdmin()).Post("/delete/{userID}", deleteUserHandler)
	router.With(auth.RequireAdmin()).Post("/toggleRegistration/{userID}", toggleRegistrationHandler)

	return router
}

// GET: /?sort=firstName&order=asc&search=...
func listUsersHandler(w http.ResponseWriter, r *http.Request) {
	req := &ListUsersRequest{
		SortField: r.URL.Query().Get("sort"),
		SortOrder: r.URL.Query().Get("order"),
		Search:    r.URL.Query().Get("search"),
	}

	users, err := repository.List(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, users)
}

// GET: /{userID}
func getUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	u, err := repository.Get(r.Context(), userID)
	if err == UserNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, u)
}

// POST: /create
func createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := repository.Create(r.Context(), principal, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, u)
}

// POST: /edit/{userID}
func editUserHandler(w http.ResponseWriter, r *http.Request) {
	var req EditUserRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	if err := repository.Edit(r.Context(), principal, &req); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully edited user " + req.UserID))
}

// POST: /updateField/{userID}
func updateUserFieldHandler(w http.ResponseWriter, r *http.Request) {
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
	userID := chi.URLParam(r, "userID")

	err = repository.UpdateField(r.Context(), principal, userID, req.Field, req.Value)
	if err == InvalidFieldError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully updated user " + userID))
}

// POST: /removeField/{userID}
func removeUserFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req RemoveFieldRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID := chi.URLParam(r, "userID")

	err = repository.RemoveField(r.Context(), principal, userID, req.Field)
	if err == InvalidFieldError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully removed field from user " + userID))
}

// POST: /delete/{userID}
func deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "userID")
	if err := repository.Delete(r.Context(), principal, userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deleted user " + userID))
}

// POST: /toggleRegistration/{userID}
func toggleRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var req ToggleRegistrationRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID := chi.URLParam(r, "userID")

	err = repository.ToggleRegistration(r.Context(), principal, userID, req.CourseID, req.Registered)
	if err == UserNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully updated registration for user " + userID))
}
