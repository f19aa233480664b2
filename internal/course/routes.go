package course

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/blob"
)

var uploader blob.Uploader

// InitUploader wires the banner upload handler against the blob store.
func InitUploader(u blob.Uploader) {
	uploader = u
}

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	router.Get("/", listCoursesHandler)
	router.Get("/active", listActiveCoursesHandler)
	router.Get("/{courseID}", getCourseHandler)

	router.With(auth.RequireAdmin()).Post("/create", createCourseHandler)
	router.With(auth.RequireAdmin()).Post("/edit/{courseID}", editCourseHandler)
	router.With(auth.RequireAdmin()).Post("/updateField/{courseID}", updateCourseFieldHandler)
	router.With(auth.RequireAdmin()).Post("/deactivate/{courseID}", deactivateCourseHandler)
	router.With(auth.RequireAdmin()).Post("/archive/{courseID}", archiveCourseHandler)
	router.With(auth.RequireAdmin()).Post("/uploadBanner", uploadBannerHandler)

	return router
}

// GET: /?sort=name&order=asc&search=...
func listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	req := &ListCoursesRequest{
		SortField: r.URL.Query().Get("sort"),
		SortOrder: r.URL.Query().Get("order"),
		Search:    r.URL.Query().Get("search"),
	}

	courses, err := repository.List(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, courses)
}

// GET: /active
func listActiveCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := repository.ListActive(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, courses)
}

// GET: /{courseID}
func getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	c, err := repository.Get(r.Context(), courseID)
	if err == CourseNotFoundError {
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
func createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest

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
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, c)
}

// POST: /edit/{courseID}
func editCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req EditCourseRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.CourseID = chi.URLParam(r, "courseID")

	if err := repository.Edit(r.Context(), principal, &req); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully edited course " + req.CourseID))
}

// POST: /updateField/{courseID}
func updateCourseFieldHandler(w http.ResponseWriter, r *http.Request) {
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
	courseID := chi.URLParam(r, "courseID")

	err = repository.UpdateField(r.Context(), principal, courseID, req.Field, req.Value)
	if err == InvalidFieldError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully updated course " + courseID))
}

// POST: /deactivate/{courseID}
func deactivateCourseHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "courseID")
	if err := repository.Deactivate(r.Context(), principal, courseID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deactivated course " + courseID))
}

// POST: /archive/{courseID}
func archiveCourseHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	courseID := chi.URLParam(r, "courseID")
	err = repository.Archive(r.Context(), principal, courseID)
	if err == CourseNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		glog.Warningf("error archiving course %v: %v\n", courseID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully archived course " + courseID))
}

// POST: /uploadBanner (multipart form, field "banner")
func uploadBannerHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("banner")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	url, err := uploader.Upload(r.Context(), blob.KindImages, header.Filename, data)
	if err != nil {
		glog.Warningf("error uploading course banner: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, map[string]string{"url": url})
}
