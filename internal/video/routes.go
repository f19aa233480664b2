package video

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

// InitUploader wires the video upload handler against the blob store.
func InitUploader(u blob.Uploader) {
	uploader = u
}

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	router.Get("/questions/content/{contentID}", listQuestionsHandler)
	router.Get("/", listVideosHandler)
	router.Get("/{videoID}", getVideoHandler)

	router.With(auth.RequireAdmin()).Post("/questions/create", createQuestionHandler)
	router.With(auth.RequireAdmin()).Post("/questions/edit/{questionID}", editQuestionHandler)
	router.With(auth.RequireAdmin()).Post("/questions/delete/{questionID}", deleteQuestionHandler)
	router.With(auth.RequireAdmin()).Post("/edit/{videoID}", editVideoHandler)
	router.With(auth.RequireAdmin()).Post("/delete/{videoID}", deleteVideoHandler)
	router.With(auth.RequireAdmin()).Post("/upload", uploadVideoHandler)

	return router
}

// GET: /questions/content/{contentID}
func listQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")

	questions, err := repository.ListQuestionsByContent(r.Context(), contentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, questions)
}

// POST: /questions/create
func createQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := repository.CreateQuestion(r.Context(), principal, &req)
	if err == InvalidAnswerIndexError || err == InvalidTimestampError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, q)
}

// POST: /questions/edit/{questionID}
func editQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req EditQuestionRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.QuestionID = chi.URLParam(r, "questionID")

	err = repository.EditQuestion(r.Context(), principal, &req)
	if err == QuestionNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err == InvalidAnswerIndexError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully updated question " + req.QuestionID))
}

// POST: /questions/delete/{questionID}
func deleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	questionID := chi.URLParam(r, "questionID")
	if err := repository.DeleteQuestion(r.Context(), principal, questionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deleted question " + questionID))
}

// GET: /
func listVideosHandler(w http.ResponseWriter, r *http.Request) {
	videos, err := repository.ListVideos(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, videos)
}

// GET: /{videoID}
func getVideoHandler(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")

	v, err := repository.GetVideo(r.Context(), videoID)
	if err == VideoNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, v)
}

// POST: /edit/{videoID}
func editVideoHandler(w http.ResponseWriter, r *http.Request) {
	var req EditVideoRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.VideoID = chi.URLParam(r, "videoID")

	err = repository.EditVideo(r.Context(), principal, &req)
	if err == VideoNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully edited video " + req.VideoID))
}

// POST: /delete/{videoID}
func deleteVideoHandler(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	videoID := chi.URLParam(r, "videoID")
	if err := repository.DeleteVideo(r.Context(), principal, videoID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deleted video " + videoID))
}

// POST: /upload (multipart form, field "video")
func uploadVideoHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("video")
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

	url, err := uploader.Upload(r.Context(), blob.KindVideos, header.Filename, data)
	if err != nil {
		glog.Warningf("error uploading video: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, map[string]string{"url": url})
}
