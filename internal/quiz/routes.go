package quiz

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

	router.Get("/content/{contentID}", getQuizHandler)

	router.With(auth.RequireAdmin()).Post("/addQuestion", addQuestionHandler)
	router.With(auth.RequireAdmin()).Post("/saveQuestions", saveQuestionsHandler)
	router.With(auth.RequireAdmin()).Post("/deleteQuestion", deleteQuestionHandler)

	return router
}

// GET: /content/{contentID}
func getQuizHandler(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")

	q, err := repository.GetByContentID(r.Context(), contentID)
	if err == QuizNotFoundError {
		// The page treats an absent quiz as an empty question list, not an
		// error.
		render.JSON(w, r, &Quiz{ContentID: contentID, Questions: []Question{}})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, q)
}

// POST: /addQuestion
func addQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := repository.AddQuestion(r.Context(), principal, &req)
	if err == InvalidAnswerIndexError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, q)
}

// POST: /saveQuestions
func saveQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveQuestionsRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := repository.SaveQuestions(r.Context(), principal, &req)
	if err == InvalidAnswerIndexError {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, q)
}

// POST: /deleteQuestion
func deleteQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var req DeleteQuestionRequest

	principal, err := auth.GetPrincipalFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = repository.DeleteQuestion(r.Context(), principal, &req)
	if err == QuizNotFoundError || err == QuestionNotFoundError {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(200)
	w.Write([]byte("Successfully deleted question"))
}
