package quiz

import (
	"context"
	"reflect"
	"testing"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var admin = &auth.Principal{ID: "admin-1", Email: "admin@example.edu", IsAdmin: true}

func intPtr(i int) *int { return &i }

func question(text string, correct *int) Question {
	return Question{
		Question:      text,
		Answers:       []string{"a", "b", "c", "d"},
		CorrectAnswer: correct,
	}
}

func TestAddQuestionCreatesDocumentLazily(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemoryClient()
	repo := NewRepository(client)

	if _, err := repo.GetByContentID(ctx, "content-1"); err != QuizNotFoundError {
		t.Fatalf("Expected QuizNotFoundError before first add, got %v", err)
	}

	q, err := repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1",
		Question:  question("Come stai?", intPtr(2)),
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if q.ID == "" {
		t.Error("Expected lazily created quiz document to have an id")
	}

	docs, _ := client.Query(ctx, FirestoreQuizzesCollection, map[string]interface{}{
		"contentId": "content-1",
	})
	if len(docs) != 1 {
		t.Fatalf("Expected exactly one quizzes document, got %d", len(docs))
	}
}

func TestAddQuestionAppendsToExistingList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1", Question: question("Uno?", intPtr(0)),
	})
	repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1", Question: question("Due?", nil),
	})

	q, err := repo.GetByContentID(ctx, "content-1")
	if err != nil {
		t.Fatalf("GetByContentID: %v", err)
	}
	if len(q.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(q.Questions))
	}
	if q.Questions[0].Question != "Uno?" || q.Questions[1].Question != "Due?" {
		t.Errorf("Expected questions in add order, got %+v", q.Questions)
	}
	if q.Questions[0].CorrectAnswer == nil || *q.Questions[0].CorrectAnswer != 0 {
		t.Errorf("Expected correctAnswer 0, got %v", q.Questions[0].CorrectAnswer)
	}
	if q.Questions[1].CorrectAnswer != nil {
		t.Errorf("Expected unset correctAnswer to stay nil, got %v", q.Questions[1].CorrectAnswer)
	}
}

func TestSaveQuestionsReplacesList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1", Question: question("Old?", nil),
	})

	replacement := []Question{
		question("New one?", intPtr(1)),
		question("New two?", intPtr(3)),
	}
	if _, err := repo.SaveQuestions(ctx, admin, &SaveQuestionsRequest{
		ContentID: "content-1", Questions: replacement,
	}); err != nil {
		t.Fatalf("SaveQuestions: %v", err)
	}

	q, _ := repo.GetByContentID(ctx, "content-1")
	if !reflect.DeepEqual(q.Questions, replacement) {
		t.Errorf("Expected saved list %+v, got %+v", replacement, q.Questions)
	}
}

func TestDeleteQuestionSplicesByIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	for _, text := range []string{"Uno?", "Due?", "Tre?"} {
		repo.AddQuestion(ctx, admin, &AddQuestionRequest{
			ContentID: "content-1", Question: question(text, nil),
		})
	}

	if err := repo.DeleteQuestion(ctx, admin, &DeleteQuestionRequest{
		ContentID: "content-1", Index: 1,
	}); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	q, _ := repo.GetByContentID(ctx, "content-1")
	if len(q.Questions) != 2 {
		t.Fatalf("Expected 2 questions after delete, got %d", len(q.Questions))
	}
	if q.Questions[0].Question != "Uno?" || q.Questions[1].Question != "Tre?" {
		t.Errorf("Expected middle question removed, got %+v", q.Questions)
	}

	err := repo.DeleteQuestion(ctx, admin, &DeleteQuestionRequest{
		ContentID: "content-1", Index: 5,
	})
	if err != QuestionNotFoundError {
		t.Errorf("Expected QuestionNotFoundError for out-of-range index, got %v", err)
	}
}

func TestQuestionValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	_, err := repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1",
		Question:  Question{Question: "Short answers?", Answers: []string{"a", "b"}},
	})
	if err == nil {
		t.Error("Expected question with fewer than 4 answers to be rejected")
	}

	_, err = repo.AddQuestion(ctx, admin, &AddQuestionRequest{
		ContentID: "content-1", Question: question("Bad index?", intPtr(7)),
	})
	if err != InvalidAnswerIndexError {
		t.Errorf("Expected InvalidAnswerIndexError, got %v", err)
	}
}

func TestMutationsRequireAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())
	student := &auth.Principal{ID: "student-1", Email: "student@example.edu", IsAdmin: false}

	if _, err := repo.AddQuestion(ctx, student, &AddQuestionRequest{
		ContentID: "content-1", Question: question("Chi?", nil),
	}); err != auth.UnauthorizedError {
		t.Errorf("Expected AddQuestion to require admin, got %v", err)
	}

	if err := repo.DeleteQuestion(ctx, nil, &DeleteQuestionRequest{
		ContentID: "content-1", Index: 0,
	}); err != auth.PrincipalMissingError {
		t.Errorf("Expected DeleteQuestion to reject missing principal, got %v", err)
	}
}
