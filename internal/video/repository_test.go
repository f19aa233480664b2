package video

import (
	"context"
	"testing"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var admin = &auth.Principal{ID: "admin-1", Email: "admin@example.edu", IsAdmin: true}

func intPtr(i int) *int { return &i }

func TestQuestionsAreOneDocumentEach(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemoryClient()
	repo := NewRepository(client)

	q1, err := repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Che cosa dice?",
		Answers: []string{"a", "b", "c", "d"}, CorrectAnswer: intPtr(1),
		Minute: 2, Second: 30,
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	q2, err := repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "E poi?",
		Answers: []string{"a", "b", "c", "d"},
		Hour:    1, Minute: 5, Second: 0,
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q1.ID == q2.ID {
		t.Fatal("Expected each question to get its own document")
	}

	questions, err := repo.ListQuestionsByContent(ctx, "content-1")
	if err != nil {
		t.Fatalf("ListQuestionsByContent: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}
	if questions[0].Minute != 2 || questions[0].Second != 30 {
		t.Errorf("Expected timestamp 0:2:30, got %d:%d:%d",
			questions[0].Hour, questions[0].Minute, questions[0].Second)
	}
}

func TestListQuestionsScopedToContent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Uno?",
		Answers: []string{"a", "b", "c", "d"},
	})
	repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-2", Question: "Altro video?",
		Answers: []string{"a", "b", "c", "d"},
	})

	questions, _ := repo.ListQuestionsByContent(ctx, "content-1")
	if len(questions) != 1 || questions[0].Question != "Uno?" {
		t.Errorf("Expected only content-1's question, got %+v", questions)
	}
}

func TestEditQuestionUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	q, _ := repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Prima?",
		Answers: []string{"a", "b", "c", "d"}, Minute: 1,
	})

	err := repo.EditQuestion(ctx, admin, &EditQuestionRequest{
		QuestionID: q.ID, Question: "Dopo?",
		Answers: []string{"w", "x", "y", "z"}, CorrectAnswer: intPtr(3),
		Minute: 4, Second: 15,
	})
	if err != nil {
		t.Fatalf("EditQuestion: %v", err)
	}

	questions, _ := repo.ListQuestionsByContent(ctx, "content-1")
	if len(questions) != 1 {
		t.Fatalf("Expected edit to not create a new document, got %d", len(questions))
	}
	after := questions[0]
	if after.Question != "Dopo?" || after.Minute != 4 || after.Second != 15 {
		t.Errorf("Expected edited fields to persist, got %+v", after)
	}
	if after.CorrectAnswer == nil || *after.CorrectAnswer != 3 {
		t.Errorf("Expected correctAnswer 3, got %v", after.CorrectAnswer)
	}

	err = repo.EditQuestion(ctx, admin, &EditQuestionRequest{
		QuestionID: "missing", Question: "x", Answers: []string{"a", "b", "c", "d"},
	})
	if err != QuestionNotFoundError {
		t.Errorf("Expected QuestionNotFoundError, got %v", err)
	}
}

func TestDeleteQuestionRemovesOnlyThatDocument(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	q1, _ := repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Uno?", Answers: []string{"a", "b", "c", "d"},
	})
	repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Due?", Answers: []string{"a", "b", "c", "d"},
	})

	if err := repo.DeleteQuestion(ctx, admin, q1.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	questions, _ := repo.ListQuestionsByContent(ctx, "content-1")
	if len(questions) != 1 || questions[0].Question != "Due?" {
		t.Errorf("Expected only the second question to remain, got %+v", questions)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	_, err := repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Bad index?",
		Answers: []string{"a", "b", "c", "d"}, CorrectAnswer: intPtr(4),
	})
	if err != InvalidAnswerIndexError {
		t.Errorf("Expected InvalidAnswerIndexError, got %v", err)
	}

	_, err = repo.CreateQuestion(ctx, admin, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Bad timestamp?",
		Answers: []string{"a", "b", "c", "d"}, Minute: 75,
	})
	if err != InvalidTimestampError {
		t.Errorf("Expected InvalidTimestampError, got %v", err)
	}
}

func TestLegacyCatalogEditAndDelete(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemoryClient()
	repo := NewRepository(client)

	id, _ := client.Create(ctx, FirestoreVideosCollection, map[string]interface{}{
		"title":           "Lezione 1",
		"code":            "ITAL1000",
		"description":     "Introduzione",
		"videoUrl":        "https://storage.googleapis.com/bucket/videos/abc_lezione1.mp4",
		"videoTimestamps": []string{"0:00 Intro"},
	})

	err := repo.EditVideo(ctx, admin, &EditVideoRequest{
		VideoID: id, Title: "Lezione 1 (rivista)", Code: "ITAL1000",
		Description:     "Introduzione al corso",
		VideoTimestamps: []string{"0:00 Intro", "5:30 Grammatica"},
	})
	if err != nil {
		t.Fatalf("EditVideo: %v", err)
	}

	v, err := repo.GetVideo(ctx, id)
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if v.Title != "Lezione 1 (rivista)" || len(v.VideoTimestamps) != 2 {
		t.Errorf("Expected edited catalog entry, got %+v", v)
	}
	// The video URL is not part of the edit form and must survive untouched.
	if v.VideoURL == "" {
		t.Error("Expected videoUrl to survive an edit")
	}

	if err := repo.DeleteVideo(ctx, admin, id); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if _, err := repo.GetVideo(ctx, id); err != VideoNotFoundError {
		t.Errorf("Expected VideoNotFoundError after delete, got %v", err)
	}
}

func TestMutationsRequireAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())
	student := &auth.Principal{ID: "student-1", Email: "student@example.edu", IsAdmin: false}

	if _, err := repo.CreateQuestion(ctx, student, &CreateQuestionRequest{
		ContentID: "content-1", Question: "Chi?", Answers: []string{"a", "b", "c", "d"},
	}); err != auth.UnauthorizedError {
		t.Errorf("Expected CreateQuestion to require admin, got %v", err)
	}

	if err := repo.DeleteVideo(ctx, nil, "video-1"); err != auth.PrincipalMissingError {
		t.Errorf("Expected DeleteVideo to reject missing principal, got %v", err)
	}
}
