package quiz

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository is the question-set accessor for quiz content units. There is
// no per-question document: the list is one array field mutated by full
// read-modify-write, since the store has no atomic array-element update.
type Repository interface {
	// GetByContentID returns the quiz attached to the content unit, or
	// QuizNotFoundError if no question has ever been added.
	GetByContentID(ctx context.Context, contentID string) (*Quiz, error)
	// AddQuestion appends a question, creating the quizzes document lazily on
	// the first add.
	AddQuestion(ctx context.Context, principal *auth.Principal, req *AddQuestionRequest) (*Quiz, error)
	// SaveQuestions replaces the full question list in one write.
	SaveQuestions(ctx context.Context, principal *auth.Principal, req *SaveQuestionsRequest) (*Quiz, error)
	// DeleteQuestion splices the question at the given position out of the
	// list.
	DeleteQuestion(ctx context.Context, principal *auth.Principal, req *DeleteQuestionRequest) error
}

type storeRepository struct {
	client store.Client
}

var repository Repository

// Init wires the package against the document store. Must be called before
// Routes.
func Init(client store.Client) {
	repository = NewRepository(client)
}

func NewRepository(client store.Client) Repository {
	return &storeRepository{client: client}
}

func (r *storeRepository) GetByContentID(ctx context.Context, contentID string) (*Quiz, error) {
	q, err := r.findByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, QuizNotFoundError
	}
	return q, nil
}

func (r *storeRepository) AddQuestion(ctx context.Context, principal *auth.Principal, req *AddQuestionRequest) (*Quiz, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Question.Validate(); err != nil {
		return nil, err
	}

	q, err := r.findByContentID(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}

	if q == nil {
		// First question for this unit: create the document now.
		id, err := r.client.Create(ctx, FirestoreQuizzesCollection, map[string]interface{}{
			"contentId": req.ContentID,
			"questions": encodeQuestions([]Question{req.Question}),
		})
		if err != nil {
			return nil, err
		}
		return &Quiz{ID: id, ContentID: req.ContentID, Questions: []Question{req.Question}}, nil
	}

	q.Questions = append(q.Questions, req.Question)
	if err := r.writeQuestions(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *storeRepository) SaveQuestions(ctx context.Context, principal *auth.Principal, req *SaveQuestionsRequest) (*Quiz, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	for i := range req.Questions {
		if err := req.Questions[i].Validate(); err != nil {
			return nil, err
		}
	}

	q, err := r.findByContentID(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}

	if q == nil {
		id, err := r.client.Create(ctx, FirestoreQuizzesCollection, map[string]interface{}{
			"contentId": req.ContentID,
			"questions": encodeQuestions(req.Questions),
		})
		if err != nil {
			return nil, err
		}
		return &Quiz{ID: id, ContentID: req.ContentID, Questions: req.Questions}, nil
	}

	q.Questions = req.Questions
	if err := r.writeQuestions(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *storeRepository) DeleteQuestion(ctx context.Context, principal *auth.Principal, req *DeleteQuestionRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	q, err := r.findByContentID(ctx, req.ContentID)
	if err != nil {
		return err
	}
	if q == nil {
		return QuizNotFoundError
	}
	if req.Index < 0 || req.Index >= len(q.Questions) {
		return QuestionNotFoundError
	}

	q.Questions = append(q.Questions[:req.Index], q.Questions[req.Index+1:]...)
	return r.writeQuestions(ctx, q)
}

// Helpers

// findByContentID returns nil, nil when no quizzes document exists yet.
func (r *storeRepository) findByContentID(ctx context.Context, contentID string) (*Quiz, error) {
	docs, err := r.client.Query(ctx, FirestoreQuizzesCollection, map[string]interface{}{
		"contentId": contentID,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	// The original data has at most one quizzes document per content unit;
	// take the first if duplicates ever appear.
	return decodeQuiz(docs[0])
}

func (r *storeRepository) writeQuestions(ctx context.Context, q *Quiz) error {
	return r.client.Set(ctx, FirestoreQuizzesCollection, q.ID, map[string]interface{}{
		"contentId": q.ContentID,
		"questions": encodeQuestions(q.Questions),
	})
}

func decodeQuiz(doc *store.Document) (*Quiz, error) {
	var q Quiz
	if err := mapstructure.Decode(doc.Data, &q); err != nil {
		return nil, err
	}
	q.ID = doc.ID
	return &q, nil
}

func encodeQuestions(questions []Question) []interface{} {
	encoded := make([]interface{}, 0, len(questions))
	for _, q := range questions {
		item := map[string]interface{}{
			"question":      q.Question,
			"answers":       append([]string{}, q.Answers...),
			"correctAnswer": nil,
		}
		if q.CorrectAnswer != nil {
			item["correctAnswer"] = *q.CorrectAnswer
		}
		encoded = append(encoded, item)
	}
	return encoded
}
