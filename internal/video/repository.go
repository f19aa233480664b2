package video

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository covers both video sub-models: per-document timestamp questions
// keyed by contentId, and the legacy standalone video catalog.
type Repository interface {
	// ListQuestionsByContent returns every timestamp question attached to the
	// content unit, in store iteration order.
	ListQuestionsByContent(ctx context.Context, contentID string) ([]*Question, error)
	// CreateQuestion saves a new timestamp question as its own document.
	CreateQuestion(ctx context.Context, principal *auth.Principal, req *CreateQuestionRequest) (*Question, error)
	// EditQuestion overwrites one question document in place.
	EditQuestion(ctx context.Context, principal *auth.Principal, req *EditQuestionRequest) error
	// DeleteQuestion hard-deletes one question document.
	DeleteQuestion(ctx context.Context, principal *auth.Principal, id string) error

	// ListVideos returns the legacy video catalog.
	ListVideos(ctx context.Context) ([]*Video, error)
	// GetVideo returns the catalog entry corresponding to the specified ID.
	GetVideo(ctx context.Context, id string) (*Video, error)
	// EditVideo merges the edit form into the catalog entry.
	EditVideo(ctx context.Context, principal *auth.Principal, req *EditVideoRequest) error
	// DeleteVideo hard-deletes a catalog entry. The blob behind videoUrl is
	// left in the bucket.
	DeleteVideo(ctx context.Context, principal *auth.Principal, id string) error
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

func (r *storeRepository) ListQuestionsByContent(ctx context.Context, contentID string) ([]*Question, error) {
	docs, err := r.client.Query(ctx, FirestoreVideoQuestionsCollection, map[string]interface{}{
		"contentId": contentID,
	})
	if err != nil {
		return nil, err
	}

	questions := make([]*Question, 0, len(docs))
	for _, doc := range docs {
		q, err := decodeQuestion(doc)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *storeRepository) CreateQuestion(ctx context.Context, principal *auth.Principal, req *CreateQuestionRequest) (*Question, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"contentId":     req.ContentID,
		"question":      req.Question,
		"answers":       append([]string{}, req.Answers...),
		"correctAnswer": nil,
		"hour":          req.Hour,
		"minute":        req.Minute,
		"second":        req.Second,
	}
	if req.CorrectAnswer != nil {
		data["correctAnswer"] = *req.CorrectAnswer
	}

	id, err := r.client.Create(ctx, FirestoreVideoQuestionsCollection, data)
	if err != nil {
		return nil, err
	}

	return &Question{
		ID:            id,
		ContentID:     req.ContentID,
		Question:      req.Question,
		Answers:       req.Answers,
		CorrectAnswer: req.CorrectAnswer,
		Hour:          req.Hour,
		Minute:        req.Minute,
		Second:        req.Second,
	}, nil
}

func (r *storeRepository) EditQuestion(ctx context.Context, principal *auth.Principal, req *EditQuestionRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}
	if req.CorrectAnswer != nil && (*req.CorrectAnswer < 0 || *req.CorrectAnswer > 3) {
		return InvalidAnswerIndexError
	}

	if _, err := r.client.Get(ctx, FirestoreVideoQuestionsCollection, req.QuestionID); err == store.NotFoundError {
		return QuestionNotFoundError
	} else if err != nil {
		return err
	}

	partial := map[string]interface{}{
		"question":      req.Question,
		"answers":       append([]string{}, req.Answers...),
		"correctAnswer": nil,
		"hour":          req.Hour,
		"minute":        req.Minute,
		"second":        req.Second,
	}
	if req.CorrectAnswer != nil {
		partial["correctAnswer"] = *req.CorrectAnswer
	}

	return r.client.Patch(ctx, FirestoreVideoQuestionsCollection, req.QuestionID, partial)
}

func (r *storeRepository) DeleteQuestion(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}
	return r.client.Delete(ctx, FirestoreVideoQuestionsCollection, id)
}

func (r *storeRepository) ListVideos(ctx context.Context) ([]*Video, error) {
	docs, err := r.client.Query(ctx, FirestoreVideosCollection, nil)
	if err != nil {
		return nil, err
	}

	videos := make([]*Video, 0, len(docs))
	for _, doc := range docs {
		v, err := decodeVideo(doc)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func (r *storeRepository) GetVideo(ctx context.Context, id string) (*Video, error) {
	doc, err := r.client.Get(ctx, FirestoreVideosCollection, id)
	if err == store.NotFoundError {
		return nil, VideoNotFoundError
	}
	if err != nil {
		return nil, err
	}
	return decodeVideo(doc)
}

func (r *storeRepository) EditVideo(ctx context.Context, principal *auth.Principal, req *EditVideoRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	if _, err := r.client.Get(ctx, FirestoreVideosCollection, req.VideoID); err == store.NotFoundError {
		return VideoNotFoundError
	} else if err != nil {
		return err
	}

	return r.client.Patch(ctx, FirestoreVideosCollection, req.VideoID, map[string]interface{}{
		"title":           req.Title,
		"code":            req.Code,
		"description":     req.Description,
		"videoTimestamps": append([]string{}, req.VideoTimestamps...),
	})
}

func (r *storeRepository) DeleteVideo(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}
	return r.client.Delete(ctx, FirestoreVideosCollection, id)
}

// Helpers

func decodeQuestion(doc *store.Document) (*Question, error) {
	var q Question
	if err := mapstructure.Decode(doc.Data, &q); err != nil {
		return nil, err
	}
	q.ID = doc.ID
	return &q, nil
}

func decodeVideo(doc *store.Document) (*Video, error) {
	var v Video
	if err := mapstructure.Decode(doc.Data, &v); err != nil {
		return nil, err
	}
	v.ID = doc.ID
	return &v, nil
}
