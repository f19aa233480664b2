package content

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/archive"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository encapsulates the logic to access course content from the
// document store.
type Repository interface {
	// ListByCourse returns the course's content units sorted by contentOrder.
	// Ties keep insertion order.
	ListByCourse(ctx context.Context, courseDocID string) ([]*CourseContent, error)
	// Get returns the content unit corresponding to the specified ID.
	Get(ctx context.Context, id string) (*CourseContent, error)
	// Create saves a new content unit. The type tag is fixed at creation.
	Create(ctx context.Context, principal *auth.Principal, req *CreateContentRequest) (*CourseContent, error)
	// Edit merges the edit form into the unit, dispatching on the stored type
	// tag to decide which variant payload applies.
	Edit(ctx context.Context, principal *auth.Principal, req *EditContentRequest) error
	// UpdateField patches exactly one schema field. An empty submitted value
	// is a silent no-op.
	UpdateField(ctx context.Context, principal *auth.Principal, id string, field Field, value interface{}) error
	// Archive copies the unit into archivedCourseContent and deletes the
	// source. Quiz and video questions are NOT cascaded and remain under the
	// original contentId.
	Archive(ctx context.Context, principal *auth.Principal, id string) error
}

type storeRepository struct {
	client   store.Client
	archiver *archive.Archiver
}

var repository Repository

// Init wires the package against the document store. Must be called before
// mounting Routes.
func Init(client store.Client) {
	repository = NewRepository(client)
}

// NewRepository creates a course content repository over the given document
// store client.
func NewRepository(client store.Client) Repository {
	return &storeRepository{
		client:   client,
		archiver: archive.NewArchiver(client),
	}
}

func (r *storeRepository) ListByCourse(ctx context.Context, courseDocID string) ([]*CourseContent, error) {
	docs, err := r.client.Query(ctx, FirestoreCourseContentCollection, map[string]interface{}{
		"courseDocId": courseDocID,
	})
	if err != nil {
		return nil, err
	}

	var units []*CourseContent
	for _, doc := range docs {
		c, err := decodeContent(doc)
		if err != nil {
			return nil, err
		}
		units = append(units, c)
	}

	sort.SliceStable(units, func(i, j int) bool {
		return CompareOrder(units[i].ContentOrder, units[j].ContentOrder) < 0
	})

	return units, nil
}

func (r *storeRepository) Get(ctx context.Context, id string) (*CourseContent, error) {
	doc, err := r.client.Get(ctx, FirestoreCourseContentCollection, id)
	if err == store.NotFoundError {
		return nil, ContentNotFoundError
	}
	if err != nil {
		return nil, err
	}

	return decodeContent(doc)
}

func (r *storeRepository) Create(ctx context.Context, principal *auth.Principal, req *CreateContentRequest) (*CourseContent, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &CourseContent{
		CourseDocID:  req.CourseDocID,
		Type:         req.Type,
		Title:        req.Title,
		ContentOrder: req.ContentOrder,
		Due:          req.Due,
		Open:         req.Open,
		Close:        req.Close,
	}

	data := map[string]interface{}{
		"courseDocId":  c.CourseDocID,
		"type":         string(c.Type),
		"title":        c.Title,
		"contentOrder": c.ContentOrder,
		"due":          c.Due,
		"open":         c.Open,
		"close":        c.Close,
	}

	switch req.Type {
	case TypeText:
		c.TextContent = req.TextContent
		data["textContent"] = c.TextContent
	case TypeVideo:
		c.VideoURL = req.VideoURL
		data["videoUrl"] = c.VideoURL
	case TypeQuiz:
		// No extra payload; questions attach later via the quizzes collection.
	default:
		return nil, UnsupportedContentTypeError
	}

	id, err := r.client.Create(ctx, FirestoreCourseContentCollection, data)
	if err != nil {
		return nil, fmt.Errorf("error creating course content: %v", err)
	}
	c.ID = id

	return c, nil
}

func (r *storeRepository) Edit(ctx context.Context, principal *auth.Principal, req *EditContentRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	existing, err := r.Get(ctx, req.ContentID)
	if err != nil {
		return err
	}

	patch := map[string]interface{}{
		"title":        req.Title,
		"contentOrder": req.ContentOrder,
		"due":          req.Due,
		"open":         req.Open,
		"close":        req.Close,
	}

	switch existing.Type {
	case TypeText:
		patch["textContent"] = req.TextContent
	case TypeVideo:
		patch["videoUrl"] = req.VideoURL
	case TypeQuiz:
		// Only the shared fields apply.
	default:
		return UnsupportedContentTypeError
	}

	return r.client.Patch(ctx, FirestoreCourseContentCollection, req.ContentID, patch)
}

func (r *storeRepository) UpdateField(ctx context.Context, principal *auth.Principal, id string, field Field, value interface{}) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}
	if !patchableFields[field] {
		return InvalidFieldError
	}
	if value == nil || value == "" {
		// An edit with an empty submitted value is ignored, not an error.
		return nil
	}

	return r.client.Patch(ctx, FirestoreCourseContentCollection, id, map[string]interface{}{
		string(field): value,
	})
}

func (r *storeRepository) Archive(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	err := r.archiver.Archive(ctx, FirestoreCourseContentCollection, FirestoreArchivedCourseContentCollection, id)
	if err == store.NotFoundError {
		return ContentNotFoundError
	}
	return err
}

// Helpers

func decodeContent(doc *store.Document) (*CourseContent, error) {
	data := doc.Data
	// Legacy documents hold contentOrder as a number rather than a string.
	if v, ok := data["contentOrder"]; ok {
		data["contentOrder"] = orderString(v)
	}

	var c CourseContent
	if err := mapstructure.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("error decoding content document: %v", err)
	}
	c.ID = doc.ID
	return &c, nil
}

func orderString(v interface{}) string {
	switch order := v.(type) {
	case string:
		return order
	case float64:
		return strconv.FormatFloat(order, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(order, 10)
	case int:
		return strconv.Itoa(order)
	default:
		return ""
	}
}
