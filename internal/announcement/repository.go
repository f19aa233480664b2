package announcement

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository encapsulates the logic to access announcements from the document
// store.
type Repository interface {
	// List returns every announcement in store order.
	List(ctx context.Context) ([]*Announcement, error)
	// Get returns the announcement corresponding to the specified ID.
	Get(ctx context.Context, id string) (*Announcement, error)
	// Create saves a new announcement, stamped with the acting principal as
	// its author.
	Create(ctx context.Context, principal *auth.Principal, req *CreateAnnouncementRequest) (*Announcement, error)
	// Delete hard-deletes the announcement. There is no archive path.
	Delete(ctx context.Context, principal *auth.Principal, id string) error
}

type storeRepository struct {
	client store.Client
}

var repository Repository

// Init wires the package against the document store. Must be called before
// mounting Routes.
func Init(client store.Client) {
	repository = NewRepository(client)
}

// NewRepository creates an announcement repository over the given document
// store client.
func NewRepository(client store.Client) Repository {
	return &storeRepository{client: client}
}

func (r *storeRepository) List(ctx context.Context) ([]*Announcement, error) {
	docs, err := r.client.Query(ctx, FirestoreAnnouncementsCollection, nil)
	if err != nil {
		return nil, err
	}

	var announcements []*Announcement
	for _, doc := range docs {
		a, err := decodeAnnouncement(doc)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

func (r *storeRepository) Get(ctx context.Context, id string) (*Announcement, error) {
	doc, err := r.client.Get(ctx, FirestoreAnnouncementsCollection, id)
	if err == store.NotFoundError {
		return nil, AnnouncementNotFoundError
	}
	if err != nil {
		return nil, err
	}

	return decodeAnnouncement(doc)
}

func (r *storeRepository) Create(ctx context.Context, principal *auth.Principal, req *CreateAnnouncementRequest) (*Announcement, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &Announcement{
		Title:         req.Title,
		ReleaseDate:   req.ReleaseDate,
		ExpiryDate:    req.ExpiryDate,
		Text:          req.Text,
		AuthorID:      principal.ID,
		ActiveCourses: req.ActiveCourses,
	}
	if a.ActiveCourses == nil {
		a.ActiveCourses = []string{}
	}

	id, err := r.client.Create(ctx, FirestoreAnnouncementsCollection, map[string]interface{}{
		"title":         a.Title,
		"releaseDate":   a.ReleaseDate,
		"expiryDate":    a.ExpiryDate,
		"text":          a.Text,
		"authorId":      a.AuthorID,
		"activeCourses": a.ActiveCourses,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating announcement: %v", err)
	}
	a.ID = id

	return a, nil
}

func (r *storeRepository) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return r.client.Delete(ctx, FirestoreAnnouncementsCollection, id)
}

func decodeAnnouncement(doc *store.Document) (*Announcement, error) {
	var a Announcement
	if err := mapstructure.Decode(doc.Data, &a); err != nil {
		return nil, fmt.Errorf("error decoding announcement document: %v", err)
	}
	a.ID = doc.ID
	return &a, nil
}
