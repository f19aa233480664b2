package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/listview"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository encapsulates the logic to access users from the document store.
// Every mutating operation takes the acting principal and enforces the admin
// check at this boundary.
type Repository interface {
	// List returns users matching the request's search term, sorted per its
	// sort state.
	List(ctx context.Context, req *ListUsersRequest) ([]*User, error)
	// Get returns the user corresponding to the specified ID.
	Get(ctx context.Context, id string) (*User, error)
	// Create saves a new user into the database.
	Create(ctx context.Context, principal *auth.Principal, req *CreateUserRequest) (*User, error)
	// Edit merges the full edit form into the user document.
	Edit(ctx context.Context, principal *auth.Principal, req *EditUserRequest) error
	// UpdateField patches exactly one schema field. An empty submitted value
	// is a silent no-op.
	UpdateField(ctx context.Context, principal *auth.Principal, id string, field Field, value interface{}) error
	// RemoveField clears exactly one schema field, leaving siblings untouched.
	RemoveField(ctx context.Context, principal *auth.Principal, id string, field Field) error
	// Delete removes the user document. Users are hard-deleted, never archived.
	Delete(ctx context.Context, principal *auth.Principal, id string) error
	// ToggleRegistration adds or removes a course id from the user's
	// registeredCourses set. Toggling on twice never duplicates the entry.
	ToggleRegistration(ctx context.Context, principal *auth.Principal, id, courseID string, registered bool) error
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

// NewRepository creates a user repository over the given document store client.
func NewRepository(client store.Client) Repository {
	return &storeRepository{client: client}
}

func (r *storeRepository) List(ctx context.Context, req *ListUsersRequest) ([]*User, error) {
	docs, err := r.client.Query(ctx, FirestoreUsersCollection, nil)
	if err != nil {
		return nil, err
	}

	var users []*User
	for _, doc := range docs {
		u, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if req == nil {
		return users, nil
	}

	users = listview.Filter(users, req.Search, searchValues)
	if req.SortField != "" {
		field := req.SortField
		listview.SortBy(users, listview.ParseOrder(req.SortOrder), func(a, b *User) bool {
			return sortValue(a, field) < sortValue(b, field)
		})
	}

	return users, nil
}

func (r *storeRepository) Get(ctx context.Context, id string) (*User, error) {
	doc, err := r.client.Get(ctx, FirestoreUsersCollection, id)
	if err == store.NotFoundError {
		return nil, UserNotFoundError
	}
	if err != nil {
		return nil, err
	}

	return decodeUser(doc)
}

func (r *storeRepository) Create(ctx context.Context, principal *auth.Principal, req *CreateUserRequest) (*User, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := &User{
		Email:             req.Email,
		Title:             req.Title,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Department:        req.Department,
		Program:           req.Program,
		StudentNumber:     req.StudentNumber,
		EnrollmentDate:    req.EnrollmentDate,
		ActiveStudent:     req.ActiveStudent,
		IsAdmin:           req.IsAdmin,
		RegisteredCourses: []string{},
	}

	id, err := r.client.Create(ctx, FirestoreUsersCollection, map[string]interface{}{
		"email":             u.Email,
		"title":             u.Title,
		"firstName":         u.FirstName,
		"lastName":          u.LastName,
		"department":        u.Department,
		"program":           u.Program,
		"studentNumber":     u.StudentNumber,
		"enrollmentDate":    u.EnrollmentDate,
		"activeStudent":     u.ActiveStudent,
		"isAdmin":           u.IsAdmin,
		"registeredCourses": u.RegisteredCourses,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	u.ID = id

	return u, nil
}

func (r *storeRepository) Edit(ctx context.Context, principal *auth.Principal, req *EditUserRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	registered := dedupe(req.RegisteredCourses)
	return r.client.Patch(ctx, FirestoreUsersCollection, req.UserID, map[string]interface{}{
		"email":             req.Email,
		"title":             req.Title,
		"firstName":         req.FirstName,
		"lastName":          req.LastName,
		"department":        req.Department,
		"program":           req.Program,
		"studentNumber":     req.StudentNumber,
		"enrollmentDate":    req.EnrollmentDate,
		"activeStudent":     req.ActiveStudent,
		"isAdmin":           req.IsAdmin,
		"registeredCourses": registered,
	})
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

	return r.client.Patch(ctx, FirestoreUsersCollection, id, map[string]interface{}{
		string(field): value,
	})
}

func (r *storeRepository) RemoveField(ctx context.Context, principal *auth.Principal, id string, field Field) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}
	if !patchableFields[field] {
		return InvalidFieldError
	}

	return r.client.ClearField(ctx, FirestoreUsersCollection, id, string(field))
}

func (r *storeRepository) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return r.client.Delete(ctx, FirestoreUsersCollection, id)
}

func (r *storeRepository) ToggleRegistration(ctx context.Context, principal *auth.Principal, id, courseID string, registered bool) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	u, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	courses := make([]string, 0, len(u.RegisteredCourses)+1)
	for _, existing := range u.RegisteredCourses {
		if existing == courseID {
			continue
		}
		courses = append(courses, existing)
	}
	if registered {
		courses = append(courses, courseID)
	}

	return r.client.Patch(ctx, FirestoreUsersCollection, id, map[string]interface{}{
		"registeredCourses": courses,
	})
}

// Helpers

func decodeUser(doc *store.Document) (*User, error) {
	var u User
	if err := mapstructure.Decode(doc.Data, &u); err != nil {
		return nil, fmt.Errorf("error decoding user document: %v", err)
	}
	u.ID = doc.ID
	u.RegisteredCourses = dedupe(u.RegisteredCourses)
	return &u, nil
}

// dedupe enforces the set semantics of registeredCourses on every read and
// write.
func dedupe(courseIDs []string) []string {
	seen := make(map[string]bool, len(courseIDs))
	out := make([]string, 0, len(courseIDs))
	for _, id := range courseIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func searchValues(u *User) []string {
	return []string{
		u.Email, u.Title, u.FirstName, u.LastName, u.Department, u.Program,
		u.StudentNumber, u.EnrollmentDate,
		strconv.FormatBool(u.ActiveStudent), strconv.FormatBool(u.IsAdmin),
	}
}

func sortValue(u *User, field string) string {
	switch Field(field) {
	case FieldTitle:
		return u.Title
	case FieldFirstName:
		return u.FirstName
	case FieldLastName:
		return u.LastName
	case FieldEmail:
		return u.Email
	case FieldDepartment:
		return u.Department
	case FieldProgram:
		return u.Program
	case FieldStudentNumber:
		return u.StudentNumber
	case FieldEnrollmentDate:
		return u.EnrollmentDate
	case FieldActiveStudent:
		return boolSortValue(u.ActiveStudent)
	case FieldIsAdmin:
		return boolSortValue(u.IsAdmin)
	default:
		return ""
	}
}

func boolSortValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
