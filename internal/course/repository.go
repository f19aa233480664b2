package course

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/archive"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/listview"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

// Repository encapsulates the logic to access courses from the document
// store. Deactivate and Archive are deliberately distinct operations:
// deactivation flips activeCourse and keeps the record live and queryable,
// archival moves the record out of the primary collection entirely.
type Repository interface {
	// List returns courses matching the request's search term, sorted per its
	// sort state.
	List(ctx context.Context, req *ListCoursesRequest) ([]*Course, error)
	// ListActive returns the courses with activeCourse set, the population of
	// every registration and announcement picker.
	ListActive(ctx context.Context) ([]*Course, error)
	// Get returns the course corresponding to the specified ID.
	Get(ctx context.Context, id string) (*Course, error)
	// Create saves a new course into the database, active by default.
	Create(ctx context.Context, principal *auth.Principal, req *CreateCourseRequest) (*Course, error)
	// Edit merges the full edit form into the course document.
	Edit(ctx context.Context, principal *auth.Principal, req *EditCourseRequest) error
	// UpdateField patches exactly one schema field. An empty submitted value
	// is a silent no-op.
	UpdateField(ctx context.Context, principal *auth.Principal, id string, field Field, value interface{}) error
	// Deactivate flips activeCourse to false. The record stays in the courses
	// collection.
	Deactivate(ctx context.Context, principal *auth.Principal, id string) error
	// Archive copies the course into archivedCourses and deletes the source.
	// Course content is NOT cascaded and remains under the original
	// courseDocId.
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

// NewRepository creates a course repository over the given document store
// client.
func NewRepository(client store.Client) Repository {
	return &storeRepository{
		client:   client,
		archiver: archive.NewArchiver(client),
	}
}

func (r *storeRepository) List(ctx context.Context, req *ListCoursesRequest) ([]*Course, error) {
	docs, err := r.client.Query(ctx, FirestoreCoursesCollection, nil)
	if err != nil {
		return nil, err
	}

	courses, err := decodeCourses(docs)
	if err != nil {
		return nil, err
	}

	if req == nil {
		return courses, nil
	}

	courses = listview.Filter(courses, req.Search, searchValues)
	if req.SortField != "" {
		field := req.SortField
		listview.SortBy(courses, listview.ParseOrder(req.SortOrder), func(a, b *Course) bool {
			return sortValue(a, field) < sortValue(b, field)
		})
	}

	return courses, nil
}

func (r *storeRepository) ListActive(ctx context.Context) ([]*Course, error) {
	docs, err := r.client.Query(ctx, FirestoreCoursesCollection, map[string]interface{}{
		"activeCourse": true,
	})
	if err != nil {
		return nil, err
	}

	return decodeCourses(docs)
}

func (r *storeRepository) Get(ctx context.Context, id string) (*Course, error) {
	doc, err := r.client.Get(ctx, FirestoreCoursesCollection, id)
	if err == store.NotFoundError {
		return nil, CourseNotFoundError
	}
	if err != nil {
		return nil, err
	}

	return decodeCourse(doc)
}

func (r *storeRepository) Create(ctx context.Context, principal *auth.Principal, req *CreateCourseRequest) (*Course, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &Course{
		Name:         req.Name,
		CourseCode:   req.CourseCode,
		Section:      req.Section,
		Year:         req.Year,
		Semester:     req.Semester,
		DayOfWeek:    req.DayOfWeek,
		Time:         req.Time,
		Location:     req.Location,
		IsVirtual:    req.IsVirtual,
		ActiveCourse: true,
		Description:  req.Description,
		BannerURL:    req.BannerURL,
	}

	id, err := r.client.Create(ctx, FirestoreCoursesCollection, map[string]interface{}{
		"name":         c.Name,
		"courseCode":   c.CourseCode,
		"section":      c.Section,
		"year":         c.Year,
		"semester":     c.Semester,
		"dayOfWeek":    c.DayOfWeek,
		"time":         c.Time,
		"location":     c.Location,
		"isVirtual":    c.IsVirtual,
		"activeCourse": c.ActiveCourse,
		"description":  c.Description,
		"bannerUrl":    c.BannerURL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %v", err)
	}
	c.ID = id

	return c, nil
}

func (r *storeRepository) Edit(ctx context.Context, principal *auth.Principal, req *EditCourseRequest) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return r.client.Patch(ctx, FirestoreCoursesCollection, req.CourseID, map[string]interface{}{
		"name":        req.Name,
		"courseCode":  req.CourseCode,
		"section":     req.Section,
		"year":        req.Year,
		"semester":    req.Semester,
		"dayOfWeek":   req.DayOfWeek,
		"time":        req.Time,
		"location":    req.Location,
		"isVirtual":   req.IsVirtual,
		"description": req.Description,
		"bannerUrl":   req.BannerURL,
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

	return r.client.Patch(ctx, FirestoreCoursesCollection, id, map[string]interface{}{
		string(field): value,
	})
}

func (r *storeRepository) Deactivate(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	return r.client.Patch(ctx, FirestoreCoursesCollection, id, map[string]interface{}{
		"activeCourse": false,
	})
}

func (r *storeRepository) Archive(ctx context.Context, principal *auth.Principal, id string) error {
	if err := auth.Authorize(principal); err != nil {
		return err
	}

	err := r.archiver.Archive(ctx, FirestoreCoursesCollection, FirestoreArchivedCoursesCollection, id)
	if err == store.NotFoundError {
		return CourseNotFoundError
	}
	return err
}

// Helpers

func decodeCourse(doc *store.Document) (*Course, error) {
	var c Course
	if err := mapstructure.Decode(doc.Data, &c); err != nil {
		return nil, fmt.Errorf("error decoding course document: %v", err)
	}
	c.ID = doc.ID
	return &c, nil
}

func decodeCourses(docs []*store.Document) ([]*Course, error) {
	var courses []*Course
	for _, doc := range docs {
		c, err := decodeCourse(doc)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func searchValues(c *Course) []string {
	return []string{
		c.Name, c.CourseCode, c.Section, c.Year, c.Semester, c.DayOfWeek,
		c.Time, c.Location, c.Description,
		strconv.FormatBool(c.IsVirtual), strconv.FormatBool(c.ActiveCourse),
	}
}

func sortValue(c *Course, field string) string {
	switch Field(field) {
	case FieldName:
		return c.Name
	case FieldCourseCode:
		return c.CourseCode
	case FieldSection:
		return c.Section
	case FieldYear:
		return c.Year
	case FieldSemester:
		return c.Semester
	case FieldDayOfWeek:
		return c.DayOfWeek
	case FieldTime:
		return c.Time
	case FieldLocation:
		return c.Location
	case FieldIsVirtual:
		return boolSortValue(c.IsVirtual)
	case FieldActiveCourse:
		return boolSortValue(c.ActiveCourse)
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
