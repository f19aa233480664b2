package content

import (
	"context"
	"testing"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/course"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var admin = &auth.Principal{ID: "admin-1", Email: "admin@example.edu", IsAdmin: true}

func newTestRepository() (Repository, *store.MemoryClient) {
	client := store.NewMemoryClient()
	return NewRepository(client), client
}

func TestListByCourseSortsByContentOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	// Created out of order on purpose.
	repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Reading", ContentOrder: "1.1",
		TextContent: "Benvenuti!",
	})
	repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeQuiz, Title: "Quiz 1", ContentOrder: "1.0",
	})
	repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Chapter 10", ContentOrder: "10.0",
		TextContent: "Capitolo dieci",
	})
	repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Chapter 2", ContentOrder: "2.0",
		TextContent: "Capitolo due",
	})

	units, err := repo.ListByCourse(ctx, "course-1")
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}

	var titles []string
	for _, u := range units {
		titles = append(titles, u.Title)
	}
	expected := []string{"Quiz 1", "Reading", "Chapter 2", "Chapter 10"}
	for i := range expected {
		if titles[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, titles)
		}
	}
}

func TestListByCourseHandlesNumericOrderValues(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestRepository()

	// Legacy document with contentOrder stored as a number.
	client.Create(ctx, FirestoreCourseContentCollection, map[string]interface{}{
		"courseDocId":  "course-1",
		"type":         "text",
		"title":        "Legacy",
		"contentOrder": 1.5,
		"textContent":  "vecchio",
	})
	repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Newer", ContentOrder: "2.0",
		TextContent: "nuovo",
	})

	units, err := repo.ListByCourse(ctx, "course-1")
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(units) != 2 || units[0].Title != "Legacy" || units[0].ContentOrder != "1.5" {
		t.Errorf("Expected legacy numeric order to normalize and sort first, got %+v", units)
	}
}

func TestCreateValidatesVariantPayload(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	_, err := repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Empty", ContentOrder: "1.0",
	})
	if err == nil {
		t.Error("Expected text unit without textContent to be rejected")
	}

	_, err = repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeVideo, Title: "No URL", ContentOrder: "1.0",
	})
	if err == nil {
		t.Error("Expected video unit without videoUrl to be rejected")
	}

	_, err = repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: Type("podcast"), Title: "Odd", ContentOrder: "1.0",
	})
	if err != UnsupportedContentTypeError {
		t.Errorf("Expected UnsupportedContentTypeError, got %v", err)
	}
}

func TestEditDispatchesOnStoredType(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	c, _ := repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Reading", ContentOrder: "1.0",
		TextContent: "Benvenuti!",
	})

	err := repo.Edit(ctx, admin, &EditContentRequest{
		ContentID:    c.ID,
		Title:        "Reading (updated)",
		ContentOrder: "1.0",
		TextContent:  "Benvenuti a tutti!",
		VideoURL:     "https://example.com/should-be-ignored",
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	after, _ := repo.Get(ctx, c.ID)
	if after.TextContent != "Benvenuti a tutti!" {
		t.Errorf("Expected textContent to update, got %q", after.TextContent)
	}
	// A text unit's edit never writes the video payload.
	if after.VideoURL != "" {
		t.Errorf("Expected videoUrl to stay empty on a text unit, got %q", after.VideoURL)
	}
	if after.Type != TypeText {
		t.Errorf("Expected type tag to be immutable, got %q", after.Type)
	}
}

func TestEditUnknownStoredTypeFails(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestRepository()

	id, _ := client.Create(ctx, FirestoreCourseContentCollection, map[string]interface{}{
		"courseDocId":  "course-1",
		"type":         "diorama",
		"title":        "Mystery",
		"contentOrder": "1.0",
	})

	err := repo.Edit(ctx, admin, &EditContentRequest{ContentID: id, Title: "x", ContentOrder: "1.0"})
	if err != UnsupportedContentTypeError {
		t.Errorf("Expected UnsupportedContentTypeError, got %v", err)
	}
}

// Archiving a course does not cascade: its content stays queryable under the
// original courseDocId. This orphaning is intended behavior.
func TestCourseArchiveLeavesContentOrphaned(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemoryClient()
	contents := NewRepository(client)
	courses := course.NewRepository(client)

	c, err := courses.Create(ctx, admin, &course.CreateCourseRequest{
		Name: "Intro Italian", CourseCode: "ITAL1000",
	})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}

	contents.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: c.ID, Type: TypeText, Title: "Week 1", ContentOrder: "1.0", TextContent: "a",
	})
	contents.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: c.ID, Type: TypeQuiz, Title: "Quiz 1", ContentOrder: "2.0",
	})

	if err := courses.Archive(ctx, admin, c.ID); err != nil {
		t.Fatalf("Archive course: %v", err)
	}

	orphans, err := contents.ListByCourse(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(orphans) != 2 {
		t.Errorf("Expected both content units to remain in the primary collection, got %d", len(orphans))
	}
}

func TestContentArchiveMovesUnit(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestRepository()

	c, _ := repo.Create(ctx, admin, &CreateContentRequest{
		CourseDocID: "course-1", Type: TypeText, Title: "Week 1", ContentOrder: "1.0", TextContent: "a",
	})

	if err := repo.Archive(ctx, admin, c.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	if _, err := repo.Get(ctx, c.ID); err != ContentNotFoundError {
		t.Errorf("Expected content gone from primary collection, got %v", err)
	}
	archived, err := client.Get(ctx, FirestoreArchivedCourseContentCollection, c.ID)
	if err != nil {
		t.Fatalf("Expected archived copy, got %v", err)
	}
	if archived.Data["title"] != "Week 1" {
		t.Errorf("Expected archived copy to carry full body, got %v", archived.Data)
	}
}
