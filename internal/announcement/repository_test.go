package announcement

import (
	"context"
	"testing"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/course"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var admin = &auth.Principal{ID: "admin-1", Email: "admin@example.edu", IsAdmin: true}

// A new active course shows up in the announcement targeting picker, and an
// announcement created against it carries the course id.
func TestAnnouncementTargetsActiveCourse(t *testing.T) {
	ctx := context.Background()
	client := store.NewMemoryClient()
	courses := course.NewRepository(client)
	announcements := NewRepository(client)

	c, err := courses.Create(ctx, admin, &course.CreateCourseRequest{
		Name:       "Intro Italian",
		CourseCode: "ITAL1000",
		Section:    "A",
	})
	if err != nil {
		t.Fatalf("Create course: %v", err)
	}

	picker, err := courses.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(picker) != 1 || picker[0].ID != c.ID {
		t.Fatalf("Expected new course in the active-course picker, got %v", picker)
	}

	a, err := announcements.Create(ctx, admin, &CreateAnnouncementRequest{
		Title:         "Midterm date",
		Text:          "The midterm is on Thursday.",
		ReleaseDate:   "2024-10-01",
		ExpiryDate:    "2024-10-31",
		ActiveCourses: []string{picker[0].ID},
	})
	if err != nil {
		t.Fatalf("Create announcement: %v", err)
	}

	got, err := announcements.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.ActiveCourses) != 1 || got.ActiveCourses[0] != c.ID {
		t.Errorf("Expected announcement to target course %v, got %v", c.ID, got.ActiveCourses)
	}
	if got.AuthorID != admin.ID {
		t.Errorf("Expected author to be the acting principal, got %q", got.AuthorID)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	if _, err := repo.Create(ctx, admin, &CreateAnnouncementRequest{Text: "no title"}); err == nil {
		t.Error("Expected missing title to be rejected")
	}
	if _, err := repo.Create(ctx, admin, &CreateAnnouncementRequest{Title: "no text"}); err == nil {
		t.Error("Expected missing text to be rejected")
	}
}

func TestDeleteAnnouncement(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	a, _ := repo.Create(ctx, admin, &CreateAnnouncementRequest{Title: "t", Text: "x"})
	if err := repo.Delete(ctx, admin, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Get(ctx, a.ID); err != AnnouncementNotFoundError {
		t.Errorf("Expected announcement to be gone, got %v", err)
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(store.NewMemoryClient())

	student := &auth.Principal{ID: "student-1", IsAdmin: false}
	if _, err := repo.Create(ctx, student, &CreateAnnouncementRequest{Title: "t", Text: "x"}); err != auth.UnauthorizedError {
		t.Errorf("Expected Create to require admin, got %v", err)
	}
}
