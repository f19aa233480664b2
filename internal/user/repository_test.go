package user

import (
	"context"
	"reflect"
	"testing"

	"github.com/chrisnmorrison/lms-italian-studies-department/internal/auth"
	"github.com/chrisnmorrison/lms-italian-studies-department/internal/store"
)

var admin = &auth.Principal{ID: "admin-1", Email: "admin@example.edu", IsAdmin: true}

func newTestRepository() (Repository, *store.MemoryClient) {
	client := store.NewMemoryClient()
	return NewRepository(client), client
}

func createTestUser(t *testing.T, repo Repository) *User {
	t.Helper()
	u, err := repo.Create(context.Background(), admin, &CreateUserRequest{
		Email:         "dante@example.edu",
		FirstName:     "Dante",
		LastName:      "Alighieri",
		StudentNumber: "100200300",
		ActiveStudent: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return u
}

func TestToggleRegistrationRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	if err := repo.ToggleRegistration(ctx, admin, u.ID, "course-1", true); err != nil {
		t.Fatalf("ToggleRegistration on: %v", err)
	}
	if err := repo.ToggleRegistration(ctx, admin, u.ID, "course-1", false); err != nil {
		t.Fatalf("ToggleRegistration off: %v", err)
	}

	after, err := repo.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(after.RegisteredCourses, u.RegisteredCourses) {
		t.Errorf("Expected registeredCourses to return to %v, got %v", u.RegisteredCourses, after.RegisteredCourses)
	}
}

func TestToggleRegistrationNeverDuplicates(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	repo.ToggleRegistration(ctx, admin, u.ID, "course-1", true)
	repo.ToggleRegistration(ctx, admin, u.ID, "course-1", true)

	after, _ := repo.Get(ctx, u.ID)
	if !reflect.DeepEqual(after.RegisteredCourses, []string{"course-1"}) {
		t.Errorf("Expected a single course-1 entry, got %v", after.RegisteredCourses)
	}
}

func TestUpdateFieldTouchesOnlyNamedField(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	if err := repo.UpdateField(ctx, admin, u.ID, FieldProgram, "Italian Studies"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	after, _ := repo.Get(ctx, u.ID)
	if after.Program != "Italian Studies" {
		t.Errorf("Expected program to be updated, got %q", after.Program)
	}
	if after.FirstName != "Dante" || after.StudentNumber != "100200300" || !after.ActiveStudent {
		t.Errorf("Expected sibling fields to be unchanged, got %+v", after)
	}
}

func TestUpdateFieldEmptyValueIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	if err := repo.UpdateField(ctx, admin, u.ID, FieldFirstName, ""); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	after, _ := repo.Get(ctx, u.ID)
	if after.FirstName != "Dante" {
		t.Errorf("Expected empty edit to be ignored, got %q", after.FirstName)
	}
}

func TestUpdateFieldRejectsUnknownField(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	err := repo.UpdateField(ctx, admin, u.ID, Field("registeredCourses.injection"), "x")
	if err != InvalidFieldError {
		t.Errorf("Expected InvalidFieldError, got %v", err)
	}
}

func TestRemoveFieldLeavesSiblings(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestRepository()
	u := createTestUser(t, repo)

	if err := repo.RemoveField(ctx, admin, u.ID, FieldStudentNumber); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}

	doc, _ := client.Get(ctx, FirestoreUsersCollection, u.ID)
	if _, present := doc.Data["studentNumber"]; present {
		t.Errorf("Expected studentNumber to be absent, got %v", doc.Data["studentNumber"])
	}
	if doc.Data["firstName"] != "Dante" {
		t.Errorf("Expected sibling fields untouched, got %v", doc.Data)
	}
}

func TestMutationsRequireAdmin(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()
	u := createTestUser(t, repo)

	student := &auth.Principal{ID: "student-1", Email: "student@example.edu", IsAdmin: false}

	if _, err := repo.Create(ctx, student, &CreateUserRequest{Email: "x@example.edu", FirstName: "X"}); err != auth.UnauthorizedError {
		t.Errorf("Expected Create to require admin, got %v", err)
	}
	if err := repo.Delete(ctx, student, u.ID); err != auth.UnauthorizedError {
		t.Errorf("Expected Delete to require admin, got %v", err)
	}
	if err := repo.UpdateField(ctx, nil, u.ID, FieldProgram, "x"); err != auth.PrincipalMissingError {
		t.Errorf("Expected missing principal error, got %v", err)
	}
}

func TestListSortAndSearch(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	repo.Create(ctx, admin, &CreateUserRequest{Email: "c@example.edu", FirstName: "Carlo"})
	repo.Create(ctx, admin, &CreateUserRequest{Email: "a@example.edu", FirstName: "Anna"})
	repo.Create(ctx, admin, &CreateUserRequest{Email: "b@example.edu", FirstName: "Bruno"})

	sorted, err := repo.List(ctx, &ListUsersRequest{SortField: "firstName", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, u := range sorted {
		names = append(names, u.FirstName)
	}
	if !reflect.DeepEqual(names, []string{"Anna", "Bruno", "Carlo"}) {
		t.Errorf("Expected ascending sort by firstName, got %v", names)
	}

	found, err := repo.List(ctx, &ListUsersRequest{Search: "BRUNO"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(found) != 1 || found[0].FirstName != "Bruno" {
		t.Errorf("Expected case-insensitive search to find Bruno, got %v", found)
	}
}
