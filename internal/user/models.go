package user

import (
	"fmt"
)

const (
	FirestoreUsersCollection = "users"
)

// Field names a patchable User field. Single-field edits go through this enum
// rather than free-form keys, so an edit can never touch a field the schema
// does not declare.
type Field string

const (
	FieldTitle          Field = "title"
	FieldFirstName      Field = "firstName"
	FieldLastName       Field = "lastName"
	FieldEmail          Field = "email"
	FieldDepartment     Field = "department"
	FieldProgram        Field = "program"
	FieldStudentNumber  Field = "studentNumber"
	FieldEnrollmentDate Field = "enrollmentDate"
	FieldActiveStudent  Field = "activeStudent"
	FieldIsAdmin        Field = "isAdmin"
)

var patchableFields = map[Field]bool{
	FieldTitle:          true,
	FieldFirstName:      true,
	FieldLastName:       true,
	FieldEmail:          true,
	FieldDepartment:     true,
	FieldProgram:        true,
	FieldStudentNumber:  true,
	FieldEnrollmentDate: true,
	FieldActiveStudent:  true,
	FieldIsAdmin:        true,
}

// User represents a student or staff member managed through the admin console.
// RegisteredCourses is a set of course ids: no ordering guarantee, no
// duplicates.
type User struct {
	ID                string   `json:"id" mapstructure:"id"`
	Email             string   `json:"email" mapstructure:"email"`
	Title             string   `json:"title" mapstructure:"title"`
	FirstName         string   `json:"firstName" mapstructure:"firstName"`
	LastName          string   `json:"lastName" mapstructure:"lastName"`
	Department        string   `json:"department" mapstructure:"department"`
	Program           string   `json:"program" mapstructure:"program"`
	StudentNumber     string   `json:"studentNumber" mapstructure:"studentNumber"`
	EnrollmentDate    string   `json:"enrollmentDate" mapstructure:"enrollmentDate"`
	ActiveStudent     bool     `json:"activeStudent" mapstructure:"activeStudent"`
	IsAdmin           bool     `json:"isAdmin" mapstructure:"isAdmin"`
	RegisteredCourses []string `json:"registeredCourses" mapstructure:"registeredCourses"`
}

// ListUsersRequest carries the table view's sort and search state.
type ListUsersRequest struct {
	SortField string `json:"sortField"`
	SortOrder string `json:"sortOrder"`
	Search    string `json:"search"`
}

// CreateUserRequest is the parameter struct for the Create function.
type CreateUserRequest struct {
	Email          string `json:"email"`
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Department     string `json:"department"`
	Program        string `json:"program"`
	StudentNumber  string `json:"studentNumber"`
	EnrollmentDate string `json:"enrollmentDate"`
	ActiveStudent  bool   `json:"activeStudent"`
	IsAdmin        bool   `json:"isAdmin"`
}

// Validate checks a CreateUserRequest struct for errors.
func (u *CreateUserRequest) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("email must be a non-empty string")
	}
	if u.FirstName == "" && u.LastName == "" {
		return fmt.Errorf("a first or last name is required")
	}
	return nil
}

// EditUserRequest is the parameter struct for the Edit function. The whole
// form is submitted and merged into the document.
type EditUserRequest struct {
	UserID            string   `json:",omitempty"`
	Email             string   `json:"email"`
	Title             string   `json:"title"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Department        string   `json:"department"`
	Program           string   `json:"program"`
	StudentNumber     string   `json:"studentNumber"`
	EnrollmentDate    string   `json:"enrollmentDate"`
	ActiveStudent     bool     `json:"activeStudent"`
	IsAdmin           bool     `json:"isAdmin"`
	RegisteredCourses []string `json:"registeredCourses"`
}

// UpdateFieldRequest is the parameter struct for the UpdateField function.
type UpdateFieldRequest struct {
	Field Field       `json:"field"`
	Value interface{} `json:"value"`
}

// RemoveFieldRequest is the parameter struct for the RemoveField function.
type RemoveFieldRequest struct {
	Field Field `json:"field"`
}

// ToggleRegistrationRequest is the parameter struct for the
// ToggleRegistration function.
type ToggleRegistrationRequest struct {
	CourseID   string `json:"courseID"`
	Registered bool   `json:"registered"`
}
