package course

import (
	"fmt"
)

const (
	FirestoreCoursesCollection         = "courses"
	FirestoreArchivedCoursesCollection = "archivedCourses"
)

// Field names a patchable Course field.
type Field string

const (
	FieldName         Field = "name"
	FieldCourseCode   Field = "courseCode"
	FieldSection      Field = "section"
	FieldYear         Field = "year"
	FieldSemester     Field = "semester"
	FieldDayOfWeek    Field = "dayOfWeek"
	FieldTime         Field = "time"
	FieldLocation     Field = "location"
	FieldIsVirtual    Field = "isVirtual"
	FieldActiveCourse Field = "activeCourse"
	FieldDescription  Field = "description"
	FieldBannerURL    Field = "bannerUrl"
)

var patchableFields = map[Field]bool{
	FieldName:         true,
	FieldCourseCode:   true,
	FieldSection:      true,
	FieldYear:         true,
	FieldSemester:     true,
	FieldDayOfWeek:    true,
	FieldTime:         true,
	FieldLocation:     true,
	FieldIsVirtual:    true,
	FieldActiveCourse: true,
	FieldDescription:  true,
	FieldBannerURL:    true,
}

// Course is one offering of a department course. ActiveCourse is the sole
// predicate controlling visibility to students and eligibility for
// announcement targeting and registration pickers.
type Course struct {
	ID           string `json:"id" mapstructure:"id"`
	Name         string `json:"name" mapstructure:"name"`
	CourseCode   string `json:"courseCode" mapstructure:"courseCode"`
	Section      string `json:"section" mapstructure:"section"`
	Year         string `json:"year" mapstructure:"year"`
	Semester     string `json:"semester" mapstructure:"semester"`
	DayOfWeek    string `json:"dayOfWeek" mapstructure:"dayOfWeek"`
	Time         string `json:"time" mapstructure:"time"`
	Location     string `json:"location" mapstructure:"location"`
	IsVirtual    bool   `json:"isVirtual" mapstructure:"isVirtual"`
	ActiveCourse bool   `json:"activeCourse" mapstructure:"activeCourse"`
	Description  string `json:"description" mapstructure:"description"`
	BannerURL    string `json:"bannerUrl" mapstructure:"bannerUrl"`
}

// ListCoursesRequest carries the table view's sort and search state.
type ListCoursesRequest struct {
	SortField string `json:"sortField"`
	SortOrder string `json:"sortOrder"`
	Search    string `json:"search"`
}

// CreateCourseRequest is the parameter struct for the Create function.
type CreateCourseRequest struct {
	Name        string `json:"name"`
	CourseCode  string `json:"courseCode"`
	Section     string `json:"section"`
	Year        string `json:"year"`
	Semester    string `json:"semester"`
	DayOfWeek   string `json:"dayOfWeek"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	IsVirtual   bool   `json:"isVirtual"`
	Description string `json:"description"`
	BannerURL   string `json:"bannerUrl"`
}

// Validate checks a CreateCourseRequest struct for errors.
func (c *CreateCourseRequest) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("course name must be a non-empty string")
	}
	if c.CourseCode == "" {
		return fmt.Errorf("course code must be a non-empty string")
	}
	return nil
}

// EditCourseRequest is the parameter struct for the Edit function. The whole
// form is submitted and merged into the document.
type EditCourseRequest struct {
	CourseID    string `json:",omitempty"`
	Name        string `json:"name"`
	CourseCode  string `json:"courseCode"`
	Section     string `json:"section"`
	Year        string `json:"year"`
	Semester    string `json:"semester"`
	DayOfWeek   string `json:"dayOfWeek"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	IsVirtual   bool   `json:"isVirtual"`
	Description string `json:"description"`
	BannerURL   string `json:"bannerUrl"`
}

// UpdateFieldRequest is the parameter struct for the UpdateField function.
type UpdateFieldRequest struct {
	Field Field       `json:"field"`
	Value interface{} `json:"value"`
}
