package announcement

import (
	"fmt"
)

const (
	FirestoreAnnouncementsCollection = "announcements"
)

// Announcement is a dated notice targeted at one or more active courses.
// Announcements are immutable after creation: the only operations are create,
// list, and delete.
type Announcement struct {
	ID            string   `json:"id" mapstructure:"id"`
	Title         string   `json:"title" mapstructure:"title"`
	ReleaseDate   string   `json:"releaseDate" mapstructure:"releaseDate"`
	ExpiryDate    string   `json:"expiryDate" mapstructure:"expiryDate"`
	Text          string   `json:"text" mapstructure:"text"`
	AuthorID      string   `json:"authorId" mapstructure:"authorId"`
	ActiveCourses []string `json:"activeCourses" mapstructure:"activeCourses"`
}

// CreateAnnouncementRequest is the parameter struct for the Create function.
type CreateAnnouncementRequest struct {
	Title         string   `json:"title"`
	ReleaseDate   string   `json:"releaseDate"`
	ExpiryDate    string   `json:"expiryDate"`
	Text          string   `json:"text"`
	ActiveCourses []string `json:"activeCourses"`
}

// Validate checks a CreateAnnouncementRequest struct for errors.
func (a *CreateAnnouncementRequest) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("announcement title must be a non-empty string")
	}
	if a.Text == "" {
		return fmt.Errorf("announcement text must be a non-empty string")
	}
	return nil
}
