package content

import (
	"fmt"
)

const (
	FirestoreCourseContentCollection         = "courseContent"
	FirestoreArchivedCourseContentCollection = "archivedCourseContent"
)

// Type discriminates the three course content variants. The tag is captured
// at creation time and is immutable thereafter; every dispatch site switches
// on it exhaustively.
type Type string

const (
	TypeText  Type = "text"
	TypeVideo Type = "video"
	TypeQuiz  Type = "quiz"
)

// Field names a patchable CourseContent field. The type tag is deliberately
// absent: it can never be patched.
type Field string

const (
	FieldTitle        Field = "title"
	FieldContentOrder Field = "contentOrder"
	FieldDue          Field = "due"
	FieldOpen         Field = "open"
	FieldClose        Field = "close"
	FieldTextContent  Field = "textContent"
	FieldVideoURL     Field = "videoUrl"
)

var patchableFields = map[Field]bool{
	FieldTitle:        true,
	FieldContentOrder: true,
	FieldDue:          true,
	FieldOpen:         true,
	FieldClose:        true,
	FieldTextContent:  true,
	FieldVideoURL:     true,
}

// CourseContent is one unit of course material: a text page, a lecture video,
// or a quiz. All three variants share one collection and are dispatched by
// Type. ContentOrder is a dotted-decimal sort key compared segment-wise
// numerically, never lexicographically.
type CourseContent struct {
	ID           string `json:"id" mapstructure:"id"`
	CourseDocID  string `json:"courseDocId" mapstructure:"courseDocId"`
	Type         Type   `json:"type" mapstructure:"type"`
	Title        string `json:"title" mapstructure:"title"`
	ContentOrder string `json:"contentOrder" mapstructure:"contentOrder"`
	Due          string `json:"due" mapstructure:"due"`
	Open         string `json:"open" mapstructure:"open"`
	Close        string `json:"close" mapstructure:"close"`

	// Variant payloads: TextContent is set for text units, VideoURL for video
	// units. Quiz questions live in their own collection keyed by contentId.
	TextContent string `json:"textContent,omitempty" mapstructure:"textContent"`
	VideoURL    string `json:"videoUrl,omitempty" mapstructure:"videoUrl"`
}

// CreateContentRequest is the parameter struct for the Create function.
type CreateContentRequest struct {
	CourseDocID  string `json:"courseDocId"`
	Type         Type   `json:"type"`
	Title        string `json:"title"`
	ContentOrder string `json:"contentOrder"`
	Due          string `json:"due"`
	Open         string `json:"open"`
	Close        string `json:"close"`
	TextContent  string `json:"textContent"`
	VideoURL     string `json:"videoUrl"`
}

// Validate checks a CreateContentRequest struct for errors, including the
// variant-specific payload.
func (c *CreateContentRequest) Validate() error {
	if c.CourseDocID == "" {
		return fmt.Errorf("content must reference a course")
	}
	if c.Title == "" {
		return fmt.Errorf("content title must be a non-empty string")
	}
	if c.ContentOrder == "" {
		return fmt.Errorf("content order must be a non-empty string")
	}

	switch c.Type {
	case TypeText:
		if c.TextContent == "" {
			return fmt.Errorf("text content must be a non-empty string")
		}
	case TypeVideo:
		if c.VideoURL == "" {
			return fmt.Errorf("video content must have a video URL")
		}
	case TypeQuiz:
		// Questions are added separately, after the unit exists.
	default:
		return UnsupportedContentTypeError
	}

	return nil
}

// EditContentRequest is the parameter struct for the Edit function. The
// stored type tag decides which payload field applies; the tag itself cannot
// be changed.
type EditContentRequest struct {
	ContentID    string `json:",omitempty"`
	Title        string `json:"title"`
	ContentOrder string `json:"contentOrder"`
	Due          string `json:"due"`
	Open         string `json:"open"`
	Close        string `json:"close"`
	TextContent  string `json:"textContent"`
	VideoURL     string `json:"videoUrl"`
}

// UpdateFieldRequest is the parameter struct for the UpdateField function.
type UpdateFieldRequest struct {
	Field Field       `json:"field"`
	Value interface{} `json:"value"`
}
