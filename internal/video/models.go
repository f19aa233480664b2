package video

import "fmt"

const (
	FirestoreVideoQuestionsCollection = "videoQuestions"
	// FirestoreVideosCollection is the legacy standalone video catalog. New
	// lecture videos live on course content units; this collection predates
	// them and is still served for existing data.
	FirestoreVideosCollection = "videoTest"
)

// Question is a multiple-choice question pinned to a moment of video
// playback. Unlike quiz questions, each one is its own document, because
// timestamp questions are edited one at a time inline.
type Question struct {
	ID        string   `json:"id" mapstructure:"id"`
	ContentID string   `json:"contentId" mapstructure:"contentId"`
	Question  string   `json:"question" mapstructure:"question"`
	Answers   []string `json:"answers" mapstructure:"answers"`
	// CorrectAnswer indexes into Answers. Nil means the author has not picked
	// one yet.
	CorrectAnswer *int `json:"correctAnswer" mapstructure:"correctAnswer"`

	// Playback position of the question.
	Hour   int `json:"hour" mapstructure:"hour"`
	Minute int `json:"minute" mapstructure:"minute"`
	Second int `json:"second" mapstructure:"second"`
}

// CreateQuestionRequest is the parameter struct for the CreateQuestion
// function.
type CreateQuestionRequest struct {
	ContentID     string   `json:"contentId"`
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Hour          int      `json:"hour"`
	Minute        int      `json:"minute"`
	Second        int      `json:"second"`
}

// Validate checks a CreateQuestionRequest struct for errors.
func (c *CreateQuestionRequest) Validate() error {
	if c.ContentID == "" {
		return fmt.Errorf("question must reference a content unit")
	}
	if c.Question == "" {
		return fmt.Errorf("question text must be a non-empty string")
	}
	if len(c.Answers) != 4 {
		return fmt.Errorf("question must have exactly 4 answers")
	}
	if c.CorrectAnswer != nil && (*c.CorrectAnswer < 0 || *c.CorrectAnswer > 3) {
		return InvalidAnswerIndexError
	}
	if c.Hour < 0 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 59 {
		return InvalidTimestampError
	}
	return nil
}

// EditQuestionRequest is the parameter struct for the EditQuestion function.
type EditQuestionRequest struct {
	QuestionID    string   `json:",omitempty"`
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Hour          int      `json:"hour"`
	Minute        int      `json:"minute"`
	Second        int      `json:"second"`
}

// Video is one entry of the legacy video catalog.
type Video struct {
	ID              string   `json:"id" mapstructure:"id"`
	Title           string   `json:"title" mapstructure:"title"`
	Code            string   `json:"code" mapstructure:"code"`
	Description     string   `json:"description" mapstructure:"description"`
	VideoURL        string   `json:"videoUrl" mapstructure:"videoUrl"`
	VideoTimestamps []string `json:"videoTimestamps" mapstructure:"videoTimestamps"`
}

// EditVideoRequest is the parameter struct for the EditVideo function. The
// video URL itself is never edited here; replacing a video means uploading a
// new blob and the old one is left in place.
type EditVideoRequest struct {
	VideoID         string   `json:",omitempty"`
	Title           string   `json:"title"`
	Code            string   `json:"code"`
	Description     string   `json:"description"`
	VideoTimestamps []string `json:"videoTimestamps"`
}
