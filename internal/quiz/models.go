package quiz

import "fmt"

const FirestoreQuizzesCollection = "quizzes"

// Question is one multiple-choice quiz question. The whole question list for
// a content unit lives inside a single array field on one quizzes document,
// because questions are bulk-edited together on a single page.
type Question struct {
	Question string   `json:"question" mapstructure:"question"`
	Answers  []string `json:"answers" mapstructure:"answers"`
	// CorrectAnswer indexes into Answers. Nil means the author has not picked
	// one yet.
	CorrectAnswer *int `json:"correctAnswer" mapstructure:"correctAnswer"`
}

// Validate checks a Question for errors.
func (q *Question) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text must be a non-empty string")
	}
	if len(q.Answers) != 4 {
		return fmt.Errorf("question must have exactly 4 answers")
	}
	if q.CorrectAnswer != nil && (*q.CorrectAnswer < 0 || *q.CorrectAnswer > 3) {
		return InvalidAnswerIndexError
	}
	return nil
}

// Quiz is the question set attached to one quiz content unit, found by
// contentId equality and created lazily on the first question add.
type Quiz struct {
	ID        string     `json:"id" mapstructure:"id"`
	ContentID string     `json:"contentId" mapstructure:"contentId"`
	Questions []Question `json:"questions" mapstructure:"questions"`
}

// AddQuestionRequest is the parameter struct for the AddQuestion function.
type AddQuestionRequest struct {
	ContentID string   `json:"contentId"`
	Question  Question `json:"question"`
}

// SaveQuestionsRequest is the parameter struct for the SaveQuestions
// function. It replaces the full question list in one write ("submit all").
type SaveQuestionsRequest struct {
	ContentID string     `json:"contentId"`
	Questions []Question `json:"questions"`
}

// DeleteQuestionRequest is the parameter struct for the DeleteQuestion
// function. Questions have no ids of their own, so they are addressed by
// list position.
type DeleteQuestionRequest struct {
	ContentID string `json:"contentId"`
	Index     int    `json:"index"`
}
