package quiz

import "errors"

// QuizNotFoundError is returned when no quizzes document exists for the
// requested content unit.
var QuizNotFoundError = errors.New("no quiz found for this content unit")

// QuestionNotFoundError is returned when a question index is out of range.
var QuestionNotFoundError = errors.New("no question exists at this position")

// InvalidAnswerIndexError is returned when a correctAnswer value falls
// outside the answer list.
var InvalidAnswerIndexError = errors.New("correct answer must index one of the four answers")
