package video

import "errors"

// QuestionNotFoundError is returned when a video question cannot be found in
// the collection.
var QuestionNotFoundError = errors.New("no video question found with this id")

// VideoNotFoundError is returned when a legacy catalog entry cannot be found
// in the collection.
var VideoNotFoundError = errors.New("no video found with this id")

// InvalidAnswerIndexError is returned when a correctAnswer value falls
// outside the answer list.
var InvalidAnswerIndexError = errors.New("correct answer must index one of the four answers")

// InvalidTimestampError is returned when the hour/minute/second triple is not
// a valid playback position.
var InvalidTimestampError = errors.New("timestamp must be a valid hour/minute/second triple")
