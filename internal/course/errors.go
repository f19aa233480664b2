package course

import (
	"errors"
)

var (
	CourseNotFoundError = errors.New("course not found")
	InvalidFieldError   = errors.New("the named field is not part of the course schema")
)
