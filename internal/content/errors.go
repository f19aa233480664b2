package content

import (
	"errors"
)

var (
	ContentNotFoundError        = errors.New("course content not found")
	UnsupportedContentTypeError = errors.New("unsupported content type")
	InvalidFieldError           = errors.New("the named field is not part of the content schema")
)
