package user

import (
	"errors"
)

var (
	UserNotFoundError = errors.New("user not found")
	InvalidFieldError = errors.New("the named field is not part of the user schema")
)
