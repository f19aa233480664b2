package auth

import (
	"errors"
)

var (
	UnauthorizedError     = errors.New("you must be an administrator to perform this action")
	InvalidSessionError   = errors.New("invalid or expired session")
	PrincipalMissingError = errors.New("no authenticated user on request")
)
