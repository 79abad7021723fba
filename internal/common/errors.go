package common

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrMalformedID       = errors.New("malformatted id")
	ErrDuplicateUsername = errors.New("username has to be unique")
	ErrUserNotFound      = errors.New("user not found")
)
