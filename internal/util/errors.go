package util

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrInternal        = errors.New("internal error")
	ErrProfileNotFound = errors.New("profile not found")
)
