package apperr

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrUsage    = errors.New("invalid usage")
)
