package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrPoolExhausted         = errors.New("no players left in the auction pool")
	ErrEventAlreadyBound     = errors.New("event is already bound to a running auction")
)
