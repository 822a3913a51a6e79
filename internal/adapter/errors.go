package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("resolver rejected the request")
	ErrNotFound            = errors.New("resolver endpoint not found")
	ErrInternalServerError = errors.New("resolver internal error")
	ErrResolverUnavailable = errors.New("resolver unavailable")
)
