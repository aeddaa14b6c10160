package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	ErrorInvalidToken = errors.New("invalid token")
)
