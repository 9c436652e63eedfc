package app

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username or password incorrect")
	ErrUnauthenticated    = errors.New("you are not logged in")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("data entered is invalid")
)
