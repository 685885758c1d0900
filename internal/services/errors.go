package services

import "errors"

var (
	// ErrNotFound is returned when a target or parent entity does not
	// resolve. Handlers surface it as 404.
	ErrNotFound = errors.New("unable to locate the requested resource")

	// ErrBadRequest covers malformed action queries and mismatched
	// parent references. Handlers surface it as 400.
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidCredentials masks whether the email or the password was
	// wrong. Handlers surface it as 401.
	ErrInvalidCredentials = errors.New("please try new credentials")

	// ErrEmailInUse is returned on signup with an already registered email.
	ErrEmailInUse = errors.New("please try new credentials")
)
